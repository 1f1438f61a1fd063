package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}

// errorResponse is the uniform error payload pages consume. Only
// unauthorized errors carry navigation metadata; everything else is an
// inline message the page surfaces without leaving the session.
type errorResponse struct {
	Error           string            `json:"error"`
	Message         string            `json:"message"`
	Fields          map[string]string `json:"errors,omitempty"`
	RedirectTo      string            `json:"redirect_to,omitempty"`
	RedirectAfterMS int               `json:"redirect_after_ms,omitempty"`
}

// WriteAppError renders an application error with the taxonomy's HTTP
// status. Unauthorized responses include the login redirect hint with the
// short delay that lets a UI show the message first.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeServerError
	}
	resp := errorResponse{
		Error:   string(code),
		Message: err.Error(),
		Fields:  apperrors.GetFields(err),
	}
	if code == apperrors.ErrCodeUnauthorized || code == apperrors.ErrCodeInvalidToken {
		resp.RedirectTo = loginPath
		resp.RedirectAfterMS = redirectDelayMS
	}
	WriteJSON(w, statusForCode(code), resp)
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeNetworkError:
		return http.StatusBadGateway
	case apperrors.ErrCodeServerError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
