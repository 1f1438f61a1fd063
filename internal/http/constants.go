package httpx

// Session cookie name shared by handlers and middleware.
const sessionCookieName = "session_id"

const (
	// loginPath is where unauthenticated or expired sessions are sent.
	loginPath = "/login"

	// redirectDelayMS is the pause pages apply before navigating to the
	// login route, long enough to read the session-expired message.
	redirectDelayMS = 2000

	// registerRedirectDelayMS is the pause after a successful registration,
	// a little longer so the success message registers before the login
	// form appears.
	registerRedirectDelayMS = 3000
)

// User-facing messages. These are stable strings pages match on, so they
// change together with the frontend.
const (
	msgSessionExpired = "Unauthorized. Please login again."
	msgLoginRequired  = "Please login to continue."
)

// maxLoginBodyBytes caps auth request bodies; credentials are tiny.
const maxLoginBodyBytes = 1 << 16
