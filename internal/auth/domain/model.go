package domain

// Principal is the authenticated identity bound to a session. The platform
// has a single admin principal; the struct still travels through the session
// layer so the API reports who is logged in.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
