package domain

// Session is the authenticated caller of a request. It is created by the
// auth middleware and passed explicitly to services that need an owner.
type Session struct {
	UserID string
	// Cookie is the raw Cookie header of the request, forwarded to the
	// question generator when cookie forwarding is enabled.
	Cookie string
}

// IsAuthenticated reports whether the session belongs to a signed-in user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != ""
}
