package store

// Session is the identity-provider-issued principal observed by the
// application. It is created by sign-in/sign-up, destroyed by sign-out or
// token invalidation, and never mutated outside the Session Store.
type Session struct {
	Id          string `json:"id"`
	UserId      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

// Valid reports whether the session still represents an authenticated
// principal.
func (s *Session) Valid() bool {
	return s != nil && s.Id != "" && s.UserId != ""
}
