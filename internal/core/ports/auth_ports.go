package ports

// SessionService issues and verifies the client-held session reference that
// carries a user id between requests.
type SessionService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
