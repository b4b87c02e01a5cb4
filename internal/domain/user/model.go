package user

// Principal is the authenticated caller resolved by the auth-check collaborator.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}
