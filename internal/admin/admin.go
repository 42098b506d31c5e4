package admin

// Admin is a console account. There is no self-service sign-up: accounts
// are provisioned at startup from the environment.
type Admin struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
