package user

// User is the identity carried by a bearer token.
type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
