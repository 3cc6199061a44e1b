package model

// User is the public view of a user. It never carries credentials.
type User struct {
	Username string
	FullName *string
}
