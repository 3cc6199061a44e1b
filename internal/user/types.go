package user

import "tutorial-api/internal/model"

// --- UseCase Inputs ---

// CreateInput is a sign-up request. Password never leaves the use case.
type CreateInput struct {
	Username string
	Password string
	Email    string
	FullName *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	User  model.User
	Email string
}
