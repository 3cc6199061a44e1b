package http

import (
	"tutorial-api/internal/user"
)

// --- Request DTOs ---

type createReq struct {
	Username string  `json:"username"  binding:"required,min=3,max=50" example:"dave"`
	Password string  `json:"password"  binding:"required,min=8,max=128" example:"correct horse battery"`
	Email    string  `json:"email"     binding:"required,email"        example:"dave@example.com"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"     example:"Dave Grohl"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		FullName: r.FullName,
	}
}

// --- Response DTOs ---

// userResp is the response model for created users. It has no password field.
type userResp struct {
	Username string  `json:"username"  example:"dave"`
	Email    string  `json:"email"     example:"dave@example.com"`
	FullName *string `json:"full_name" example:"Dave Grohl"`
}

func newUserResp(out user.CreateOutput) userResp {
	return userResp{
		Username: out.User.Username,
		Email:    out.Email,
		FullName: out.User.FullName,
	}
}
