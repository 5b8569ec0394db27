package auth

import "github.com/bengkellab/bengkel/internal/application/user/usecases"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User        *usecases.UserDTO `json:"user"`
	AccessToken string            `json:"access_token"`
	ExpiresIn   int64             `json:"expires_in"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
