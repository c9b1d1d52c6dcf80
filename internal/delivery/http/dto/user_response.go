package dto

import "github.com/google/uuid"

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type AudienceResponse struct {
	AudienceCount int            `json:"audience_count"`
	Audience      []UserResponse `json:"audience"`
}
