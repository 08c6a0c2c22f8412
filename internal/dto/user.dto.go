package dto

import (
	"encoding/json"

	"github.com/BruksfildServices01/barberian-api/internal/validators"
)

type CreateAuthProviderRequest struct {
	Provider         string  `json:"provider" binding:"required,auth_provider"`
	ProviderIDGoogle *string `json:"provider_id_google" binding:"omitempty,max=255"`
	Token            *string `json:"token" binding:"omitempty,max=255"`
}

// AuthProviderDTO never carries the stored token.
type AuthProviderDTO struct {
	ID               uint    `json:"id_auth_provider"`
	Provider         string  `json:"provider"`
	ProviderIDGoogle *string `json:"provider_id_google"`
}

type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255,email_domain"`
	// bcrypt rejects passwords longer than 72 bytes
	Password string `json:"password" binding:"required,max_bytes=72"`
	RoleID   *uint  `json:"id_role"`
}

// UnmarshalJSON normalizes the email before binding validates it.
func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	type plain CreateUserRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}
	r.Email = validators.NormalizeEmail(r.Email)
	return nil
}

type UserDTO struct {
	ID       uint     `json:"id_user"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	RoleID   *uint    `json:"id_role"`
	Role     *RoleDTO `json:"role"`
}

type CreateCustomerRequest struct {
	UserID       uint    `json:"id_user" binding:"required"`
	GenreID      uint    `json:"id_genre" binding:"required"`
	Phone        *string `json:"phone" binding:"omitempty,max=255"`
	Address      *string `json:"direction" binding:"omitempty,max=255"`
	DepartmentID uint    `json:"id_department" binding:"required"`
	CityID       uint    `json:"id_city" binding:"required"`
}

type CustomerDTO struct {
	ID           uint    `json:"id_customer"`
	UserID       uint    `json:"id_user"`
	GenreID      uint    `json:"id_genre"`
	Phone        *string `json:"phone"`
	Address      *string `json:"direction"`
	DepartmentID uint    `json:"id_department"`
	CityID       uint    `json:"id_city"`

	User       *UserDTO       `json:"user"`
	Genre      *GenreDTO      `json:"genre"`
	Department *DepartmentDTO `json:"department"`
	City       *CityDTO       `json:"city"`
}
