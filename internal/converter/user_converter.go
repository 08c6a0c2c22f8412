package converter

import (
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// AuthProviderToResponse drops the token.
func AuthProviderToResponse(m *models.AuthProvider) *dto.AuthProviderDTO {
	if m == nil {
		return nil
	}
	return &dto.AuthProviderDTO{
		ID:               m.ID,
		Provider:         string(m.Provider),
		ProviderIDGoogle: m.ProviderIDGoogle,
	}
}

// UserToResponse drops the password hash. Role is attached by the caller.
func UserToResponse(m *models.User) *dto.UserDTO {
	if m == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:       m.ID,
		FullName: m.FullName,
		Email:    m.Email,
		RoleID:   m.RoleID,
	}
}

func CustomerToResponse(m *models.Customer) *dto.CustomerDTO {
	if m == nil {
		return nil
	}
	return &dto.CustomerDTO{
		ID:           m.ID,
		UserID:       m.UserID,
		GenreID:      m.GenreID,
		Phone:        m.Phone,
		Address:      m.Address,
		DepartmentID: m.DepartmentID,
		CityID:       m.CityID,
	}
}
