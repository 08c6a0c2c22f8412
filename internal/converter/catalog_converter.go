package converter

import (
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// RoleToResponse converts a Role model to RoleDTO
func RoleToResponse(m *models.Role) *dto.RoleDTO {
	if m == nil {
		return nil
	}
	return &dto.RoleDTO{ID: m.ID, Name: m.Name}
}

func GenreToResponse(m *models.Genre) *dto.GenreDTO {
	if m == nil {
		return nil
	}
	return &dto.GenreDTO{ID: m.ID, Name: m.Name}
}

func DepartmentToResponse(m *models.Department) *dto.DepartmentDTO {
	if m == nil {
		return nil
	}
	return &dto.DepartmentDTO{ID: m.ID, Name: m.Name}
}

// CityToResponse leaves Department empty; callers attach it.
func CityToResponse(m *models.City) *dto.CityDTO {
	if m == nil {
		return nil
	}
	return &dto.CityDTO{
		ID:           m.ID,
		Name:         m.Name,
		DepartmentID: m.DepartmentID,
	}
}

func SpecialtyToResponse(m *models.Specialty) *dto.SpecialtyDTO {
	if m == nil {
		return nil
	}
	return &dto.SpecialtyDTO{
		ID:              m.ID,
		Name:            m.Name,
		YearsExperience: m.YearsExperience,
	}
}
