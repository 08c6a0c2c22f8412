package dto

// Lookup tables: roles, genres, departments, cities and specialties.

type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type RoleDTO struct {
	ID   uint   `json:"id_role"`
	Name string `json:"name"`
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type GenreDTO struct {
	ID   uint   `json:"id_genre"`
	Name string `json:"name"`
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type DepartmentDTO struct {
	ID   uint   `json:"id_department"`
	Name string `json:"name"`
}

type CreateCityRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	DepartmentID uint   `json:"id_department" binding:"required"`
}

type CityDTO struct {
	ID           uint           `json:"id_city"`
	Name         string         `json:"name"`
	DepartmentID uint           `json:"id_department"`
	Department   *DepartmentDTO `json:"department"`
}

type CreateSpecialtyRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	YearsExperience *int   `json:"years_experience" binding:"omitempty,gte=0"`
}

type SpecialtyDTO struct {
	ID              uint   `json:"id_specialty"`
	Name            string `json:"name"`
	YearsExperience *int   `json:"years_experience"`
}
