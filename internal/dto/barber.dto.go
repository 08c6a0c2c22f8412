package dto

type CreateBarberScheduleRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required,day_of_week"`
	StartTime string `json:"start_time" binding:"required,clock"`
	EndTime   string `json:"end_time" binding:"required,clock"`
}

type BarberScheduleDTO struct {
	ID        uint   `json:"id_schedule"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CreateBarberRequest struct {
	UserID       uint    `json:"id_user" binding:"required"`
	GenreID      uint    `json:"id_genre" binding:"required"`
	SpecialtyID  *uint   `json:"id_specialty"`
	DepartmentID uint    `json:"id_department" binding:"required"`
	CityID       uint    `json:"id_city" binding:"required"`
	ScheduleID   *uint   `json:"id_barber_schedule"`
	Phone        *string `json:"phone" binding:"omitempty,max=255"`
	Address      *string `json:"direction" binding:"omitempty,max=255"`
	Points       int     `json:"points"`
}

type BarberDTO struct {
	ID           uint    `json:"id_barber"`
	UserID       uint    `json:"id_user"`
	GenreID      uint    `json:"id_genre"`
	SpecialtyID  *uint   `json:"id_specialty"`
	DepartmentID uint    `json:"id_department"`
	CityID       uint    `json:"id_city"`
	ScheduleID   *uint   `json:"id_barber_schedule"`
	Phone        *string `json:"phone"`
	Address      *string `json:"direction"`
	Points       int     `json:"points"`

	User       *UserDTO           `json:"user"`
	Genre      *GenreDTO          `json:"genre"`
	Specialty  *SpecialtyDTO      `json:"specialty"`
	Department *DepartmentDTO     `json:"department"`
	City       *CityDTO           `json:"city"`
	Schedule   *BarberScheduleDTO `json:"schedule"`
}

type CreateStaffRequest struct {
	BarberID uint `json:"id_barber" binding:"required"`
}

type StaffDTO struct {
	ID       uint       `json:"id_staff"`
	BarberID uint       `json:"id_barber"`
	Barber   *BarberDTO `json:"barber"`
}

type CreateBarbershopRequest struct {
	StaffID uint    `json:"id_staff" binding:"required"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
}

type BarbershopDTO struct {
	ID      uint    `json:"id_barbershop"`
	StaffID uint    `json:"id_staff"`
	Phone   *string `json:"phone"`
}

type CreateLocationRequest struct {
	BarbershopID uint   `json:"id_barbershop" binding:"required"`
	DepartmentID uint   `json:"id_department" binding:"required"`
	CityID       uint   `json:"id_city" binding:"required"`
	Address      string `json:"address" binding:"required,max=255"`
	OpeningHour  string `json:"opening_hour" binding:"required,clock"`
	ClosingHour  string `json:"closing_hour" binding:"required,clock"`
}

type LocationDTO struct {
	ID           uint   `json:"id_location"`
	BarbershopID uint   `json:"id_barbershop"`
	DepartmentID uint   `json:"id_department"`
	CityID       uint   `json:"id_city"`
	Address      string `json:"address"`
	OpeningHour  string `json:"opening_hour"`
	ClosingHour  string `json:"closing_hour"`

	Barbershop *BarbershopDTO `json:"barbershop"`
	Department *DepartmentDTO `json:"department"`
	City       *CityDTO       `json:"city"`
}
