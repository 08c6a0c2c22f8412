package dto

type HealthDTO struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// StatsDTO is the row count of every table.
type StatsDTO struct {
	Users           int64 `json:"users"`
	Customers       int64 `json:"customers"`
	Barbers         int64 `json:"barbers"`
	Staff           int64 `json:"staff"`
	Appointments    int64 `json:"appointments"`
	Barbershops     int64 `json:"barbershops"`
	Specialties     int64 `json:"specialties"`
	Departments     int64 `json:"departments"`
	Cities          int64 `json:"cities"`
	Roles           int64 `json:"roles"`
	Genres          int64 `json:"genres"`
	Locations       int64 `json:"locations"`
	BarberSchedules int64 `json:"barber_schedules"`
	AuthProviders   int64 `json:"auth_providers"`
}
