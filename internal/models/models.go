package models

// All lists every table in dependency order for migrations and counts.
func All() []any {
	return []any{
		&AuthProvider{},
		&Role{},
		&Genre{},
		&Department{},
		&City{},
		&User{},
		&Customer{},
		&Specialty{},
		&BarberSchedule{},
		&Barber{},
		&Staff{},
		&Barbershop{},
		&Location{},
		&Appointment{},
	}
}
