package dto

type CreateAppointmentRequest struct {
	CustomerID      uint   `json:"id_customer" binding:"required"`
	BarberID        uint   `json:"id_barber" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" binding:"required,clock"`
	EndTime         string `json:"end_time" binding:"required,clock"`
	// empty means pending
	Status string `json:"status" binding:"omitempty,appointment_status"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,appointment_status"`
}

type AppointmentDTO struct {
	ID              uint   `json:"id_appointment"`
	CustomerID      uint   `json:"id_customer"`
	BarberID        uint   `json:"id_barber"`
	AppointmentDate string `json:"appointment_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Status          string `json:"status"`

	Customer *CustomerDTO `json:"customer"`
	Barber   *BarberDTO   `json:"barber"`
}
