package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domain "github.com/BruksfildServices01/barberian-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/httpresp"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler books appointments as requested. Overlapping slots and
// barber schedules are not checked.
type AppointmentHandler struct {
	repos *repository.Repositories
	embed embedder
}

func NewAppointmentHandler(repos *repository.Repositories) *AppointmentHandler {
	return &AppointmentHandler{repos: repos, embed: embedder{repos: repos}}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	fields := fieldErrors{}
	date, err := models.ParseDate(req.AppointmentDate)
	fields.add("appointment_date", err)
	start, err := models.ParseClock(req.StartTime)
	fields.add("start_time", err)
	end, err := models.ParseClock(req.EndTime)
	fields.add("end_time", err)
	if fields.abort(c) {
		return
	}

	status := domain.Status(req.Status)
	if status == "" {
		status = domain.InitialStatus()
	}

	ctx, db := c.Request.Context(), middleware.Session(c)

	appt := models.Appointment{
		CustomerID:      req.CustomerID,
		BarberID:        req.BarberID,
		AppointmentDate: date,
		StartTime:       start,
		EndTime:         end,
		Status:          status,
	}
	if err := h.repos.Appointments.Create(ctx, db, &appt); err != nil {
		httperr.Store(c, err, "appointment")
		return
	}

	out, err := one(ctx, db, &appt, h.embed.appointments)
	if err != nil {
		httperr.Store(c, err, "appointment")
		return
	}
	httpresp.Created(c, out)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.Appointments.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "appointment")
		return
	}
	h.render(c, rows)
}

func (h *AppointmentHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customer_id")
	if !ok {
		return
	}

	rows, err := h.repos.Appointments.ListByCustomer(c.Request.Context(), middleware.Session(c), customerID)
	if err != nil {
		httperr.Store(c, err, "appointment")
		return
	}
	h.render(c, rows)
}

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	barberID, ok := pathID(c, "barber_id")
	if !ok {
		return
	}

	rows, err := h.repos.Appointments.ListByBarber(c.Request.Context(), middleware.Session(c), barberID)
	if err != nil {
		httperr.Store(c, err, "appointment")
		return
	}
	h.render(c, rows)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx, db := c.Request.Context(), middleware.Session(c)

	appt, err := h.repos.Appointments.FindByID(ctx, db, id)
	if err != nil {
		httperr.Store(c, err, "appointment")
		return
	}

	out, err := one(ctx, db, appt, h.embed.appointments)
	if err != nil {
		httperr.Store(c, err, "appointment")
		return
	}
	httpresp.OK(c, out)
}

func (h *AppointmentHandler) render(c *gin.Context, rows []models.Appointment) {
	out, err := h.embed.appointments(c.Request.Context(), middleware.Session(c), rows)
	if err != nil {
		httperr.Store(c, err, "appointment")
		return
	}
	httpresp.List(c, out)
}

// ======================================================
// STATUS
// ======================================================

// UpdateStatus sets the status of an existing appointment. The new value
// comes from ?status=, a bare JSON string body or {"status": ...}.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	raw, ok := readStatus(c)
	if !ok {
		return
	}

	status, err := domain.ParseStatus(raw)
	if err != nil {
		httperr.Unprocessable(c, map[string]string{"status": "must be one of: " + domain.OneOf()})
		return
	}

	if err := h.repos.Appointments.UpdateStatus(c.Request.Context(), middleware.Session(c), id, status); err != nil {
		httperr.Store(c, err, "appointment")
		return
	}

	httpresp.Message(c, "Appointment status updated successfully")
}

func readStatus(c *gin.Context) (string, bool) {
	if q := c.Query("status"); q != "" {
		return q, true
	}

	body, err := c.GetRawData()
	if err != nil {
		httperr.BadRequest(c, "malformed_body", "Request body could not be read.")
		return "", false
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		httperr.Unprocessable(c, map[string]string{"status": "is required"})
		return "", false
	}

	var bare string
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, true
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		httperr.Binding(c, err)
		return "", false
	}
	return req.Status, true
}
