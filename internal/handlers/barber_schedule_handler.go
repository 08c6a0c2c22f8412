package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberian-api/internal/converter"
	"github.com/BruksfildServices01/barberian-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/httperr"
	"github.com/BruksfildServices01/barberian-api/internal/httpresp"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

type BarberScheduleHandler struct {
	repos *repository.Repositories
}

func NewBarberScheduleHandler(repos *repository.Repositories) *BarberScheduleHandler {
	return &BarberScheduleHandler{repos: repos}
}

func (h *BarberScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateBarberScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	// parsing normalizes times to HH:MM:SS
	fields := fieldErrors{}
	day, err := schedule.ParseDayOfWeek(req.DayOfWeek)
	fields.add("day_of_week", err)
	start, err := models.ParseClock(req.StartTime)
	fields.add("start_time", err)
	end, err := models.ParseClock(req.EndTime)
	fields.add("end_time", err)
	if fields.abort(c) {
		return
	}

	sched := models.BarberSchedule{
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
	if err := h.repos.BarberSchedules.Create(c.Request.Context(), middleware.Session(c), &sched); err != nil {
		httperr.Store(c, err, "barber_schedule")
		return
	}

	httpresp.Created(c, converter.BarberScheduleToResponse(&sched))
}

func (h *BarberScheduleHandler) List(c *gin.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	rows, err := h.repos.BarberSchedules.List(c.Request.Context(), middleware.Session(c), page)
	if err != nil {
		httperr.Store(c, err, "barber_schedule")
		return
	}

	httpresp.List(c, convertAll(rows, converter.BarberScheduleToResponse))
}

func (h *BarberScheduleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	sched, err := h.repos.BarberSchedules.FindByID(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Store(c, err, "barber_schedule")
		return
	}

	httpresp.OK(c, converter.BarberScheduleToResponse(sched))
}
