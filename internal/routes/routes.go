package routes

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberian-api/internal/config"
	"github.com/BruksfildServices01/barberian-api/internal/handlers"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/middleware"
	"github.com/BruksfildServices01/barberian-api/internal/validators"
)

// NewRouter builds the engine with logging, recovery, CORS, request ids,
// metrics and the per-request database session, then registers every route.
func NewRouter(db *gorm.DB, cfg *config.Config, log *zap.Logger) (*gin.Engine, error) {
	if err := validators.RegisterGin(validators.Options{CheckEmailDomain: cfg.EmailCheckDomain}); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.DBSession(db))

	RegisterRoutes(r, cfg)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	repos := repository.New()

	// ======================================================
	// HANDLERS
	// ======================================================
	systemHandler := handlers.NewSystemHandler(repos, cfg.Version)
	authProviderHandler := handlers.NewAuthProviderHandler(repos)
	roleHandler := handlers.NewRoleHandler(repos)
	genreHandler := handlers.NewGenreHandler(repos)
	departmentHandler := handlers.NewDepartmentHandler(repos)
	cityHandler := handlers.NewCityHandler(repos)
	userHandler := handlers.NewUserHandler(repos, cfg.BcryptCost)
	customerHandler := handlers.NewCustomerHandler(repos)
	specialtyHandler := handlers.NewSpecialtyHandler(repos)
	scheduleHandler := handlers.NewBarberScheduleHandler(repos)
	barberHandler := handlers.NewBarberHandler(repos)
	staffHandler := handlers.NewStaffHandler(repos)
	barbershopHandler := handlers.NewBarbershopHandler(repos)
	locationHandler := handlers.NewLocationHandler(repos)
	appointmentHandler := handlers.NewAppointmentHandler(repos)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/ready", systemHandler.Ready)
	r.GET("/stats", systemHandler.Stats)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// LOOKUPS
	// ======================================================
	crud(r.Group("/auth-providers"), authProviderHandler)
	crud(r.Group("/roles"), roleHandler)
	crud(r.Group("/genres"), genreHandler)
	crud(r.Group("/departments"), departmentHandler)
	crud(r.Group("/specialties"), specialtyHandler)
	crud(r.Group("/barber-schedules"), scheduleHandler)

	cities := r.Group("/cities")
	crud(cities, cityHandler)
	cities.GET("/by-department/:department_id", cityHandler.ListByDepartment)

	// ======================================================
	// PEOPLE
	// ======================================================
	crud(r.Group("/users"), userHandler)
	crud(r.Group("/customers"), customerHandler)

	barbers := r.Group("/barbers")
	crud(barbers, barberHandler)
	barbers.GET("/by-city/:city_id", barberHandler.ListByCity)

	staff := r.Group("/staff")
	crud(staff, staffHandler)
	staff.GET("/by-barber/:barber_id", staffHandler.GetByBarber)
	staff.DELETE("/:id", staffHandler.Delete)

	// ======================================================
	// SHOPS
	// ======================================================
	crud(r.Group("/barbershops"), barbershopHandler)
	crud(r.Group("/locations"), locationHandler)

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	appointments := r.Group("/appointments")
	crud(appointments, appointmentHandler)
	appointments.PATCH("/:id/status", appointmentHandler.UpdateStatus)
	appointments.GET("/by-customer/:customer_id", appointmentHandler.ListByCustomer)
	appointments.GET("/by-barber/:barber_id", appointmentHandler.ListByBarber)
}

type crudHandler interface {
	Create(*gin.Context)
	List(*gin.Context)
	Get(*gin.Context)
}

func crud(g *gin.RouterGroup, h crudHandler) {
	g.POST("/", h.Create)
	g.GET("/", h.List)
	g.GET("/:id", h.Get)
}
