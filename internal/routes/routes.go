package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediflowhq/mediflow/internal/config"
	"github.com/mediflowhq/mediflow/internal/handlers"
	"github.com/mediflowhq/mediflow/internal/infra/mail"
	infraRepo "github.com/mediflowhq/mediflow/internal/infra/repository"
	"github.com/mediflowhq/mediflow/internal/infra/storage"
	"github.com/mediflowhq/mediflow/internal/logger"
	"github.com/mediflowhq/mediflow/internal/middleware"
	"github.com/mediflowhq/mediflow/internal/prescription"
	ucBooking "github.com/mediflowhq/mediflow/internal/usecase/booking"
)

// RegisterAuthRoutes wires the user-authentication service.
func RegisterAuthRoutes(r *gin.Engine, db *mongo.Database, cfg *config.Config, log logger.Logger) {

	userRepo := infraRepo.NewMongoUserRepository(db)

	authHandler := handlers.NewAuthHandler(userRepo, cfg, log)
	profileHandler := handlers.NewProfileHandler(userRepo, log)

	api := r.Group("/api")
	{
		api.POST("/users/register", authHandler.Register)
		api.POST("/users/login", authHandler.Login)

		secured := api.Group("/users")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/profile", profileHandler.GetProfile)
			secured.PUT("/profile", profileHandler.UpdateProfile)
		}
	}
}

// RegisterBookingRoutes wires the appointment-booking service.
func RegisterBookingRoutes(r *gin.Engine, db *mongo.Database, cfg *config.Config, log logger.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewMongoAppointmentRepository(db)
	publisher := storage.NewS3Publisher(cfg)
	generator := prescription.NewGenerator()
	mailer := mail.NewSMTPSender(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(
		appointmentRepo,
		generator,
		publisher,
		mailer,
	)

	listUC := ucBooking.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		listUC,
		publisher,
		log,
	)

	api := r.Group("/api")
	{
		api.POST("/appointments/book", appointmentHandler.Book)
		api.GET("/appointments", appointmentHandler.List)
	}
}
