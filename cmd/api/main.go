package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"makeupstudio/internal/config"
	"makeupstudio/internal/database"
	"makeupstudio/internal/middleware"
	"makeupstudio/internal/modules/admin"
	"makeupstudio/internal/modules/auth"
	"makeupstudio/internal/modules/booking"
	"makeupstudio/internal/modules/catalog"
	"makeupstudio/internal/modules/complaint"
	"makeupstudio/internal/modules/content"
	"makeupstudio/internal/modules/followup"
	"makeupstudio/internal/modules/review"
	jwtsvc "makeupstudio/internal/pkg/jwt"
	"makeupstudio/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	transportRepo := repository.NewTransportCostRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	blockedSlotRepo := repository.NewBlockedSlotRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	inviteRepo := repository.NewReviewInviteRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	pageRepo := repository.NewPageRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, transportRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(appointmentRepo, serviceRepo, transportRepo, blockedSlotRepo, cfg.Pricing)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, inviteRepo, appointmentRepo)
	reviewHandler := review.NewHandler(reviewService)

	complaintService := complaint.NewService(complaintRepo)
	complaintHandler := complaint.NewHandler(complaintService)

	contentService := content.NewService(pageRepo)
	contentHandler := content.NewHandler(contentService)

	adminService := admin.NewService(appointmentRepo, serviceRepo, transportRepo, blockedSlotRepo, reviewRepo, complaintRepo)
	adminHandler := admin.NewHandler(adminService)

	followupService := followup.NewService(appointmentRepo, inviteRepo)
	if err := followupService.StartScheduler(); err != nil {
		log.Fatal(err)
	}
	defer followupService.StopScheduler()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		complaintHandler.RegisterRoutes(v1)
		contentHandler.RegisterRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}

		// admin panel
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterAdminRoutes(adminGroup)
			reviewHandler.RegisterAdminRoutes(adminGroup)
			complaintHandler.RegisterAdminRoutes(adminGroup)
			contentHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
