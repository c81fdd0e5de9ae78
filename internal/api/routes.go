package api

import (
	"net/http"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	bookingService service.BookingService,
	clientService service.ClientService,
	trainerService service.TrainerService,
) {

	authHandler := NewAuthHandler(authService)
	bookingHandler := NewBookingHandler(bookingService, clientService, trainerService)
	clientHandler := NewClientHandler(clientService)
	trainerHandler := NewTrainerHandler(trainerService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "fitness-booking-api"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Client Profile Routes ---
		clientGroup := protected.Group("/clients")
		{
			// Creating a client profile requires a CLIENT account; the
			// profile is bound to the caller.
			clientGroup.POST("", RoleMiddleware(domain.RoleClient), clientHandler.CreateClient)
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.GET("/:id", clientHandler.GetClient)
		}

		// --- Trainer Profile Routes ---
		trainerGroup := protected.Group("/trainers")
		{
			trainerGroup.POST("", RoleMiddleware(domain.RoleTrainer), trainerHandler.CreateTrainer)
			trainerGroup.GET("", trainerHandler.ListTrainers)
			trainerGroup.GET("/:id", trainerHandler.GetTrainer)
		}

		// --- Booking Routes ---
		// Role/ownership checks for transitions live in the booking
		// core, not in per-route middleware; the handlers only resolve
		// the acting party.
		bookingGroup := protected.Group("/bookings")
		{
			bookingGroup.POST("", bookingHandler.CreateBooking)
			bookingGroup.GET("", bookingHandler.ListBookings)
			bookingGroup.GET("/:id", bookingHandler.GetBooking)

			bookingGroup.POST("/:id/confirm", RoleMiddleware(domain.RoleTrainer), bookingHandler.ConfirmBooking)
			bookingGroup.POST("/:id/reject", RoleMiddleware(domain.RoleTrainer), bookingHandler.RejectBooking)
			bookingGroup.POST("/:id/cancel", bookingHandler.CancelBooking)
			bookingGroup.POST("/:id/complete", RoleMiddleware(domain.RoleTrainer), bookingHandler.CompleteBooking)

			bookingGroup.GET("/client/:clientId", bookingHandler.ListBookingsByClient)
			bookingGroup.GET("/trainer/:trainerId", bookingHandler.ListBookingsByTrainer)
		}
	}
}
