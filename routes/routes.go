package routes

import (
	"github.com/gin-gonic/gin"
	supa "github.com/supabase-community/supabase-go"

	"github.com/G-Mursalin/dent-care-server-site/config"
	"github.com/G-Mursalin/dent-care-server-site/handlers"
	"github.com/G-Mursalin/dent-care-server-site/middleware"
	"github.com/G-Mursalin/dent-care-server-site/services"
)

func SetupRoutes(router *gin.Engine, supabaseClient *supa.Client, cfg *config.Config, paymentClient services.PaymentClient) {
	// Initialize handlers
	serviceHandler := handlers.NewServiceHandler(supabaseClient, cfg)
	bookingHandler := handlers.NewBookingHandler(supabaseClient, cfg)
	userHandler := handlers.NewUserHandler(supabaseClient, cfg)
	doctorHandler := handlers.NewDoctorHandler(supabaseClient, cfg)
	paymentHandler := handlers.NewPaymentHandler(paymentClient, cfg)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello World from Dent Care")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// Public routes
	router.POST("/booking", bookingHandler.CreateBooking)
	router.GET("/available", bookingHandler.GetAvailable)
	router.PUT("/user/:email", userHandler.UpsertUser)

	// Token-protected routes
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/booking", bookingHandler.GetMyBookings)
		protected.GET("/booking/:id", bookingHandler.GetBookingByID)
		protected.PATCH("/booking/:id", bookingHandler.PayBooking)
		protected.GET("/user/:email", userHandler.CheckAdmin)
		protected.GET("/users", userHandler.GetUsers)
		protected.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)

		// Admin-only routes
		admin := protected.Group("")
		admin.Use(middleware.AdminMiddleware(supabaseClient))
		{
			admin.GET("/services", serviceHandler.GetServices)
			admin.PUT("/user/admin/:email", userHandler.MakeAdmin)
			admin.DELETE("/user/:email", userHandler.DeleteUser)
			admin.POST("/doctor", doctorHandler.CreateDoctor)
			admin.GET("/doctor", doctorHandler.GetDoctors)
			admin.DELETE("/doctor/:email", doctorHandler.DeleteDoctor)
		}
	}
}
