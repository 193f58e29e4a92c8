package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/YashI2IT/hostel/config"
	"github.com/YashI2IT/hostel/controllers"
	"github.com/YashI2IT/hostel/routes"
	"github.com/YashI2IT/hostel/services"
	"github.com/YashI2IT/hostel/store"
	"github.com/YashI2IT/hostel/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	st := store.New(db)

	// Initialize services
	authService := services.NewAuthService(st, jwtSecret)
	propertyService := services.NewPropertyService(st)
	roomService := services.NewRoomService(st)
	allocationService := services.NewAllocationService(st)
	onboardingService := services.NewOnboardingService(st)
	studentService := services.NewStudentService(st)
	bookingService := services.NewBookingService(st)
	complaintService := services.NewComplaintService(st)
	occupancyService := services.NewOccupancyService(st)
	reportService := services.NewReportService(st)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(authService)
	propertyController := controllers.NewPropertyController(propertyService)
	roomController := controllers.NewRoomController(roomService, allocationService)
	bedController := controllers.NewBedController(allocationService)
	onboardingController := controllers.NewOnboardingController(onboardingService)
	studentController := controllers.NewStudentController(studentService)
	bookingController := controllers.NewBookingController(bookingService)
	complaintController := controllers.NewComplaintController(complaintService)
	occupancyController := controllers.NewOccupancyController(occupancyService, reportService)

	// Build router
	router := routes.SetupRouter(
		authController,
		userController,
		propertyController,
		roomController,
		bedController,
		onboardingController,
		studentController,
		bookingController,
		complaintController,
		occupancyController,
		db,
		jwtSecret,
	)

	// Port from env (prefer), fallback to 8080
	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
