package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YashI2IT/hostel/controllers"
	"github.com/YashI2IT/hostel/middleware"
	"github.com/YashI2IT/hostel/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter mounts every endpoint. Login is the only route outside the
// auth middleware; routes that change occupancy require MANAGER or ADMIN,
// user management requires ADMIN.
func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	pc *controllers.PropertyController,
	rc *controllers.RoomController,
	bc *controllers.BedController,
	obc *controllers.OnboardingController,
	sc *controllers.StudentController,
	kc *controllers.BookingController,
	cc *controllers.ComplaintController,
	occ *controllers.OccupancyController,
	db *gorm.DB,
	jwtSecret string,
) *gin.Engine {
	controllers.RegisterValidators()

	r := gin.Default()

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/login", ac.Login)

	api := r.Group("/api", middleware.RequireAuth(db, jwtSecret))
	managers := middleware.RequireRole(models.RoleManager, models.RoleAdmin)
	{
		properties := api.Group("/properties")
		{
			properties.GET("", pc.GetProperties)
			properties.POST("", pc.CreateProperty)
			properties.GET("/:id", pc.GetProperty)
			properties.PATCH("/:id", pc.UpdateProperty)
			properties.DELETE("/:id", managers, pc.DeleteProperty)
			properties.GET("/:id/occupancy", occ.GetForProperty)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", managers, rc.CreateRoom)
			rooms.GET("/:id", rc.GetRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", managers, rc.DeleteRoom)
			rooms.PATCH("/:id/capacity", managers, rc.ResizeCapacity)
		}

		beds := api.Group("/beds", managers)
		{
			beds.POST("/:id/assign", bc.AssignBed)
			beds.POST("/:id/release", bc.ReleaseBed)
			beds.DELETE("/:id", bc.RemoveBed)
		}

		api.POST("/onboarding", managers, obc.Onboard)

		students := api.Group("/students")
		{
			students.GET("", sc.GetStudents)
			students.GET("/:id", sc.GetStudent)
			students.PATCH("/:id", sc.UpdateStudent)
			students.POST("/:id/vacate", managers, sc.Vacate)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", kc.GetBookings)
			bookings.GET("/:id", kc.GetBooking)
			bookings.POST("/:id/payments", kc.RecordPayment)
		}
		api.PATCH("/payments/:id", kc.UpdatePayment)

		complaints := api.Group("/complaints")
		{
			complaints.GET("", cc.GetComplaints)
			complaints.POST("", cc.FileComplaint)
			complaints.GET("/:id", cc.GetComplaint)
			complaints.PATCH("/:id/status", cc.UpdateStatus)
		}

		occupancy := api.Group("/occupancy")
		{
			occupancy.GET("", occ.GetOverall)
			occupancy.GET("/properties", occ.GetByProperty)
		}
		api.GET("/reports/occupancy.xlsx", occ.DownloadWorkbook)

		users := api.Group("/users", middleware.RequireRole(models.RoleAdmin))
		{
			users.GET("", uc.GetUsers)
			users.POST("", uc.CreateUser)
		}
	}

	return r
}
