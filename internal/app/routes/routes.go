package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sandesh/institutecrm/internal/app/controllers"
	"github.com/sandesh/institutecrm/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	inquiryController *controllers.InquiryController,
	batchController *controllers.BatchController,
	studentController *controllers.StudentController,
	feeController *controllers.FeeController,
	attendanceController *controllers.AttendanceController,
	outreachController *controllers.OutreachController,
	userController *controllers.UserController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/token", authController.Login)
		auth.POST("/token/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		inquiries := authenticated.Group("/inquiries")
		{
			inquiries.GET("", inquiryController.ListInquiries)
			inquiries.POST("", inquiryController.CreateInquiry)
			inquiries.GET("/:id", inquiryController.GetInquiry)
			inquiries.PUT("/:id", inquiryController.UpdateInquiry)
			inquiries.DELETE("/:id", inquiryController.DeleteInquiry)
			inquiries.POST("/:id/add_followup", inquiryController.AddFollowUp)
		}

		batches := authenticated.Group("/batches")
		{
			batches.GET("", batchController.ListBatches)
			batches.POST("", batchController.CreateBatch)
			batches.GET("/:id", batchController.GetBatch)
			batches.PUT("/:id", batchController.UpdateBatch)
			batches.DELETE("/:id", batchController.DeleteBatch)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.GET("/:id", studentController.GetStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		fees := authenticated.Group("/fees")
		{
			fees.GET("", feeController.ListFees)
			fees.POST("", feeController.CreateFee)
			fees.GET("/:id", feeController.GetFee)
			fees.PUT("/:id", feeController.UpdateFee)
			fees.DELETE("/:id", feeController.DeleteFee)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.GET("", attendanceController.ListAttendance)
			attendance.POST("", attendanceController.CreateAttendance)
			attendance.GET("/:id", attendanceController.GetAttendance)
			attendance.PUT("/:id", attendanceController.UpdateAttendance)
			attendance.DELETE("/:id", attendanceController.DeleteAttendance)
		}

		outreach := authenticated.Group("/outreach")
		{
			outreach.GET("", outreachController.ListOutreach)
			outreach.POST("", outreachController.CreateOutreach)
			outreach.GET("/:id", outreachController.GetOutreach)
			outreach.PUT("/:id", outreachController.UpdateOutreach)
			outreach.DELETE("/:id", outreachController.DeleteOutreach)
		}

		users := authenticated.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.POST("", userController.CreateUser)
			users.GET("/me", userController.Me)
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		authenticated.GET("/dashboard/stats", dashboardController.Stats)
	}
}
