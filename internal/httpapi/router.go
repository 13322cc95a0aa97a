package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"attendance/internal/auth"
)

// Routes mounts the API under /api. Role checks happen at the group level:
// admin endpoints require the admin role, faculty endpoints accept faculty or
// admin, student endpoints accept any authenticated user.
func (h *Handler) Routes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Attendance System API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.POST("/auth/register", h.RegisterUser)
	api.POST("/auth/login", h.Login)

	admin := api.Group("/admin", auth.RequireRole(h.cfg.JWTSigningKey, h.cfg.JWTIssuer, auth.RoleAdmin))
	admin.GET("/pending-faculty", h.PendingFaculty)
	admin.PUT("/approve-faculty/:id", h.ApproveFaculty)
	admin.DELETE("/delete-faculty/:id", h.DeleteFaculty)
	admin.GET("/daily-stats", h.DailyStats)
	admin.GET("/monthly-stats", h.MonthlyStats)
	admin.GET("/students", h.ListStudents)
	admin.GET("/attendance-log", h.AttendanceLog)
	admin.GET("/section-attendance", h.SectionAttendance)

	faculty := api.Group("/faculty", auth.RequireRole(h.cfg.JWTSigningKey, h.cfg.JWTIssuer, auth.RoleFaculty, auth.RoleAdmin))
	faculty.POST("/submit-attendance", h.SubmitAttendance)
	faculty.POST("/upload-attendance-csv", h.UploadAttendanceCSV)
	faculty.POST("/upload-attendance-file", h.UploadAttendanceFile)
	faculty.POST("/add-students", h.AddStudents)
	faculty.GET("/attendance-history", h.AttendanceHistory)

	student := api.Group("/student", auth.RequireRole(h.cfg.JWTSigningKey, h.cfg.JWTIssuer, auth.RoleStudent, auth.RoleFaculty, auth.RoleAdmin))
	student.GET("/attendance/:rollNumber", h.StudentAttendance)
	student.GET("/monthly-average/:rollNumber", h.StudentMonthlyAverage)
	student.GET("/info/:rollNumber", h.StudentInfo)
}
