package routes

import (
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/controllers"
	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/academyadmin/academy-api/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsPath exposes the Prometheus registry
const MetricsPath = "/metrics"

// Route is one entry of the route table
type Route struct {
	Method       string
	Path         string
	RequiresAuth bool
	Handler      gin.HandlerFunc
}

// Controllers groups the handlers served under the API prefix
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Student *controllers.StudentController
	Academy *controllers.AcademyController
	Course  *controllers.CourseController
	Enroll  *controllers.EnrollController
}

// Table lists every API route relative to the API prefix
func Table(h *Controllers) []Route {
	return []Route{
		// Administrators
		{http.MethodPost, "/users", false, h.User.CreateUser},
		{http.MethodGet, "/users", true, h.User.ListUsers},
		{http.MethodGet, "/users/search", true, h.User.SearchUser},
		{http.MethodGet, "/users/:id", true, h.User.GetUser},
		{http.MethodPut, "/users/:id", true, h.User.UpdateUser},
		{http.MethodDelete, "/users/:id", true, h.User.DeleteUser},

		// Students
		{http.MethodGet, "/students", true, h.Student.ListStudents},
		{http.MethodPost, "/students", true, h.Student.CreateStudent},
		{http.MethodGet, "/students/search", true, h.Student.SearchStudents},
		{http.MethodGet, "/students/:id", true, h.Student.GetStudent},
		{http.MethodPut, "/students/:id", true, h.Student.UpdateStudent},
		{http.MethodDelete, "/students/:id", true, h.Student.DeleteStudent},
		{http.MethodGet, "/students/:id/enrolls", true, h.Student.ListStudentEnrolls},
		{http.MethodPost, "/students/:id/enroll", true, h.Student.EnrollStudent},

		// Academies
		{http.MethodGet, "/academies", true, h.Academy.ListAcademies},
		{http.MethodPost, "/academies", true, h.Academy.CreateAcademy},
		{http.MethodGet, "/academies/:id", true, h.Academy.GetAcademy},
		{http.MethodPut, "/academies/:id", true, h.Academy.UpdateAcademy},
		{http.MethodDelete, "/academies/:id", true, h.Academy.DeleteAcademy},

		// Courses
		{http.MethodGet, "/courses", true, h.Course.ListCourses},
		{http.MethodPost, "/courses", true, h.Course.CreateCourse},
		{http.MethodGet, "/courses/:id", true, h.Course.GetCourse},
		{http.MethodPut, "/courses/:id", true, h.Course.UpdateCourse},
		{http.MethodDelete, "/courses/:id", true, h.Course.DeleteCourse},
		{http.MethodGet, "/courses/:id/enrolls", true, h.Course.ListCourseEnrolls},

		// Enrolls; search is the public certificate lookup
		{http.MethodGet, "/enrolls", true, h.Enroll.ListEnrolls},
		{http.MethodPost, "/enrolls", true, h.Enroll.CreateEnroll},
		{http.MethodGet, "/enrolls/search", false, h.Enroll.SearchEnrolls},
		{http.MethodGet, "/enrolls/:id", true, h.Enroll.GetEnroll},
		{http.MethodPut, "/enrolls/:id", true, h.Enroll.UpdateEnroll},
		{http.MethodPatch, "/enrolls/:id", true, h.Enroll.UpdateEnroll},
		{http.MethodDelete, "/enrolls/:id", true, h.Enroll.DeleteEnroll},

		// Session
		{http.MethodPost, "/auth", false, h.Auth.Login},
		{http.MethodGet, "/auth", true, h.Auth.Me},
		{http.MethodPost, "/auth/logout", true, h.Auth.Logout},
	}
}

// SetupRouter registers the route table under prefix, plus the health and
// metrics endpoints and the 404 fallback
func SetupRouter(router *gin.Engine, prefix string, h *Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group(prefix)
	requireAuth := authMiddleware.JWTAuth()

	for _, r := range Table(h) {
		if r.RequiresAuth {
			api.Handle(r.Method, r.Path, requireAuth, r.Handler)
			continue
		}
		api.Handle(r.Method, r.Path, r.Handler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})
	router.GET(MetricsPath, gin.WrapH(metrics.Handler()))

	router.NoRoute(middleware.NotFoundHandler)
}
