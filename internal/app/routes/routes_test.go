package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/academyadmin/academy-api/internal/app/controllers"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the real stack over a mock pool with no expectations,
// so any request that reaches the database fails the test.
func newTestRouter(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	lgr := zerolog.Nop()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", Expiration: time.Hour})
	svcs := services.NewServices(repositories.NewRepositories(mock), jwtService, lgr)

	h := &Controllers{
		Auth:    controllers.NewAuthController(svcs.AuthService, false, lgr),
		User:    controllers.NewUserController(svcs.UserService),
		Student: controllers.NewStudentController(svcs.StudentService),
		Academy: controllers.NewAcademyController(svcs.AcademyService),
		Course:  controllers.NewCourseController(svcs.CourseService),
		Enroll:  controllers.NewEnrollController(svcs.EnrollService),
	}

	require.NoError(t, middleware.RegisterValidators())
	router := gin.New()
	SetupRouter(router, "/api/v1", h, middleware.NewAuthMiddleware(jwtService, lgr))
	return router, mock
}

func concretePath(path string) string {
	return strings.ReplaceAll(path, ":id", "00000000-0000-4000-8000-000000000000")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, mock := newTestRouter(t)
	h := &Controllers{}

	for _, r := range Table(h) {
		if !r.RequiresAuth {
			continue
		}
		t.Run(r.Method+" "+r.Path, func(t *testing.T) {
			req := httptest.NewRequest(r.Method, "/api/v1"+concretePath(r.Path), strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Denied Access")
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicRoutes(t *testing.T) {
	var public []string
	for _, r := range Table(&Controllers{}) {
		if !r.RequiresAuth {
			public = append(public, r.Method+" "+r.Path)
		}
	}
	assert.ElementsMatch(t, []string{"POST /users", "GET /enrolls/search", "POST /auth"}, public)
}

func TestPublicRoutesSkipAuth(t *testing.T) {
	router, mock := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "enroll search without keys",
			method:     http.MethodGet,
			path:       "/api/v1/enrolls/search",
			wantStatus: http.StatusBadRequest,
			wantBody:   "lastname or dni is required",
		},
		{
			name:       "login with empty body",
			method:     http.MethodPost,
			path:       "/api/v1/auth",
			body:       "{}",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"param":"email"`,
		},
		{
			name:       "create user with empty body",
			method:     http.MethodPost,
			path:       "/api/v1/users",
			body:       "{}",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"param":"password"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollSearch_PublicFieldsOnly(t *testing.T) {
	router, mock := newTestRouter(t)
	now := time.Now()
	dni := "30111222"

	mock.ExpectQuery(`SELECT e.id, .* FROM enrolls e`).
		WithArgs("turing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "student_id", "course_id", "emitted_at", "finished_at", "bachelor", "created_at",
			"course_name", "description", "hours", "name", "last_name", "dni",
		}).AddRow("e1", "s1", "c1", now, &now, true, now, "Go", "Backend", 40, "Alan", "Turing", &dni))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/enrolls/search?lastname=turing", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var certs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &certs))
	require.Len(t, certs, 1)

	student := certs[0]["student"].(map[string]interface{})
	user := student["user"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"name": "Alan", "lastname": "Turing", "dni": dni}, user)
	assert.NotContains(t, student, "partner")
	assert.NotContains(t, w.Body.String(), "email")

	course := certs[0]["course"].(map[string]interface{})
	assert.Equal(t, "Go", course["name"])
	assert.NotContains(t, course, "academy")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthMetricsAndFallback(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string][]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body["errors"], 1)
	assert.Equal(t, "error 404 not found", body["errors"][0]["msg"])
}
