package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserService struct {
	register     func(name, email, password string) (*models.User, error)
	authenticate func(email, password string) (*models.User, error)
}

func (s *stubUserService) Register(_ context.Context, name, email, password string) (*models.User, error) {
	return s.register(name, email, password)
}

func (s *stubUserService) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	return s.authenticate(email, password)
}

type stubCourseService struct {
	lastInput models.CourseInput
	lastID    string
	lastCtx   context.Context
	course    *models.Course
	courses   []*models.Course
	err       error
}

func (s *stubCourseService) Create(ctx context.Context, input models.CourseInput) (*models.Course, error) {
	s.lastCtx, s.lastInput = ctx, input
	return s.course, s.err
}

func (s *stubCourseService) ListByOwner(ctx context.Context, userID string) ([]*models.Course, error) {
	s.lastCtx, s.lastID = ctx, userID
	return s.courses, s.err
}

func (s *stubCourseService) Update(ctx context.Context, id string, input models.CourseInput) (*models.Course, error) {
	s.lastCtx, s.lastID, s.lastInput = ctx, id, input
	return s.course, s.err
}

func (s *stubCourseService) Delete(ctx context.Context, id string) (*models.Course, error) {
	s.lastCtx, s.lastID = ctx, id
	return s.course, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func serve(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func testJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "coursedesk-test"})
}

func userRouter(svc *stubUserService) (*gin.Engine, *auth.JWTService) {
	jwtService := testJWT()
	ctrl := NewUserController(svc, jwtService)
	r := gin.New()
	r.GET("/users", ctrl.FindUser)
	r.POST("/users", ctrl.RegisterUser)
	return r, jwtService
}

func TestFindUser(t *testing.T) {
	svc := &stubUserService{authenticate: func(email, password string) (*models.User, error) {
		if email == "ana@example.com" && password == "pw" {
			return &models.User{ID: "u1", Name: "Ana", Email: email, Password: "hash"}, nil
		}
		return nil, apperrors.ErrInvalidCredentials
	}}
	r, jwtService := userRouter(svc)

	rec, env := serve(t, r, http.MethodGet, "/users?email=ana@example.com&password=pw", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "u1", user["id"])
	assert.NotContains(t, user, "password")

	claims, err := jwtService.ValidateToken(rec.Header().Get(HeaderAccessToken))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	rec, env = serve(t, r, http.MethodGet, "/users?email=ana@example.com&password=nope", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderAccessToken))
	assert.Equal(t, "AUTH_001", env.Error.Code)

	rec, env = serve(t, r, http.MethodGet, "/users?email=ana@example.com", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestRegisterUser(t *testing.T) {
	svc := &stubUserService{register: func(name, email, password string) (*models.User, error) {
		if email == "taken@example.com" {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return &models.User{ID: "u9", Name: name, Email: email}, nil
	}}
	r, _ := userRouter(svc)

	rec, env := serve(t, r, http.MethodPost, "/users", `{"name":"Ana","email":"ana@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(HeaderAccessToken))

	rec, env = serve(t, r, http.MethodPost, "/users", `{"name":"Ana","email":"taken@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "RES_002", env.Error.Code)

	rec, env = serve(t, r, http.MethodPost, "/users", `{"name":"Ana","email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func courseRouter(svc *stubCourseService) *gin.Engine {
	ctrl := NewCourseController(svc)
	r := gin.New()
	r.POST("/courses", ctrl.CreateCourse)
	r.GET("/courses", ctrl.ListCourses)
	r.PUT("/courses/:id", ctrl.UpdateCourse)
	r.DELETE("/courses/:id", ctrl.DeleteCourse)
	return r
}

func TestCreateCourse(t *testing.T) {
	svc := &stubCourseService{course: &models.Course{ID: "c1", UserID: "u1", Teachers: []string{"A"}, Classes: []string{"101"}}}
	r := courseRouter(svc)

	rec, env := serve(t, r, http.MethodPost, "/courses",
		`{"user_id":"u1","title":"Algebra","teachers":["A"],"classes":["101"],"start_time":"09:00","end_time":"10:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"A"}, svc.lastInput.Teachers)
	assert.Equal(t, "09:00", svc.lastInput.StartTime)

	var course map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, []interface{}{"A"}, course["teachers"])
}

func TestCreateCoursePassesNonArrayThrough(t *testing.T) {
	svc := &stubCourseService{err: apperrors.NewValidationError("teachers must be an array of strings")}
	r := courseRouter(svc)

	rec, env := serve(t, r, http.MethodPost, "/courses", `{"user_id":"u1","teachers":"A","classes":["101"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastInput.Teachers)
	assert.Equal(t, "teachers must be an array of strings", env.Error.Message)
}

func TestCreateCourseMalformedJSON(t *testing.T) {
	r := courseRouter(&stubCourseService{})

	rec, env := serve(t, r, http.MethodPost, "/courses", `{"user_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestListCourses(t *testing.T) {
	svc := &stubCourseService{courses: []*models.Course{}}
	r := courseRouter(svc)

	rec, env := serve(t, r, http.MethodGet, "/courses?user_id=u2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u2", svc.lastID)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, _ = serve(t, r, http.MethodGet, "/courses", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc := &stubCourseService{err: apperrors.NewReferenceError("course not found")}
	r := courseRouter(svc)

	rec, env := serve(t, r, http.MethodPut, "/courses/missing", `{"user_id":"u1","teachers":[],"classes":[]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "missing", svc.lastID)
	assert.Equal(t, "course not found", env.Error.Message)
}

func TestDeleteCourse(t *testing.T) {
	svc := &stubCourseService{course: &models.Course{ID: "c1", Title: "Algebra"}}
	r := courseRouter(svc)

	rec, env := serve(t, r, http.MethodDelete, "/courses/c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", svc.lastID)

	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, "Algebra", course.Title)

	svc.err = apperrors.NewOperationError("delete failed")
	rec, env = serve(t, r, http.MethodDelete, "/courses/c1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SRV_004", env.Error.Code)
}

func TestCourseRequestCarriesPrincipal(t *testing.T) {
	svc := &stubCourseService{courses: []*models.Course{}}
	ctrl := NewCourseController(svc)
	r := gin.New()
	r.GET("/courses", func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), auth.Principal{UserID: "u1"}))
		c.Next()
	}, ctrl.ListCourses)

	rec, _ := serve(t, r, http.MethodGet, "/courses?user_id=u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	p, ok := auth.PrincipalFrom(svc.lastCtx)
	require.True(t, ok)
	assert.Equal(t, "u1", p.UserID)
}
