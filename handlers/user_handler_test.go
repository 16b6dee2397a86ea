package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/mocks"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

func setupUsers(r *gin.Engine, svc *mocks.UserServiceMock) {
	h := NewUserHandler(svc, "test-secret", time.Minute)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.PATCH("/users/:id/password", h.ChangePassword)
	r.DELETE("/users/:id", h.DeleteUser)
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	req := models.RegisterRequest{Name: "amy", Email: "a@b.c", Password: "123456"}
	svc.On("Register", mock.Anything, req).Return(&models.User{Name: "Amy", Email: "a@b.c"}, nil)

	w := postJSON(r, "/auth/register", req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@b.c"`)
}

func TestRegister_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	req := models.RegisterRequest{Name: "amy", Email: "a@b.c", Password: "123456"}
	svc.On("Register", mock.Anything, req).Return(nil, core.ErrConflict)

	w := postJSON(r, "/auth/register", req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	body := models.LoginRequest{Email: "x@y.z", Password: "oops"}
	svc.On("Login", mock.Anything, body, "test-secret", time.Minute).
		Return("", core.ErrInvalidCredentials)

	w := postJSON(r, "/auth/login", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_LockedOut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	body := models.LoginRequest{Email: "x@y.z", Password: "right"}
	svc.On("Login", mock.Anything, body, "test-secret", time.Minute).
		Return("", &core.LockedOutError{RemainingMinutes: 20})

	w := postJSON(r, "/auth/login", body)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"remaining_minutes":20`)
}

func TestLogin_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	body := models.LoginRequest{Email: "x@y.z", Password: "right"}
	svc.On("Login", mock.Anything, body, "test-secret", time.Minute).Return("tok123", nil)

	w := postJSON(r, "/auth/login", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok123"`)
}

func TestGetUser_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	svc.On("GetUser", mock.Anything, "deadbeef").Return(nil, core.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/deadbeef", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsers_BindsQueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	// the handler hands the raw query straight to the service
	expected := models.ListQuery{
		Search: "amy", SortField: "name", SortOrder: "desc",
		PageNumber: "2", PageSize: "5",
	}
	svc.On("ListUsers", mock.Anything, expected).
		Return(&core.QueryResult[models.PublicUser]{Data: []models.PublicUser{}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/users?search=amy&sortField=name&sortOrder=desc&page_number=2&page_size=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListUsers_PageSizeZero_BadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	svc.On("ListUsers", mock.Anything, mock.Anything).
		Return(nil, core.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users?page_number=1&page_size=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePassword_WrongOld_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	body := models.ChangePasswordRequest{OldPassword: "bad", NewPassword: "newer1"}
	svc.On("ChangePassword", mock.Anything, "id1", body).Return(core.ErrInvalidCredentials)

	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/id1/password", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteUser_NoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.UserServiceMock)
	setupUsers(r, svc)

	svc.On("DeleteUser", mock.Anything, "id1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/users/id1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
