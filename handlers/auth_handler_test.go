package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Lewis3ai/INFOA1test/mocks"
	"github.com/Lewis3ai/INFOA1test/models"
	"github.com/Lewis3ai/INFOA1test/services"
)

const testCookie = "access_token"

func authRouter(svc *mocks.AuthServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc, testCookie, time.Hour, false)
	r := gin.New()
	r.GET("/", h.Index)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	return r
}

func TestAuthHandler_Index(t *testing.T) {
	r := authRouter(new(mocks.AuthServiceMock))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Poke API")
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	svc.On("Signup", mock.AnythingOfType("models.SignupRequest")).
		Return(&models.User{ID: 7, Username: "ash"}, nil)
	r := authRouter(svc)

	body := `{"username":"ash","email":"ash@x.com","password":"pikachu1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"User 7 - ash created!"}`, w.Body.String())
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	svc.On("Signup", mock.AnythingOfType("models.SignupRequest")).
		Return(nil, services.ErrDuplicateUser)
	r := authRouter(svc)

	body := `{"username":"ash","email":"ash@x.com","password":"pikachu1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestAuthHandler_Signup_BadPayload(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	r := authRouter(svc)

	// Password below the minimum length never reaches the service.
	body := `{"username":"ash","email":"ash@x.com","password":"abc"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Signup", mock.Anything)
}

func TestAuthHandler_Login_SetsCookieAndBody(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	svc.On("Login", models.LoginRequest{Username: "ash", Password: "pikachu1"}).
		Return("signed.jwt.token", nil)
	r := authRouter(svc)

	body := `{"username":"ash","password":"pikachu1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"signed.jwt.token"}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_SecureCookieOutsideDev(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	svc.On("Login", mock.AnythingOfType("models.LoginRequest")).
		Return("signed.jwt.token", nil)

	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc, testCookie, time.Hour, true)
	r := gin.New()
	r.POST("/login", h.Login)

	body := `{"username":"ash","password":"pikachu1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	svc.On("Login", mock.AnythingOfType("models.LoginRequest")).
		Return("", services.ErrInvalidCredentials)
	r := authRouter(svc)

	body := `{"username":"ash","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	r := authRouter(new(mocks.AuthServiceMock))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
