package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/middleware"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/Tanmandal/Short-URL/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLogin_Success(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	link := seedLink(t, "log1", "https://example.com", "hunter2")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/login", `{"url_code":"log1","url_pass":"hunter2"}`)

	Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "bearer", response.TokenType)

	// Token is bound to the internal id, not the code
	claims, err := utils.ValidateToken(response.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, link.ID, claims.LinkID)
}

func TestLogin_WrongPassword(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "log2", "https://example.com", "hunter2")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/login", `{"url_code":"log2","url_pass":"wrong"}`)

	Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnprotectedCode(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "log3", "https://example.com", "")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/login", `{"url_code":"log3","url_pass":"whatever"}`)

	Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_UnknownCode(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/login", `{"url_code":"nothere","url_pass":"hunter2"}`)

	Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword_Success(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "cp1", "https://example.com", "hunter2")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/change-password", `{"url_code":"cp1","old_url_pass":"hunter2","new_url_pass":"hunter3"}`)
	c.Set(middleware.CtxCode, "cp1")

	ChangePassword(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var link models.Link
	database.DB.Where("code = ?", "cp1").First(&link)
	assert.True(t, utils.CheckPassword("hunter3", link.PasswordHash))
	assert.False(t, utils.CheckPassword("hunter2", link.PasswordHash))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "cp2", "https://example.com", "hunter2")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/change-password", `{"url_code":"cp2","old_url_pass":"wrong","new_url_pass":"hunter3"}`)
	c.Set(middleware.CtxCode, "cp2")

	ChangePassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword_SamePassword(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "cp3", "https://example.com", "hunter2")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/change-password", `{"url_code":"cp3","old_url_pass":"hunter2","new_url_pass":"hunter2"}`)
	c.Set(middleware.CtxCode, "cp3")

	ChangePassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePassword_CodeMismatch(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "cp4", "https://example.com", "hunter2")
	seedLink(t, "cp5", "https://example.com", "hunter2")

	// Token resolves to cp4 but the body names cp5
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/change-password", `{"url_code":"cp5","old_url_pass":"hunter2","new_url_pass":"hunter3"}`)
	c.Set(middleware.CtxCode, "cp4")

	ChangePassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshToken_UnprotectedCode(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "rf1", "https://example.com", "")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/refresh", nil)
	c.Set(middleware.CtxCode, "rf1")

	RefreshToken(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefreshToken_Success(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	link := seedLink(t, "rf2", "https://example.com", "hunter2")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/refresh", nil)
	c.Set(middleware.CtxCode, "rf2")

	RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	claims, err := utils.ValidateToken(response.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, link.ID, claims.LinkID)
}

func TestValidateToken_StatsGone(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	seedLink(t, "vt1", "https://example.com", "hunter2")
	database.DB.Where("code = ?", "vt1").Delete(&models.LinkStats{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/validate", nil)
	c.Set(middleware.CtxCode, "vt1")

	ValidateToken(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
