package handlers

import (
	"net/http"

	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/Tanmandal/Short-URL/internal/services"
	"github.com/Tanmandal/Short-URL/pkg/logger"
	"github.com/Tanmandal/Short-URL/pkg/utils"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Code     string `json:"url_code" binding:"required"`
	Password string `json:"url_pass" binding:"required"`
}

type ChangePasswordRequest struct {
	Code        string `json:"url_code" binding:"required"`
	OldPassword string `json:"old_url_pass" binding:"required"`
	NewPassword string `json:"new_url_pass"`
}

// Login handles POST /login. On success the issued token is bound to the
// link's internal id, not the code.
func Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var link models.Link
	if err := database.DB.Where("code = ?", input.Code).First(&link).Error; err != nil {
		logger.Warn().Str("code", input.Code).Msg("Login failed: code not found")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !link.Protected() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This URL code has no password"})
		return
	}

	if !utils.CheckPassword(input.Password, link.PasswordHash) {
		logger.Warn().Str("code", input.Code).Msg("Login failed: invalid password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(link.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// ChangePassword handles POST /change-password
func ChangePassword(c *gin.Context) {
	var input ChangePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	code := authorizedCode(c)
	if input.Code != code {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token does not match URL code"})
		return
	}

	if input.OldPassword == input.NewPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be different"})
		return
	}

	if !utils.ValidPassword(input.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 3-20 characters"})
		return
	}

	var link models.Link
	if err := database.DB.Where("code = ?", code).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	if !utils.CheckPassword(input.OldPassword, link.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	passwordHash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	if err := database.DB.Model(&link).Update("password_hash", passwordHash).Error; err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Failed to update password hash")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	services.InvalidateLink(code)

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// ValidateToken handles GET /validate
func ValidateToken(c *gin.Context) {
	code := authorizedCode(c)

	var stats models.LinkStats
	if err := database.DB.Where("code = ?", code).First(&stats).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid", "data": gin.H{"url_code": code}})
}

// RefreshToken handles POST /refresh. Only password-protected codes have
// tokens worth refreshing.
func RefreshToken(c *gin.Context) {
	code := authorizedCode(c)

	var link models.Link
	if err := database.DB.Where("code = ?", code).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	if !link.Protected() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	token, err := utils.GenerateToken(link.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
