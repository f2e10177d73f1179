package handlers

import (
	"net/http"
	"time"

	"github.com/Tanmandal/Short-URL/internal/config"
	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/middleware"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/Tanmandal/Short-URL/internal/services"
	"github.com/Tanmandal/Short-URL/pkg/logger"
	"github.com/Tanmandal/Short-URL/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CreateRequest struct {
	Code     string `json:"url_code" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Password string `json:"url_pass"`
}

type ChangeURLRequest struct {
	NewURL string `json:"new_url"`
}

// authorizedCode returns the short code resolved by AuthMiddleware.
func authorizedCode(c *gin.Context) string {
	code, _ := c.Get(middleware.CtxCode)
	if code == nil {
		return ""
	}
	return code.(string)
}

// CreateShortURL handles POST /create
func CreateShortURL(c *gin.Context) {
	var input CreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if !utils.ValidCode(input.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL code"})
		return
	}

	if !utils.ValidPassword(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 3-20 characters"})
		return
	}

	url := utils.FormatURL(input.URL)
	if utils.IsBlacklisted(url, config.AppConfig.BlacklistEntries()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is blacklisted"})
		return
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create short URL"})
		return
	}

	link := models.Link{
		ID:           utils.GenerateID(),
		Code:         input.Code,
		URL:          url,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	// The unique index on code is what closes the race between concurrent
	// creates of the same code; one insert wins, the other errors here.
	if err := database.DB.Create(&link).Error; err != nil {
		var count int64
		database.DB.Model(&models.Link{}).Where("code = ?", input.Code).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "URL code already exists"})
			return
		}
		logger.Error().Err(err).Str("code", input.Code).Msg("Failed to insert link")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create short URL"})
		return
	}

	stats := models.LinkStats{
		Code:      link.Code,
		Hits:      0,
		Active:    true,
		CreatedAt: link.CreatedAt,
	}

	// Mapping first, stats second. If the stats insert fails the link is
	// rolled back best-effort so no half-created pair survives.
	if err := database.DB.Create(&stats).Error; err != nil {
		logger.Error().Err(err).Str("code", link.Code).Msg("Failed to insert link stats, rolling back link")
		database.DB.Where("code = ?", link.Code).Delete(&models.Link{})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create short URL"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "URL created",
		"data":      link,
		"short_url": config.AppConfig.BaseURL + "/" + link.Code,
	})
}

// RedirectShortURL handles GET /:code and GET /:code/*subpath. Everything
// after the first slash past the code is appended verbatim to the stored
// destination, so a short code can act as a prefix for deep links.
func RedirectShortURL(c *gin.Context) {
	code := c.Param("code")
	subpath := c.Param("subpath")

	link, err := services.ResolveLink(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	if link.Protected() {
		var stats models.LinkStats
		if err := database.DB.Where("code = ?", code).First(&stats).Error; err != nil {
			// A mapping whose stats record is gone is never served.
			c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
			return
		}
		if !stats.Active {
			c.JSON(http.StatusLocked, gin.H{"error": "Short URL is paused"})
			return
		}
		services.RecordHit(code)
	}

	c.Redirect(http.StatusFound, link.URL+subpath)
}

// ChangeURL handles PUT /change-url. The new destination comes from the
// new_url query parameter or a JSON body.
func ChangeURL(c *gin.Context) {
	code := authorizedCode(c)

	newURL := c.Query("new_url")
	if newURL == "" {
		var input ChangeURLRequest
		if err := c.ShouldBindJSON(&input); err == nil {
			newURL = input.NewURL
		}
	}
	if newURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_url is required"})
		return
	}

	var link models.Link
	if err := database.DB.Where("code = ?", code).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	url := utils.FormatURL(newURL)
	if utils.IsBlacklisted(url, config.AppConfig.BlacklistEntries()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is blacklisted"})
		return
	}

	if err := database.DB.Model(&link).Update("url", url).Error; err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Failed to update destination")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update URL"})
		return
	}

	services.InvalidateLink(code)

	c.JSON(http.StatusOK, gin.H{
		"message": "URL updated",
		"data":    gin.H{"url_code": code, "url": url},
	})
}

// DeleteShortURL handles DELETE /delete. Mapping goes first, stats second:
// a crash in between leaves only a garbage stats row that nothing treats as
// authoritative.
func DeleteShortURL(c *gin.Context) {
	code := authorizedCode(c)

	result := database.DB.Where("code = ?", code).Delete(&models.Link{})
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("code", code).Msg("Failed to delete link")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete short URL"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	if err := database.DB.Where("code = ?", code).Delete(&models.LinkStats{}).Error; err != nil {
		logger.Warn().Err(err).Str("code", code).Msg("Orphaned stats row left behind")
	}

	services.InvalidateLink(code)

	c.JSON(http.StatusOK, gin.H{"message": "URL deleted"})
}

func setActive(c *gin.Context, active bool, message string) {
	code := authorizedCode(c)

	var stats models.LinkStats
	if err := database.DB.Where("code = ?", code).First(&stats).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	if err := database.DB.Model(&stats).Update("active", active).Error; err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Failed to update active state")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update URL state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "data": gin.H{"url_code": code, "url_state": active}})
}

// PauseShortURL handles POST /pause. Idempotent.
func PauseShortURL(c *gin.Context) {
	setActive(c, false, "URL paused")
}

// ResumeShortURL handles POST /resume. Idempotent.
func ResumeShortURL(c *gin.Context) {
	setActive(c, true, "URL resumed")
}

// ResetHits handles POST /reset
func ResetHits(c *gin.Context) {
	code := authorizedCode(c)

	var stats models.LinkStats
	if err := database.DB.Where("code = ?", code).First(&stats).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	if err := database.DB.Model(&stats).Update("hits", 0).Error; err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Failed to reset hits")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset hit count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hit count reset", "data": gin.H{"url_code": code, "url_hits": 0}})
}

// GetDetails handles GET /details. Merged stats + destination; the internal
// id stays internal.
func GetDetails(c *gin.Context) {
	code := authorizedCode(c)

	var stats models.LinkStats
	if err := database.DB.Where("code = ?", code).First(&stats).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	var link models.Link
	if err := database.DB.Where("code = ?", code).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Short URL not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "URL details",
		"data": gin.H{
			"url_hits":       stats.Hits,
			"url_created_at": stats.CreatedAt,
			"url_state":      stats.Active,
			"url":            link.URL,
		},
	})
}
