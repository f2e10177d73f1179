package services

import (
	"time"

	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/Tanmandal/Short-URL/pkg/logger"
)

const linkCacheTTL = time.Hour

// cachedLink is the slice of a mapping record the redirect path needs.
type cachedLink struct {
	URL          string `json:"url"`
	PasswordHash string `json:"password_hash"`
}

func linkCacheKey(code string) string {
	return "link:" + code
}

// ResolveLink loads the mapping record for code, consulting the redis cache
// first when available. The pause state is deliberately not cached: protected
// redirects always read it live from the stats record.
func ResolveLink(code string) (*models.Link, error) {
	var cached cachedLink
	if err := database.CacheGet(linkCacheKey(code), &cached); err == nil {
		return &models.Link{Code: code, URL: cached.URL, PasswordHash: cached.PasswordHash}, nil
	}

	var link models.Link
	if err := database.DB.Where("code = ?", code).First(&link).Error; err != nil {
		return nil, err
	}

	if err := database.CacheSet(linkCacheKey(code), cachedLink{URL: link.URL, PasswordHash: link.PasswordHash}, linkCacheTTL); err != nil {
		logger.Debug().Err(err).Str("code", code).Msg("link cache set failed")
	}

	return &link, nil
}

// InvalidateLink drops the cached mapping for code. Called by every mutation
// that changes what a redirect would serve.
func InvalidateLink(code string) {
	if err := database.CacheInvalidate(linkCacheKey(code)); err != nil {
		logger.Debug().Err(err).Str("code", code).Msg("link cache invalidate failed")
	}
}
