package services

import (
	"testing"
	"time"

	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHitsTest(t *testing.T, code string) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	database.DB = db
	database.DB.AutoMigrate(&models.Link{}, &models.LinkStats{})

	database.DB.Where("code = ?", code).Delete(&models.LinkStats{})
	assert.NoError(t, database.DB.Create(&models.LinkStats{
		Code:      code,
		Active:    true,
		CreatedAt: time.Now(),
	}).Error)
}

func TestHitCounter_PersistsIncrements(t *testing.T) {
	setupHitsTest(t, "hitc1")

	h := NewHitCounter(2, 16)
	for i := 0; i < 10; i++ {
		assert.True(t, h.Record("hitc1"))
	}
	// Stop drains the queue before returning
	h.Stop()

	var stats models.LinkStats
	assert.NoError(t, database.DB.Where("code = ?", "hitc1").First(&stats).Error)
	assert.Equal(t, 10, stats.Hits)
}

func TestHitCounter_DropsWhenFull(t *testing.T) {
	setupHitsTest(t, "hitc2")

	// No workers: nothing drains the queue, so the bound is observable
	h := NewHitCounter(0, 2)
	assert.True(t, h.Record("hitc2"))
	assert.True(t, h.Record("hitc2"))
	assert.False(t, h.Record("hitc2"))
	h.Stop()
}

func TestHitCounter_UnknownCodeIsSwallowed(t *testing.T) {
	setupHitsTest(t, "hitc3")

	h := NewHitCounter(1, 4)
	assert.True(t, h.Record("no-such-code"))
	h.Stop()

	var stats models.LinkStats
	assert.NoError(t, database.DB.Where("code = ?", "hitc3").First(&stats).Error)
	assert.Equal(t, 0, stats.Hits)
}
