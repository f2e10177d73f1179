package models

import (
	"time"
)

// Link is the mapping record: one per short code. ID is the store-assigned
// internal identifier embedded in access tokens; Code is the public key and
// is immutable once created. An empty PasswordHash means the code is
// unprotected.
type Link struct {
	ID           string    `gorm:"primaryKey" json:"-"`
	Code         string    `gorm:"uniqueIndex;not null" json:"url_code"`
	URL          string    `gorm:"not null" json:"url"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Protected reports whether redirects for this link are password-gated.
func (l *Link) Protected() bool {
	return l.PasswordHash != ""
}

// LinkStats is the stats record, 1:1 with Link on Code. It is created and
// deleted together with its Link; an orphaned LinkStats row left behind by a
// crash mid-delete is garbage, never authoritative on its own.
type LinkStats struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Code      string    `gorm:"uniqueIndex;not null" json:"url_code"`
	Hits      int       `gorm:"default:0" json:"url_hits"`
	Active    bool      `gorm:"default:true" json:"url_state"`
	CreatedAt time.Time `json:"url_created_at"`
}
