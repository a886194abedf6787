package profile

import "time"

// ConnectionProfile is a saved store connection. The consumer secret is
// never stored in the clear; SecretSealed holds the secretbox ciphertext.
type ConnectionProfile struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	SiteURL      string `gorm:"not null"`
	ConsumerKey  string `gorm:"not null"`
	SecretSealed []byte `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
