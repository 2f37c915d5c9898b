package models

import "time"

// BarberProfile holds the public, bookable side of a barber account.
// DurationMin and Price are the values copied onto each booking at
// creation time, so later edits never rewrite existing bookings.
type BarberProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio    string `gorm:"size:500" json:"bio"`
	Campus string `gorm:"size:100" json:"campus"`

	DurationMin int     `gorm:"default:30" json:"duration_min"`
	Price       float64 `json:"price"`

	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	AvgRating   float64 `gorm:"default:0" json:"avg_rating"`
	RatingCount int     `gorm:"default:0" json:"rating_count"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
