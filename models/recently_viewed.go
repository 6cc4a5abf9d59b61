package models

import "time"

// RecentlyViewedLimit caps the view history kept per user. Writes prune
// everything outside the newest rows, so a read never sees more than this.
const RecentlyViewedLimit = 50

type RecentlyViewed struct {
	UserID   string    `json:"user_id" gorm:"primarykey"`
	RecipeID int       `json:"recipe_id" gorm:"primarykey"`
	ViewedAt time.Time `json:"viewed_at" gorm:"not null"`
}

func (RecentlyViewed) TableName() string {
	return "reno_user_recently_viewed"
}
