package repositories

import (
	"time"

	"github.com/sasaki-csngrp/myreno/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecentlyViewedRepository interface {
	RecordView(userID string, recipeID int) error
	GetRecentlyViewed(userID string, limit int) ([]models.EnrichedRecipe, error)
}

type recentlyViewedRepository struct {
	db *gorm.DB
}

func NewRecentlyViewedRepository(db *gorm.DB) RecentlyViewedRepository {
	return &recentlyViewedRepository{db: db}
}

// RecordView upserts the view timestamp, then prunes everything outside the
// user's newest RecentlyViewedLimit rows. The set can reach 51 rows between
// the insert and the prune, but never past this call.
func (r *recentlyViewedRepository) RecordView(userID string, recipeID int) error {
	view := models.RecentlyViewed{
		UserID:   userID,
		RecipeID: recipeID,
		ViewedAt: time.Now(),
	}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": view.ViewedAt}),
	}).Create(&view).Error; err != nil {
		return err
	}

	return r.db.Exec(`
		DELETE FROM reno_user_recently_viewed
		WHERE user_id = ? AND recipe_id NOT IN (
			SELECT recipe_id FROM reno_user_recently_viewed
			WHERE user_id = ?
			ORDER BY viewed_at DESC
			LIMIT ?
		)`, userID, userID, models.RecentlyViewedLimit).Error
}

func (r *recentlyViewedRepository) GetRecentlyViewed(userID string, limit int) ([]models.EnrichedRecipe, error) {
	query := `SELECT
	r.recipe_id,
	r.title,
	r.image_url,
	r.tsukurepo_count,
	r.is_main_dish,
	r.is_sub_dish,
	r.tag,
	COALESCE(p.rank, 0) AS rank,
	p.comment,
	EXISTS (
		SELECT 1 FROM reno_user_folders f
		WHERE f.user_id = ?
			AND ' ' || COALESCE(f.id_of_recipes, '') || ' ' LIKE '% ' || r.recipe_id || ' %'
	) AS is_in_folder
FROM reno_user_recently_viewed rv
INNER JOIN reno_recipes r ON r.recipe_id = rv.recipe_id
LEFT JOIN reno_user_recipe_preferences p
	ON p.recipe_id = r.recipe_id AND p.user_id = ?
WHERE rv.user_id = ?
ORDER BY rv.viewed_at DESC
LIMIT ?`

	var recipes []models.EnrichedRecipe
	if err := r.db.Raw(query, userID, userID, userID, limit).Scan(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
