package repositories

import (
	"strings"

	"github.com/sasaki-csngrp/myreno/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository interface {
	UpsertRank(userID string, recipeID, rank int) error
	UpsertComment(userID string, recipeID int, comment string) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

// UpsertRank writes the rank in a single statement; an existing row keeps its
// comment untouched.
func (r *preferenceRepository) UpsertRank(userID string, recipeID, rank int) error {
	pref := models.UserRecipePreference{
		UserID:   userID,
		RecipeID: recipeID,
		Rank:     rank,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"rank": rank}),
	}).Create(&pref).Error
}

// UpsertComment trims the comment and stores NULL for an empty one, keeping
// an existing rank untouched. The row is never deleted.
func (r *preferenceRepository) UpsertComment(userID string, recipeID int, comment string) error {
	var stored *string
	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		stored = &trimmed
	}
	pref := models.UserRecipePreference{
		UserID:   userID,
		RecipeID: recipeID,
		Rank:     models.RankNone,
		Comment:  stored,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"comment": stored}),
	}).Create(&pref).Error
}
