package repositories

import (
	"github.com/sasaki-csngrp/myreno/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	GetList(userID string, params models.RecipeListParams) (*models.RecipeListResult, error)
	GetListByTitle(userID, term string, params models.RecipeListParams) (*models.RecipeListResult, error)
	GetListByTag(userID, tagName string, params models.RecipeListParams) (*models.RecipeListResult, error)
	GetListByFolder(userID string, params models.RecipeListParams) (*models.RecipeListResult, error)
	GetByID(userID string, recipeID int) (*models.RecipeListResult, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// enrichedColumns joins each recipe with the requesting user's preference row
// and an existence check against the space-delimited folder list. The
// space-padded LIKE matches whole IDs only, so recipe 12 never matches a
// folder holding 123.
const enrichedColumns = `
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
	) AS is_in_folder`

const enrichedJoin = `
FROM reno_recipes r
LEFT JOIN reno_user_recipe_preferences p
	ON p.recipe_id = r.recipe_id AND p.user_id = ?`

// modeWhereClause maps the dish-mode filter onto the two boolean flags.
func modeWhereClause(mode models.SearchMode) string {
	switch mode {
	case models.ModeMainDish:
		return " AND r.is_main_dish = TRUE"
	case models.ModeSubDish:
		return " AND r.is_sub_dish = TRUE"
	case models.ModeOthers:
		return " AND r.is_main_dish = FALSE AND r.is_sub_dish = FALSE"
	default:
		return ""
	}
}

// rankWhereClause filters on the enriched rank. A missing preference row
// counts as rank 0, so it never matches.
func rankWhereClause(rank models.RankFilter) string {
	switch rank {
	case models.RankFilterLoved:
		return " AND COALESCE(p.rank, 0) = 1"
	case models.RankFilterLiked:
		return " AND COALESCE(p.rank, 0) = 2"
	default:
		return ""
	}
}

// orderClause pins the tie-break on recipe_id so pagination is deterministic.
func orderClause(sort models.SortOrder) string {
	dir := "DESC"
	if sort == models.SortAsc {
		dir = "ASC"
	}
	return " ORDER BY r.tsukurepo_count " + dir + ", r.recipe_id DESC"
}

func (r *recipeRepository) runPage(query string, limit int, args ...interface{}) (*models.RecipeListResult, error) {
	var recipes []models.EnrichedRecipe
	if err := r.db.Raw(query, args...).Scan(&recipes).Error; err != nil {
		return nil, err
	}
	return &models.RecipeListResult{
		Recipes: recipes,
		HasMore: len(recipes) == limit,
	}, nil
}

func (r *recipeRepository) GetList(userID string, params models.RecipeListParams) (*models.RecipeListResult, error) {
	query := "SELECT" + enrichedColumns + enrichedJoin +
		" WHERE 1=1" + modeWhereClause(params.Mode) + rankWhereClause(params.Rank) +
		orderClause(params.Sort) + " LIMIT ? OFFSET ?"
	return r.runPage(query, params.Limit, userID, userID, params.Limit, params.Offset)
}

func (r *recipeRepository) GetListByTitle(userID, term string, params models.RecipeListParams) (*models.RecipeListResult, error) {
	query := "SELECT" + enrichedColumns + enrichedJoin +
		" WHERE LOWER(r.title) LIKE LOWER(?)" + modeWhereClause(params.Mode) + rankWhereClause(params.Rank) +
		orderClause(params.Sort) + " LIMIT ? OFFSET ?"
	pattern := "%" + term + "%"
	return r.runPage(query, params.Limit, userID, userID, pattern, params.Limit, params.Offset)
}

func (r *recipeRepository) GetListByTag(userID, tagName string, params models.RecipeListParams) (*models.RecipeListResult, error) {
	// Whole-token match against the space-delimited tag column; a plain
	// substring LIKE would also hit tags that merely contain the name.
	query := "SELECT" + enrichedColumns + enrichedJoin +
		` WHERE r.tag IS NOT NULL AND r.tag != ''
			AND ' ' || r.tag || ' ' LIKE '% ' || ? || ' %'` +
		modeWhereClause(params.Mode) + rankWhereClause(params.Rank) +
		orderClause(params.Sort) + " LIMIT ? OFFSET ?"
	return r.runPage(query, params.Limit, userID, userID, tagName, params.Limit, params.Offset)
}

func (r *recipeRepository) GetListByFolder(userID string, params models.RecipeListParams) (*models.RecipeListResult, error) {
	query := `SELECT DISTINCT
	r.recipe_id,
	r.title,
	r.image_url,
	r.tsukurepo_count,
	r.is_main_dish,
	r.is_sub_dish,
	r.tag,
	COALESCE(p.rank, 0) AS rank,
	p.comment,
	TRUE AS is_in_folder
FROM reno_recipes r
JOIN reno_user_folders f ON f.user_id = ?
LEFT JOIN reno_user_recipe_preferences p
	ON p.recipe_id = r.recipe_id AND p.user_id = ?
WHERE ' ' || COALESCE(f.id_of_recipes, '') || ' ' LIKE '% ' || r.recipe_id || ' %'` +
		modeWhereClause(params.Mode) + rankWhereClause(params.Rank) +
		orderClause(params.Sort) + " LIMIT ? OFFSET ?"
	return r.runPage(query, params.Limit, userID, userID, params.Limit, params.Offset)
}

func (r *recipeRepository) GetByID(userID string, recipeID int) (*models.RecipeListResult, error) {
	query := "SELECT" + enrichedColumns + enrichedJoin + " WHERE r.recipe_id = ?"
	var recipes []models.EnrichedRecipe
	if err := r.db.Raw(query, userID, userID, recipeID).Scan(&recipes).Error; err != nil {
		return nil, err
	}
	// A single-record lookup never has a next page.
	return &models.RecipeListResult{Recipes: recipes, HasMore: false}, nil
}
