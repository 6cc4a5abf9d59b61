package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sasaki-csngrp/myreno/models"
	"github.com/sasaki-csngrp/myreno/repositories"
)

type RecipeService interface {
	GetRecipes(userID string, params models.RecipeListParams) (*models.RecipeListResult, error)
	SearchRecipes(userID string, params models.SearchRecipesParams) (*models.RecipeListResult, error)
	GetRecipesByFolder(userID string, params models.RecipeListParams) (*models.RecipeListResult, error)
	RecordView(userID string, recipeID int) error
	GetRecentlyViewed(userID string, limit int) ([]models.EnrichedRecipe, error)
	UpdateRank(userID string, recipeID, rank int) error
	UpdateComment(userID string, recipeID int, comment string) error
}

type recipeService struct {
	recipeRepo   repositories.RecipeRepository
	prefRepo     repositories.PreferenceRepository
	recentlyRepo repositories.RecentlyViewedRepository
}

func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	prefRepo repositories.PreferenceRepository,
	recentlyRepo repositories.RecentlyViewedRepository,
) RecipeService {
	return &recipeService{
		recipeRepo:   recipeRepo,
		prefRepo:     prefRepo,
		recentlyRepo: recentlyRepo,
	}
}

var numericTermPattern = regexp.MustCompile(`^[0-9]+$`)

func (s *recipeService) GetRecipes(userID string, params models.RecipeListParams) (*models.RecipeListResult, error) {
	return s.recipeRepo.GetList(userID, params)
}

// SearchRecipes dispatches on the search parameters. An all-digit term is an
// exact recipe ID lookup and ignores every other filter; otherwise tag,
// folder and title narrow the list in that precedence order.
func (s *recipeService) SearchRecipes(userID string, params models.SearchRecipesParams) (*models.RecipeListResult, error) {
	term := strings.TrimSpace(params.Term)

	if term != "" && numericTermPattern.MatchString(term) {
		recipeID, err := strconv.Atoi(term)
		if err != nil {
			return nil, err
		}
		return s.recipeRepo.GetByID(userID, recipeID)
	}

	if params.Tag != "" {
		return s.recipeRepo.GetListByTag(userID, params.Tag, params.RecipeListParams)
	}
	if params.Folder {
		return s.recipeRepo.GetListByFolder(userID, params.RecipeListParams)
	}
	if term != "" {
		return s.recipeRepo.GetListByTitle(userID, term, params.RecipeListParams)
	}
	return s.recipeRepo.GetList(userID, params.RecipeListParams)
}

func (s *recipeService) GetRecipesByFolder(userID string, params models.RecipeListParams) (*models.RecipeListResult, error) {
	return s.recipeRepo.GetListByFolder(userID, params)
}

func (s *recipeService) RecordView(userID string, recipeID int) error {
	return s.recentlyRepo.RecordView(userID, recipeID)
}

func (s *recipeService) GetRecentlyViewed(userID string, limit int) ([]models.EnrichedRecipe, error) {
	return s.recentlyRepo.GetRecentlyViewed(userID, limit)
}

func (s *recipeService) UpdateRank(userID string, recipeID, rank int) error {
	return s.prefRepo.UpsertRank(userID, recipeID, rank)
}

func (s *recipeService) UpdateComment(userID string, recipeID int, comment string) error {
	return s.prefRepo.UpsertComment(userID, recipeID, comment)
}
