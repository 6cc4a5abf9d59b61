package repositories

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sasaki-csngrp/myreno/models"

	"gorm.io/gorm"
)

type FolderRepository interface {
	IsRecipeInFolder(userID string, recipeID int) (bool, error)
	AddRecipe(userID string, recipeID int) (bool, error)
	RemoveRecipe(userID string, recipeID int) (bool, error)
}

type folderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) getFolder(userID string) (*models.UserFolder, error) {
	var folder models.UserFolder
	if err := r.db.Where("user_id = ?", userID).First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *folderRepository) IsRecipeInFolder(userID string, recipeID int) (bool, error) {
	folder, err := r.getFolder(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return folder.Contains(recipeID), nil
}

// AddRecipe appends the recipe to the user's folder list, creating the row on
// first use. Adding an existing member is a no-op, so the list stays
// duplicate-free. Returns the resulting membership state (always true).
//
// The read-modify-write on the string column is not guarded by a
// transaction; concurrent writers for the same user can lose an update.
func (r *folderRepository) AddRecipe(userID string, recipeID int) (bool, error) {
	folder, err := r.getFolder(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			folder = &models.UserFolder{
				UserID:      userID,
				IDOfRecipes: strconv.Itoa(recipeID),
			}
			if err := r.db.Create(folder).Error; err != nil {
				return false, err
			}
			return true, nil
		}
		return false, err
	}

	if folder.Contains(recipeID) {
		return true, nil
	}

	ids := append(folder.RecipeIDs(), strconv.Itoa(recipeID))
	return true, r.db.Model(&models.UserFolder{}).
		Where("user_id = ?", userID).
		Update("id_of_recipes", strings.Join(ids, " ")).Error
}

// RemoveRecipe drops the recipe from the list. A missing folder row or a
// non-member recipe is a no-op. Returns the resulting membership state
// (always false).
func (r *folderRepository) RemoveRecipe(userID string, recipeID int) (bool, error) {
	folder, err := r.getFolder(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	want := strconv.Itoa(recipeID)
	var kept []string
	for _, id := range folder.RecipeIDs() {
		if id != want {
			kept = append(kept, id)
		}
	}

	return false, r.db.Model(&models.UserFolder{}).
		Where("user_id = ?", userID).
		Update("id_of_recipes", strings.Join(kept, " ")).Error
}
