package services

import (
	"github.com/sasaki-csngrp/myreno/repositories"
)

type FolderService interface {
	IsRecipeInFolder(userID string, recipeID int) (bool, error)
	AddRecipeToFolder(userID string, recipeID int) (bool, error)
	RemoveRecipeFromFolder(userID string, recipeID int) (bool, error)
}

type folderService struct {
	folderRepo repositories.FolderRepository
}

func NewFolderService(folderRepo repositories.FolderRepository) FolderService {
	return &folderService{folderRepo: folderRepo}
}

func (s *folderService) IsRecipeInFolder(userID string, recipeID int) (bool, error) {
	return s.folderRepo.IsRecipeInFolder(userID, recipeID)
}

func (s *folderService) AddRecipeToFolder(userID string, recipeID int) (bool, error) {
	return s.folderRepo.AddRecipe(userID, recipeID)
}

func (s *folderService) RemoveRecipeFromFolder(userID string, recipeID int) (bool, error) {
	return s.folderRepo.RemoveRecipe(userID, recipeID)
}
