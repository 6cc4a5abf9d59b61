package services

import (
	"errors"
	"fmt"

	"github.com/sasaki-csngrp/myreno/models"
	"github.com/sasaki-csngrp/myreno/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	GetTagsByLevel(level int, parentName string) ([]models.TagView, error)
	GetTagsByNames(names []string) ([]models.TagView, error)
	GetTagNameByHierarchy(h models.TagHierarchy) (string, error)
	GetRecipeCountByTag(name string) (int64, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// GetTagsByLevel lists the tag nodes at one level, optionally narrowed to
// the children of a named parent. The parent's own path codes have to be
// looked up first; the flattened tree keeps no parent pointers.
func (s *tagService) GetTagsByLevel(level int, parentName string) ([]models.TagView, error) {
	var parent *models.TagHierarchy
	if parentName != "" {
		h, err := s.tagRepo.GetHierarchyByName(parentName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("parent tag not found")
			}
			return nil, err
		}
		parent = h
	}

	rows, err := s.tagRepo.GetByLevel(level, parent)
	if err != nil {
		return nil, err
	}
	return buildTagViews(rows), nil
}

func (s *tagService) GetTagsByNames(names []string) ([]models.TagView, error) {
	rows, err := s.tagRepo.GetByNames(names)
	if err != nil {
		return nil, err
	}
	return buildTagViews(rows), nil
}

func (s *tagService) GetTagNameByHierarchy(h models.TagHierarchy) (string, error) {
	name, err := s.tagRepo.GetNameByHierarchy(h)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("tag not found")
		}
		return "", err
	}
	return name, nil
}

func (s *tagService) GetRecipeCountByTag(name string) (int64, error) {
	return s.tagRepo.CountRecipesByTag(name)
}

// buildTagViews renders the child marker. Child tags take precedence over a
// direct recipe count: a node with both shows "▼" and hides the count.
func buildTagViews(rows []repositories.TagCountRow) []models.TagView {
	views := make([]models.TagView, 0, len(rows))
	for _, row := range rows {
		hasChildren := fmt.Sprintf("%d 件", row.RecipeCount)
		if row.ChildTagCount > 0 {
			hasChildren = "▼"
		}
		views = append(views, models.TagView{
			TagID:       row.TagID,
			Dispname:    row.Dispname,
			Name:        row.Name,
			ImageURI:    row.ImageURI,
			HasImageURI: row.ImageURI != nil,
			HasChildren: hasChildren,
		})
	}
	return views
}
