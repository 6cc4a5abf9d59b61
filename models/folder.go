package models

import (
	"strconv"
	"strings"
)

// UserFolder is the single saved-recipes folder each user owns. The member
// recipe IDs are kept as one space-delimited string, matching the schema the
// recipe queries test membership against.
type UserFolder struct {
	UserID      string `json:"user_id" gorm:"primarykey"`
	IDOfRecipes string `json:"id_of_recipes" gorm:"column:id_of_recipes"`
}

func (UserFolder) TableName() string {
	return "reno_user_folders"
}

// RecipeIDs splits the stored list, dropping empty fragments.
func (f *UserFolder) RecipeIDs() []string {
	if f.IDOfRecipes == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(f.IDOfRecipes, " ") {
		if strings.TrimSpace(id) != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Contains reports whether recipeID is in the stored list.
func (f *UserFolder) Contains(recipeID int) bool {
	want := strconv.Itoa(recipeID)
	for _, id := range f.RecipeIDs() {
		if id == want {
			return true
		}
	}
	return false
}
