package models

// Rank values stored per (user, recipe). Zero means no preference and is
// treated the same as a missing row by the list filters.
const (
	RankNone    = 0
	RankLoved   = 1
	RankLiked   = 2
	RankDislike = 9
)

// UserRecipePreference holds one user's rank and comment for one recipe.
// Rows are created lazily on the first rating or comment and never deleted;
// clearing writes rank 0 / NULL comment instead.
type UserRecipePreference struct {
	UserID   string  `json:"user_id" gorm:"primarykey"`
	RecipeID int     `json:"recipe_id" gorm:"primarykey"`
	Rank     int     `json:"rank" gorm:"default:0"`
	Comment  *string `json:"comment"`
}

func (UserRecipePreference) TableName() string {
	return "reno_user_recipe_preferences"
}
