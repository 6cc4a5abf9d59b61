package models

// Recipe is a crawled recipe from the external recipe site. Rows are loaded
// by the import job and never created or edited through the application.
type Recipe struct {
	RecipeID       int     `json:"recipe_id" gorm:"primarykey;column:recipe_id"`
	Title          string  `json:"title" gorm:"not null"`
	ImageURL       *string `json:"image_url"`
	TsukurepoCount int     `json:"tsukurepo_count" gorm:"default:0"`
	IsMainDish     bool    `json:"is_main_dish" gorm:"default:false"`
	IsSubDish      bool    `json:"is_sub_dish" gorm:"default:false"`
	Tag            *string `json:"tag"` // space-delimited tag names
}

func (Recipe) TableName() string {
	return "reno_recipes"
}

// EnrichedRecipe is a recipe joined with the requesting user's preference
// and folder state. It is scanned straight out of the list queries.
type EnrichedRecipe struct {
	RecipeID       int     `json:"recipe_id"`
	Title          string  `json:"title"`
	ImageURL       *string `json:"image_url"`
	TsukurepoCount int     `json:"tsukurepo_count"`
	IsMainDish     bool    `json:"is_main_dish"`
	IsSubDish      bool    `json:"is_sub_dish"`
	Tag            *string `json:"tag"`
	Rank           int     `json:"rank"`
	Comment        *string `json:"comment"`
	IsInFolder     bool    `json:"is_in_folder"`
}

// RecipeListResult is one page of enriched recipes. HasMore is approximate:
// it reports true whenever a full page came back, so the page after the last
// full one can be empty.
type RecipeListResult struct {
	Recipes []EnrichedRecipe `json:"recipes"`
	HasMore bool             `json:"has_more"`
}
