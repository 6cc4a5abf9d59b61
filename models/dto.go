package models

type SearchMode string

const (
	ModeAll      SearchMode = "all"
	ModeMainDish SearchMode = "main_dish"
	ModeSubDish  SearchMode = "sub_dish"
	ModeOthers   SearchMode = "others"
)

type RankFilter string

const (
	RankFilterAll   RankFilter = "all"
	RankFilterLoved RankFilter = "1"
	RankFilterLiked RankFilter = "2"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RecipeListParams struct {
	Limit  int        `form:"limit,default=12"`
	Offset int        `form:"offset,default=0"`
	Mode   SearchMode `form:"mode,default=all"`
	Rank   RankFilter `form:"rank,default=all"`
	Sort   SortOrder  `form:"sort,default=desc"`
}

type SearchRecipesParams struct {
	RecipeListParams
	Term   string `form:"term"`
	Tag    string `form:"tag"`
	Folder bool   `form:"folder"`
}

type TagListParams struct {
	Level  int    `form:"level" binding:"min=0,max=3"`
	Parent string `form:"parent"`
}

type TagBreadcrumbParams struct {
	Level int    `form:"level" binding:"min=0,max=3"`
	L     string `form:"l" binding:"required"`
	M     string `form:"m"`
	S     string `form:"s"`
	SS    string `form:"ss"`
}

type TagsByNamesRequest struct {
	Names []string `json:"names" binding:"required"`
}

type UpdateRankRequest struct {
	Rank *int `json:"rank" binding:"required,oneof=0 1 2 9"`
}

type UpdateCommentRequest struct {
	Comment string `json:"comment"`
}
