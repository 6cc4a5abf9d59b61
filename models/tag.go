package models

// TagNode is one row of the tag master table. The four path code columns
// encode a fixed-depth tree: a node at level N has codes populated up to N,
// and its children are the level N+1 rows whose codes up to N are equal.
type TagNode struct {
	TagID    int    `json:"tag_id" gorm:"primarykey;column:tag_id"`
	Dispname string `json:"dispname"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Level    int    `json:"level" gorm:"not null"`
	L        string `json:"l"`
	M        string `json:"m"`
	S        string `json:"s"`
	SS       string `json:"ss" gorm:"column:ss"`
}

func (TagNode) TableName() string {
	return "reno_tag_master"
}

// TagHierarchy is the path-code tuple of a single tag, used to walk up and
// down the tree.
type TagHierarchy struct {
	L     string `json:"l"`
	M     string `json:"m"`
	S     string `json:"s"`
	SS    string `json:"ss"`
	Level int    `json:"level"`
}

// PathPrefix returns the concatenated codes up to the node's own level.
func (h TagHierarchy) PathPrefix() string {
	switch h.Level {
	case 0:
		return h.L
	case 1:
		return h.L + h.M
	case 2:
		return h.L + h.M + h.S
	default:
		return h.L + h.M + h.S + h.SS
	}
}

// TagView is a tag prepared for the browser UI. HasChildren carries the
// rendered marker: "▼" when child tags exist, otherwise "<n> 件" with the
// count of recipes carrying the tag.
type TagView struct {
	TagID       int     `json:"tag_id"`
	Dispname    string  `json:"dispname"`
	Name        string  `json:"name"`
	ImageURI    *string `json:"image_uri"`
	HasImageURI bool    `json:"has_image_uri"`
	HasChildren string  `json:"has_children"`
}
