package repositories

import (
	"github.com/sasaki-csngrp/myreno/models"

	"gorm.io/gorm"
)

// TagCountRow is one tag node scanned together with its child and recipe
// counts and a representative image.
type TagCountRow struct {
	TagID         int
	Dispname      string
	Name          string
	Level         int
	ImageURI      *string
	ChildTagCount int
	RecipeCount   int
}

type TagRepository interface {
	GetByLevel(level int, parent *models.TagHierarchy) ([]TagCountRow, error)
	GetByNames(names []string) ([]TagCountRow, error)
	GetHierarchyByName(name string) (*models.TagHierarchy, error)
	GetNameByHierarchy(h models.TagHierarchy) (string, error)
	CountRecipesByTag(name string) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// childCountCondition matches level+1 rows whose path codes up to the current
// node's level are equal. The tree is flattened into the four code columns,
// so "is a child" is a prefix comparison, not a parent-pointer lookup.
func childCountCondition(level int) string {
	switch level {
	case 0:
		return "c.l = t.l"
	case 1:
		return "c.l || c.m = t.l || t.m"
	case 2:
		return "c.l || c.m || c.s = t.l || t.m || t.s"
	default:
		return "c.l || c.m || c.s || c.ss = t.l || t.m || t.s || t.ss"
	}
}

// parentFilterCondition restricts level-N rows to the children of a parent at
// level N-1, compared against the parent's concatenated path prefix.
func parentFilterCondition(level int) string {
	switch level {
	case 1:
		return "t.l = ?"
	case 2:
		return "t.l || t.m = ?"
	case 3:
		return "t.l || t.m || t.s = ?"
	default:
		return "t.l = ?"
	}
}

const tagImageSubquery = `(
		SELECT r.image_url FROM reno_recipes r
		WHERE r.tag IS NOT NULL AND r.tag != '' AND r.tag LIKE '%' || t.name || '%'
		ORDER BY r.tsukurepo_count DESC, r.recipe_id DESC LIMIT 1
	) AS image_uri`

const tagRecipeCountSubquery = `(
		SELECT COUNT(*) FROM reno_recipes r
		WHERE r.tag IS NOT NULL AND r.tag != ''
			AND ' ' || r.tag || ' ' LIKE '% ' || t.name || ' %'
	) AS recipe_count`

func (r *tagRepository) GetByLevel(level int, parent *models.TagHierarchy) ([]TagCountRow, error) {
	query := `SELECT
	t.tag_id,
	t.dispname,
	t.name,
	t.level,
	` + tagImageSubquery + `,
	(
		SELECT COUNT(*) FROM reno_tag_master c
		WHERE c.level = t.level + 1 AND ` + childCountCondition(level) + `
	) AS child_tag_count,
	` + tagRecipeCountSubquery + `
FROM reno_tag_master t
WHERE t.level = ?`

	args := []interface{}{level}
	if parent != nil {
		query += " AND " + parentFilterCondition(level)
		args = append(args, parent.PathPrefix())
	}
	query += " ORDER BY t.tag_id"

	var rows []TagCountRow
	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tagRepository) GetByNames(names []string) ([]TagCountRow, error) {
	if len(names) == 0 {
		return []TagCountRow{}, nil
	}

	query := `SELECT
	t.tag_id,
	t.dispname,
	t.name,
	t.level,
	` + tagImageSubquery + `,
	CASE
		WHEN t.level = 0 THEN (
			SELECT COUNT(*) FROM reno_tag_master c WHERE c.level = 1 AND c.l = t.l
		)
		WHEN t.level = 1 THEN (
			SELECT COUNT(*) FROM reno_tag_master c WHERE c.level = 2 AND c.l || c.m = t.l || t.m
		)
		WHEN t.level = 2 THEN (
			SELECT COUNT(*) FROM reno_tag_master c WHERE c.level = 3 AND c.l || c.m || c.s = t.l || t.m || t.s
		)
		ELSE 0
	END AS child_tag_count,
	` + tagRecipeCountSubquery + `
FROM reno_tag_master t
WHERE t.name IN ?
ORDER BY t.tag_id`

	var rows []TagCountRow
	if err := r.db.Raw(query, names).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tagRepository) GetHierarchyByName(name string) (*models.TagHierarchy, error) {
	var tag models.TagNode
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &models.TagHierarchy{
		L:     tag.L,
		M:     tag.M,
		S:     tag.S,
		SS:    tag.SS,
		Level: tag.Level,
	}, nil
}

func (r *tagRepository) GetNameByHierarchy(h models.TagHierarchy) (string, error) {
	query := r.db.Model(&models.TagNode{}).Where("level = ? AND l = ?", h.Level, h.L)
	if h.Level >= 1 {
		query = query.Where("m = ?", h.M)
	}
	if h.Level >= 2 {
		query = query.Where("s = ?", h.S)
	}
	if h.Level >= 3 {
		query = query.Where("ss = ?", h.SS)
	}

	var tag models.TagNode
	if err := query.First(&tag).Error; err != nil {
		return "", err
	}
	return tag.Name, nil
}

func (r *tagRepository) CountRecipesByTag(name string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).
		Where("tag IS NOT NULL AND tag != ''").
		Where("' ' || tag || ' ' LIKE '% ' || ? || ' %'", name).
		Count(&count).Error
	return count, err
}
