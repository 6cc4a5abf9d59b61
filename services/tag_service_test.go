package services

import (
	"testing"

	"github.com/sasaki-csngrp/myreno/models"
	"github.com/sasaki-csngrp/myreno/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type stubTagRepo struct {
	rows      []repositories.TagCountRow
	hierarchy map[string]models.TagHierarchy
}

func (r *stubTagRepo) GetByLevel(level int, parent *models.TagHierarchy) ([]repositories.TagCountRow, error) {
	return r.rows, nil
}

func (r *stubTagRepo) GetByNames(names []string) ([]repositories.TagCountRow, error) {
	return r.rows, nil
}

func (r *stubTagRepo) GetHierarchyByName(name string) (*models.TagHierarchy, error) {
	if h, ok := r.hierarchy[name]; ok {
		return &h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTagRepo) GetNameByHierarchy(h models.TagHierarchy) (string, error) {
	return "", gorm.ErrRecordNotFound
}

func (r *stubTagRepo) CountRecipesByTag(name string) (int64, error) {
	return 0, nil
}

type TagServiceTestSuite struct {
	suite.Suite
	repo    *stubTagRepo
	service TagService
}

func (suite *TagServiceTestSuite) SetupTest() {
	suite.repo = &stubTagRepo{hierarchy: map[string]models.TagHierarchy{}}
	suite.service = NewTagService(suite.repo)
}

func (suite *TagServiceTestSuite) TestChildMarkerTakesPrecedence() {
	uri := "https://img.example/t.jpg"
	suite.repo.rows = []repositories.TagCountRow{
		// a node with both children and tagged recipes renders the marker
		{TagID: 1, Name: "vegetable", Dispname: "野菜", ChildTagCount: 2, RecipeCount: 9, ImageURI: &uri},
		{TagID: 2, Name: "potato", Dispname: "じゃがいも", ChildTagCount: 0, RecipeCount: 3},
		{TagID: 3, Name: "rare", Dispname: "希少", ChildTagCount: 0, RecipeCount: 0},
	}

	views, err := suite.service.GetTagsByLevel(0, "")
	suite.Require().NoError(err)
	suite.Require().Len(views, 3)

	suite.Equal("▼", views[0].HasChildren)
	suite.True(views[0].HasImageURI)
	suite.Equal("3 件", views[1].HasChildren)
	suite.False(views[1].HasImageURI)
	suite.Equal("0 件", views[2].HasChildren)
}

func (suite *TagServiceTestSuite) TestUnknownParentName() {
	_, err := suite.service.GetTagsByLevel(1, "does-not-exist")
	suite.Require().Error(err)
	suite.Equal("parent tag not found", err.Error())
}

func (suite *TagServiceTestSuite) TestKnownParentResolvesHierarchy() {
	suite.repo.hierarchy["vegetable"] = models.TagHierarchy{Level: 0, L: "01"}
	suite.repo.rows = []repositories.TagCountRow{}

	views, err := suite.service.GetTagsByLevel(1, "vegetable")
	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *TagServiceTestSuite) TestUnknownHierarchy() {
	_, err := suite.service.GetTagNameByHierarchy(models.TagHierarchy{Level: 0, L: "99"})
	suite.Require().Error(err)
	suite.Equal("tag not found", err.Error())
}

func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}
