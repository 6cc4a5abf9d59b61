package repositories

import (
	"errors"
	"testing"

	"github.com/sasaki-csngrp/myreno/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TagRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TagRepository
}

func (suite *TagRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file:tag_repo_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	suite.db = db

	if err := db.AutoMigrate(&models.TagNode{}, &models.Recipe{}); err != nil {
		suite.T().Fatal("Failed to migrate:", err)
	}

	tags := []models.TagNode{
		{TagID: 1, Dispname: "野菜", Name: "vegetable", Level: 0, L: "01"},
		{TagID: 2, Dispname: "肉", Name: "meat", Level: 0, L: "02"},
		{TagID: 11, Dispname: "トマト", Name: "tomato", Level: 1, L: "01", M: "01"},
		{TagID: 12, Dispname: "じゃがいも", Name: "potato", Level: 1, L: "01", M: "02"},
		{TagID: 111, Dispname: "ミニトマト", Name: "cherry-tomato", Level: 2, L: "01", M: "01", S: "01"},
	}
	suite.Require().NoError(db.Create(&tags).Error)

	recipes := []models.Recipe{
		{RecipeID: 1, Title: "Tomato Pasta", ImageURL: strPtr("https://img.example/1.jpg"), Tag: strPtr("tomato pasta"), TsukurepoCount: 300},
		{RecipeID: 2, Title: "Tomato Salad", ImageURL: strPtr("https://img.example/2.jpg"), Tag: strPtr("tomato salad"), TsukurepoCount: 100},
		{RecipeID: 3, Title: "Baked Potato", Tag: strPtr("potato"), TsukurepoCount: 80},
	}
	suite.Require().NoError(db.Create(&recipes).Error)

	suite.repo = NewTagRepository(db)
}

func (suite *TagRepositoryTestSuite) TestGetByLevelRoot() {
	rows, err := suite.repo.GetByLevel(0, nil)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("vegetable", rows[0].Name)
	suite.Equal(2, rows[0].ChildTagCount)
	suite.Equal("meat", rows[1].Name)
	suite.Equal(0, rows[1].ChildTagCount)
}

func (suite *TagRepositoryTestSuite) TestGetByLevelScopedToParent() {
	parent, err := suite.repo.GetHierarchyByName("vegetable")
	suite.Require().NoError(err)

	rows, err := suite.repo.GetByLevel(1, parent)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("tomato", rows[0].Name)
	suite.Equal(1, rows[0].ChildTagCount)
	suite.Equal("potato", rows[1].Name)
	suite.Equal(0, rows[1].ChildTagCount)

	parent, err = suite.repo.GetHierarchyByName("meat")
	suite.Require().NoError(err)
	rows, err = suite.repo.GetByLevel(1, parent)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *TagRepositoryTestSuite) TestRecipeCountsUseWholeTokens() {
	rows, err := suite.repo.GetByNames([]string{"tomato", "potato", "cherry-tomato"})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	byName := map[string]TagCountRow{}
	for _, row := range rows {
		byName[row.Name] = row
	}
	suite.Equal(2, byName["tomato"].RecipeCount)
	suite.Equal(1, byName["potato"].RecipeCount)
	// "cherry-tomato" must not count recipes tagged plain "tomato"
	suite.Equal(0, byName["cherry-tomato"].RecipeCount)
}

func (suite *TagRepositoryTestSuite) TestImageComesFromMostPopularRecipe() {
	rows, err := suite.repo.GetByNames([]string{"tomato", "potato"})
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	byName := map[string]TagCountRow{}
	for _, row := range rows {
		byName[row.Name] = row
	}
	suite.Require().NotNil(byName["tomato"].ImageURI)
	suite.Equal("https://img.example/1.jpg", *byName["tomato"].ImageURI)
	suite.Nil(byName["potato"].ImageURI)
}

func (suite *TagRepositoryTestSuite) TestGetByNamesEmptyInput() {
	rows, err := suite.repo.GetByNames(nil)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *TagRepositoryTestSuite) TestHierarchyRoundTrip() {
	h, err := suite.repo.GetHierarchyByName("cherry-tomato")
	suite.Require().NoError(err)
	suite.Equal(2, h.Level)
	suite.Equal("01", h.L)
	suite.Equal("01", h.M)
	suite.Equal("01", h.S)

	name, err := suite.repo.GetNameByHierarchy(*h)
	suite.Require().NoError(err)
	suite.Equal("cherry-tomato", name)
}

func (suite *TagRepositoryTestSuite) TestUnknownLookups() {
	_, err := suite.repo.GetHierarchyByName("does-not-exist")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	_, err = suite.repo.GetNameByHierarchy(models.TagHierarchy{Level: 0, L: "99"})
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *TagRepositoryTestSuite) TestCountRecipesByTag() {
	count, err := suite.repo.CountRecipesByTag("tomato")
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountRecipesByTag("tom")
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func TestTagRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TagRepositoryTestSuite))
}
