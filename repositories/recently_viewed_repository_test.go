package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/sasaki-csngrp/myreno/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type RecentlyViewedRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo RecentlyViewedRepository
	base time.Time
}

func (suite *RecentlyViewedRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file:recently_viewed_repo_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	suite.db = db

	if err := db.AutoMigrate(
		&models.Recipe{},
		&models.RecentlyViewed{},
		&models.UserRecipePreference{},
		&models.UserFolder{},
	); err != nil {
		suite.T().Fatal("Failed to migrate:", err)
	}

	recipes := make([]models.Recipe, 0, 60)
	for i := 1; i <= 60; i++ {
		recipes = append(recipes, models.Recipe{
			RecipeID: i,
			Title:    fmt.Sprintf("Recipe %d", i),
		})
	}
	suite.Require().NoError(db.Create(&recipes).Error)

	suite.repo = NewRecentlyViewedRepository(db)
	suite.base = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *RecentlyViewedRepositoryTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM reno_user_recently_viewed")
}

// view records a view and pins its timestamp so the ordering under test does
// not depend on wall-clock resolution.
func (suite *RecentlyViewedRepositoryTestSuite) view(userID string, recipeID, seq int) {
	suite.Require().NoError(suite.repo.RecordView(userID, recipeID))
	suite.Require().NoError(suite.db.Exec(
		"UPDATE reno_user_recently_viewed SET viewed_at = ? WHERE user_id = ? AND recipe_id = ?",
		suite.base.Add(time.Duration(seq)*time.Second), userID, recipeID,
	).Error)
}

func (suite *RecentlyViewedRepositoryTestSuite) TestNewestFirst() {
	suite.view("u1", 3, 0)
	suite.view("u1", 1, 1)
	suite.view("u1", 2, 2)

	recipes, err := suite.repo.GetRecentlyViewed("u1", 12)
	suite.Require().NoError(err)
	suite.Require().Len(recipes, 3)
	suite.Equal(2, recipes[0].RecipeID)
	suite.Equal(1, recipes[1].RecipeID)
	suite.Equal(3, recipes[2].RecipeID)
}

func (suite *RecentlyViewedRepositoryTestSuite) TestReViewMovesToFront() {
	suite.view("u1", 1, 0)
	suite.view("u1", 2, 1)
	suite.view("u1", 1, 2)

	recipes, err := suite.repo.GetRecentlyViewed("u1", 12)
	suite.Require().NoError(err)
	suite.Require().Len(recipes, 2)
	suite.Equal(1, recipes[0].RecipeID)
	suite.Equal(2, recipes[1].RecipeID)
}

func (suite *RecentlyViewedRepositoryTestSuite) TestCapAtFiftyNewest() {
	for i := 1; i <= 60; i++ {
		suite.view("u1", i, i)
	}

	var count int64
	suite.db.Model(&models.RecentlyViewed{}).Where("user_id = ?", "u1").Count(&count)
	suite.Equal(int64(models.RecentlyViewedLimit), count)

	recipes, err := suite.repo.GetRecentlyViewed("u1", 100)
	suite.Require().NoError(err)
	suite.Require().Len(recipes, models.RecentlyViewedLimit)

	// the surviving rows are views 11..60, newest first
	suite.Equal(60, recipes[0].RecipeID)
	suite.Equal(11, recipes[len(recipes)-1].RecipeID)
	for _, r := range recipes {
		suite.GreaterOrEqual(r.RecipeID, 11)
	}
}

func (suite *RecentlyViewedRepositoryTestSuite) TestScopedPerUser() {
	suite.view("u1", 1, 0)
	suite.view("u2", 2, 1)

	recipes, err := suite.repo.GetRecentlyViewed("u1", 12)
	suite.Require().NoError(err)
	suite.Require().Len(recipes, 1)
	suite.Equal(1, recipes[0].RecipeID)
}

func (suite *RecentlyViewedRepositoryTestSuite) TestEnrichmentInListing() {
	suite.view("u1", 5, 0)
	suite.Require().NoError(suite.db.Create(&models.UserRecipePreference{
		UserID: "u1", RecipeID: 5, Rank: 1,
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.UserFolder{
		UserID: "u1", IDOfRecipes: "5",
	}).Error)

	recipes, err := suite.repo.GetRecentlyViewed("u1", 12)
	suite.Require().NoError(err)
	suite.Require().Len(recipes, 1)
	suite.Equal(1, recipes[0].Rank)
	suite.True(recipes[0].IsInFolder)
}

func TestRecentlyViewedRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecentlyViewedRepositoryTestSuite))
}
