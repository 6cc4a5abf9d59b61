package repositories

import (
	"testing"

	"github.com/sasaki-csngrp/myreno/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type FolderRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo FolderRepository
}

func (suite *FolderRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file:folder_repo_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	suite.db = db

	if err := db.AutoMigrate(&models.UserFolder{}); err != nil {
		suite.T().Fatal("Failed to migrate:", err)
	}
	suite.repo = NewFolderRepository(db)
}

func (suite *FolderRepositoryTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM reno_user_folders")
}

func (suite *FolderRepositoryTestSuite) folderList(userID string) string {
	var folder models.UserFolder
	suite.Require().NoError(suite.db.Where("user_id = ?", userID).First(&folder).Error)
	return folder.IDOfRecipes
}

func (suite *FolderRepositoryTestSuite) TestAddCreatesFolderOnFirstUse() {
	inFolder, err := suite.repo.IsRecipeInFolder("u1", 7)
	suite.Require().NoError(err)
	suite.False(inFolder)

	inFolder, err = suite.repo.AddRecipe("u1", 7)
	suite.Require().NoError(err)
	suite.True(inFolder)
	suite.Equal("7", suite.folderList("u1"))

	inFolder, err = suite.repo.IsRecipeInFolder("u1", 7)
	suite.Require().NoError(err)
	suite.True(inFolder)
}

func (suite *FolderRepositoryTestSuite) TestAddIsIdempotent() {
	for i := 0; i < 3; i++ {
		inFolder, err := suite.repo.AddRecipe("u1", 7)
		suite.Require().NoError(err)
		suite.True(inFolder)
	}
	suite.Equal("7", suite.folderList("u1"))

	_, err := suite.repo.AddRecipe("u1", 42)
	suite.Require().NoError(err)
	suite.Equal("7 42", suite.folderList("u1"))
}

func (suite *FolderRepositoryTestSuite) TestRemoveKeepsOtherMembers() {
	for _, id := range []int{7, 42, 99} {
		_, err := suite.repo.AddRecipe("u1", id)
		suite.Require().NoError(err)
	}

	inFolder, err := suite.repo.RemoveRecipe("u1", 42)
	suite.Require().NoError(err)
	suite.False(inFolder)
	suite.Equal("7 99", suite.folderList("u1"))

	inFolder, err = suite.repo.IsRecipeInFolder("u1", 42)
	suite.Require().NoError(err)
	suite.False(inFolder)
}

func (suite *FolderRepositoryTestSuite) TestRemoveNonMemberIsNoOp() {
	_, err := suite.repo.AddRecipe("u1", 7)
	suite.Require().NoError(err)

	inFolder, err := suite.repo.RemoveRecipe("u1", 42)
	suite.Require().NoError(err)
	suite.False(inFolder)
	suite.Equal("7", suite.folderList("u1"))
}

func (suite *FolderRepositoryTestSuite) TestRemoveWithoutFolderRow() {
	inFolder, err := suite.repo.RemoveRecipe("nobody", 7)
	suite.Require().NoError(err)
	suite.False(inFolder)

	var count int64
	suite.db.Model(&models.UserFolder{}).Where("user_id = ?", "nobody").Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *FolderRepositoryTestSuite) TestMembershipIsWholeID() {
	_, err := suite.repo.AddRecipe("u1", 123)
	suite.Require().NoError(err)

	inFolder, err := suite.repo.IsRecipeInFolder("u1", 12)
	suite.Require().NoError(err)
	suite.False(inFolder)

	inFolder, err = suite.repo.IsRecipeInFolder("u1", 23)
	suite.Require().NoError(err)
	suite.False(inFolder)
}

func TestFolderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FolderRepositoryTestSuite))
}
