package handlers

import (
	"strconv"

	"github.com/sasaki-csngrp/myreno/helper"
	"github.com/sasaki-csngrp/myreno/services"

	"github.com/gin-gonic/gin"
)

type FolderHandler struct {
	folderService services.FolderService
	Helper        *helper.HTTPHelper
}

func NewFolderHandler(folderService services.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

func (h *FolderHandler) CheckRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	inFolder, err := h.folderService.IsRecipeInFolder(userID.(string), recipeID)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"is_in_folder": inFolder})
}

func (h *FolderHandler) AddRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	inFolder, err := h.folderService.AddRecipeToFolder(userID.(string), recipeID)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Recipe added to folder", gin.H{"is_in_folder": inFolder})
}

func (h *FolderHandler) RemoveRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	recipeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	inFolder, err := h.folderService.RemoveRecipeFromFolder(userID.(string), recipeID)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Recipe removed from folder", gin.H{"is_in_folder": inFolder})
}
