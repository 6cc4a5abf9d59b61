package handlers

import (
	"github.com/sasaki-csngrp/myreno/helper"
	"github.com/sasaki-csngrp/myreno/models"
	"github.com/sasaki-csngrp/myreno/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	var params models.TagListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	tags, err := h.tagService.GetTagsByLevel(params.Level, params.Parent)
	if err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}

func (h *TagHandler) GetTagsByNames(c *gin.Context) {
	var req models.TagsByNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	tags, err := h.tagService.GetTagsByNames(req.Names)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}

// GetBreadcrumb resolves a path-code tuple back to the tag name, used when
// rendering the hierarchy trail above a tag listing.
func (h *TagHandler) GetBreadcrumb(c *gin.Context) {
	var params models.TagBreadcrumbParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	name, err := h.tagService.GetTagNameByHierarchy(models.TagHierarchy{
		L:     params.L,
		M:     params.M,
		S:     params.S,
		SS:    params.SS,
		Level: params.Level,
	})
	if err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"name": name})
}

func (h *TagHandler) GetRecipeCount(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.Helper.SendBadRequest(c, "Tag name required", h.Helper.EmptyJsonMap())
		return
	}

	count, err := h.tagService.GetRecipeCountByTag(name)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"count": count})
}
