package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/sasaki-csngrp/myreno/helper"
	"github.com/sasaki-csngrp/myreno/services"

	"github.com/gin-gonic/gin"
)

// maxImageSize caps profile image uploads at 5MB.
const maxImageSize = 5 << 20

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) UploadImage(c *gin.Context) {
	userID, _ := c.Get("user_id")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.Helper.SendBadRequest(c, "Image file required", h.Helper.EmptyJsonMap())
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		h.Helper.SendBadRequest(c, "Image too large", h.Helper.EmptyJsonMap())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	url, err := h.userService.UploadProfileImage(c.Request.Context(), userID.(string), data, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImageType) {
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Image uploaded", gin.H{"url": url})
}

// GetImage proxies the object out of the private bucket.
func (h *UserHandler) GetImage(c *gin.Context) {
	key := "profile-images/" + c.Param("userId") + "/" + c.Param("imageId")

	data, err := h.userService.GetProfileImage(c.Request.Context(), key)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Image not found", h.Helper.EmptyJsonMap())
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}

func (h *UserHandler) DeleteImage(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.userService.DeleteProfileImage(c.Request.Context(), userID.(string)); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Image deleted", h.Helper.EmptyJsonMap())
}
