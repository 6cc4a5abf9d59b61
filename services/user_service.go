package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sasaki-csngrp/myreno/logger"
	"github.com/sasaki-csngrp/myreno/repositories"
	"github.com/sasaki-csngrp/myreno/storage"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

type UserService interface {
	UploadProfileImage(ctx context.Context, userID string, data []byte, contentType string) (string, error)
	GetProfileImage(ctx context.Context, key string) ([]byte, error)
	DeleteProfileImage(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
	store    storage.ObjectStorage
	log      *logger.Logger
}

func NewUserService(userRepo repositories.UserRepository, store storage.ObjectStorage, log *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		store:    store,
		log:      log.With("service", "user"),
	}
}

// UploadProfileImage stores the image under a fresh key and points the user
// row at it. The previous image is deleted best-effort: a storage failure is
// logged but does not block the database update.
func (s *userService) UploadProfileImage(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedImageType
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profile-images/%s/%s", userID, uuid.NewString())
	url, err := s.store.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if user.Image != nil {
		if oldKey := imageKeyFromURL(*user.Image); oldKey != "" {
			if err := s.store.Delete(ctx, oldKey); err != nil {
				s.log.Warn("failed to delete previous profile image", "key", oldKey, "error", err)
			}
		}
	}

	if err := s.userRepo.UpdateImage(userID, &url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *userService) GetProfileImage(ctx context.Context, key string) ([]byte, error) {
	return s.store.Get(ctx, key)
}

// DeleteProfileImage clears the column even when the object-store delete
// fails; a dangling object is cheaper than a broken profile.
func (s *userService) DeleteProfileImage(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if user.Image != nil {
		if key := imageKeyFromURL(*user.Image); key != "" {
			if err := s.store.Delete(ctx, key); err != nil {
				s.log.Warn("failed to delete profile image from storage", "key", key, "error", err)
			}
		}
	}

	return s.userRepo.UpdateImage(userID, nil)
}

// imageKeyFromURL extracts the object key from a stored image URL.
func imageKeyFromURL(imageURL string) string {
	idx := strings.Index(imageURL, "/profile-images/")
	if idx < 0 {
		return ""
	}
	return imageURL[idx+1:]
}
