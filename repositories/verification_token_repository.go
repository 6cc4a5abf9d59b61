package repositories

import (
	"github.com/sasaki-csngrp/myreno/models"

	"gorm.io/gorm"
)

type VerificationTokenRepository interface {
	Replace(token *models.VerificationToken) error
	Get(identifier, token string) (*models.VerificationToken, error)
	Delete(identifier, token string) error
}

type verificationTokenRepository struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

// Replace deletes any previous tokens for the email before storing the new
// one, so only the latest verification link works.
func (r *verificationTokenRepository) Replace(token *models.VerificationToken) error {
	if err := r.db.Where("identifier = ?", token.Identifier).
		Delete(&models.VerificationToken{}).Error; err != nil {
		return err
	}
	return r.db.Create(token).Error
}

func (r *verificationTokenRepository) Get(identifier, token string) (*models.VerificationToken, error) {
	var vt models.VerificationToken
	err := r.db.Where("identifier = ? AND token = ?", identifier, token).First(&vt).Error
	return &vt, err
}

func (r *verificationTokenRepository) Delete(identifier, token string) error {
	return r.db.Where("identifier = ? AND token = ?", identifier, token).
		Delete(&models.VerificationToken{}).Error
}
