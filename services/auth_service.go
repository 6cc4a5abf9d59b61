package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sasaki-csngrp/myreno/config"
	"github.com/sasaki-csngrp/myreno/logger"
	"github.com/sasaki-csngrp/myreno/mailer"
	"github.com/sasaki-csngrp/myreno/models"
	"github.com/sasaki-csngrp/myreno/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid verification token")
	ErrExpiredToken       = errors.New("verification token expired")
)

const verificationTokenTTL = 24 * time.Hour

type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	VerifyEmail(email, token string) error
	GetUserByID(id string) (*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.VerificationTokenRepository
	mailer    mailer.Mailer
	baseURL   string
	log       *logger.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.VerificationTokenRepository,
	m mailer.Mailer,
	baseURL string,
	log *logger.Logger,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    m,
		baseURL:   baseURL,
		log:       log.With("service", "auth"),
	}
}

// Register creates an unverified account and mails a verification link. A
// mail failure is logged and swallowed: the account exists either way, the
// user can request another link.
func (s *authService) Register(req models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existing != nil && existing.ID != "" {
		return nil, ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashed),
	}
	if req.Name != "" {
		user.Name = &req.Name
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.sendVerificationEmail(req.Email); err != nil {
		s.log.Error("failed to send verification email", "email", req.Email, "error", err)
	}

	return user, nil
}

func (s *authService) sendVerificationEmail(email string) error {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)

	if err := s.tokenRepo.Replace(&models.VerificationToken{
		Identifier: email,
		Token:      token,
		Expires:    time.Now().Add(verificationTokenTTL),
	}); err != nil {
		return err
	}

	verificationURL := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s&email=%s",
		s.baseURL, token, url.QueryEscape(email))
	html := fmt.Sprintf(`
		<h1>メールアドレス確認</h1>
		<p>ご登録ありがとうございます！</p>
		<p>以下のリンクをクリックしてメールアドレスを確認してください：</p>
		<p><a href="%s">%s</a></p>
		<p>このリンクは24時間有効です。</p>
		<p>このメールに心当たりがない場合は、無視してください。</p>`,
		verificationURL, verificationURL)

	return s.mailer.Send(email, "レノちゃん - メールアドレス確認", html)
}

func (s *authService) VerifyEmail(email, token string) error {
	vt, err := s.tokenRepo.Get(email, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if vt.Expires.Before(time.Now()) {
		return ErrExpiredToken
	}

	if err := s.userRepo.MarkEmailVerified(email); err != nil {
		return err
	}
	return s.tokenRepo.Delete(email, token)
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
