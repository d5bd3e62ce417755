package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/events"
	"github.com/AGASocial/bottcierge/internal/hash"
	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

type AuthService struct {
	Users    repo.Users
	Tokens   *TokenService
	Producer *events.Producer
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPair struct {
	Access        string
	AccessExpiry  time.Time
	Refresh       string
	RefreshExpiry time.Time
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	_, err := s.Users.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pw, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: pw,
		Role:         "customer",
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLoginAt:  now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":   "user_registered",
		"userId": user.ID,
		"email":  user.Email,
	})
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, in Credentials) (*models.User, *TokenPair, error) {
	user, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if !hash.CheckPassword(user.PasswordHash, in.Password) {
		return nil, nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	pair, err := s.Tokens.Issue(ctx, user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}

	user.LastLoginAt = time.Now()
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":   "user_logged_in",
		"userId": user.ID,
		"email":  user.Email,
	})
	return user, pair, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Users.Get(ctx, userID)
	if err != nil {
		return nil, fromDB(err, "user")
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.Tokens.Revoke(ctx, refreshToken)
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pctx, events.TopicUsers, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish", "topic", events.TopicUsers, "error", err)
	}
}
