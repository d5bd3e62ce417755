package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

type TokenService struct {
	Tokens        repo.Tokens
	JWTSecret     []byte
	RefreshSecret []byte
}

// Issue signs a fresh access/refresh pair and stores the refresh token.
func (t *TokenService) Issue(ctx context.Context, userID, role string) (*TokenPair, error) {
	accessExp := time.Now().Add(accessTTL)
	access, err := signToken(jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  accessExp.Unix(),
	}, t.JWTSecret)
	if err != nil {
		return nil, err
	}

	refreshExp := time.Now().Add(refreshTTL)
	refresh, err := signToken(jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  refreshExp.Unix(),
		"typ":  "refresh",
	}, t.RefreshSecret)
	if err != nil {
		return nil, err
	}

	if err := t.Tokens.Save(ctx, &models.RefreshToken{
		Token:     refresh,
		UserID:    userID,
		ExpiresAt: refreshExp.Unix(),
	}); err != nil {
		return nil, err
	}

	return &TokenPair{
		Access:        access,
		AccessExpiry:  accessExp,
		Refresh:       refresh,
		RefreshExpiry: refreshExp,
	}, nil
}

// Rotate validates a refresh token and issues a new pair.
func (t *TokenService) Rotate(ctx context.Context, rawToken string) (*TokenPair, error) {
	claims, err := t.validateRefresh(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return nil, fmt.Errorf("%w: invalid subject claim", ErrUnauthorized)
	}

	if err := t.Tokens.Revoke(ctx, rawToken); err != nil {
		return nil, err
	}
	return t.Issue(ctx, userID, role)
}

func (t *TokenService) Revoke(ctx context.Context, rawToken string) error {
	return t.Tokens.Revoke(ctx, rawToken)
}

// ParseAccess verifies an access token and returns its claims.
func (t *TokenService) ParseAccess(rawToken string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(rawToken, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return t.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func (t *TokenService) validateRefresh(ctx context.Context, rawToken string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(rawToken, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return t.RefreshSecret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("cannot parse claims")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, fmt.Errorf("not a refresh token")
	}

	stored, err := t.Tokens.Get(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("refresh token not found")
	}
	if stored.Revoked {
		return nil, fmt.Errorf("refresh token revoked")
	}
	if time.Now().Unix() > stored.ExpiresAt {
		return nil, fmt.Errorf("refresh token expired")
	}

	return claims, nil
}

func signToken(claims jwt.MapClaims, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
