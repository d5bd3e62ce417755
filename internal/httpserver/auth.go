package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/service"
)

type AuthHandler struct {
	Auth   *service.AuthService
	Tokens *service.TokenService
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Auth.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req service.Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, pair, err := h.Auth.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	c.SetCookie(createCookie("accessToken", pair.Access, "/", pair.AccessExpiry))
	c.SetCookie(createCookie("refreshToken", pair.Refresh, "/", pair.RefreshExpiry))

	return c.JSON(http.StatusOK, echo.Map{
		"user":  user,
		"token": pair.Access,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie("refreshToken")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "refresh token missing")
	}

	if err := h.Auth.Logout(c.Request().Context(), cookie.Value); err != nil {
		return httpError(err)
	}

	expired := time.Now().Add(-time.Hour)
	c.SetCookie(createCookie("accessToken", "", "/", expired))
	c.SetCookie(createCookie("refreshToken", "", "/", expired))
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}

	user, err := h.Auth.Me(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// RequireUser authenticates the request from the access cookie or bearer
// header, transparently rotating an expired access token off the refresh
// cookie.
func (h *AuthHandler) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := accessToken(c)
		if raw != "" {
			claims, err := h.Tokens.ParseAccess(raw)
			if err == nil {
				setUserContext(c, claims)
				return next(c)
			}
			if !errors.Is(err, jwt.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}
		}

		rfCookie, err := c.Cookie("refreshToken")
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "refresh token missing")
		}

		pair, err := h.Tokens.Rotate(c.Request().Context(), rfCookie.Value)
		if err != nil {
			return httpError(err)
		}

		c.SetCookie(createCookie("accessToken", pair.Access, "/", pair.AccessExpiry))
		c.SetCookie(createCookie("refreshToken", pair.Refresh, "/", pair.RefreshExpiry))

		claims, err := h.Tokens.ParseAccess(pair.Access)
		if err != nil {
			logging.FromContext(c.Request().Context()).Error("parse rotated token", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}
		setUserContext(c, claims)
		return next(c)
	}
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	if sub, _ := claims["sub"].(string); sub != "" {
		c.Set("user_id", sub)
	}
	if role, _ := claims["role"].(string); role != "" {
		c.Set("user_role", role)
	}
}
