package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"game-night-go/internal/auth"
	"game-night-go/internal/config"
	userdomain "game-night-go/internal/domain/user"
	"game-night-go/pkg/logger"
)

type contextKey int

const userKey contextKey = iota

type User struct {
	ID    string
	Email string
	Name  string
}

// UserLookup resolves a verified token subject to account attributes.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
}

type Auth struct {
	tokens   *auth.Tokens
	users    UserLookup
	log      logger.Logger
	skipAuth bool
	mockUser User
}

func NewAuth(cfg config.AuthConfig, tokens *auth.Tokens, users UserLookup, log logger.Logger) *Auth {
	return &Auth{
		tokens:   tokens,
		users:    users,
		log:      log,
		skipAuth: cfg.SkipAuth,
		mockUser: User{
			ID:   strings.TrimSpace(cfg.MockUserID),
			Name: strings.TrimSpace(cfg.MockUserName),
		},
	}
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skipAuth {
			if a.mockUser.ID == "" {
				writeAuthError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), a.mockUser)))
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		userID, err := a.tokens.Verify(token)
		if err != nil {
			unauthorized(w)
			return
		}

		account, err := a.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, userdomain.ErrUserNotFound) {
				unauthorized(w)
				return
			}
			a.log.InternalError("auth: user lookup failed", err, "user_id", userID)
			writeAuthError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}

		resolved := User{ID: account.ID, Email: account.Email, Name: account.Name}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), resolved)))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func unauthorized(w http.ResponseWriter) {
	writeAuthError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
