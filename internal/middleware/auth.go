package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
	"github.com/memory-page/memoboard/internal/jwt"
	"github.com/memory-page/memoboard/internal/utils"
)

// Key to store the token claims in the request context
type key int

const boardClaimsKey key = 0

type Auth struct {
	tokens jwt.TokenService
}

func NewAuth(tokens jwt.TokenService) *Auth {
	return &Auth{tokens: tokens}
}

// Require rejects requests without a valid access token.
func (a *Auth) Require() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := a.extractClaims(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// Optional populates the context when a valid token is present and lets the
// request through either way. Used where a token only adds the self view.
func (a *Auth) Optional() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := a.extractClaims(r); err == nil {
				r = r.WithContext(withClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractClaims reads the token from the accessToken cookie (browser
// clients) or the Authorization bearer header (API clients) and verifies it.
func (a *Auth) extractClaims(r *http.Request) (*domain.TokenClaims, error) {
	var tokenString string
	if cookie, err := r.Cookie("accessToken"); err == nil {
		tokenString = cookie.Value
	} else if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenString == "" {
		return nil, internal_errors.ErrMissingToken
	}
	return a.tokens.DecodeToken(tokenString)
}

func withClaims(ctx context.Context, claims *domain.TokenClaims) context.Context {
	return context.WithValue(ctx, boardClaimsKey, claims)
}

// BoardFromContext returns the board identity of the request's token, or ""
// when the request carries no valid token.
func BoardFromContext(r *http.Request) domain.BoardId {
	claims, ok := r.Context().Value(boardClaimsKey).(*domain.TokenClaims)
	if !ok {
		return ""
	}
	return claims.BoardId
}
