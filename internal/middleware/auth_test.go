package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
)

const testBoardID = "64b2f0c8e4a1d92b3c5f7a01"

// MockTokenService mocks the jwt.TokenService interface.
type MockTokenService struct {
	MockNewToken    func(boardID domain.BoardId) (string, error)
	MockDecodeToken func(token string) (*domain.TokenClaims, error)
}

func (m *MockTokenService) NewToken(boardID domain.BoardId) (string, error) {
	if m.MockNewToken != nil {
		return m.MockNewToken(boardID)
	}
	return "token", nil
}

func (m *MockTokenService) DecodeToken(token string) (*domain.TokenClaims, error) {
	if m.MockDecodeToken != nil {
		return m.MockDecodeToken(token)
	}
	if token == "valid" {
		return &domain.TokenClaims{BoardId: testBoardID}, nil
	}
	return nil, internal_errors.ErrTokenInvalid
}

// echoBoard writes the board id found in the request context.
func echoBoard(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(BoardFromContext(r)))
}

func TestAuthRequire(t *testing.T) {
	auth := NewAuth(&MockTokenService{})
	handler := auth.Require()(http.HandlerFunc(echoBoard))

	t.Run("bearer header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid")

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testBoardID, rr.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "valid"})

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testBoardID, rr.Body.String())
	})

	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiring := NewAuth(&MockTokenService{
			MockDecodeToken: func(token string) (*domain.TokenClaims, error) {
				return nil, internal_errors.ErrTokenExpired
			},
		})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid")

		expiring.Require()(http.HandlerFunc(echoBoard)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "valid")

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthOptional(t *testing.T) {
	auth := NewAuth(&MockTokenService{})
	handler := auth.Optional()(http.HandlerFunc(echoBoard))

	t.Run("valid token populates identity", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid")

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testBoardID, rr.Body.String())
	})

	t.Run("no token passes through anonymously", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("bad token passes through anonymously", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
