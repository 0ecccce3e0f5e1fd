package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/memory-page/memoboard/internal/domain"
	internal_errors "github.com/memory-page/memoboard/internal/errors"
	"github.com/memory-page/memoboard/internal/logger"
)

type TokenService interface {
	NewToken(boardID domain.BoardId) (string, error)
	DecodeToken(tokenStr string) (*domain.TokenClaims, error)
}

type Jwt struct {
	secretKey string
	method    jwt.SigningMethod
	ttl       time.Duration
}

// New builds a token service for the configured symmetric algorithm
// (HS256/HS384/HS512).
func New(secretKey, algorithm string, ttl time.Duration) (*Jwt, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, errors.New("unknown jwt algorithm: " + algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("jwt algorithm must be symmetric: " + algorithm)
	}
	return &Jwt{secretKey: secretKey, method: method, ttl: ttl}, nil
}

// NewToken issues an access token carrying the board identity claim. Expiry
// is computed in KST civil time; as a unix instant the offset is cosmetic.
func (j *Jwt) NewToken(boardID domain.BoardId) (string, error) {
	claims := jwt.MapClaims{
		"board_id": boardID,
		"exp":      time.Now().In(domain.KST).Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(j.method, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}
	return tokenString, nil
}

// DecodeToken verifies signature and expiry, then coerces the claims into
// the expected payload shape. A syntactically valid token whose claims are
// missing or wrongly typed fails as a malformed payload, not as a bad
// signature.
func (j *Jwt) DecodeToken(tokenStr string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal_errors.ErrTokenExpired
		}
		return nil, internal_errors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, internal_errors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, internal_errors.ErrTokenPayload
	}
	boardID, ok := claims["board_id"].(string)
	if !ok || boardID == "" {
		return nil, internal_errors.ErrTokenPayload
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, internal_errors.ErrTokenPayload
	}

	return &domain.TokenClaims{BoardId: boardID, ExpiresAt: exp.Time}, nil
}
