package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harentsoaR/dentallab-api/internal/errs"
)

// Claims is the decoded payload of a bearer token. ExpirationDate mirrors
// the registered ExpiresAt exactly so clients can read it without decoding
// JWT internals.
type Claims struct {
	UserID         string    `json:"userId"`
	Permissions    []string  `json:"permissions"`
	LabOrClinicID  string    `json:"labOrClinicId,omitempty"`
	ExpirationDate time.Time `json:"expirationDate"`
	jwt.RegisteredClaims
}

// signToken creates a signed HS256 token expiring at the given time.
// expiresAt must be truncated to whole seconds so the claims field and the
// numeric date agree bit for bit.
func signToken(claims *Claims, secret []byte) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(claims.ExpirationDate)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseToken validates signature and expiry. All failure modes, including
// expired tokens, collapse into ErrInvalidToken.
func parseToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}
