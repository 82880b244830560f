package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type ctxKey int

const (
	userIDKey ctxKey = iota + 1
	roleKey
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims carries the authenticated user id. Older clients issued tokens with
// the id under "userId" instead of "id"; both are honored.
type Claims struct {
	UserID       int    `json:"id,omitempty"`
	LegacyUserID int    `json:"userId,omitempty"`
	Role         string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Subject() int {
	if c.UserID != 0 {
		return c.UserID
	}
	return c.LegacyUserID
}

// NewToken signs an HS256 token carrying the user id under both claim names.
func NewToken(secret []byte, userID int, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:       userID,
		LegacyUserID: userID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject() == 0 {
		return nil, errors.New("token has no user id")
	}
	return claims, nil
}

func SetAuthContext(ctx context.Context, userID int, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

func GetUserID(ctx context.Context) (int, error) {
	id, ok := ctx.Value(userIDKey).(int)
	if !ok {
		return 0, errors.New("no user in context")
	}
	return id, nil
}

func GetRole(ctx context.Context) (string, error) {
	role, ok := ctx.Value(roleKey).(string)
	if !ok {
		return "", errors.New("no role in context")
	}
	return role, nil
}
