package jwt

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenContextKey holds the raw bearer token in a gin context.
	TokenContextKey = "token"
	issuerName      = "token-store"
)

//go:generate mockgen -destination=../../../gen/mocks/jwt/jwt.go -package=mocks . Authenticator,TokenIssuer,TokenParser
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type TokenIssuer interface {
	IssueToken(secret []byte, userID int, account string, timeLimit time.Duration) (string, error)
}

type TokenParser interface {
	ParseToken(secret []byte, tokenString string) (*Claims, error)
}

// Claims binds a token to the ledger account it speaks for.
type Claims struct {
	UserID  int    `json:"uid"`
	Account string `json:"acc"`
	jwt.RegisteredClaims
}

type JWTTokenIssuer struct {
	now func() time.Time
}

func NewJWTTokenIssuer() *JWTTokenIssuer {
	return &JWTTokenIssuer{
		now: time.Now,
	}
}

func (ti *JWTTokenIssuer) IssueToken(secret []byte, userID int, account string, timeLimit time.Duration) (string, error) {
	now := ti.now()

	claims := Claims{
		UserID:  userID,
		Account: account,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   strconv.FormatInt(int64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeLimit)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

type JWTTokenParser struct {
}

func NewJWTTokenParser() *JWTTokenParser {
	return &JWTTokenParser{}
}

func (tp *JWTTokenParser) ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Account == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
