package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 两类主体共用同一套签名机制，但互不通用
const (
	KindUser  = "user"
	KindAdmin = "admin"
)

var ErrWrongKind = errors.New("token kind mismatch")

type Claims struct {
	SubjectID uint   `json:"subject_id"`
	Kind      string `json:"kind"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, subjectID uint, kind string, expire time.Duration) (string, error) {
	claims := Claims{
		SubjectID: subjectID,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken 校验签名和有效期，并要求主体类型与 expectedKind 一致。
// 签名合法但类型不符的 token 一律按 ErrWrongKind 拒绝。
func ParseToken(secret []byte, expectedKind string, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Kind != expectedKind {
		return nil, ErrWrongKind
	}

	return claims, nil
}
