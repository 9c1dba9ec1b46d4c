package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, KindUser, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, KindUser, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.SubjectID != 42 {
		t.Fatalf("expected subject 42, got %d", claims.SubjectID)
	}
	if claims.Kind != KindUser {
		t.Fatalf("expected kind %q, got %q", KindUser, claims.Kind)
	}
}

// 签名合法但类型不符的 token 必须拒绝，两个方向都要验证
func TestKindIsolation(t *testing.T) {
	userToken, err := GenerateToken(secret, 1, KindUser, time.Hour)
	if err != nil {
		t.Fatalf("generate user token: %v", err)
	}
	adminToken, err := GenerateToken(secret, 1, KindAdmin, time.Hour)
	if err != nil {
		t.Fatalf("generate admin token: %v", err)
	}

	if _, err := ParseToken(secret, KindAdmin, userToken); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("user token on admin side: expected ErrWrongKind, got %v", err)
	}
	if _, err := ParseToken(secret, KindUser, adminToken); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("admin token on user side: expected ErrWrongKind, got %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken(secret, 7, KindUser, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = ParseToken(secret, KindUser, token)
	if !errors.Is(err, jwtlib.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 7, KindUser, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), KindUser, token); err == nil {
		t.Fatal("expected signature error, got nil")
	}
}
