package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	signed, err := CreateAccessToken("uid-1", "player@example.com", "user")
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("token did not validate")
	}
	if claims["userId"] != "uid-1" {
		t.Errorf("userId = %v", claims["userId"])
	}
	if claims["email"] != "player@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
	if claims["role"] != "user" {
		t.Errorf("role = %v", claims["role"])
	}
}

func TestRefreshTokenHashCompare(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET_KEY", "refresh-secret")

	token, err := CreateRefreshToken("uid-1", "player@example.com")
	if err != nil {
		t.Fatal(err)
	}

	hashed, err := HashRefreshToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if err := CompareRefreshToken(hashed, token); err != nil {
		t.Errorf("hashed token should match its source: %v", err)
	}
	if err := CompareRefreshToken(hashed, token+"tampered"); err == nil {
		t.Error("tampered token should not match")
	}
}
