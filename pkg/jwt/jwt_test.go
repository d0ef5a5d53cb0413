package jwt

import (
	"testing"
	"time"

	"github.com/putraaxzy/Artemis-PKL/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "kunci-rahasia-khusus-unit-test-2026",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken(7, "guru")
	if err != nil {
		t.Fatalf("GenerateAccessToken gagal: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken gagal: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("harap UserID=7, dapat=%d", claims.UserID)
	}
	if claims.Role != "guru" {
		t.Errorf("harap Role=guru, dapat=%s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("harap TokenType=access, dapat=%s", claims.TokenType)
	}
	if claims.Issuer != "artemis" {
		t.Errorf("harap Issuer=artemis, dapat=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI tidak boleh kosong")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken(3, "siswa")
	if err != nil {
		t.Fatalf("GenerateRefreshToken gagal: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken gagal: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("harap TokenType=refresh, dapat=%s", claims.TokenType)
	}

	// TTL harus sekitar 7 hari
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("TTL refresh token harap sekitar 7 hari, dapat=%v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("token.tidak.valid")
	if err == nil {
		t.Error("token tidak valid seharusnya ditolak")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "kunci-rahasia-yang-berbeda",
		AccessTokenTTL: time.Hour,
	})

	token, _ := m1.GenerateAccessToken(1, "guru")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("token dengan secret berbeda seharusnya ditolak")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:       "kunci-rahasia-khusus-unit-test",
		AccessTokenTTL:  time.Millisecond,
		RefreshTokenTTL: time.Millisecond,
	})

	token, _ := m.GenerateAccessToken(1, "siswa")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err != ErrTokenExpired {
		t.Errorf("harap ErrTokenExpired, dapat: %v", err)
	}
}
