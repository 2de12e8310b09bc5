package services

import (
	"os"
	"testing"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	initTestJWT(t)

	refresh, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	userID, err := ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("user ID = %q, want user-123", userID)
	}
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	initTestJWT(t)

	access, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateRefreshToken(access); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestValidateRefreshTokenRejectsGarbage(t *testing.T) {
	initTestJWT(t)

	if _, err := ValidateRefreshToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestAccessTokenCarriesIssuer(t *testing.T) {
	initTestJWT(t)

	access, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parsing issued token: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["iss"] != utils.JWTIssuer {
		t.Errorf("issuer = %v, want %s", claims["iss"], utils.JWTIssuer)
	}
	if claims["type"] != "access" {
		t.Errorf("type = %v, want access", claims["type"])
	}
}
