package auth

import (
	"testing"

	"github.com/phuchoang/InteriorHub/internal/config"
	"github.com/phuchoang/InteriorHub/internal/constant"
)

func newTestJwt(secret string) *JWT {
	return NewJwt(config.AuthConfig{JWT_SECRET: secret}, nil)
}

// Generate a token pair and verify both tokens round-trip their payload.
func TestGenerateAndVerifyJwtToken(t *testing.T) {
	jwtService := newTestJwt("test-secret")

	payload := JWTPayload{
		ID:       "id1234",
		Email:    "admin@interiorhub.dev",
		FullName: "Admin",
		Role:     constant.UserRoleAdmin,
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	if err != nil {
		t.Fatalf("An error occurred during refresh token and access token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Fatalf("An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("Expected refresh token type %s, got %s", constant.JWT_TYPE_REFRESH, refreshClaims.Type)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Fatalf("An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("Expected access token type %s, got %s", constant.JWT_TYPE_ACCESS, accessClaims.Type)
	}

	if accessClaims.User != payload {
		t.Errorf("Expected payload %+v, got %+v", payload, accessClaims.User)
	}

	if accessClaims.EXP <= accessClaims.IAT {
		t.Error("Expected access token expiry to be after issue time")
	}
}

func TestVerifyJwtTokenWrongSecret(t *testing.T) {
	jwtService := newTestJwt("test-secret")

	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{ID: "id1234"})
	if err != nil {
		t.Fatalf("An error occurred during token generation. Error: %v", err)
	}

	other := newTestJwt("another-secret")
	if _, err := other.VerifyJwtToken(*accessToken); err == nil {
		t.Error("Expected verification with a different secret to fail")
	}
}

func TestVerifyJwtTokenMalformed(t *testing.T) {
	jwtService := newTestJwt("test-secret")

	if _, err := jwtService.VerifyJwtToken("not-a-jwt"); err == nil {
		t.Error("Expected verification of a malformed token to fail")
	}
}
