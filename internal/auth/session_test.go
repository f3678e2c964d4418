package auth

import (
	"testing"
)

func TestMintAndVerifySessionToken(t *testing.T) {
	token, err := MintSessionToken("test-secret", "1234567890", "BANDIT", []string{"331", "Admin"})
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	claims, err := VerifySessionToken("test-secret", token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.UserID() != "1234567890" {
		t.Errorf("Expected user 1234567890, got %s", claims.UserID())
	}
	if claims.DisplayName() != "BANDIT" {
		t.Errorf("Expected display name BANDIT, got %s", claims.DisplayName())
	}
	if !claims.HasRole("Admin") {
		t.Error("Expected Admin role")
	}
	if claims.HasRole("GOD") {
		t.Error("Unexpected GOD role")
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, err := MintSessionToken("secret-a", "42", "X", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VerifySessionToken("secret-b", token); err == nil {
		t.Fatal("Expected verification failure with wrong secret")
	}
}

func TestVerifySessionToken_Garbage(t *testing.T) {
	if _, err := VerifySessionToken("secret", "not-a-token"); err == nil {
		t.Fatal("Expected parse failure")
	}
}
