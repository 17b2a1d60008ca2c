package util

import (
	"testing"
	"time"

	"timewise_backend/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 42}, RoleID: model.RoleAdmin}

	token, err := GenerateJWT(user, "secreto-de-prueba", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "secreto-de-prueba")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.RoleID != model.RoleAdmin {
		t.Errorf("RoleID = %d, want %d", claims.RoleID, model.RoleAdmin)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, RoleID: model.RoleStandard}

	token, err := GenerateJWT(user, "secreto-a", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secreto-b"); err == nil {
		t.Error("un token firmado con otro secreto debe rechazarse")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, RoleID: model.RoleStandard}

	token, err := GenerateJWT(user, "secreto", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secreto"); err == nil {
		t.Error("un token vencido debe rechazarse")
	}
}
