package service

import (
	"errors"
	"testing"
	"time"

	"timewise_backend/internal/config"
	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "secreto-de-prueba"
	cfg.JWT.ExpireTime = time.Hour
	svc := NewAuthService(repository.NewUserRepository(db), NewMailService(cfg.Mail), cfg)
	return svc, db
}

func registeredUser(t *testing.T, svc *AuthService, email string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     "Ana",
		Surname:  "Pérez",
		Age:      28,
		Email:    email,
		Password: "Secreto1",
	}
	if err := svc.Register(user); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	user := registeredUser(t, svc, "Ana@Ejemplo.com")

	if user.Password == "Secreto1" {
		t.Fatal("la contraseña no puede guardarse en claro")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Secreto1")); err != nil {
		t.Errorf("el hash debe verificar contra la contraseña original: %v", err)
	}
	if user.Email != "ana@ejemplo.com" {
		t.Errorf("el correo se normaliza a minúsculas, got %q", user.Email)
	}
	if user.RoleID != model.RoleStandard {
		t.Errorf("RoleID = %d, want estándar", user.RoleID)
	}
}

func TestRegisterDuplicateEmailAnyCase(t *testing.T) {
	svc, _ := newAuthService(t)
	registeredUser(t, svc, "ana@ejemplo.com")

	dup := &model.User{Name: "Otra", Surname: "Ana", Age: 30, Email: "ANA@EJEMPLO.COM", Password: "Secreto1"}
	if err := svc.Register(dup); !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("el correo duplicado con otras mayúsculas debe rechazarse, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)
	user := registeredUser(t, svc, "ana@ejemplo.com")

	token, err := svc.Login("ana@ejemplo.com", "Secreto1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := util.ParseJWT(token, "secreto-de-prueba")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %d, want %d", claims.UserID, user.ID)
	}

	refreshed, err := svc.UserRepo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if refreshed.LastLogin == nil {
		t.Error("el login debe registrar ultimo_login")
	}
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _ := newAuthService(t)
	registeredUser(t, svc, "ana@ejemplo.com")

	_, errUnknown := svc.Login("nadie@ejemplo.com", "Secreto1")
	_, errWrong := svc.Login("ana@ejemplo.com", "Incorrecta9")

	if !errors.Is(errUnknown, util.ErrInvalidCredentials) || !errors.Is(errWrong, util.ErrInvalidCredentials) {
		t.Errorf("correo desconocido y contraseña mala deben fallar igual: %v / %v", errUnknown, errWrong)
	}
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	user := registeredUser(t, svc, "ana@ejemplo.com")

	token := "abc123XYZ789"
	expiry := time.Now().Add(10 * time.Minute)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := svc.UserRepo.Update(user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := svc.ResetPassword("token-falso", "Nueva123"); !errors.Is(err, util.ErrResetTokenInvalid) {
		t.Errorf("token desconocido debe dar inválido, got %v", err)
	}

	if err := svc.ResetPassword(token, "Nueva123"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := svc.Login("ana@ejemplo.com", "Nueva123"); err != nil {
		t.Errorf("la nueva contraseña debe servir para entrar: %v", err)
	}
	if _, err := svc.Login("ana@ejemplo.com", "Secreto1"); err == nil {
		t.Error("la contraseña anterior ya no debe servir")
	}

	refreshed, _ := svc.UserRepo.FindByID(user.ID)
	if refreshed.ResetToken != nil {
		t.Error("el token se limpia tras usarse")
	}
}

func TestResetPasswordExpired(t *testing.T) {
	svc, _ := newAuthService(t)
	user := registeredUser(t, svc, "ana@ejemplo.com")

	token := "caducado1234"
	expiry := time.Now().Add(-time.Minute)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := svc.UserRepo.Update(user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := svc.ResetPassword(token, "Nueva123"); !errors.Is(err, util.ErrResetTokenExpired) {
		t.Errorf("token vencido debe dar expirado, got %v", err)
	}
}

func TestGenerateResetToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		token, err := generateResetToken(12)
		if err != nil {
			t.Fatalf("generateResetToken: %v", err)
		}
		if len(token) != 12 {
			t.Fatalf("len = %d, want 12", len(token))
		}
		for _, r := range token {
			if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
				t.Fatalf("carácter fuera del alfabeto: %q", token)
			}
		}
		seen[token] = true
	}
	if len(seen) < 2 {
		t.Error("los tokens deben variar entre llamadas")
	}
}

func TestRecoverPasswordUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	if err := svc.RecoverPassword("nadie@ejemplo.com"); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("correo desconocido debe dar ErrUserNotFound, got %v", err)
	}
}

func TestRecoverPasswordWrapsMailFailure(t *testing.T) {
	svc, _ := newAuthService(t)
	registeredUser(t, svc, "ana@ejemplo.com")

	// Sin SMTP configurado el envío falla; el error debe envolver el
	// centinela para que el controlador lo distinga con errors.Is.
	err := svc.RecoverPassword("ana@ejemplo.com")
	if !errors.Is(err, util.ErrMailSend) {
		t.Fatalf("fallo de correo debe envolver ErrMailSend, got %v", err)
	}

	// El token queda generado aunque el envío falle.
	user, findErr := svc.UserRepo.FindByEmail("ana@ejemplo.com")
	if findErr != nil {
		t.Fatalf("FindByEmail: %v", findErr)
	}
	if user.ResetToken == nil || len(*user.ResetToken) != 12 {
		t.Error("el token de recuperación debe quedar almacenado")
	}
}
