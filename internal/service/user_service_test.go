package service

import (
	"errors"
	"testing"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(repository.NewUserRepository(newTestDB(t)))
}

func createUser(t *testing.T, svc *UserService, email string) *model.User {
	t.Helper()
	user := &model.User{Name: "Ana", Surname: "Pérez", Age: 28, Email: email, Password: "Secreto1", RoleID: model.RoleStandard}
	if err := svc.CreateUser(user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func TestDeleteUserSelf(t *testing.T) {
	svc := newUserService(t)
	admin := createUser(t, svc, "admin@ejemplo.com")

	if err := svc.DeleteUser(admin.ID, admin.ID); !errors.Is(err, util.ErrSelfDelete) {
		t.Errorf("borrarse a sí mismo debe rechazarse, got %v", err)
	}

	other := createUser(t, svc, "otra@ejemplo.com")
	if err := svc.DeleteUser(other.ID, admin.ID); err != nil {
		t.Errorf("borrar a otra cuenta debe funcionar: %v", err)
	}
}

func TestChangePasswordRules(t *testing.T) {
	svc := newUserService(t)
	user := createUser(t, svc, "ana@ejemplo.com")

	if err := svc.ChangePassword(user.ID, "Incorrecta9", "Nueva123", "Nueva123"); !errors.Is(err, util.ErrWrongPassword) {
		t.Errorf("la contraseña actual debe verificar, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Secreto1", "Nueva123", "Distinta1"); !errors.Is(err, util.ErrPasswordMismatch) {
		t.Errorf("nueva y confirmación deben coincidir, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Secreto1", "Secreto1", "Secreto1"); !errors.Is(err, util.ErrPasswordUnchanged) {
		t.Errorf("la nueva debe diferir de la actual, got %v", err)
	}

	if err := svc.ChangePassword(user.ID, "Secreto1", "Nueva123", "Nueva123"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	refreshed, _ := svc.GetUserByID(user.ID)
	if bcrypt.CompareHashAndPassword([]byte(refreshed.Password), []byte("Nueva123")) != nil {
		t.Error("la nueva contraseña debe quedar aplicada")
	}
}

func TestChangeEmailRules(t *testing.T) {
	svc := newUserService(t)
	user := createUser(t, svc, "ana@ejemplo.com")
	createUser(t, svc, "ocupado@ejemplo.com")

	if err := svc.ChangeEmail(user.ID, "nuevo@ejemplo.com", "Incorrecta9"); !errors.Is(err, util.ErrWrongPassword) {
		t.Errorf("la contraseña debe verificar antes de cambiar el correo, got %v", err)
	}
	if err := svc.ChangeEmail(user.ID, "ANA@ejemplo.com", "Secreto1"); !errors.Is(err, util.ErrEmailUnchanged) {
		t.Errorf("el mismo correo con otra caja no es un cambio, got %v", err)
	}
	if err := svc.ChangeEmail(user.ID, "ocupado@ejemplo.com", "Secreto1"); !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("un correo en uso debe rechazarse, got %v", err)
	}

	if err := svc.ChangeEmail(user.ID, "Nuevo@Ejemplo.com", "Secreto1"); err != nil {
		t.Fatalf("ChangeEmail: %v", err)
	}
	refreshed, _ := svc.GetUserByID(user.ID)
	if refreshed.Email != "nuevo@ejemplo.com" {
		t.Errorf("el correo se guarda en minúsculas, got %q", refreshed.Email)
	}
}
