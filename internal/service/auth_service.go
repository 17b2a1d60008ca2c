package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"timewise_backend/internal/config"
	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
	"timewise_backend/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	UserRepo *repository.UserRepository
	Mail     *MailService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, mail *MailService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Mail:     mail,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Email = strings.ToLower(user.Email)
	if user.RoleID == 0 {
		user.RoleID = model.RoleStandard
	}
	return s.UserRepo.Create(user)
}

// Login responde lo mismo ante correo desconocido y contraseña incorrecta.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// RecoverPassword genera un token de 12 caracteres con 15 minutos de vida y
// lo envía por correo. Un fallo del SMTP se propaga como fallo de dependencia.
func (s *AuthService) RecoverPassword(email string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return util.ErrUserNotFound
	}

	token, err := generateResetToken(12)
	if err != nil {
		return err
	}

	expiry := time.Now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := s.UserRepo.Update(user); err != nil {
		return err
	}

	if err := s.Mail.SendPasswordReset(user.Email, user.Name, token); err != nil {
		return fmt.Errorf("%w: %v", util.ErrMailSend, err)
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	user, err := s.UserRepo.FindByResetToken(token)
	if err != nil {
		return util.ErrResetTokenInvalid
	}

	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return util.ErrResetTokenExpired
	}

	if ok, msg := validation.ValidPassword(newPassword); !ok {
		return util.Invalid(msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	return s.UserRepo.Update(user)
}

func generateResetToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = resetTokenChars[int(b)%len(resetTokenChars)]
	}
	return string(buf), nil
}
