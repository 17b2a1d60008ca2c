package service

import (
	"errors"
	"strings"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserUpdate es la forma parcial de actualización: solo los campos
// presentes (punteros no nil) se aplican.
type UserUpdate struct {
	Name     *string
	Surname  *string
	Age      *int
	Email    *string
	Password *string
	RoleID   *uint
}

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) CreateUser(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.Email = strings.ToLower(user.Email)
	return s.UserRepo.Create(user)
}

// UpdateUser aplica únicamente los campos suministrados. El correo debe
// seguir siendo único excluyendo la propia fila.
func (s *UserService) UpdateUser(id uint, update UserUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if update.Email != nil {
		if _, err := s.UserRepo.FindByEmailExcluding(*update.Email, id); err == nil {
			return nil, util.ErrEmailRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = strings.ToLower(*update.Email)
	}
	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Surname != nil {
		user.Surname = strings.TrimSpace(*update.Surname)
	}
	if update.Age != nil {
		user.Age = *update.Age
	}
	if update.RoleID != nil {
		user.RoleID = *update.RoleID
	}
	if update.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser elimina al usuario en cascada. El administrador nunca puede
// borrarse a sí mismo por esta vía.
func (s *UserService) DeleteUser(id, callerID uint) error {
	if id == callerID {
		return util.ErrSelfDelete
	}
	if _, err := s.UserRepo.FindByID(id); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.Delete(id)
}

// ChangePassword exige la contraseña actual, que las nuevas coincidan y que
// la nueva sea distinta de la vigente.
func (s *UserService) ChangePassword(userID uint, current, newPassword, confirm string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return util.ErrWrongPassword
	}
	if newPassword != confirm {
		return util.ErrPasswordMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(newPassword)) == nil {
		return util.ErrPasswordUnchanged
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.UserRepo.Update(user)
}

func (s *UserService) ChangeEmail(userID uint, newEmail, currentPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return util.ErrWrongPassword
	}
	if strings.EqualFold(newEmail, user.Email) {
		return util.ErrEmailUnchanged
	}
	if _, err := s.UserRepo.FindByEmailExcluding(newEmail, userID); err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user.Email = strings.ToLower(newEmail)
	return s.UserRepo.Update(user)
}

func (s *UserService) UpdateAvatar(userID uint, path string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Avatar = path
	return s.UserRepo.Update(user)
}
