package repository

import (
	"timewise_backend/internal/model"

	"gorm.io/gorm"
)

type ModeRepository struct {
	DB *gorm.DB
}

func NewModeRepository(db *gorm.DB) *ModeRepository {
	return &ModeRepository{DB: db}
}

func (r *ModeRepository) FindAll() ([]model.Mode, error) {
	var modes []model.Mode
	err := r.DB.Find(&modes).Error
	return modes, err
}

func (r *ModeRepository) FindByID(id uint) (*model.Mode, error) {
	var mode model.Mode
	err := r.DB.First(&mode, id).Error
	return &mode, err
}

// FindActiveByUser devuelve los modos que el usuario tiene activados,
// resolviendo el join con usuario_modos.
func (r *ModeRepository) FindActiveByUser(userID uint) ([]model.Mode, error) {
	var modes []model.Mode
	err := r.DB.Joins("JOIN usuario_modos ON usuario_modos.mode_id = modos.id").
		Where("usuario_modos.user_id = ?", userID).
		Find(&modes).Error
	return modes, err
}

func (r *ModeRepository) FindLink(userID, modeID uint) (*model.UserMode, error) {
	var link model.UserMode
	err := r.DB.Where("user_id = ? AND mode_id = ?", userID, modeID).First(&link).Error
	return &link, err
}

func (r *ModeRepository) CreateLink(link *model.UserMode) error {
	return r.DB.Create(link).Error
}

func (r *ModeRepository) DeleteLink(link *model.UserMode) error {
	return r.DB.Delete(link).Error
}
