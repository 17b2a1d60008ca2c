package service

import (
	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
)

type ModeService struct {
	ModeRepo *repository.ModeRepository
}

func NewModeService(modeRepo *repository.ModeRepository) *ModeService {
	return &ModeService{ModeRepo: modeRepo}
}

func (s *ModeService) List() ([]model.Mode, error) {
	return s.ModeRepo.FindAll()
}

func (s *ModeService) Get(id uint) (*model.Mode, error) {
	mode, err := s.ModeRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrModeNotFound
	}
	return mode, nil
}

func (s *ModeService) ActiveForUser(userID uint) ([]model.Mode, error) {
	return s.ModeRepo.FindActiveByUser(userID)
}

// Activate es idempotente: activar un modo ya activo devuelve el
// enlace existente sin crear duplicados.
func (s *ModeService) Activate(userID, modeID uint) (*model.Mode, error) {
	mode, err := s.ModeRepo.FindByID(modeID)
	if err != nil {
		return nil, util.ErrModeNotFound
	}

	if _, err := s.ModeRepo.FindLink(userID, modeID); err == nil {
		return mode, nil
	}

	link := &model.UserMode{UserID: userID, ModeID: modeID}
	if err := s.ModeRepo.CreateLink(link); err != nil {
		return nil, err
	}
	return mode, nil
}

func (s *ModeService) Deactivate(userID, modeID uint) error {
	if _, err := s.ModeRepo.FindByID(modeID); err != nil {
		return util.ErrModeNotFound
	}
	link, err := s.ModeRepo.FindLink(userID, modeID)
	if err != nil {
		return util.ErrModeNotActive
	}
	return s.ModeRepo.DeleteLink(link)
}
