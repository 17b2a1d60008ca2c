package service

import (
	"strings"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
	"timewise_backend/internal/validation"
)

type CategoryCreate struct {
	Name         string
	Description  string
	DefaultColor string
}

type CategoryUpdate struct {
	Name         *string
	Description  *string
	DefaultColor *string
}

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

func (s *CategoryService) Create(in CategoryCreate) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if ok, msg := validation.ValidString(name, 2, 100, "Nombre"); !ok {
		return nil, util.Invalid(msg)
	}
	if !validation.ValidHexColor(in.DefaultColor) {
		return nil, util.Invalid("El color debe ser hexadecimal, por ejemplo #3498db")
	}

	// La unicidad del nombre no distingue mayúsculas.
	if _, err := s.CategoryRepo.FindByName(name); err == nil {
		return nil, util.ErrDuplicateCategory
	}

	category := &model.Category{
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		DefaultColor: in.DefaultColor,
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *CategoryService) Get(id uint) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, in CategoryUpdate) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrCategoryNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if ok, msg := validation.ValidString(name, 2, 100, "Nombre"); !ok {
			return nil, util.Invalid(msg)
		}
		if _, err := s.CategoryRepo.FindByNameExcluding(name, category.ID); err == nil {
			return nil, util.ErrDuplicateCategory
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = strings.TrimSpace(*in.Description)
	}
	if in.DefaultColor != nil {
		if !validation.ValidHexColor(*in.DefaultColor) {
			return nil, util.Invalid("El color debe ser hexadecimal, por ejemplo #3498db")
		}
		category.DefaultColor = *in.DefaultColor
	}

	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		return util.ErrCategoryNotFound
	}
	return s.CategoryRepo.Delete(category)
}
