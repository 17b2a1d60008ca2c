package repository

import (
	"strings"

	"timewise_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

// FindByName compara en minúsculas: el nombre es único case-insensitive.
func (r *CategoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&category).Error
	return &category, err
}

func (r *CategoryRepository) FindByNameExcluding(name string, excludeID uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), excludeID).First(&category).Error
	return &category, err
}

func (r *CategoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(category *model.Category) error {
	return r.DB.Delete(category).Error
}
