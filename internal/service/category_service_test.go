package service

import (
	"errors"
	"testing"

	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
)

func TestCategoryDuplicateNameAnyCase(t *testing.T) {
	svc := NewCategoryService(repository.NewCategoryRepository(newTestDB(t)))

	if _, err := svc.Create(CategoryCreate{Name: "Lectura", DefaultColor: "#3498db"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(CategoryCreate{Name: "LECTURA"}); !errors.Is(err, util.ErrDuplicateCategory) {
		t.Errorf("el nombre duplicado con otras mayúsculas debe rechazarse, got %v", err)
	}
}

func TestCategoryUpdateKeepsOwnName(t *testing.T) {
	svc := NewCategoryService(repository.NewCategoryRepository(newTestDB(t)))

	cat, err := svc.Create(CategoryCreate{Name: "Lectura", DefaultColor: "#3498db"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Renombrarse a sí misma (con otra caja) no choca con la unicidad.
	name := "lectura"
	if _, err := svc.Update(cat.ID, CategoryUpdate{Name: &name}); err != nil {
		t.Errorf("renombrar a su propio nombre debe permitirse: %v", err)
	}

	other, err := svc.Create(CategoryCreate{Name: "Deporte"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	taken := "Lectura"
	if _, err := svc.Update(other.ID, CategoryUpdate{Name: &taken}); !errors.Is(err, util.ErrDuplicateCategory) {
		t.Errorf("tomar el nombre de otra categoría debe rechazarse, got %v", err)
	}
}

func TestCategoryInvalidColor(t *testing.T) {
	svc := NewCategoryService(repository.NewCategoryRepository(newTestDB(t)))

	var vErr *util.ValidationError
	if _, err := svc.Create(CategoryCreate{Name: "Lectura", DefaultColor: "azul"}); !errors.As(err, &vErr) {
		t.Errorf("un color no hexadecimal debe rechazarse, got %v", err)
	}
}
