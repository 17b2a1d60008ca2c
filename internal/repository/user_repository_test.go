package repository

import (
	"testing"
	"time"

	"timewise_backend/internal/model"
)

func TestFindByEmailCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{Name: "Ana", Surname: "Pérez", Age: 28, Email: "ana@ejemplo.com", Password: "hash"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByEmail("ANA@Ejemplo.COM")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("ID = %d, want %d", found.ID, user.ID)
	}

	// Excluyendo la propia fila no debe haber choque.
	if _, err := repo.FindByEmailExcluding("ana@ejemplo.com", user.ID); err == nil {
		t.Error("excluir la propia fila no debe devolver coincidencia")
	}
}

func TestDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	goals := NewGoalRepository(db)
	achievements := NewAchievementRepository(db)

	user := &model.User{Name: "Ana", Surname: "Pérez", Age: 28, Email: "ana@ejemplo.com", Password: "hash"}
	if err := users.Create(user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	if err := tasks.Create(&model.Task{UserID: user.ID, Title: "Tarea", Date: time.Now()}); err != nil {
		t.Fatalf("Create task: %v", err)
	}
	if err := goals.Create(&model.Goal{UserID: user.ID, Description: "Meta", Frequency: model.FrequencyDaily, Target: 1, StartDate: time.Now()}); err != nil {
		t.Fatalf("Create goal: %v", err)
	}
	if err := achievements.Create(&model.Achievement{UserID: user.ID, Message: "Logro", Kind: model.AchievementTask}); err != nil {
		t.Fatalf("Create achievement: %v", err)
	}

	if err := users.Delete(user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := users.FindByID(user.ID); err == nil {
		t.Error("el usuario debe desaparecer")
	}
	if rows, _ := tasks.FindByUser(user.ID, nil); len(rows) != 0 {
		t.Errorf("las tareas deben borrarse en cascada, quedan %d", len(rows))
	}
	if rows, _ := goals.FindByUser(user.ID); len(rows) != 0 {
		t.Errorf("las metas deben borrarse en cascada, quedan %d", len(rows))
	}
	if rows, _ := achievements.FindByUser(user.ID); len(rows) != 0 {
		t.Errorf("los logros deben borrarse en cascada, quedan %d", len(rows))
	}
}
