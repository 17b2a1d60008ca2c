package service

import (
	"testing"
	"time"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
)

// El recorrido completo de un usuario: categoría nueva, tarea asociada,
// tarea completada y estadísticas que lo reflejan.
func TestReadingScenario(t *testing.T) {
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	achievements := NewAchievementService(repository.NewAchievementRepository(db))
	tasks := NewTaskService(taskRepo, categoryRepo, achievements)
	categories := NewCategoryService(categoryRepo)
	stats := NewStatisticsService(taskRepo, categoryRepo)

	const userID = 1

	cat, err := categories.Create(CategoryCreate{Name: "lectura"})
	if err != nil {
		t.Fatalf("crear categoría: %v", err)
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format(util.DateFormat)
	task, err := tasks.Create(userID, TaskCreate{
		Title:      "Leer 20 páginas",
		Date:       tomorrow,
		CategoryID: &cat.ID,
		Duration:   intPtr(30),
	})
	if err != nil {
		t.Fatalf("crear tarea: %v", err)
	}

	status := string(model.TaskCompleted)
	if _, err := tasks.Update(task.ID, userID, TaskUpdate{Status: &status}); err != nil {
		t.Fatalf("completar tarea: %v", err)
	}

	summary, err := stats.Summary(userID, "todo")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(summary.Categories) != 1 {
		t.Fatalf("len(Categories) = %d, want 1", len(summary.Categories))
	}
	entry := summary.Categories[0]
	if entry.Name != "lectura" {
		t.Errorf("Name = %q, want lectura", entry.Name)
	}
	if entry.CompletedTasks != 1 {
		t.Errorf("CompletedTasks = %d, want 1", entry.CompletedTasks)
	}
	if summary.TotalCompletedTasks != 1 {
		t.Errorf("TotalCompletedTasks = %d, want 1", summary.TotalCompletedTasks)
	}

	feed, err := achievements.Feed(userID)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(feed) != 1 {
		t.Errorf("completar la tarea deja un logro en el feed, got %d", len(feed))
	}
}
