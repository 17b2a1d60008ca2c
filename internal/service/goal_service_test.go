package service

import (
	"errors"
	"testing"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
)

func newGoalService(t *testing.T) (*GoalService, *AchievementService) {
	t.Helper()
	db := newTestDB(t)
	achievements := NewAchievementService(repository.NewAchievementRepository(db))
	return NewGoalService(repository.NewGoalRepository(db), achievements), achievements
}

func TestGoalCreateDefaults(t *testing.T) {
	svc, _ := newGoalService(t)

	goal, err := svc.Create(1, GoalCreate{Description: "Leer 5 libros", Frequency: "Mensual", Target: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if goal.Frequency != model.FrequencyMonthly {
		t.Errorf("Frequency = %q, want mensual", goal.Frequency)
	}
	if goal.Progress != 0 || goal.Completed {
		t.Errorf("una meta nueva arranca con progreso 0 y sin completar; got %d/%v", goal.Progress, goal.Completed)
	}
}

func TestGoalCreateValidation(t *testing.T) {
	svc, _ := newGoalService(t)

	var vErr *util.ValidationError
	if _, err := svc.Create(1, GoalCreate{Description: "ab", Frequency: "diaria", Target: 3}); !errors.As(err, &vErr) {
		t.Errorf("descripción corta debe dar error de validación, got %v", err)
	}
	if _, err := svc.Create(1, GoalCreate{Description: "Meditar", Frequency: "anual", Target: 3}); !errors.As(err, &vErr) {
		t.Errorf("frecuencia anual debe rechazarse, got %v", err)
	}
	if _, err := svc.Create(1, GoalCreate{Description: "Meditar", Frequency: "diaria", Target: 0}); !errors.As(err, &vErr) {
		t.Errorf("objetivo cero debe rechazarse, got %v", err)
	}
}

func TestGoalProgressFlipsBothWays(t *testing.T) {
	svc, achievements := newGoalService(t)

	goal, err := svc.Create(7, GoalCreate{Description: "Sesiones de estudio", Frequency: "semanal", Target: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateProgress(goal.ID, 7, 3)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if !updated.Completed {
		t.Fatal("progreso igual al objetivo debe marcar la meta completada")
	}

	feed, err := achievements.Feed(7)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(feed) != 1 || feed[0].Kind != model.AchievementGoal {
		t.Fatalf("completar la meta debe generar un logro de tipo meta, feed=%v", feed)
	}

	// Bajar el progreso reabre la meta.
	updated, err = svc.UpdateProgress(goal.ID, 7, 1)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if updated.Completed {
		t.Fatal("progreso por debajo del objetivo debe reabrir la meta")
	}

	// Completarla de nuevo genera otro logro; repetir el mismo progreso no.
	if _, err := svc.UpdateProgress(goal.ID, 7, 5); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if _, err := svc.UpdateProgress(goal.ID, 7, 6); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	feed, _ = achievements.Feed(7)
	if len(feed) != 2 {
		t.Errorf("solo la transición a completada genera logros, feed=%d", len(feed))
	}
}

func TestGoalProgressNegative(t *testing.T) {
	svc, _ := newGoalService(t)

	goal, _ := svc.Create(1, GoalCreate{Description: "Caminar diario", Frequency: "diaria", Target: 1})
	if _, err := svc.UpdateProgress(goal.ID, 1, -1); !errors.Is(err, util.ErrNegativeProgress) {
		t.Errorf("progreso negativo debe dar ErrNegativeProgress, got %v", err)
	}
}

func TestGoalOwnership(t *testing.T) {
	svc, _ := newGoalService(t)

	goal, _ := svc.Create(1, GoalCreate{Description: "Meta privada", Frequency: "diaria", Target: 2})

	if _, err := svc.Get(goal.ID, 2); !errors.Is(err, util.ErrGoalNotFound) {
		t.Errorf("otra cuenta debe recibir 404, got %v", err)
	}
	if _, err := svc.UpdateProgress(goal.ID, 2, 1); !errors.Is(err, util.ErrGoalNotFound) {
		t.Errorf("otra cuenta no puede tocar el progreso, got %v", err)
	}
	if err := svc.Delete(goal.ID, 2); !errors.Is(err, util.ErrGoalNotFound) {
		t.Errorf("otra cuenta no puede borrar la meta, got %v", err)
	}
}
