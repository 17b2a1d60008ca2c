package service

import (
	"testing"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
)

func TestPickMessageUsesRightCatalog(t *testing.T) {
	inCatalog := func(msg string, catalog []string) bool {
		for _, m := range catalog {
			if m == msg {
				return true
			}
		}
		return false
	}

	for i := 0; i < 50; i++ {
		if msg := PickMessage(model.AchievementTask); !inCatalog(msg, taskMessages) {
			t.Fatalf("mensaje de tarea fuera del catálogo: %q", msg)
		}
		if msg := PickMessage(model.AchievementGoal); !inCatalog(msg, goalMessages) {
			t.Fatalf("mensaje de meta fuera del catálogo: %q", msg)
		}
	}
}

func TestAchievementFeedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewAchievementService(repository.NewAchievementRepository(db))

	if err := svc.Record(1, model.AchievementTask); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.Record(1, model.AchievementGoal); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.Record(2, model.AchievementTask); err != nil {
		t.Fatalf("Record: %v", err)
	}

	feed, err := svc.Feed(1)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("len(feed) = %d, want 2 (solo los logros propios)", len(feed))
	}
	if feed[0].CreatedAt.Before(feed[1].CreatedAt) {
		t.Error("el feed se ordena del más reciente al más antiguo")
	}
	for _, a := range feed {
		if a.Message == "" {
			t.Error("cada logro guarda un mensaje del catálogo")
		}
	}
}
