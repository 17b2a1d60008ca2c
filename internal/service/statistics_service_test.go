package service

import (
	"errors"
	"testing"
	"time"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
)

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func TestPeriodStart(t *testing.T) {
	// Miércoles 26 de agosto de 2026.
	now := time.Date(2026, time.August, 26, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		period string
		want   time.Time
	}{
		{"semanal", time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)},
		{"mensual", time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{"anual", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		start, err := periodStart(tc.period, now)
		if err != nil {
			t.Fatalf("periodStart(%q): %v", tc.period, err)
		}
		if start == nil || !start.Equal(tc.want) {
			t.Errorf("periodStart(%q) = %v, want %v", tc.period, start, tc.want)
		}
	}

	start, err := periodStart("todo", now)
	if err != nil || start != nil {
		t.Errorf("todo no acota el período, got %v/%v", start, err)
	}

	if _, err := periodStart("quincenal", now); !errors.Is(err, util.ErrInvalidPeriod) {
		t.Errorf("período desconocido debe dar ErrInvalidPeriod, got %v", err)
	}
}

func TestPeriodStartMondayOnSunday(t *testing.T) {
	// Domingo 30 de agosto de 2026: la semana sigue empezando el lunes 24.
	now := time.Date(2026, time.August, 30, 8, 0, 0, 0, time.UTC)
	start, err := periodStart("semanal", now)
	if err != nil {
		t.Fatalf("periodStart: %v", err)
	}
	want := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := summarize(nil, nil, "semanal")

	if summary.TotalTimeInvested != 0 || summary.TotalCompletedTasks != 0 || summary.AvgProductivity != 0 {
		t.Errorf("sin tareas todo es cero: %+v", summary)
	}
	if len(summary.Categories) != 0 {
		t.Errorf("sin tareas no hay categorías, got %d", len(summary.Categories))
	}
	if summary.Period != "Semanal" {
		t.Errorf("el período se devuelve capitalizado, got %q", summary.Period)
	}
}

func TestSummarizeGroupsAndFormula(t *testing.T) {
	categories := []model.Category{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Estudio", DefaultColor: "#3498db"},
	}
	tasks := []model.Task{
		// Estudio: 2 completadas en 60 min → 200% capado a 100.
		{CategoryID: uintPtr(1), Duration: intPtr(30), Status: model.TaskCompleted},
		{CategoryID: uintPtr(1), Duration: intPtr(30), Status: model.TaskCompleted},
		// Sin categoría: 1 completada en 120 min → 50%.
		{CategoryID: nil, Duration: intPtr(120), Status: model.TaskCompleted},
	}

	summary := summarize(tasks, categories, "todo")

	if summary.TotalTimeInvested != 180 {
		t.Errorf("TotalTimeInvested = %d, want 180", summary.TotalTimeInvested)
	}
	if summary.TotalCompletedTasks != 3 {
		t.Errorf("TotalCompletedTasks = %d, want 3", summary.TotalCompletedTasks)
	}
	if len(summary.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(summary.Categories))
	}

	uncategorized := summary.Categories[0]
	if uncategorized.CategoryID != 0 || uncategorized.Name != "Sin categoría" || uncategorized.Color != "#95a5a6" {
		t.Errorf("el centinela Sin categoría está mal: %+v", uncategorized)
	}
	if uncategorized.Productivity != 50 {
		t.Errorf("productividad sin categoría = %v, want 50", uncategorized.Productivity)
	}

	study := summary.Categories[1]
	if study.Name != "Estudio" || study.Productivity != 100 {
		t.Errorf("productividad de Estudio debe caparse en 100: %+v", study)
	}

	if summary.AvgProductivity != 75 {
		t.Errorf("AvgProductivity = %v, want 75", summary.AvgProductivity)
	}
	if summary.Period != "Todo" {
		t.Errorf("Period = %q, want Todo", summary.Period)
	}
}

func TestSummarizeZeroTime(t *testing.T) {
	tasks := []model.Task{
		{CategoryID: nil, Duration: nil, Status: model.TaskCompleted},
	}
	summary := summarize(tasks, nil, "todo")

	if summary.Categories[0].Productivity != 0 {
		t.Errorf("sin tiempo invertido la productividad es 0, got %v", summary.Categories[0].Productivity)
	}
	if summary.TotalCompletedTasks != 1 {
		t.Errorf("TotalCompletedTasks = %d, want 1", summary.TotalCompletedTasks)
	}
}

func TestChartParallelArrays(t *testing.T) {
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	svc := NewStatisticsService(taskRepo, categoryRepo)

	cat := &model.Category{Name: "Trabajo", DefaultColor: "#e74c3c"}
	if err := categoryRepo.Create(cat); err != nil {
		t.Fatalf("crear categoría: %v", err)
	}
	task := &model.Task{
		UserID:     1,
		CategoryID: &cat.ID,
		Title:      "Informe mensual",
		Date:       time.Now(),
		Duration:   intPtr(60),
		Status:     model.TaskCompleted,
	}
	if err := taskRepo.Create(task); err != nil {
		t.Fatalf("crear tarea: %v", err)
	}

	chart, err := svc.Chart(1, "todo")
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if len(chart.Labels) != 1 || len(chart.Time) != 1 || len(chart.Tasks) != 1 ||
		len(chart.Colors) != 1 || len(chart.Productivity) != 1 {
		t.Fatalf("las series deben tener la misma longitud: %+v", chart)
	}
	if chart.Labels[0] != "Trabajo" || chart.Colors[0] != "#e74c3c" || chart.Time[0] != 60 {
		t.Errorf("series mal pobladas: %+v", chart)
	}
}
