package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"timewise_backend/internal/model"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/util"
)

// CategoryStats resume las tareas completadas de una categoría.
type CategoryStats struct {
	CategoryID     uint    `json:"categoria_id"`
	Name           string  `json:"nombre"`
	Color          string  `json:"color"`
	TimeInvested   int     `json:"tiempo_invertido"`
	CompletedTasks int     `json:"tareas_completadas"`
	Productivity   float64 `json:"productividad"`
}

type StatsSummary struct {
	TotalTimeInvested   int             `json:"total_tiempo_invertido"`
	TotalCompletedTasks int             `json:"total_tareas_completadas"`
	AvgProductivity     float64         `json:"productividad_promedio"`
	Categories          []CategoryStats `json:"categorias"`
	Period              string          `json:"periodo"`
}

type ChartData struct {
	Labels       []string  `json:"labels"`
	Time         []int     `json:"tiempo"`
	Tasks        []int     `json:"tareas"`
	Colors       []string  `json:"colores"`
	Productivity []float64 `json:"productividad"`
}

type StatisticsService struct {
	TaskRepo     *repository.TaskRepository
	CategoryRepo *repository.CategoryRepository
}

func NewStatisticsService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *StatisticsService {
	return &StatisticsService{TaskRepo: taskRepo, CategoryRepo: categoryRepo}
}

// periodStart resuelve el inicio del período: semanal arranca el lunes
// más reciente, mensual el día 1, anual el 1 de enero, todo sin cota.
func periodStart(period string, now time.Time) (*time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case "semanal":
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return &start, nil
	case "mensual":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &start, nil
	case "anual":
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return &start, nil
	case "todo":
		return nil, nil
	default:
		return nil, util.ErrInvalidPeriod
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// summarize agrega tareas completadas por categoría. Es pura: no toca
// la base de datos, lo que la deja lista para probar en aislamiento.
func summarize(tasks []model.Task, categories []model.Category, period string) *StatsSummary {
	type bucket struct {
		time      int
		completed int
	}
	buckets := make(map[uint]*bucket)
	for _, t := range tasks {
		var catID uint
		if t.CategoryID != nil {
			catID = *t.CategoryID
		}
		b, ok := buckets[catID]
		if !ok {
			b = &bucket{}
			buckets[catID] = b
		}
		if t.Duration != nil {
			b.time += *t.Duration
		}
		b.completed++
	}

	known := make(map[uint]model.Category, len(categories)+1)
	for _, c := range categories {
		known[c.ID] = c
	}
	known[0] = model.UncategorizedCategory

	ids := make([]uint, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	summary := &StatsSummary{
		Categories: make([]CategoryStats, 0, len(ids)),
		Period:     capitalize(period),
	}
	var prodSum float64
	for _, id := range ids {
		b := buckets[id]
		cat := known[id]

		var prod float64
		if b.time > 0 {
			prod = math.Min(round1(float64(b.completed)*60/float64(b.time)*100), 100)
		}

		summary.Categories = append(summary.Categories, CategoryStats{
			CategoryID:     id,
			Name:           cat.Name,
			Color:          cat.DefaultColor,
			TimeInvested:   b.time,
			CompletedTasks: b.completed,
			Productivity:   prod,
		})
		summary.TotalTimeInvested += b.time
		summary.TotalCompletedTasks += b.completed
		prodSum += prod
	}
	if len(summary.Categories) > 0 {
		summary.AvgProductivity = round1(prodSum / float64(len(summary.Categories)))
	}
	return summary
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *StatisticsService) Summary(userID uint, period string) (*StatsSummary, error) {
	since, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepo.FindCompleted(userID, since)
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return summarize(tasks, categories, period), nil
}

func (s *StatisticsService) Chart(userID uint, period string) (*ChartData, error) {
	summary, err := s.Summary(userID, period)
	if err != nil {
		return nil, err
	}

	chart := &ChartData{
		Labels:       make([]string, 0, len(summary.Categories)),
		Time:         make([]int, 0, len(summary.Categories)),
		Tasks:        make([]int, 0, len(summary.Categories)),
		Colors:       make([]string, 0, len(summary.Categories)),
		Productivity: make([]float64, 0, len(summary.Categories)),
	}
	for _, c := range summary.Categories {
		chart.Labels = append(chart.Labels, c.Name)
		chart.Time = append(chart.Time, c.TimeInvested)
		chart.Tasks = append(chart.Tasks, c.CompletedTasks)
		chart.Colors = append(chart.Colors, c.Color)
		chart.Productivity = append(chart.Productivity, c.Productivity)
	}
	return chart, nil
}
