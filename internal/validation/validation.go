// Package validation reúne los predicados de campo compartidos por los
// handlers de creación y actualización. Todas las funciones son puras:
// sin estado, sin acceso a datos.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"timewise_backend/internal/model"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidID acepta únicamente enteros positivos.
func ValidID(id int) bool {
	return id > 0
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword exige mínimo 6 caracteres, una mayúscula y un dígito.
func ValidPassword(password string) (bool, string) {
	if len(password) < 6 {
		return false, "La contraseña debe tener al menos 6 caracteres"
	}
	hasUpper := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		return false, "La contraseña debe contener al menos una mayúscula"
	}
	if !hasDigit {
		return false, "La contraseña debe contener al menos un número"
	}
	return true, ""
}

// ValidString comprueba que el texto, tras recortar espacios, tenga una
// longitud dentro de [min, max].
func ValidString(s string, min, max int, field string) (bool, string) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false, fmt.Sprintf("%s no puede estar vacío", field)
	}
	if len(trimmed) < min || len(trimmed) > max {
		return false, fmt.Sprintf("%s debe tener entre %d y %d caracteres", field, min, max)
	}
	return true, ""
}

func ValidAge(age int) (bool, string) {
	if age < 13 || age > 120 {
		return false, "La edad debe estar entre 13 y 120 años"
	}
	return true, ""
}

func ValidPriority(p string) bool {
	switch model.TaskPriority(p) {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return true
	}
	return false
}

func ValidTaskStatus(s string) bool {
	switch model.TaskStatus(s) {
	case model.TaskPending, model.TaskProgress, model.TaskCompleted, model.TaskPaused:
		return true
	}
	return false
}

func ValidFrequency(f string) bool {
	switch model.GoalFrequency(f) {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyMonthly:
		return true
	}
	return false
}

func ValidRepetition(r string) bool {
	switch model.Repetition(r) {
	case model.RepeatNone, model.RepeatDaily, model.RepeatWeekly, model.RepeatMonthly:
		return true
	}
	return false
}

// ValidHexColor acepta #RGB o #RRGGBB sin distinguir mayúsculas. La cadena
// vacía es válida: el color es opcional.
func ValidHexColor(color string) bool {
	if color == "" {
		return true
	}
	return hexColorPattern.MatchString(color)
}

// ValidTimeOfDay exige formato estricto HH:MM de 24 horas.
func ValidTimeOfDay(hora string) bool {
	if len(hora) != 5 {
		return false
	}
	_, err := time.Parse("15:04", hora)
	return err == nil
}
