package validation

import "testing"

func TestValidPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"valida", "Secreto1", true},
		{"corta", "Ab1", false},
		{"sin mayuscula", "secreto1", false},
		{"sin digito", "Secretos", false},
		{"minimo exacto", "Abc123", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, msg := ValidPassword(tc.password)
			if got != tc.want {
				t.Errorf("ValidPassword(%q) = %v, want %v (%s)", tc.password, got, tc.want, msg)
			}
			if !got && msg == "" {
				t.Error("una contraseña rechazada debe llevar mensaje")
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"ana@ejemplo.com", "ana.perez+tag@sub.dominio.es", "A_B-1%c@x.io"}
	invalid := []string{"", "sin-arroba", "a@b", "a@.com", "a b@x.com", "@x.com"}

	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}

func TestValidString(t *testing.T) {
	if ok, _ := ValidString("  hola  ", 3, 10, "Campo"); !ok {
		t.Error("el recorte de espacios debe aplicarse antes de medir")
	}
	if ok, _ := ValidString("ab", 3, 10, "Campo"); ok {
		t.Error("dos caracteres con mínimo tres debe fallar")
	}
	if ok, msg := ValidString("   ", 1, 10, "Campo"); ok || msg != "Campo no puede estar vacío" {
		t.Errorf("solo espacios debe reportar vacío, msg=%q", msg)
	}
}

func TestValidAge(t *testing.T) {
	for _, age := range []int{13, 120, 30} {
		if ok, _ := ValidAge(age); !ok {
			t.Errorf("ValidAge(%d) = false, want true", age)
		}
	}
	for _, age := range []int{12, 121, 0, -5} {
		if ok, _ := ValidAge(age); ok {
			t.Errorf("ValidAge(%d) = true, want false", age)
		}
	}
}

func TestValidHexColor(t *testing.T) {
	for _, c := range []string{"", "#fff", "#FFF", "#3498db", "#A1B2C3"} {
		if !ValidHexColor(c) {
			t.Errorf("ValidHexColor(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"fff", "#ggg", "#12345", "#1234567", "rojo"} {
		if ValidHexColor(c) {
			t.Errorf("ValidHexColor(%q) = true, want false", c)
		}
	}
}

func TestValidTimeOfDay(t *testing.T) {
	for _, h := range []string{"00:00", "23:59", "09:30"} {
		if !ValidTimeOfDay(h) {
			t.Errorf("ValidTimeOfDay(%q) = false, want true", h)
		}
	}
	for _, h := range []string{"24:00", "12:60", "9:30", "0930", "12-30", ""} {
		if ValidTimeOfDay(h) {
			t.Errorf("ValidTimeOfDay(%q) = true, want false", h)
		}
	}
}

func TestEnumPredicates(t *testing.T) {
	if !ValidPriority("media") || ValidPriority("urgente") {
		t.Error("prioridad: media es válida, urgente no")
	}
	if !ValidTaskStatus("en_progreso") || ValidTaskStatus("terminada") {
		t.Error("estado: en_progreso es válido, terminada no")
	}
	if !ValidFrequency("semanal") || ValidFrequency("ninguna") {
		t.Error("frecuencia: semanal es válida, ninguna no")
	}
	if !ValidRepetition("ninguna") || ValidRepetition("anual") {
		t.Error("repetición: ninguna es válida, anual no")
	}
}
