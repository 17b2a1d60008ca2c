package service

import (
	"fmt"
	"sync"

	"timewise_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// MailService envía correos transaccionales por SMTP. La configuración se
// inyecta en el arranque y puede refrescarse en caliente.
type MailService struct {
	mu  sync.RWMutex
	cfg config.MailConfig
}

func NewMailService(cfg config.MailConfig) *MailService {
	return &MailService{cfg: cfg}
}

// Reload sustituye la configuración SMTP (callback del config watcher).
func (s *MailService) Reload(cfg config.MailConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// SendPasswordReset envía el token de recuperación. El envío es síncrono
// dentro de la petición; el error se propaga al caller sin reintentos.
func (s *MailService) SendPasswordReset(to, name, token string) error {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	body := fmt.Sprintf(`
	<h2>Recuperación de contraseña</h2>
	<p>Hola <strong>%s</strong>,</p>
	<p>Hemos recibido una solicitud para restablecer tu contraseña.</p>
	<p><strong>Tu token de recuperación es:</strong></p>
	<h3 style="background:#f0f0f0;padding:10px;border-radius:5px;">%s</h3>
	<p>Este token expira en <strong>15 minutos</strong>.</p>
	<p>Si no solicitaste esto, ignora este mensaje.</p>
	<br>
	<p>Saludos,<br><strong>Equipo TimeWise</strong></p>
	`, name, token)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.From, cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Recuperación de contraseña - TimeWise")
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return d.DialAndSend(m)
}
