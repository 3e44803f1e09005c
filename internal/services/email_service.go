package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"vaicrm/internal/models"
)

type EmailService interface {
	SendTreinamentoAgendado(d *models.Deal) error
	SendBoasVindas(email, name string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	return &emailService{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
	}
}

func (s *emailService) SendTreinamentoAgendado(d *models.Deal) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", d.Email)
	m.SetHeader("Subject", "Treinamento agendado - VAI")

	body := fmt.Sprintf(`
		<h2>Olá, %s!</h2>
		<p>O treinamento do sistema da <strong>%s</strong> foi agendado:</p>
		<p>📅 <strong>Data:</strong> %s<br>⏰ <strong>Hora:</strong> %s</p>
		<p>Qualquer dúvida, é só responder este e-mail.</p>
		<p>Equipe VAI</p>
	`, d.Responsavel, d.Empresa, d.TreinamentoData, d.TreinamentoHora)

	m.SetBody("text/html", body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar e-mail de treinamento: %w", err)
	}
	return nil
}

func (s *emailService) SendBoasVindas(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Bem-vindo ao VAI CRM")

	body := fmt.Sprintf(`
		<h2>Bem-vindo, %s!</h2>
		<p>Sua conta no VAI CRM foi criada com sucesso.</p>
		<p>Equipe VAI</p>
	`, name)

	m.SetBody("text/html", body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar e-mail de boas-vindas: %w", err)
	}
	return nil
}
