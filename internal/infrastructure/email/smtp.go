package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"resolveit/internal/shared/config"
	"resolveit/internal/shared/logger"
)

// StatusNotifier informs complaint authors about progress on their complaints.
type StatusNotifier interface {
	NotifyStatusChanged(to, complaintTitle, newStatus, note string) error
}

type SMTPEmailService struct {
	config *config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPEmailService(cfg *config.EmailConfig, log logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: log,
	}
}

// NotifyStatusChanged sends a status-change email. When the email channel is
// disabled the notification is logged and dropped.
func (s *SMTPEmailService) NotifyStatusChanged(to, complaintTitle, newStatus, note string) error {
	if !s.config.Enabled {
		s.logger.Debugw("email disabled, skipping status notification",
			"to", to,
			"status", newStatus,
		)
		return nil
	}

	subject := fmt.Sprintf("Your complaint is now %s", newStatus)

	noteHTML := ""
	notePlain := ""
	if note != "" {
		noteHTML = fmt.Sprintf("<p>Staff note: %s</p>", note)
		notePlain = fmt.Sprintf("\nStaff note: %s\n", note)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Complaint Update</h2>
			<p>Your complaint "%s" has been updated to <strong>%s</strong>.</p>
			%s
			<p>Log in to review the details or leave feedback on how it was handled.</p>
		</body>
		</html>
	`, complaintTitle, newStatus, noteHTML)

	plainBody := fmt.Sprintf(`
Complaint Update

Your complaint "%s" has been updated to %s.
%s
Log in to review the details or leave feedback on how it was handled.
	`, complaintTitle, newStatus, notePlain)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
