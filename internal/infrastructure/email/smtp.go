package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification emails. Delivery is best effort; the
// operations that trigger emails succeed even when delivery fails.
type Sender interface {
	SendReviewRequestEmail(to, requesterName, ticketTitle string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendReviewRequestEmail(to, requesterName, ticketTitle string) error {
	subject := fmt.Sprintf("%s asked you for a review", requesterName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Review Requested</h2>
			<p><strong>%s</strong> would like you to review their ticket:</p>
			<p>%s</p>
			<p>Sign in to write your review.</p>
		</body>
		</html>
	`, requesterName, ticketTitle)

	plainBody := fmt.Sprintf(`
Review Requested

%s would like you to review their ticket:

%s

Sign in to write your review.
	`, requesterName, ticketTitle)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
