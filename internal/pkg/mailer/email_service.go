package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, contactName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	portalURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, portalURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		portalURL:   portalURL,
	}
}

func (s *emailService) SendWelcome(toEmail, contactName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to Propel America")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your applicant portal account has been created.</p>
			<p>Sign in any time to track your onboarding progress:</p>
			<a href="%s" style="background-color: #2563EB; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open your portal</a>
			<p>If you didn't create this account, please contact us.</p>
		</div>
	`, contactName, s.portalURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welcome email to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Welcome email sent to %s\n", toEmail)
	return nil
}
