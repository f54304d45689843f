package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/edlight123/rotaractnyc-sub001/internal/logger"
	"github.com/edlight123/rotaractnyc-sub001/internal/utils"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "Send", nil, "to", to)
	return nil
}

func (s *emailService) SendDuesReminder(ctx context.Context, email, name, cycleName string, amountCents int64) error {
	amount := utils.FormatUSD(amountCents)
	subject := fmt.Sprintf("Dues Reminder - %s", cycleName)

	plainText := fmt.Sprintf(
		"Hello %s,\n\nThis is a friendly reminder that your %s membership dues of %s are due.\n\nPlease log in to the member portal to pay online, or contact the treasurer to arrange an offline payment.\n\nBest regards,\nRotaract Club of New York",
		name, cycleName, amount)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Membership Dues Reminder</h2>
				<p>Hello %s,</p>
				<p>This is a friendly reminder that your <strong>%s</strong> membership dues of <strong>%s</strong> are due.</p>
				<p>Please log in to the member portal to pay online, or contact the treasurer to arrange an offline payment.</p>
				<p>Best regards,<br/>Rotaract Club of New York</p>
			</body>
		</html>
	`, name, cycleName, amount)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email, name, cycleName string, amountCents int64, graceDeadline *time.Time) error {
	amount := utils.FormatUSD(amountCents)
	subject := fmt.Sprintf("Overdue Dues Notice - %s", cycleName)

	deadlineLine := "Please settle your dues as soon as possible to keep your membership active."
	deadlineHTML := deadlineLine
	if graceDeadline != nil {
		d := graceDeadline.Format("January 2, 2006")
		deadlineLine = fmt.Sprintf("Please settle your dues by %s; unpaid memberships are marked inactive after that date.", d)
		deadlineHTML = fmt.Sprintf("Please settle your dues by <strong>%s</strong>; unpaid memberships are marked inactive after that date.", d)
	}

	plainText := fmt.Sprintf(
		"Hello %s,\n\nThe %s billing year has ended and our records show your dues of %s are still unpaid.\n\n%s\n\nBest regards,\nRotaract Club of New York",
		name, cycleName, amount, deadlineLine)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Overdue Dues Notice</h2>
				<p>Hello %s,</p>
				<p>The <strong>%s</strong> billing year has ended and our records show your dues of <strong>%s</strong> are still unpaid.</p>
				<p>%s</p>
				<p>Best regards,<br/>Rotaract Club of New York</p>
			</body>
		</html>
	`, name, cycleName, amount, deadlineHTML)

	return s.send(email, name, subject, plainText, htmlContent)
}
