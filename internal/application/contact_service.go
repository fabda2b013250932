package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/pkg/helpers"
	"github.com/webatelier/landing-api/pkg/mailer"
)

// ContactService turns a quick-contact submission into a notification email.
// Delivery is best-effort: queued when a broker is present, sent directly when
// only Mailgun is configured, logged otherwise.
type ContactService struct {
	Pub       *helpers.RabbitPublisher
	Mail      *mailer.Mailgun
	Recipient string
	Enabled   bool
	Logger    *logrus.Logger
}

func NewContactService(pub *helpers.RabbitPublisher, mail *mailer.Mailgun, recipient string, enabled bool, logger *logrus.Logger) *ContactService {
	return &ContactService{Pub: pub, Mail: mail, Recipient: recipient, Enabled: enabled, Logger: logger}
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) error {
	job := mailer.EmailJob{
		To:      s.Recipient,
		ReplyTo: in.Email,
		Subject: "New contact request from " + in.Name,
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
			in.Name, in.Email, in.Phone, in.Message),
	}

	if s.Pub != nil && s.Recipient != "" {
		if err := s.Pub.PublishJSON(ctx, job); err == nil {
			return nil
		} else if s.Logger != nil {
			s.Logger.WithError(err).Warn("contact job publish failed, trying direct send")
		}
	}

	if s.Enabled && s.Mail.Configured() && s.Recipient != "" {
		if err := s.Mail.Send(ctx, job.To, job.ReplyTo, job.Subject, job.Text, ""); err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).Warn("contact email send failed")
			}
		}
		return nil
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"name":  in.Name,
			"email": in.Email,
		}).Info("contact request received (delivery not configured)")
	}
	return nil
}
