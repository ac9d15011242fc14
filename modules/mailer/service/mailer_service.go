package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gig-planner/core/errors"
	"gig-planner/core/logger"

	"github.com/wneessen/go-mail"
)

// InvitationEmailData is the ephemeral value object an invitation email is
// rendered from. It is never persisted.
type InvitationEmailData struct {
	InviteLink   string
	GigTitle     string
	ProjectName  string
	HostName     string // optional, falls back to ProjectName
	RoleName     string
	GigDate      time.Time
	GigTime      string // optional, e.g. "7:30 PM"
	LocationName string // optional
}

// BuildInvitationEmail renders the subject and plain-text body. Pure:
// identical input yields identical output, and no network is touched, so
// content generation is testable apart from delivery.
func BuildInvitationEmail(data InvitationEmailData) (subject string, text string) {
	subject = fmt.Sprintf("Invitation: %s for %s", data.RoleName, data.GigTitle)

	inviter := data.HostName
	if inviter == "" {
		inviter = data.ProjectName
	}

	var b strings.Builder
	b.WriteString("Hi,\n\n")
	fmt.Fprintf(&b, "%s has invited you to play %s for %q.\n\n", inviter, data.RoleName, data.GigTitle)
	fmt.Fprintf(&b, "Date: %s\n", data.GigDate.Format("Monday, January 2, 2006"))
	if data.GigTime != "" {
		fmt.Fprintf(&b, "Time: %s\n", data.GigTime)
	}
	if data.LocationName != "" {
		fmt.Fprintf(&b, "Location: %s\n", data.LocationName)
	}
	fmt.Fprintf(&b, "\nRespond here: %s\n", data.InviteLink)
	fmt.Fprintf(&b, "\nSent by %s via Gig Planner.\n", data.ProjectName)

	return subject, b.String()
}

// ReminderEmailData feeds the day-before reminder sent to confirmed
// musicians.
type ReminderEmailData struct {
	GigTitle     string
	RoleName     string
	StartsAt     time.Time
	LocationName string // optional
}

// BuildReminderEmail renders the reminder subject and body. Pure, same as
// BuildInvitationEmail.
func BuildReminderEmail(data ReminderEmailData) (subject string, text string) {
	subject = fmt.Sprintf("Reminder: %s tomorrow", data.GigTitle)

	var b strings.Builder
	b.WriteString("Hi,\n\n")
	fmt.Fprintf(&b, "A reminder that you are playing %s for %q.\n\n", data.RoleName, data.GigTitle)
	fmt.Fprintf(&b, "Date: %s\n", data.StartsAt.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "Time: %s\n", data.StartsAt.Format("3:04 PM"))
	if data.LocationName != "" {
		fmt.Fprintf(&b, "Location: %s\n", data.LocationName)
	}
	b.WriteString("\nSee you there.\n")

	return subject, b.String()
}

// MailSender delivers a rendered message. Split from content building so
// tests can swap delivery out.
type MailSender interface {
	Send(ctx context.Context, to, subject, text string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpSender struct {
	client *mail.Client
	from   string
}

func NewSMTPSender(cfg SMTPConfig) (MailSender, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, err
	}
	return &smtpSender{client: client, from: cfg.From}, nil
}

func (s *smtpSender) Send(ctx context.Context, to, subject, text string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)

	return s.client.DialAndSendWithContext(ctx, msg)
}

type MailerService struct {
	sender MailSender
}

func NewMailerService(sender MailSender) *MailerService {
	return &MailerService{sender: sender}
}

// SendInvitation builds and delivers one invitation email.
func (s *MailerService) SendInvitation(ctx context.Context, to string, data InvitationEmailData) error {
	if s.sender == nil {
		return errors.NewAppError(errors.ErrInternalServer, "mail delivery is not configured", nil)
	}

	subject, text := BuildInvitationEmail(data)
	if err := s.sender.Send(ctx, to, subject, text); err != nil {
		logger.Error("MailerService:SendInvitation:Error", "to", to, "error", err)
		return err
	}

	logger.Info("MailerService:SendInvitation:Sent", "to", to, "gig", data.GigTitle)
	return nil
}

// SendReminder builds and delivers one pre-gig reminder email.
func (s *MailerService) SendReminder(ctx context.Context, to string, data ReminderEmailData) error {
	if s.sender == nil {
		return errors.NewAppError(errors.ErrInternalServer, "mail delivery is not configured", nil)
	}

	subject, text := BuildReminderEmail(data)
	if err := s.sender.Send(ctx, to, subject, text); err != nil {
		logger.Error("MailerService:SendReminder:Error", "to", to, "error", err)
		return err
	}

	logger.Info("MailerService:SendReminder:Sent", "to", to, "gig", data.GigTitle)
	return nil
}
