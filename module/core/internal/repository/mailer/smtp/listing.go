package smtp

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/mailer"
)

var _ mailer.ListingMailer = (*ListingMailer)(nil)

type Config struct {
	Server    string
	Port      int
	User      string
	Pass      string
	FromEmail string
	ToEmail   string
}

func (c Config) Enabled() bool {
	return c.Server != "" && c.User != "" && c.Pass != "" && c.ToEmail != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type ListingMailer struct {
	cfg    Config
	dialer dialer
}

func NewListingMailer(cfg Config) *ListingMailer {
	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.User
	}
	d := gomail.NewDialer(cfg.Server, cfg.Port, cfg.User, cfg.Pass)
	d.Timeout = 10 * time.Second
	return &ListingMailer{cfg: cfg, dialer: d}
}

func (m *ListingMailer) SendListing(_ context.Context, l *domain.Listing) error {
	if err := m.dialer.DialAndSend(m.buildMessage(l)); err != nil {
		return fmt.Errorf("send listing email to %s: %w", m.cfg.ToEmail, err)
	}
	return nil
}

func (m *ListingMailer) buildMessage(l *domain.Listing) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromEmail)
	msg.SetHeader("To", m.cfg.ToEmail)
	msg.SetHeader("Subject", subject(l))
	msg.SetBody("text/plain", body(l))
	return msg
}

func subject(l *domain.Listing) string {
	if l.Area == "" {
		return fmt.Sprintf("Apartment: %s (%s)", l.Name, l.Price)
	}
	return fmt.Sprintf("Apartment in %s: %s (%s)", l.Area, l.Name, l.Price)
}

func body(l *domain.Listing) string {
	bart := "none nearby"
	if l.NearBart {
		bart = l.Bart
	}
	return fmt.Sprintf("Name: %s\nPrice: %s\nArea: %s\nNearest BART: %s\nBART distance (km): %s\nURL: %s\n",
		l.Name, l.Price, l.Area, bart, l.BartDist, l.URL)
}
