package mailing

import (
	"fmt"
	"strconv"

	"Recipe-Publisher/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
	NotifyEmail  string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
		NotifyEmail:  utils.GetConfig("NOTIFY_EMAIL"),
	}
}

// Enabled reports whether there is both a server and someone to notify.
func (c MailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.NotifyEmail != ""
}

func NewMessage(cfg MailConfig, toEmail string, subject string, body string) *gomail.Message {
	mailer := gomail.NewMessage()
	if cfg.SMTPSender != "" {
		mailer.SetAddressHeader("From", cfg.SMTPEmail, cfg.SMTPSender)
	} else {
		mailer.SetHeader("From", cfg.SMTPEmail)
	}
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	return mailer
}

func SendMail(cfg MailConfig, toEmail string, subject string, body string) error {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT %q: %w", cfg.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		cfg.SMTPHost,
		port,
		cfg.SMTPEmail,
		cfg.SMTPPassword,
	)

	return dialer.DialAndSend(NewMessage(cfg, toEmail, subject, body))
}

// EditorNotifier mails every notification to NOTIFY_EMAIL.
type EditorNotifier struct {
	cfg MailConfig
}

func NewEditorNotifier(cfg MailConfig) *EditorNotifier {
	return &EditorNotifier{cfg: cfg}
}

func (n *EditorNotifier) Notify(subject, body string) error {
	return SendMail(n.cfg, n.cfg.NotifyEmail, subject, body)
}
