package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

type smtpSettings struct {
	host          string
	port          int
	user          string
	pass          string
	from          string
	skipTLSVerify bool
}

// loadSMTPSettings reads the mailer configuration per send rather than at
// package init, so values set by godotenv.Load in main are picked up.
func loadSMTPSettings() smtpSettings {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return smtpSettings{
		host:          os.Getenv("SMTP_HOST"),
		port:          port,
		user:          os.Getenv("SMTP_USER"),
		pass:          os.Getenv("SMTP_PASS"),
		from:          os.Getenv("SMTP_FROM"), // e.g. "Ethno Archive <no-reply@your.org>"
		skipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}
}

// SendMail delivers one HTML notification, used for review decisions.
func SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}

	settings := loadSMTPSettings()
	if settings.host == "" || settings.from == "" {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	m := mail.NewMessage()
	m.SetHeader("From", settings.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(settings.host, settings.port, settings.user, settings.pass)

	// Force STARTTLS on 587 (works with Gmail/Office365).
	d.StartTLSPolicy = mail.MandatoryStartTLS

	// ServerName must match the SMTP hostname; skipping verify is dev-only via env.
	d.TLSConfig = &tls.Config{
		ServerName:         settings.host,
		InsecureSkipVerify: settings.skipTLSVerify,
	}

	return d.DialAndSend(m)
}
