package service

import (
	"gopkg.in/gomail.v2"

	"github.com/campuslab/printbooth/internal/config"
	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
)

type EmailSender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

func NewEmailSender(cfg config.MailConfig) EmailSender {
	return &smtpSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return appErr.ErrInvalid
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return s.dialer.DialAndSend(msg)
}
