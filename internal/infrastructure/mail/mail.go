package mail

import (
	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/pkg/utils"
	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	config config.SMTPConfig
}

func CreateSMTPMailer(config config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) Send(message *gomail.Message) error {
	return utils.SendEmail(message, m.config.Sender, m.config.Password, m.config.Host, m.config.Port)
}
