package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SendEMail(to, message, subject string) error
	IsConfigured() bool
}

func NewProvider(user, password, host, port, from string, tlsEnabled bool) Provider {
	return &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, message, subject string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: Talent Park - %s\n%s\r\n%s\r\n", subject, mimeHeaders, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.from, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.from, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}
