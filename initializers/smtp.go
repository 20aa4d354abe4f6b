package initializers

import (
	"talent-park-backend/config"
	"talent-park-backend/lib/smtp"
)

func InitSmtp() smtp.Provider {
	return smtp.NewProvider(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, *config.Conf.Smtp.TLSEnabled)
}
