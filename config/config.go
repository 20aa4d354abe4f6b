package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talent-park" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"talent-park-secret" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"604800" env:"JWT_EXPIRE_IN_SEC"` // 7 days
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"no-reply@talent-park.local" env:"SMTP_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"talent-park-resumes" env:"S3_BUCKET_NAME"`
		PublicURL       string `default:"http://127.0.0.1:9000" env:"S3_PUBLIC_URL"`
	}
	Newsletter struct {
		FirstRunDelayInSec int `default:"10" env:"NEWSLETTER_FIRST_RUN_DELAY_IN_SEC"`
		RunIntervalInSec   int `default:"60" env:"NEWSLETTER_RUN_INTERVAL_IN_SEC"`
		SendTimeoutInSec   int `default:"30" env:"NEWSLETTER_SEND_TIMEOUT_IN_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
