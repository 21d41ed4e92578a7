package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	OTP      OTPConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required"`
	Name     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	MaxConns int32 `validate:"gte=1"`
}

type EmailConfig struct {
	Host            string `validate:"required"`
	Port            int    `validate:"gte=1"`
	User            string
	Password        string
	From            string `validate:"required,email"`
	FromName        string
	SkipVerify      bool
	DispatchTimeout int `validate:"gte=1"` // seconds, per send including retries
	MaxRetries      int `validate:"gte=0"`
}

type OTPConfig struct {
	ExpiryMinutes int `validate:"gte=1"`
	Length        int `validate:"gte=4"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "travelwise-server")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("EMAIL_FROM_NAME", "Travelwise")
	viper.SetDefault("SMTP_SKIP_VERIFY", false)
	viper.SetDefault("SMTP_DISPATCH_TIMEOUT", 15)
	viper.SetDefault("SMTP_MAX_RETRIES", 3)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Email: EmailConfig{
			Host:            viper.GetString("SMTP_HOST"),
			Port:            viper.GetInt("SMTP_PORT"),
			User:            viper.GetString("SMTP_USER"),
			Password:        viper.GetString("SMTP_PASS"),
			From:            viper.GetString("EMAIL_FROM"),
			FromName:        viper.GetString("EMAIL_FROM_NAME"),
			SkipVerify:      viper.GetBool("SMTP_SKIP_VERIFY"),
			DispatchTimeout: viper.GetInt("SMTP_DISPATCH_TIMEOUT"),
			MaxRetries:      viper.GetInt("SMTP_MAX_RETRIES"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
	}

	if errs := ValidateStruct(config.Database); errs != nil {
		return nil, fmt.Errorf("database config: %s", FormatValidationErrors(errs))
	}
	if errs := ValidateStruct(config.Email); errs != nil {
		return nil, fmt.Errorf("email config: %s", FormatValidationErrors(errs))
	}
	if errs := ValidateStruct(config.OTP); errs != nil {
		return nil, fmt.Errorf("OTP config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
