package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const DefaultGatewayURL = "https://sandbox3.payture.com/api/Block"

type Config struct {
	// Gateway under test
	GatewayURL  string        `mapstructure:"GATEWAY_URL" validate:"required,url"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gt=0"`

	// Block fixtures
	MerchantKey      string `mapstructure:"MERCHANT_KEY" validate:"required"`
	BlockAmount      string `mapstructure:"BLOCK_AMOUNT" validate:"required,number"`
	CardPAN          string `mapstructure:"CARD_PAN" validate:"required,number,min=12,max=19"`
	CardExpMonth     string `mapstructure:"CARD_EXP_MONTH" validate:"required,number,max=2"`
	CardExpYear      string `mapstructure:"CARD_EXP_YEAR" validate:"required,number,len=2"`
	CardHolder       string `mapstructure:"CARD_HOLDER" validate:"required"`
	CardSecureCode   string `mapstructure:"CARD_SECURE_CODE" validate:"required,number"`
	DuplicateOrderID string `mapstructure:"DUPLICATE_ORDER_ID"`

	// Harness behaviour
	FailFast         bool `mapstructure:"FAIL_FAST"`
	BodyExcerptLimit int  `mapstructure:"BODY_EXCERPT_LIMIT" validate:"min=16"`

	// Application Configuration
	AppEnv  string `mapstructure:"APP_ENV" validate:"oneof=development test production"`
	AppPort int    `mapstructure:"APP_PORT" validate:"min=1,max=65535"`

	// Logging Configuration
	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warning error critical"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("GATEWAY_URL", DefaultGatewayURL)
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("MERCHANT_KEY", "Merchant")
	v.SetDefault("BLOCK_AMOUNT", "12345")
	v.SetDefault("CARD_PAN", "4111111111111112")
	v.SetDefault("CARD_EXP_MONTH", "12")
	v.SetDefault("CARD_EXP_YEAR", "22")
	v.SetDefault("CARD_HOLDER", "Roman Miller")
	v.SetDefault("CARD_SECURE_CODE", "123")
	v.SetDefault("DUPLICATE_ORDER_ID", "60f02253-bea1-2563-d432-961f0ace9c943")
	v.SetDefault("FAIL_FAST", true)
	v.SetDefault("BODY_EXCERPT_LIMIT", 256)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// .env is optional; environment variables and defaults still apply.
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
