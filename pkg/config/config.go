package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`
	// JWT
	AccessTokenSecret string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	TokenExpireMin    int    `envconfig:"TOKEN_EXPIRE_MIN" default:"60"`
	// Payment gateway
	PaymentSecretKey string `envconfig:"PAYMENT_SECRET_KEY" required:"true"`
	// Events (empty AMQPURL disables publishing)
	AMQPURL    string `envconfig:"AMQP_URL"`
	MQExchange string `envconfig:"MQ_EXCHANGE" default:"bistro.events"`
	// Tracing (empty disables the OTLP exporter)
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":5000"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
