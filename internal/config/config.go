package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Key string

const (
	KeyLogger  = Key("logger")
	KeyMetrics = Key("metrics")
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"

	RelayDriverMemory = "memory"
	RelayDriverKafka  = "kafka"
)

type Config struct {
	Service  Service
	Storage  Storage
	Postgres Postgres
	Relay    Relay
	Kafka    Kafka
	Chat     Chat
	CORS     CORS
	Logger   Logger
	Metrics  Metrics
	Platform Platform
}

type Service struct {
	Name string `env:"CHATBOT_SERVICE_NAME" env-default:"chatbot-service"`
	Port string `env:"CHATBOT_SERVICE_PORT" env-default:"8000"`
}

type Storage struct {
	Driver string `env:"CHATBOT_SERVICE_STORAGE_DRIVER" env-default:"memory"`
}

type Postgres struct {
	User     string `env:"CHATBOT_SERVICE_POSTGRES_USER"`
	Password string `env:"CHATBOT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHATBOT_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHATBOT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHATBOT_SERVICE_POSTGRES_PORT"`
}

type Relay struct {
	Driver string `env:"CHATBOT_SERVICE_RELAY_DRIVER" env-default:"memory"`
}

type Kafka struct {
	Host              string `env:"CHATBOT_SERVICE_KAFKA_HOST"`
	Port              string `env:"CHATBOT_SERVICE_KAFKA_PORT"`
	NotificationTopic string `env:"CHATBOT_SERVICE_KAFKA_NOTIFICATION_TOPIC" env-default:"chatbot_notification"`
}

type Chat struct {
	ReplyDelay time.Duration `env:"CHATBOT_SERVICE_REPLY_DELAY" env-default:"5s"`
}

type CORS struct {
	AllowedOrigins []string `env:"CHATBOT_SERVICE_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://127.0.0.1:3000,https://clt-chatbot.vercel.app,http://202.20.84.65:10000"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
