package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
	ConsumerGroup   string
}

type SMTPConfig struct {
	Sender     string
	Password   string
	Server     string
	Port       int
	OpsMailbox string
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	PostgreSQLConfig PostgreSQLConfig
	JWTSecret        string
	KafkaConfig      KafkaConfig
	SMTPConfig       SMTPConfig
	TracingConfig    TracingConfig
	ImageStoreHost   string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
			ConsumerGroup: os.Getenv("BROKER_CONSUMER_GROUP"),
		},
		SMTPConfig: SMTPConfig{
			Sender:     os.Getenv("SMTP_SENDER"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			Server:     os.Getenv("SMTP_SERVER"),
			OpsMailbox: os.Getenv("OPS_MAILBOX"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		ImageStoreHost: os.Getenv("IMAGE_STORE_HOST"),
	}

	brokerPartition, _ := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	conf.KafkaConfig.BrokerPartition = brokerPartition

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	conf.SMTPConfig.Port = smtpPort

	return &conf
}
