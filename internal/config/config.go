package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CheckoutConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	CheckoutDB   `yaml:"checkout_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Pricing      `yaml:"pricing"`
	Migrations   `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type CheckoutDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"checkout-events"`
}

type Pricing struct {
	HomeCurrency string `yaml:"home_currency" env-default:"NGN"`
	OrderTTLHours int   `yaml:"order_ttl_hours" env-default:"24"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func MustLoad() *CheckoutConfig {

	// Processing env config variable and file
	configPath := os.Getenv("CHECKOUT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CHECKOUT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CheckoutConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
