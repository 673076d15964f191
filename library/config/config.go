package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gh215tth/QLTV-dart/pkg/kafka"
	"github.com/gh215tth/QLTV-dart/pkg/logger"
	"github.com/gh215tth/QLTV-dart/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Publisher struct {
	Topic string `envconfig:"LOAN_EVENTS_TOPIC"`
	// Circuit breaker around the producer.
	RecordLength     int           `envconfig:"CB_RECORD_LENGTH" default:"20"`
	Timeout          time.Duration `envconfig:"CB_TIMEOUT" default:"10s"`
	Percentile       float64       `envconfig:"CB_PERCENTILE" default:"0.5"`
	RecoveryRequests int           `envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

type Config struct {
	Server    HTTPServer  `yaml:"server"`
	Database  postgres.DB `yaml:"db"`
	Kafka     kafka.Config
	Publisher Publisher
	Log       logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment; options set values the environment does not override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.Publisher.Topic == "" {
			config.Publisher.Topic = kafka.LoanTopic
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	safe := *cfg
	safe.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(safe, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
