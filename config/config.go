package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/za-dev/roomfinder-service/pkg/kafka"
	"github.com/za-dev/roomfinder-service/pkg/logger"
	"github.com/za-dev/roomfinder-service/pkg/s3"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"ROOMFINDER_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"ROOMFINDER_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server HTTPServer   `yaml:"server"`
	Kafka  kafka.Config `yaml:"kafka"`
	S3     s3.Config    `yaml:"s3"`
	Log    logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from an optional yaml file (CONFIG_PATH, with
// environment expansion) and then from environment variables.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		if path := os.Getenv("CONFIG_PATH"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatal("NewConfig read ", err)
			}
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config); err != nil {
				log.Fatal("NewConfig yaml ", err)
			}
		}
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
