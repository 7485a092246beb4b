package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	SeedFile   string `yaml:"seed_file" env:"SEED_FILE"`
	HTTPServer `yaml:"http_server"`
	Remote     `yaml:"remote"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Remote struct {
	BaseURL        string        `yaml:"base_url" env:"REMOTE_BASE_URL" env-default:"http://localhost:5000"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
	Token          string        `yaml:"token" env:"REMOTE_TOKEN"`
	CapacityOffset int           `yaml:"capacity_offset" env-default:"100"`
}

func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from env: %s", err)
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
