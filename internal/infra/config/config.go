package config

import (
	env "github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	Port             int    `env:"PORT" envDefault:"5050"`
	Debug            bool   `env:"DEBUG" envDefault:"false"`
	PublicDir        string `env:"PUBLIC_DIR" envDefault:"./public"`
	StrictValidation bool   `env:"CONTACT_STRICT" envDefault:"true"`
	AllowOrigins     string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`
}

func NewServerConfig() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
