package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds everything read from the environment at boot.
type Config struct {
	Port           string   `env:"PORT" envDefault:"3000"`
	DatabaseURL    string   `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret      string   `env:"JWT_SECRET,required,notEmpty"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173"`
	UploadDir      string   `env:"UPLOAD_DIR" envDefault:"uploads"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
