package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	BioBaseURL    string `env:"BIO_BASE_URL" envDefault:"https://torre.bio/api"`
	SearchBaseURL string `env:"SEARCH_BASE_URL" envDefault:"https://search.torre.co"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	// TTL en minutos de la cache de perfiles parseados.
	ProfileCacheTTL int `env:"PROFILE_CACHE_TTL_MINUTES" envDefault:"30"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
