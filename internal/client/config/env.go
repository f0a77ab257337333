package config

import "github.com/ilyakaznacheev/cleanenv"

func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
