package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays fields whose SYNC_* variable is set. Unset variables
// leave the current value alone. Malformed values panic, like the other
// sources.
func parseEnv(config *Config) {
	if err := cleanenv.ReadEnv(config); err != nil {
		panic(err)
	}
}
