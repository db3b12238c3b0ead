package config

import "github.com/spf13/viper"

const defaultPort = 8000

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port int
}

// DatabaseConfig carries the two store settings read from the process
// environment. An empty URL means the service runs without a store and
// reports that on the diagnostic endpoint instead of refusing to start.
type DatabaseConfig struct {
	URL  string
	Name string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", defaultPort)

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("PORT"),
		},
		Database: DatabaseConfig{
			URL:  v.GetString("DATABASE_URL"),
			Name: v.GetString("DATABASE_NAME"),
		},
	}

	return cfg, nil
}
