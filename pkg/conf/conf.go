package conf

import (
	"log"

	"github.com/spf13/viper"
)

// Config loads conf.yaml from path. Every key has a default so a missing
// file still yields a runnable local setup.
func Config(path string) *viper.Viper {
	viper.SetConfigName("conf")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.cors_origin", "http://localhost:3000")
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("storage.dsn", "host=localhost user=postgres password=postgres dbname=pelada port=5432 sslmode=disable")
	viper.SetDefault("uploads.dir", "./uploads")
	viper.SetDefault("session.backend", "redis")
	viper.SetDefault("session.redis_addr", "localhost:6379")
	viper.SetDefault("auth.session_ttl", "12h")
	viper.SetDefault("fees.monthly_base", 540.0)
	viper.SetDefault("log.level", "info")

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %v", err)
		}
	}

	return viper.GetViper()
}
