package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	AdminKey       string        `mapstructure:"ADMIN_KEY"`
	RemoteAPIURL   string        `mapstructure:"REMOTE_API_URL"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	Seed           int64         `mapstructure:"SEED"`
	CustomerCount  int           `mapstructure:"CUSTOMER_COUNT"`
	ComplaintCount int           `mapstructure:"COMPLAINT_COUNT"`
	ActivityCount  int           `mapstructure:"ACTIVITY_COUNT"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SEED", 0)
	v.SetDefault("CUSTOMER_COUNT", 50)
	v.SetDefault("COMPLAINT_COUNT", 120)
	v.SetDefault("ACTIVITY_COUNT", 40)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
