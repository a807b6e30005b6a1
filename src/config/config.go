package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Auth            AuthConfig           `mapstructure:"auth"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type ExternalClientConfig struct {
	Yahoo YahooConfig `mapstructure:"yahoo"`
}

type YahooConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type AuthConfig struct {
	Secret          string `mapstructure:"secret"`
	TokenTTLMinutes int    `mapstructure:"tokenTtlMinutes"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Auth.TokenTTLMinutes == 0 {
		cfg.Auth.TokenTTLMinutes = 60
	}
	return &cfg, nil
}
