package config

import "github.com/spf13/viper"

// Config holds typed configuration for the taskhive server.
type Config struct {
	Host           string
	Port           string
	LogLevel       string
	DataDir        string
	MetricsAddr    string
	MaxConcurrent  int
	RequestTimeout int
}

// Load reads all values from the given viper instance.
func Load(v *viper.Viper) Config {
	return Config{
		Host:           v.GetString("host"),
		Port:           v.GetString("port"),
		LogLevel:       v.GetString("log_level"),
		DataDir:        v.GetString("data_dir"),
		MetricsAddr:    v.GetString("metrics_addr"),
		MaxConcurrent:  v.GetInt("max_concurrent"),
		RequestTimeout: v.GetInt("request_timeout"),
	}
}
