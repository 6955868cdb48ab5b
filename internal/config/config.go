package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port             int    `mapstructure:"PORT"`
	Environment      string `mapstructure:"ENVIRONMENT"` // "production" switches cookie policy
	MongoURI         string `mapstructure:"MONGO_URI"`
	MongoDatabase    string `mapstructure:"MONGO_DATABASE"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	SenderEmail      string `mapstructure:"SENDER_EMAIL"`
	SenderName       string `mapstructure:"SENDER_NAME"`
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUsername     string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	MailerSendAPIKey string `mapstructure:"MAILERSEND_API_KEY"`
}

// IsProduction reports whether production cookie policy applies.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "auth_service")
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("SENDER_EMAIL", "no-reply@localhost")
	viper.SetDefault("SENDER_NAME", "")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAILERSEND_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
