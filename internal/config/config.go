package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Media  MediaConfig
	App    AppConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type MediaConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	// PublicBaseURL overrides the URL prefix for stored media. When empty,
	// the endpoint (or the AWS virtual-hosted form) is used instead.
	PublicBaseURL string
}

type AppConfig struct {
	MaxUploadSize int64
	EnableCORS    bool
}

func Load() (*Config, error) {
	viper.SetDefault("SERVER_HOST", "")
	viper.SetDefault("SERVER_PORT", "5002")
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DATABASE", "bmc_dining")
	viper.SetDefault("MONGO_COLLECTION", "submissions")
	viper.SetDefault("MEDIA_ENDPOINT", "")
	viper.SetDefault("MEDIA_ACCESS_KEY_ID", "")
	viper.SetDefault("MEDIA_SECRET_ACCESS_KEY", "")
	viper.SetDefault("MEDIA_BUCKET", "dining-media")
	viper.SetDefault("MEDIA_REGION", "us-east-1")
	viper.SetDefault("MEDIA_PUBLIC_BASE_URL", "")
	viper.SetDefault("APP_MAX_UPLOAD_SIZE", 50*1024*1024) // 50MB
	viper.SetDefault("APP_ENABLE_CORS", true)

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:        viper.GetString("MONGO_URI"),
			Database:   viper.GetString("MONGO_DATABASE"),
			Collection: viper.GetString("MONGO_COLLECTION"),
		},
		Media: MediaConfig{
			Endpoint:        viper.GetString("MEDIA_ENDPOINT"),
			AccessKeyID:     viper.GetString("MEDIA_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("MEDIA_SECRET_ACCESS_KEY"),
			Bucket:          viper.GetString("MEDIA_BUCKET"),
			Region:          viper.GetString("MEDIA_REGION"),
			PublicBaseURL:   viper.GetString("MEDIA_PUBLIC_BASE_URL"),
		},
		App: AppConfig{
			MaxUploadSize: viper.GetInt64("APP_MAX_UPLOAD_SIZE"),
			EnableCORS:    viper.GetBool("APP_ENABLE_CORS"),
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI is required")
	}

	return cfg, nil
}
