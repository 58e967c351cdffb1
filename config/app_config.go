package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the non-database settings, loaded from forum.yaml.
// Missing file or missing keys fall back to the defaults below.
type AppConfig struct {
	SectionsPageSize int    `yaml:"sections_page_size"`
	TopicsPageSize   int    `yaml:"topics_page_size"`
	CommentsPageSize int    `yaml:"comments_page_size"`
	JwtSecret        string `yaml:"jwt_secret"`
	ListenAddr       string `yaml:"listen_addr"`
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		SectionsPageSize: 10,
		TopicsPageSize:   10,
		CommentsPageSize: 10,
		JwtSecret:        getEnv("JWT_SECRET", "your_secret_key"),
		ListenAddr:       ":8080",
	}
}

func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := defaultAppConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.SectionsPageSize <= 0 {
		cfg.SectionsPageSize = 10
	}
	if cfg.TopicsPageSize <= 0 {
		cfg.TopicsPageSize = 10
	}
	if cfg.CommentsPageSize <= 0 {
		cfg.CommentsPageSize = 10
	}

	return cfg, nil
}
