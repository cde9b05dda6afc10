package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"impact-finance/backend/internal/api"
	"impact-finance/backend/internal/explain"
)

func main() {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "5001")
	v.SetDefault("data.dir", "data")
	v.SetDefault("db.path", "")
	v.SetDefault("investment.data.path", "")
	v.SetDefault("allowed.origins", "")
	v.SetDefault("disable.ai", false)
	v.SetDefault("openai.api.key", "")
	v.SetDefault("openai.model", "")
	v.SetDefault("openai.base.url", "")
	v.SetDefault("openai.temperature", 0.0)
	v.SetDefault("openai.max.tokens", 0)
	v.SetDefault("log.level", "info")

	if level, err := logrus.ParseLevel(v.GetString("log.level")); err == nil {
		logrus.SetLevel(level)
	}

	dataDir := v.GetString("data.dir")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}
	dbPath := v.GetString("db.path")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "catalog.db")
	}
	investmentDataPath := v.GetString("investment.data.path")
	if investmentDataPath == "" {
		investmentDataPath = filepath.Join(dataDir, "investment_data.json")
	}

	var allowedOrigins []string
	for _, origin := range strings.Split(v.GetString("allowed.origins"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	cfg := api.Config{
		DBPath:             dbPath,
		InvestmentDataPath: investmentDataPath,
		AllowedOrigins:     allowedOrigins,
		DisableAI:          v.GetBool("disable.ai"),
		AIConfig: explain.Config{
			APIKey:      v.GetString("openai.api.key"),
			Model:       v.GetString("openai.model"),
			BaseURL:     v.GetString("openai.base.url"),
			Temperature: v.GetFloat64("openai.temperature"),
			MaxTokens:   v.GetInt("openai.max.tokens"),
		},
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	port := v.GetString("port")
	logrus.Infof("starting recommendation backend on :%s", port)
	if err := server.Router().Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
