package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/zionmelson/shredstream-tui/cmd"
	"github.com/zionmelson/shredstream-tui/config"
	"github.com/zionmelson/shredstream-tui/logger"
)

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(config.ConfigPath)

	if err := viper.MergeInConfig(); err != nil {
		logger.GlobalLogger.Warn("No config.yaml found, using flags and environment only", "err", err)
	}

	if err := godotenv.Load(config.ConfigPath + ".env"); err != nil {
		logger.GlobalLogger.Warn("No .env file found, using flags and environment only", "err", err)
	}

	viper.AutomaticEnv()
}

func main() {
	initConfig()
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.GlobalLogger.Error("Error executing command", "err", err)
	}

	logger.CloseAll()
}
