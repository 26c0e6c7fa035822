package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

type BotConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
	PhotoCap           int
	ListBatchSize      int
}

func GetBotConfig() *BotConfig {
	channelSecret := os.Getenv("CHANNEL_SECRET")
	channelAccessToken := os.Getenv("CHANNEL_ACCESS_TOKEN")
	if channelSecret == "" || channelAccessToken == "" {
		log.Fatal().Msg("CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN must be set")
	}

	return &BotConfig{
		ChannelSecret:      channelSecret,
		ChannelAccessToken: channelAccessToken,
		PhotoCap:           envInt("PHOTO_CAP", 3),
		ListBatchSize:      envInt("LIST_BATCH_SIZE", 5),
	}
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Warn().Str("key", key).Str("value", value).Int("fallback", fallback).Msg("invalid integer env var")
		return fallback
	}
	return n
}
