package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

type LogLevel string

const (
	Info  LogLevel = "INFO"
	Warn  LogLevel = "WARN"
	Error LogLevel = "ERROR"
)

func levelColor(level LogLevel) int {
	switch level {
	case Info:
		return 3066993 // Green
	case Warn:
		return 15105570 // Orange
	case Error:
		return 15158332 // Red
	default:
		return 3447003 // Blue
	}
}

func sendLog(s *discordgo.Session, channelID string, level LogLevel, module, operation, extraInfo string) {
	if channelID == "" {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title: string(level) + " Log",
		Color: levelColor(level),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Module", Value: module},
			{Name: "Operation", Value: operation},
			{Name: "Details", Value: extraInfo},
		},
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Failed to send %s log to channel %s: %v", level, channelID, err)
	}
}

// LogInfo posts an informational notice to the configured log channel.
func LogInfo(s *discordgo.Session, channelID, module, operation, extraInfo string) {
	sendLog(s, channelID, Info, module, operation, extraInfo)
}

// LogWarn posts a warning notice to the configured log channel.
func LogWarn(s *discordgo.Session, channelID, module, operation, extraInfo string) {
	sendLog(s, channelID, Warn, module, operation, extraInfo)
}

// LogError posts an error notice to the configured log channel.
func LogError(s *discordgo.Session, channelID, module, operation, extraInfo string) {
	sendLog(s, channelID, Error, module, operation, extraInfo)
}
