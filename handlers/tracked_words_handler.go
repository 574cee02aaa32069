package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
	"word-tracker/utils"
)

// HandleTrackedWords shows everyone which words count in this server.
func HandleTrackedWords(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, err := b.Store.GuildConfig(i.GuildID, b.Config.DefaultCooldown)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the guild configuration.")
		return
	}
	if len(cfg.TrackedWords) == 0 {
		utils.SendSimpleResponse(s, i, "📋 No words are currently being tracked here.")
		return
	}

	names := make([]string, 0, len(cfg.TrackedWords))
	for w := range cfg.TrackedWords {
		names = append(names, w)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, w := range names {
		tw := cfg.TrackedWords[w]
		line := "• **" + w + "**"
		if len(tw.Aliases) > 0 {
			line += " (also: " + strings.Join(tw.Aliases, ", ") + ")"
		}
		lines = append(lines, line)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📋 Tracked Words",
		Description: strings.Join(lines, "\n"),
		Color:       0x5865F2,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Default cooldown: %ds", cfg.CooldownSeconds),
		},
	}
	utils.SendEmbedResponse(s, i, embed)
}
