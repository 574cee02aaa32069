// Package handlers wires Discord gateway events and slash commands to the
// tracking engine.
package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
)

// Register installs all command and event handlers on the bot.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		HandleMessage(b, s, m)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
		HandleMemberUpdate(b, s, m)
	})
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as %s#%s", r.User.Username, r.User.Discriminator)
	})
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"setup-word": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetupWord(b, s, i)
		},
		"setup-role": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetupRole(b, s, i)
		},
		"setup-channel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetupChannel(b, s, i)
		},
		"setup-cooldown": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetupCooldown(b, s, i)
		},
		"setup-leaderboard": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetupLeaderboard(b, s, i)
		},
		"setup-timezone": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetupTimezone(b, s, i)
		},
		"setup-tag-role": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetupTagRole(b, s, i)
		},
		"reset": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleReset(b, s, i)
		},
		"leaderboard": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleLeaderboard(b, s, i)
		},
		"tracked-words": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleTrackedWords(b, s, i)
		},
		"stats": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleStats(b, s, i)
		},
	}
}

// optionMap flattens interaction options for lookup by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
