package handlers

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
)

// HandleMemberUpdate keeps the configured tag role in sync with nickname
// changes: nickname gains the tag -> role added, loses it -> role removed.
func HandleMemberUpdate(b *bot.Bot, s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
	if m.BeforeUpdate == nil {
		return
	}
	if m.BeforeUpdate.Nick == m.Nick {
		return
	}

	cfg, err := b.Store.GuildConfig(m.GuildID, b.Config.DefaultCooldown)
	if err != nil {
		log.Printf("Failed to load config for guild %s: %v", m.GuildID, err)
		return
	}
	if cfg.TagRole == nil || cfg.TagRole.Tag == "" || cfg.TagRole.RoleID == "" {
		return
	}

	oldNick := displayName(m.BeforeUpdate.Nick, m.User)
	newNick := displayName(m.Nick, m.User)

	tag := strings.ToLower(cfg.TagRole.Tag)
	hadTag := strings.Contains(strings.ToLower(oldNick), tag)
	hasTag := strings.Contains(strings.ToLower(newNick), tag)
	if hadTag == hasTag {
		return
	}

	holds := false
	for _, id := range m.Roles {
		if id == cfg.TagRole.RoleID {
			holds = true
			break
		}
	}

	switch {
	case hasTag && !holds:
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, cfg.TagRole.RoleID); err != nil {
			log.Printf("Failed to add tag role to user %s in guild %s: %v", m.User.ID, m.GuildID, err)
		} else {
			log.Printf("Added tag role to user %s in guild %s", m.User.ID, m.GuildID)
		}
	case !hasTag && holds:
		if err := s.GuildMemberRoleRemove(m.GuildID, m.User.ID, cfg.TagRole.RoleID); err != nil {
			log.Printf("Failed to remove tag role from user %s in guild %s: %v", m.User.ID, m.GuildID, err)
		} else {
			log.Printf("Removed tag role from user %s in guild %s", m.User.ID, m.GuildID)
		}
	}
}

func displayName(nick string, user *discordgo.User) string {
	if nick != "" {
		return nick
	}
	if user != nil {
		return user.Username
	}
	return ""
}
