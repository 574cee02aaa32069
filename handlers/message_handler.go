package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
	"word-tracker/reward"
	"word-tracker/words"
)

// HandleMessage runs the counting pipeline for one inbound message: filter
// by enabled channel, resolve tracked words, count each occurrence behind
// its cooldown, then evaluate reward grants on the fresh counters.
func HandleMessage(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	cfg, err := b.Store.GuildConfig(m.GuildID, b.Config.DefaultCooldown)
	if err != nil {
		log.Printf("Failed to load config for guild %s: %v", m.GuildID, err)
		return
	}
	if !cfg.ChannelEnabled(m.ChannelID) || len(cfg.TrackedWords) == 0 {
		return
	}

	for _, token := range words.ExtractTokens(m.Content) {
		word, ok := words.Resolve(token, cfg.TrackedWords)
		if !ok {
			continue
		}

		res, err := b.Tracker.RecordOccurrence(m.GuildID, m.Author.ID, word, cfg.WordCooldown(word))
		if err != nil {
			log.Printf("Failed to record %q for user %s in guild %s: %v", word, m.Author.ID, m.GuildID, err)
			continue
		}
		if !res.Counted {
			log.Printf("User %s on cooldown for %q in guild %s (%ds remaining)", m.Author.ID, word, m.GuildID, res.RemainingSeconds)
			continue
		}
		log.Printf("User %s counted %q in guild %s (total: %d)", m.Author.ID, word, m.GuildID, res.User.TotalCount)

		rules := cfg.RoleRewards[word]
		if len(rules) == 0 {
			continue
		}
		currentRoles, err := b.Executor.MemberRoles(m.GuildID, m.Author.ID)
		if err != nil {
			log.Printf("Failed to fetch roles for user %s in guild %s: %v", m.Author.ID, m.GuildID, err)
			continue
		}
		grants := reward.EvaluateGrants(&res.User, rules, currentRoles)
		b.Executor.Apply(grants, nil)
	}
}
