package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
	"word-tracker/model"
	"word-tracker/utils"
	"word-tracker/words"
)

// HandleSetupWord manages the tracked word list of a guild.
func HandleSetupWord(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "add":
		addWord(b, s, i, opts)
	case "remove":
		removeWord(b, s, i, opts)
	case "list":
		listWords(b, s, i)
	}
}

func addWord(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	word := words.Normalize(opts["word"].StringValue())
	if word == "" {
		utils.SendErrorResponse(s, i, "That word normalizes to nothing and cannot be tracked.")
		return
	}

	var aliases []string
	if opt, ok := opts["aliases"]; ok {
		for _, a := range strings.Split(opt.StringValue(), ",") {
			if n := words.Normalize(a); n != "" {
				aliases = append(aliases, n)
			}
		}
	}
	cooldown := 0
	if opt, ok := opts["cooldown"]; ok {
		cooldown = int(opt.IntValue())
	}

	var reply string
	err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
		if _, ok := cfg.TrackedWords[word]; ok {
			return fmt.Errorf("word %q is already being tracked", word)
		}
		// Aliases are unique per guild, enforced here at write time so
		// matching never has to disambiguate.
		for _, alias := range aliases {
			if alias == word {
				return fmt.Errorf("alias %q duplicates the word itself", alias)
			}
			if owner, conflict := cfg.AliasConflict(alias); conflict {
				return fmt.Errorf("alias %q is already used by word %q", alias, owner)
			}
		}
		cfg.TrackedWords[word] = model.TrackedWord{Aliases: aliases, Cooldown: cooldown}
		return nil
	})
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}

	reply = fmt.Sprintf("✅ Now tracking word: **%s**", word)
	if len(aliases) > 0 {
		reply += "\nAliases: " + strings.Join(aliases, ", ")
	}
	if cooldown > 0 {
		reply += fmt.Sprintf("\nCooldown: %ds", cooldown)
	}
	utils.SendSimpleResponse(s, i, reply)
}

func removeWord(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	word := words.Normalize(opts["word"].StringValue())

	err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
		if _, ok := cfg.TrackedWords[word]; !ok {
			return fmt.Errorf("word %q is not being tracked", word)
		}
		delete(cfg.TrackedWords, word)
		delete(cfg.RoleRewards, word)
		return nil
	})
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Stopped tracking word: **%s**", word))
}

func listWords(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, err := b.Store.GuildConfig(i.GuildID, b.Config.DefaultCooldown)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the guild configuration.")
		return
	}
	if len(cfg.TrackedWords) == 0 {
		utils.SendSimpleResponse(s, i, "📋 No words are currently being tracked.")
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
			line += " (aliases: " + strings.Join(tw.Aliases, ", ") + ")"
		}
		if tw.Cooldown > 0 {
			line += fmt.Sprintf(" [%ds cooldown]", tw.Cooldown)
		}
		lines = append(lines, line)
	}
	utils.SendSimpleResponse(s, i, "📋 **Tracked Words:**\n"+strings.Join(lines, "\n"))
}
