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

// HandleSetupRole manages reward rules: word + period + threshold -> role.
func HandleSetupRole(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "add":
		addRoleRule(b, s, i, opts)
	case "remove":
		removeRoleRule(b, s, i, opts)
	case "list":
		listRoleRules(b, s, i)
	}
}

func rulePeriod(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) model.Period {
	if opt, ok := opts["period"]; ok {
		return model.Period(opt.StringValue())
	}
	return model.PeriodTotal
}

func addRoleRule(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	word := words.Normalize(opts["word"].StringValue())
	threshold := int(opts["threshold"].IntValue())
	role := opts["role"].RoleValue(s, i.GuildID)
	period := rulePeriod(opts)

	if !period.Valid() {
		utils.SendErrorResponse(s, i, "Unknown period.")
		return
	}

	// Reject roles the bot cannot manage before persisting the rule.
	ok, reason, err := b.Executor.CanManageRole(i.GuildID, role.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Could not verify the role: "+err.Error())
		return
	}
	if !ok {
		utils.SendErrorResponse(s, i, fmt.Sprintf("Cannot assign <@&%s>: %s. Move my role above it in Server Settings → Roles.", role.ID, reason))
		return
	}

	err = b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
		if _, tracked := cfg.TrackedWords[word]; !tracked {
			return fmt.Errorf("word %q is not being tracked, add it first with /setup-word add", word)
		}
		if cfg.HasRule(word, period, threshold) {
			return fmt.Errorf("a %s rule at threshold %d already exists for %q", period, threshold, word)
		}
		cfg.RoleRewards[word] = append(cfg.RoleRewards[word], model.RewardRule{
			Period:    period,
			Threshold: threshold,
			RoleID:    role.ID,
		})
		return nil
	})
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf(
		"✅ Role reward configured:\n**Word:** %s\n**Period:** %s\n**Threshold:** %d counts\n**Role:** <@&%s>",
		word, period, threshold, role.ID))
}

func removeRoleRule(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	word := words.Normalize(opts["word"].StringValue())
	threshold := int(opts["threshold"].IntValue())
	period := rulePeriod(opts)

	err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
		rules := cfg.RoleRewards[word]
		for idx, r := range rules {
			if r.Period == period && r.Threshold == threshold {
				cfg.RoleRewards[word] = append(rules[:idx], rules[idx+1:]...)
				if len(cfg.RoleRewards[word]) == 0 {
					delete(cfg.RoleRewards, word)
				}
				return nil
			}
		}
		return fmt.Errorf("no %s rule found for word %q at threshold %d", period, word, threshold)
	})
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Removed %s reward for **%s** at threshold **%d**.", period, word, threshold))
}

func listRoleRules(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, err := b.Store.GuildConfig(i.GuildID, b.Config.DefaultCooldown)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load the guild configuration.")
		return
	}
	if len(cfg.RoleRewards) == 0 {
		utils.SendSimpleResponse(s, i, "📋 No role rewards are configured.")
		return
	}

	wordsSorted := make([]string, 0, len(cfg.RoleRewards))
	for w := range cfg.RoleRewards {
		wordsSorted = append(wordsSorted, w)
	}
	sort.Strings(wordsSorted)

	var lines []string
	for _, w := range wordsSorted {
		rules := append([]model.RewardRule(nil), cfg.RoleRewards[w]...)
		sort.Slice(rules, func(x, y int) bool {
			if rules[x].Period != rules[y].Period {
				return rules[x].Period < rules[y].Period
			}
			return rules[x].Threshold < rules[y].Threshold
		})
		for _, r := range rules {
			lines = append(lines, fmt.Sprintf("• **%s** — %s ≥ %d → <@&%s>", w, r.Period, r.Threshold, r.RoleID))
		}
	}
	utils.SendSimpleResponse(s, i, "📋 **Role Rewards:**\n"+strings.Join(lines, "\n"))
}
