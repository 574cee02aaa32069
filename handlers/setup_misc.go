package handlers

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
	"word-tracker/model"
	"word-tracker/utils"
)

// HandleSetupCooldown sets the guild-wide default cooldown.
func HandleSetupCooldown(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)
	seconds := int(opts["seconds"].IntValue())

	err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
		cfg.CooldownSeconds = seconds
		return nil
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the cooldown.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Default cooldown set to **%d** seconds. Per-word cooldowns still take precedence.", seconds))
}

// HandleSetupLeaderboard sets the destination channel for scheduled
// leaderboard posts.
func HandleSetupLeaderboard(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)
	channel := opts["channel"].ChannelValue(s)

	err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
		cfg.LeaderboardChannelID = channel.ID
		return nil
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the leaderboard channel.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Leaderboards will be posted to <#%s> on every reset.", channel.ID))
}

// HandleSetupTimezone shows or updates the guild's reset timezone. The
// scheduler re-reads it every tick, so changes apply without a restart.
func HandleSetupTimezone(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)

	opt, ok := opts["timezone"]
	if !ok {
		cfg, err := b.Store.GuildConfig(i.GuildID, b.Config.DefaultCooldown)
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to load the guild configuration.")
			return
		}
		tz := cfg.Timezone
		if tz == "" {
			tz = "UTC"
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf(
			"⏰ Current timezone: **%s**\n\nResets occur at:\n• Daily: 00:00 (midnight)\n• Weekly: Monday 00:00\n• Monthly: 1st day 00:00", tz))
		return
	}

	tz := opt.StringValue()
	if _, err := time.LoadLocation(tz); err != nil {
		utils.SendErrorResponse(s, i, fmt.Sprintf("Unknown timezone %q.", tz))
		return
	}

	err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
		cfg.Timezone = tz
		return nil
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to save the timezone.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Timezone set to **%s**. Resets now follow that local clock.", tz))
}

// HandleSetupTagRole sets or clears the nickname tag role rule.
func HandleSetupTagRole(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "set":
		tag := opts["tag"].StringValue()
		role := opts["role"].RoleValue(s, i.GuildID)

		ok, reason, err := b.Executor.CanManageRole(i.GuildID, role.ID)
		if err != nil {
			utils.SendErrorResponse(s, i, "Could not verify the role: "+err.Error())
			return
		}
		if !ok {
			utils.SendErrorResponse(s, i, fmt.Sprintf("Cannot assign <@&%s>: %s.", role.ID, reason))
			return
		}

		err = b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
			cfg.TagRole = &model.TagRole{Tag: tag, RoleID: role.ID}
			return nil
		})
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to save the tag role.")
			return
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Members with **%s** in their nickname now receive <@&%s>.", tag, role.ID))

	case "clear":
		err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
			cfg.TagRole = nil
			return nil
		})
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to clear the tag role.")
			return
		}
		utils.SendSimpleResponse(s, i, "✅ Tag role rule removed.")
	}
}
