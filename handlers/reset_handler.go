package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
	"word-tracker/model"
	"word-tracker/utils"
)

// HandleReset runs the full boundary sequence on demand: leaderboard
// snapshot, role revocations, counter reset. Same three steps the
// scheduler performs at midnight.
func HandleReset(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)
	period := model.Period(opts["type"].StringValue())

	if !period.Valid() || period == model.PeriodTotal {
		utils.SendErrorResponse(s, i, "Only daily, weekly and monthly counts can be reset.")
		return
	}

	// Revoking roles across all users takes a while, so defer.
	if err := utils.DeferResponse(s, i, true); err != nil {
		return
	}

	if err := b.Scheduler.RunReset(i.GuildID, period); err != nil {
		utils.SendFollowUpError(s, i.Interaction, fmt.Sprintf("Failed to reset counts: %v", err))
		return
	}
	utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("✅ Successfully reset **%s** counts for all users in this server.", period))
}
