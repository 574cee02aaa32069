package handlers

import (
	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
	"word-tracker/leaderboard"
	"word-tracker/model"
	"word-tracker/utils"
)

// HandleLeaderboard shows the top counters for a period, either for this
// server or across all servers the bot counts in.
func HandleLeaderboard(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)

	period := model.PeriodTotal
	if opt, ok := opts["period"]; ok {
		period = model.Period(opt.StringValue())
		if !period.Valid() {
			utils.SendErrorResponse(s, i, "Unknown period.")
			return
		}
	}
	global := false
	if opt, ok := opts["scope"]; ok {
		global = opt.StringValue() == "global"
	}

	var post model.RankingPost
	var label string
	if global {
		// The global scope only has an all-time counter.
		users, err := b.Store.GlobalUsers()
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to load the global leaderboard.")
			return
		}
		post = model.RankingPost{
			Period:  model.PeriodTotal,
			Entries: leaderboard.Rank(leaderboard.GlobalEntries(users), leaderboard.DefaultTopN),
		}
		label = "All servers"
	} else {
		users, err := b.Store.Users(i.GuildID)
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to load the leaderboard.")
			return
		}
		post = model.RankingPost{
			GuildID: i.GuildID,
			Period:  period,
			Entries: leaderboard.Rank(leaderboard.GuildEntries(users, period), leaderboard.DefaultTopN),
		}
		label = i.GuildID
		if g, err := s.Guild(i.GuildID); err == nil && g.Name != "" {
			label = g.Name
		}
	}

	utils.SendPublicEmbed(s, i, leaderboard.BuildEmbed(post, label))
}
