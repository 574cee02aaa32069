package leaderboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"word-tracker/model"
)

const embedColor = 0x5865F2 // Discord Blurple

var periodTitles = map[model.Period]string{
	model.PeriodDaily:   "Daily",
	model.PeriodWeekly:  "Weekly",
	model.PeriodMonthly: "Monthly",
	model.PeriodTotal:   "All-Time",
}

var medals = []string{"🥇", "🥈", "🥉"}

func medal(index int) string {
	if index < len(medals) {
		return medals[index]
	}
	return "🏅"
}

// Title returns the human title for a period in the given scope.
func Title(period model.Period, global bool) string {
	if global {
		return "Global All-Time"
	}
	if t, ok := periodTitles[period]; ok {
		return t
	}
	return "Unknown"
}

// BuildEmbed renders a ranked snapshot as a leaderboard embed. User ids
// are rendered as mentions so no extra API lookups are needed.
func BuildEmbed(post model.RankingPost, scopeLabel string) *discordgo.MessageEmbed {
	global := post.GuildID == ""
	title := fmt.Sprintf("🏆 %s Leaderboard", Title(post.Period, global))

	if len(post.Entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No data yet! Start counting to appear on the leaderboard.",
			Color:       embedColor,
			Footer:      &discordgo.MessageEmbedFooter{Text: scopeLabel},
			Timestamp:   time.Now().Format(time.RFC3339),
		}
	}

	lines := make([]string, 0, len(post.Entries))
	for i, e := range post.Entries {
		lines = append(lines, fmt.Sprintf("%s **%d.** <@%s> - **%d** counts", medal(i), i+1, e.UserID, e.Count))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s • Top %d users", scopeLabel, len(post.Entries)),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
