package leaderboard

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"word-tracker/model"
)

// Poster sends ranking snapshots to guild channels. It is the messaging
// collaborator for the scheduler: the engine decides what to post, the
// poster owns the API call.
type Poster struct {
	session *discordgo.Session
}

func NewPoster(session *discordgo.Session) *Poster {
	return &Poster{session: session}
}

// Post sends the snapshot to the given channel.
func (p *Poster) Post(channelID string, post model.RankingPost, scopeLabel string) error {
	embed := BuildEmbed(post, scopeLabel)
	if _, err := p.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("failed to post %s leaderboard to channel %s: %w", post.Period, channelID, err)
	}
	return nil
}

// PostGuild posts a guild-scoped snapshot, labelling it with the guild
// name when it can be resolved.
func (p *Poster) PostGuild(guildID, channelID string, post model.RankingPost) error {
	label := guildID
	if g, err := p.session.Guild(guildID); err == nil && g.Name != "" {
		label = g.Name
	}
	return p.Post(channelID, post, label)
}
