package handlers

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"word-tracker/bot"
	"word-tracker/model"
	"word-tracker/utils"
)

// HandleSetupChannel manages the set of channels where words are counted.
func HandleSetupChannel(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "add":
		channel := opts["channel"].ChannelValue(s)
		err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
			if cfg.ChannelEnabled(channel.ID) {
				return fmt.Errorf("<#%s> is already tracked", channel.ID)
			}
			cfg.EnabledChannels = append(cfg.EnabledChannels, channel.ID)
			return nil
		})
		if err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Now tracking words in <#%s>.", channel.ID))

	case "remove":
		channel := opts["channel"].ChannelValue(s)
		err := b.Store.UpdateGuildConfig(i.GuildID, b.Config.DefaultCooldown, func(cfg *model.GuildConfig) error {
			for idx, id := range cfg.EnabledChannels {
				if id == channel.ID {
					cfg.EnabledChannels = append(cfg.EnabledChannels[:idx], cfg.EnabledChannels[idx+1:]...)
					return nil
				}
			}
			return fmt.Errorf("<#%s> is not tracked", channel.ID)
		})
		if err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Stopped tracking words in <#%s>.", channel.ID))

	case "list":
		cfg, err := b.Store.GuildConfig(i.GuildID, b.Config.DefaultCooldown)
		if err != nil {
			utils.SendErrorResponse(s, i, "Failed to load the guild configuration.")
			return
		}
		if len(cfg.EnabledChannels) == 0 {
			utils.SendSimpleResponse(s, i, "📋 No channels are tracked yet.")
			return
		}
		mentions := make([]string, 0, len(cfg.EnabledChannels))
		for _, id := range cfg.EnabledChannels {
			mentions = append(mentions, "<#"+id+">")
		}
		utils.SendSimpleResponse(s, i, "📋 **Tracked channels:** "+strings.Join(mentions, ", "))
	}
}
