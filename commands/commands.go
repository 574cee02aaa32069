// Package commands defines the slash command set registered with Discord.
package commands

import (
	"github.com/bwmarrin/discordgo"
)

var adminPermission int64 = discordgo.PermissionAdministrator

// Discord caps a string option at 25 choices, so the timezone picker
// offers a curated list of common IANA identifiers.
var timezoneChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "UTC", Value: "UTC"},
	{Name: "America/New_York (EST/EDT)", Value: "America/New_York"},
	{Name: "America/Chicago (CST/CDT)", Value: "America/Chicago"},
	{Name: "America/Denver (MST/MDT)", Value: "America/Denver"},
	{Name: "America/Los_Angeles (PST/PDT)", Value: "America/Los_Angeles"},
	{Name: "America/Anchorage (AKST/AKDT)", Value: "America/Anchorage"},
	{Name: "America/Toronto (EST/EDT)", Value: "America/Toronto"},
	{Name: "America/Mexico_City (CST/CDT)", Value: "America/Mexico_City"},
	{Name: "America/Sao_Paulo (BRT)", Value: "America/Sao_Paulo"},
	{Name: "Europe/London (GMT/BST)", Value: "Europe/London"},
	{Name: "Europe/Paris (CET/CEST)", Value: "Europe/Paris"},
	{Name: "Europe/Berlin (CET/CEST)", Value: "Europe/Berlin"},
	{Name: "Europe/Madrid (CET/CEST)", Value: "Europe/Madrid"},
	{Name: "Europe/Warsaw (CET/CEST)", Value: "Europe/Warsaw"},
	{Name: "Europe/Athens (EET/EEST)", Value: "Europe/Athens"},
	{Name: "Europe/Istanbul (TRT)", Value: "Europe/Istanbul"},
	{Name: "Europe/Moscow (MSK)", Value: "Europe/Moscow"},
	{Name: "Asia/Dubai (GST)", Value: "Asia/Dubai"},
	{Name: "Asia/Kolkata (IST)", Value: "Asia/Kolkata"},
	{Name: "Asia/Singapore (SGT)", Value: "Asia/Singapore"},
	{Name: "Asia/Shanghai (CST)", Value: "Asia/Shanghai"},
	{Name: "Asia/Tokyo (JST)", Value: "Asia/Tokyo"},
	{Name: "Asia/Seoul (KST)", Value: "Asia/Seoul"},
	{Name: "Australia/Sydney (AEDT/AEST)", Value: "Australia/Sydney"},
	{Name: "Pacific/Auckland (NZDT/NZST)", Value: "Pacific/Auckland"},
}

var periodChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Daily", Value: "daily"},
	{Name: "Weekly", Value: "weekly"},
	{Name: "Monthly", Value: "monthly"},
	{Name: "Total (All-Time)", Value: "total"},
}

var resetChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Daily", Value: "daily"},
	{Name: "Weekly", Value: "weekly"},
	{Name: "Monthly", Value: "monthly"},
}

// Generate returns the full command set of the bot.
func Generate() []*discordgo.ApplicationCommand {
	minOne := float64(1)

	return []*discordgo.ApplicationCommand{
		{
			Name:                     "setup-word",
			Description:              "Configure tracked words",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a word to track",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "word", Description: "Word to track", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "aliases", Description: "Comma-separated aliases (optional)"},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "cooldown", Description: "Custom cooldown in seconds (optional)", MinValue: &minOne},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a tracked word",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "word", Description: "Word to stop tracking", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List all tracked words",
				},
			},
		},
		{
			Name:                     "setup-role",
			Description:              "Configure role rewards for word counts",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a role reward threshold",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "word", Description: "Word to assign role for", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "threshold", Description: "Count threshold", Required: true, MinValue: &minOne},
						{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Role to assign", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "period", Description: "Count period (default: total)", Choices: periodChoices},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a role reward threshold",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "word", Description: "Word to remove the reward from", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "threshold", Description: "Threshold to remove", Required: true, MinValue: &minOne},
						{Type: discordgo.ApplicationCommandOptionString, Name: "period", Description: "Period of the rule (default: total)", Choices: periodChoices},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List all role rewards",
				},
			},
		},
		{
			Name:                     "setup-channel",
			Description:              "Configure channels where words are tracked",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Enable tracking in a channel",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Channel to track", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Disable tracking in a channel",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Channel to stop tracking", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List tracked channels",
				},
			},
		},
		{
			Name:                     "setup-cooldown",
			Description:              "Set the default cooldown between counted occurrences",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "seconds", Description: "Cooldown in seconds", Required: true, MinValue: &minOne},
			},
		},
		{
			Name:                     "setup-leaderboard",
			Description:              "Set the channel for automatic leaderboard posts",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Channel for leaderboard posts", Required: true},
			},
		},
		{
			Name:                     "setup-timezone",
			Description:              "Configure the timezone for automatic resets",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "timezone", Description: "Timezone for resets (default: UTC)", Choices: timezoneChoices},
			},
		},
		{
			Name:                     "setup-tag-role",
			Description:              "Assign a role to members whose nickname contains a tag",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Set the tag and role",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "tag", Description: "Tag to look for in nicknames", Required: true},
						{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Role to assign", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Remove the tag role rule",
				},
			},
		},
		{
			Name:                     "reset",
			Description:              "Manually reset counts",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "type", Description: "Type of reset", Required: true, Choices: resetChoices},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the word count leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "period", Description: "Period to rank (default: total)", Choices: periodChoices},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "scope",
					Description: "Server or global scope (default: server)",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Server", Value: "guild"},
						{Name: "Global", Value: "global"},
					},
				},
			},
		},
		{
			Name:        "tracked-words",
			Description: "Show the words tracked in this server",
		},
		{
			Name:                     "stats",
			Description:              "Show bot and tracking statistics",
			DefaultMemberPermissions: &adminPermission,
		},
	}
}
