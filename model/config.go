package model

// Period identifies one of the four counting windows.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodTotal   Period = "total"
)

// ResettablePeriods are the periods the scheduler zeroes on a boundary.
// Total never resets.
var ResettablePeriods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// Valid reports whether p is one of the four known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodTotal:
		return true
	}
	return false
}

// TrackedWord holds the per-word matching configuration.
type TrackedWord struct {
	Aliases []string `json:"aliases"`
	// Cooldown overrides the guild default when > 0, in seconds.
	Cooldown int `json:"cooldown,omitempty"`
}

// RewardRule grants RoleID once the counter of Period reaches Threshold.
type RewardRule struct {
	Period    Period `json:"period"`
	Threshold int    `json:"threshold"`
	RoleID    string `json:"role_id"`
}

// TagRole assigns RoleID to members whose nickname contains Tag.
type TagRole struct {
	Tag    string `json:"tag"`
	RoleID string `json:"role_id"`
}

// GuildConfig is the per-guild tracking configuration.
type GuildConfig struct {
	EnabledChannels      []string                `json:"enabled_channels"`
	TrackedWords         map[string]TrackedWord  `json:"tracked_words"`
	RoleRewards          map[string][]RewardRule `json:"role_rewards"`
	CooldownSeconds      int                     `json:"cooldown_seconds"`
	LeaderboardChannelID string                  `json:"leaderboard_channel_id,omitempty"`
	Timezone             string                  `json:"timezone,omitempty"`
	TagRole              *TagRole                `json:"tag_role,omitempty"`
}

// NewGuildConfig returns a config populated with defaults for a guild seen
// for the first time.
func NewGuildConfig(defaultCooldown int) *GuildConfig {
	return &GuildConfig{
		EnabledChannels: []string{},
		TrackedWords:    make(map[string]TrackedWord),
		RoleRewards:     make(map[string][]RewardRule),
		CooldownSeconds: defaultCooldown,
	}
}

// WordCooldown returns the effective cooldown in seconds for a tracked word.
func (c *GuildConfig) WordCooldown(word string) int {
	if w, ok := c.TrackedWords[word]; ok && w.Cooldown > 0 {
		return w.Cooldown
	}
	return c.CooldownSeconds
}

// ChannelEnabled reports whether tracking is active in the given channel.
func (c *GuildConfig) ChannelEnabled(channelID string) bool {
	for _, id := range c.EnabledChannels {
		if id == channelID {
			return true
		}
	}
	return false
}

// HasRule reports whether a reward rule with the same period and threshold
// already exists for word. No two rules on a word may share that pair.
func (c *GuildConfig) HasRule(word string, period Period, threshold int) bool {
	for _, r := range c.RoleRewards[word] {
		if r.Period == period && r.Threshold == threshold {
			return true
		}
	}
	return false
}

// AliasConflict returns the tracked word already owning alias, if any.
// Aliases must be unique across all tracked words of a guild, and must not
// shadow another canonical word.
func (c *GuildConfig) AliasConflict(alias string) (string, bool) {
	if _, ok := c.TrackedWords[alias]; ok {
		return alias, true
	}
	for word, tw := range c.TrackedWords {
		for _, a := range tw.Aliases {
			if a == alias {
				return word, true
			}
		}
	}
	return "", false
}
