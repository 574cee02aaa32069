package model

// UserCounters holds one user's counters inside one guild.
// TotalCount is monotonic and is always >= the three period counters.
type UserCounters struct {
	DiscordID    string `json:"discord_id"`
	GuildID      string `json:"guild_id"`
	DailyCount   int    `json:"daily_count"`
	WeeklyCount  int    `json:"weekly_count"`
	MonthlyCount int    `json:"monthly_count"`
	TotalCount   int    `json:"total_count"`
	// LastCounted maps tracked word -> unix milliseconds of the last
	// counted occurrence. Values never move backwards.
	LastCounted map[string]int64 `json:"last_counted"`
}

// NewUserCounters returns zeroed counters for a user first seen in a guild.
func NewUserCounters(guildID, userID string) *UserCounters {
	return &UserCounters{
		DiscordID:   userID,
		GuildID:     guildID,
		LastCounted: make(map[string]int64),
	}
}

// Count returns the counter value for the given period.
func (u *UserCounters) Count(p Period) int {
	switch p {
	case PeriodDaily:
		return u.DailyCount
	case PeriodWeekly:
		return u.WeeklyCount
	case PeriodMonthly:
		return u.MonthlyCount
	case PeriodTotal:
		return u.TotalCount
	}
	return 0
}

// Reset zeroes the counter of a resettable period. Total is never reset.
func (u *UserCounters) Reset(p Period) {
	switch p {
	case PeriodDaily:
		u.DailyCount = 0
	case PeriodWeekly:
		u.WeeklyCount = 0
	case PeriodMonthly:
		u.MonthlyCount = 0
	}
}

// Increment bumps all four counters by one and stamps the word's
// last-counted time.
func (u *UserCounters) Increment(word string, atMillis int64) {
	u.DailyCount++
	u.WeeklyCount++
	u.MonthlyCount++
	u.TotalCount++
	if u.LastCounted == nil {
		u.LastCounted = make(map[string]int64)
	}
	if atMillis > u.LastCounted[word] {
		u.LastCounted[word] = atMillis
	}
}

// GlobalUser is the cross-guild aggregate for one user.
type GlobalUser struct {
	DiscordID        string   `json:"discord_id"`
	TotalCountGlobal int      `json:"total_count_global"`
	Guilds           []string `json:"guilds"`
}

// RecordGuild adds guildID to the membership set if not already present.
func (g *GlobalUser) RecordGuild(guildID string) {
	for _, id := range g.Guilds {
		if id == guildID {
			return
		}
	}
	g.Guilds = append(g.Guilds, guildID)
}
