package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"word-tracker/model"
)

func seedUser(t *testing.T, s *Store, guildID, userID string, daily, weekly, monthly, total int) {
	t.Helper()
	require.NoError(t, s.UpdateUsers(guildID, func(users map[string]*model.UserCounters) error {
		u := model.NewUserCounters(guildID, userID)
		u.DailyCount = daily
		u.WeeklyCount = weekly
		u.MonthlyCount = monthly
		u.TotalCount = total
		users[userID] = u
		return nil
	}))
}

func TestGuildConfigCreatedLazilyWithDefaults(t *testing.T) {
	s := newTestStore(t)

	cfg, err := s.GuildConfig("g1", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.CooldownSeconds)
	assert.Empty(t, cfg.TrackedWords)
	assert.Empty(t, cfg.EnabledChannels)

	// The default must be persisted, not recreated with a different
	// cooldown on the next access.
	again, err := s.GuildConfig("g1", 99)
	require.NoError(t, err)
	assert.Equal(t, 15, again.CooldownSeconds)
}

func TestUpdateGuildConfigPersists(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpdateGuildConfig("g1", 10, func(cfg *model.GuildConfig) error {
		cfg.TrackedWords["owo"] = model.TrackedWord{Aliases: []string{"uwu"}}
		cfg.Timezone = "America/New_York"
		return nil
	}))

	cfg, err := s.GuildConfig("g1", 10)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, []string{"uwu"}, cfg.TrackedWords["owo"].Aliases)
}

func TestResetCountsZeroesOnlyThatPeriod(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "g1", "u1", 3, 5, 8, 40)

	require.NoError(t, s.UpdateGlobalUsers(func(global map[string]*model.GlobalUser) error {
		global["u1"] = &model.GlobalUser{DiscordID: "u1", TotalCountGlobal: 40, Guilds: []string{"g1"}}
		return nil
	}))

	require.NoError(t, s.ResetCounts("g1", model.PeriodDaily))

	users, err := s.Users("g1")
	require.NoError(t, err)
	u := users["u1"]
	assert.Equal(t, 0, u.DailyCount)
	assert.Equal(t, 5, u.WeeklyCount)
	assert.Equal(t, 8, u.MonthlyCount)
	assert.Equal(t, 40, u.TotalCount)

	// Tenant-scoped resets never touch the global aggregate.
	global, err := s.GlobalUsers()
	require.NoError(t, err)
	assert.Equal(t, 40, global["u1"].TotalCountGlobal)
}

func TestResetCountsRefusesTotal(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "g1", "u1", 1, 1, 1, 1)

	assert.Error(t, s.ResetCounts("g1", model.PeriodTotal))
	assert.Error(t, s.ResetCounts("g1", model.Period("bogus")))

	users, err := s.Users("g1")
	require.NoError(t, err)
	assert.Equal(t, 1, users["u1"].TotalCount)
}

func TestResetsAcrossGuildsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "g1", "u1", 3, 3, 3, 3)
	seedUser(t, s, "g2", "u1", 4, 4, 4, 4)

	require.NoError(t, s.ResetCounts("g1", model.PeriodWeekly))

	g1, err := s.Users("g1")
	require.NoError(t, err)
	g2, err := s.Users("g2")
	require.NoError(t, err)
	assert.Equal(t, 0, g1["u1"].WeeklyCount)
	assert.Equal(t, 4, g2["u1"].WeeklyCount)
}

func TestGuildIDs(t *testing.T) {
	s := newTestStore(t)

	ids, err := s.GuildIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	seedUser(t, s, "g1", "u1", 0, 0, 0, 0)
	seedUser(t, s, "g2", "u2", 0, 0, 0, 0)

	ids, err = s.GuildIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"g1", "g2"}, ids)
}
