package bot

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"word-tracker/model"
	"word-tracker/store"
)

type fakeExecutor struct {
	mu      sync.Mutex
	roles   map[string]map[string]bool // userID -> held roles
	revoked []model.RoleCommand
}

func (f *fakeExecutor) MemberRoles(guildID, userID string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	held := make(map[string]bool)
	for id := range f.roles[userID] {
		held[id] = true
	}
	return held, nil
}

func (f *fakeExecutor) Apply(grants, revokes []model.RoleCommand) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range revokes {
		delete(f.roles[c.UserID], c.RoleID)
		f.revoked = append(f.revoked, c)
	}
}

type fakePoster struct {
	mu    sync.Mutex
	posts []model.RankingPost
}

func (f *fakePoster) PostGuild(guildID, channelID string, post model.RankingPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePoster) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

// newTestScheduler seeds one guild in the New York timezone with a single
// active user and returns a scheduler driven by a fake clock starting at
// the given instant.
func newTestScheduler(t *testing.T, start time.Time) (*Scheduler, *store.Store, *fakeExecutor, *fakePoster, clockwork.FakeClock) {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	err = s.UpdateGuildConfig("g1", 10, func(cfg *model.GuildConfig) error {
		cfg.Timezone = "America/New_York"
		cfg.LeaderboardChannelID = "c1"
		cfg.RoleRewards["owo"] = []model.RewardRule{
			{Period: model.PeriodDaily, Threshold: 3, RoleID: "daily-champ"},
			{Period: model.PeriodTotal, Threshold: 3, RoleID: "forever"},
		}
		return nil
	})
	require.NoError(t, err)

	err = s.UpdateUsers("g1", func(users map[string]*model.UserCounters) error {
		u := model.NewUserCounters("g1", "u1")
		u.DailyCount = 5
		u.WeeklyCount = 5
		u.MonthlyCount = 5
		u.TotalCount = 5
		users["u1"] = u
		return nil
	})
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(start)
	exec := &fakeExecutor{roles: map[string]map[string]bool{
		"u1": {"daily-champ": true, "forever": true},
	}}
	poster := &fakePoster{}
	sched := NewScheduler(s, exec, poster, 10, clock)
	return sched, s, exec, poster, clock
}

func nyTime(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	at, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return at
}

func TestTickBeforeMidnightDoesNothing(t *testing.T) {
	// 2026-08-28 is a Friday.
	sched, s, exec, poster, _ := newTestScheduler(t, nyTime(t, "2026-08-28 23:59"))

	sched.Tick()

	users, err := s.Users("g1")
	require.NoError(t, err)
	assert.Equal(t, 5, users["u1"].DailyCount)
	assert.Zero(t, poster.count())
	assert.Empty(t, exec.revoked)
}

func TestTickAtMidnightRunsDailyBoundary(t *testing.T) {
	sched, s, exec, poster, _ := newTestScheduler(t, nyTime(t, "2026-08-29 00:00"))

	sched.Tick()

	users, err := s.Users("g1")
	require.NoError(t, err)
	u := users["u1"]
	assert.Equal(t, 0, u.DailyCount)
	assert.Equal(t, 5, u.WeeklyCount, "weekly survives a daily boundary")
	assert.Equal(t, 5, u.MonthlyCount)
	assert.Equal(t, 5, u.TotalCount)

	require.Equal(t, 1, poster.count())
	assert.Equal(t, model.PeriodDaily, poster.posts[0].Period)
	assert.Equal(t, "g1", poster.posts[0].GuildID)

	// Only the daily role falls; the total-period role survives every reset.
	require.Len(t, exec.revoked, 1)
	assert.Equal(t, "daily-champ", exec.revoked[0].RoleID)
	assert.True(t, exec.roles["u1"]["forever"])
}

func TestBoundaryFiresOncePerLocalDate(t *testing.T) {
	sched, s, _, poster, clock := newTestScheduler(t, nyTime(t, "2026-08-29 00:00"))

	sched.Tick()
	sched.Tick() // same minute again

	clock.Advance(30 * time.Second)
	sched.Tick() // still 00:00 local

	require.Equal(t, 1, poster.count())

	// Re-seed the counter and cross the next midnight to prove the dedupe
	// is per local date, not forever.
	err := s.UpdateUsers("g1", func(users map[string]*model.UserCounters) error {
		users["u1"].DailyCount = 2
		return nil
	})
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	sched.Tick()
	assert.Equal(t, 2, poster.count())
}

func TestMondayMidnightClosesDailyAndWeekly(t *testing.T) {
	// 2026-08-31 is a Monday.
	sched, s, _, poster, _ := newTestScheduler(t, nyTime(t, "2026-08-31 00:00"))

	sched.Tick()

	users, err := s.Users("g1")
	require.NoError(t, err)
	u := users["u1"]
	assert.Equal(t, 0, u.DailyCount)
	assert.Equal(t, 0, u.WeeklyCount)
	assert.Equal(t, 5, u.MonthlyCount, "monthly only closes on the 1st")
	assert.Equal(t, 5, u.TotalCount)

	require.Equal(t, 2, poster.count())
	assert.Equal(t, model.PeriodDaily, poster.posts[0].Period)
	assert.Equal(t, model.PeriodWeekly, poster.posts[1].Period)
}

func TestFirstOfMonthClosesMonthly(t *testing.T) {
	// 2026-09-01 is a Tuesday, so daily and monthly close but not weekly.
	sched, s, _, poster, _ := newTestScheduler(t, nyTime(t, "2026-09-01 00:00"))

	sched.Tick()

	users, err := s.Users("g1")
	require.NoError(t, err)
	u := users["u1"]
	assert.Equal(t, 0, u.DailyCount)
	assert.Equal(t, 5, u.WeeklyCount)
	assert.Equal(t, 0, u.MonthlyCount)

	require.Equal(t, 2, poster.count())
	assert.Equal(t, model.PeriodDaily, poster.posts[0].Period)
	assert.Equal(t, model.PeriodMonthly, poster.posts[1].Period)
}

func TestBoundaryPeriods(t *testing.T) {
	assert.Equal(t,
		[]model.Period{model.PeriodDaily},
		boundaryPeriods(nyTime(t, "2026-08-29 00:00"))) // Saturday
	assert.Equal(t,
		[]model.Period{model.PeriodDaily, model.PeriodWeekly},
		boundaryPeriods(nyTime(t, "2026-08-31 00:00"))) // Monday
	assert.Equal(t,
		[]model.Period{model.PeriodDaily, model.PeriodMonthly},
		boundaryPeriods(nyTime(t, "2026-09-01 00:00"))) // Tuesday the 1st
	assert.Equal(t,
		[]model.Period{model.PeriodDaily, model.PeriodWeekly, model.PeriodMonthly},
		boundaryPeriods(nyTime(t, "2026-06-01 00:00"))) // Monday the 1st
}

func TestUnknownTimezoneFallsBackToUTC(t *testing.T) {
	loc := guildLocation("Not/AZone", "g1")
	assert.Equal(t, time.UTC, loc)
	assert.Equal(t, time.UTC, guildLocation("", "g1"))
}

func TestRunResetRefusesTotal(t *testing.T) {
	sched, s, _, _, _ := newTestScheduler(t, nyTime(t, "2026-08-28 12:00"))

	// The store refuses to zero the total counter, so the manual path
	// surfaces that as an error too.
	err := sched.RunReset("g1", model.PeriodTotal)
	assert.Error(t, err)

	users, uerr := s.Users("g1")
	require.NoError(t, uerr)
	assert.Equal(t, 5, users["u1"].TotalCount)
}

func TestRunResetMidDay(t *testing.T) {
	sched, s, _, poster, _ := newTestScheduler(t, nyTime(t, "2026-08-28 12:00"))

	require.NoError(t, sched.RunReset("g1", model.PeriodWeekly))

	users, err := s.Users("g1")
	require.NoError(t, err)
	u := users["u1"]
	assert.Equal(t, 0, u.WeeklyCount)
	assert.Equal(t, 5, u.DailyCount)
	require.Equal(t, 1, poster.count())
	assert.Equal(t, model.PeriodWeekly, poster.posts[0].Period)
}
