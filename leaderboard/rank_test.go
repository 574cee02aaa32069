package leaderboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"word-tracker/model"
)

func TestRankFiltersSortsAndTruncates(t *testing.T) {
	entries := []model.RankEntry{
		{UserID: "a", Count: 3},
		{UserID: "b", Count: 0},
		{UserID: "c", Count: 7},
		{UserID: "d", Count: 5},
	}

	ranked := Rank(entries, 2)
	assert.Equal(t, []model.RankEntry{
		{UserID: "c", Count: 7},
		{UserID: "d", Count: 5},
	}, ranked)
}

func TestRankAllZeroIsEmpty(t *testing.T) {
	entries := []model.RankEntry{
		{UserID: "a", Count: 0},
		{UserID: "b", Count: 0},
	}
	assert.Empty(t, Rank(entries, 10))
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	entries := []model.RankEntry{
		{UserID: "a", Count: 5},
		{UserID: "b", Count: 5},
		{UserID: "c", Count: 5},
	}
	ranked := Rank(entries, 10)
	assert.Equal(t, entries, ranked)
}

func TestRankDefaultsTopN(t *testing.T) {
	entries := make([]model.RankEntry, 0, 15)
	for i := 0; i < 15; i++ {
		entries = append(entries, model.RankEntry{UserID: fmt.Sprintf("u%02d", i), Count: i + 1})
	}
	assert.Len(t, Rank(entries, 0), DefaultTopN)
}

func TestGuildEntriesDeterministicOrder(t *testing.T) {
	users := map[string]*model.UserCounters{
		"b": {DiscordID: "b", DailyCount: 2},
		"a": {DiscordID: "a", DailyCount: 2},
		"c": {DiscordID: "c", DailyCount: 9},
	}

	entries := GuildEntries(users, model.PeriodDaily)
	assert.Equal(t, []model.RankEntry{
		{UserID: "a", Count: 2},
		{UserID: "b", Count: 2},
		{UserID: "c", Count: 9},
	}, entries)

	// Ties rank in user-id order after the stable sort.
	ranked := Rank(entries, 10)
	assert.Equal(t, "c", ranked[0].UserID)
	assert.Equal(t, "a", ranked[1].UserID)
	assert.Equal(t, "b", ranked[2].UserID)
}

func TestGlobalEntries(t *testing.T) {
	global := map[string]*model.GlobalUser{
		"u2": {DiscordID: "u2", TotalCountGlobal: 4},
		"u1": {DiscordID: "u1", TotalCountGlobal: 11},
	}
	entries := GlobalEntries(global)
	assert.Equal(t, []model.RankEntry{
		{UserID: "u1", Count: 11},
		{UserID: "u2", Count: 4},
	}, entries)
}
