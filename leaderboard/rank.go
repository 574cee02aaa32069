// Package leaderboard ranks counters and posts leaderboard embeds.
package leaderboard

import (
	"sort"

	"word-tracker/model"
)

// DefaultTopN is how many entries a leaderboard shows.
const DefaultTopN = 10

// Rank filters out zero counts, sorts descending and truncates to n.
// The sort is stable, so ties keep the input order; callers that start
// from a map must hand in a deterministically ordered slice.
func Rank(entries []model.RankEntry, n int) []model.RankEntry {
	if n <= 0 {
		n = DefaultTopN
	}
	ranked := make([]model.RankEntry, 0, len(entries))
	for _, e := range entries {
		if e.Count > 0 {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// GuildEntries flattens a guild's counters for one period into rank
// entries, ordered by user id so ranking ties are deterministic.
func GuildEntries(users map[string]*model.UserCounters, period model.Period) []model.RankEntry {
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]model.RankEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, model.RankEntry{UserID: id, Count: users[id].Count(period)})
	}
	return entries
}

// GlobalEntries flattens the cross-guild aggregate into rank entries,
// ordered by user id.
func GlobalEntries(global map[string]*model.GlobalUser) []model.RankEntry {
	ids := make([]string, 0, len(global))
	for id := range global {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]model.RankEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, model.RankEntry{UserID: id, Count: global[id].TotalCountGlobal})
	}
	return entries
}
