package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"word-tracker/model"
)

func owoRules() []model.RewardRule {
	return []model.RewardRule{
		{Period: model.PeriodTotal, Threshold: 10, RoleID: "r1"},
		{Period: model.PeriodTotal, Threshold: 50, RoleID: "r2"},
	}
}

func counters(daily, weekly, monthly, total int) *model.UserCounters {
	return &model.UserCounters{
		DiscordID:    "u1",
		GuildID:      "g1",
		DailyCount:   daily,
		WeeklyCount:  weekly,
		MonthlyCount: monthly,
		TotalCount:   total,
	}
}

func roleIDs(cmds []model.RoleCommand) []string {
	ids := make([]string, 0, len(cmds))
	for _, c := range cmds {
		ids = append(ids, c.RoleID)
	}
	return ids
}

func TestGrantsStack(t *testing.T) {
	// total=50 satisfies both thresholds; both missing roles are granted
	// and the lower one is never displaced by the higher.
	grants := EvaluateGrants(counters(0, 0, 0, 50), owoRules(), map[string]bool{})
	assert.ElementsMatch(t, []string{"r1", "r2"}, roleIDs(grants))

	grants = EvaluateGrants(counters(0, 0, 0, 10), owoRules(), map[string]bool{})
	assert.Equal(t, []string{"r1"}, roleIDs(grants))
}

func TestGrantsBelowThreshold(t *testing.T) {
	grants := EvaluateGrants(counters(0, 0, 0, 9), owoRules(), map[string]bool{})
	assert.Empty(t, grants)
}

func TestGrantsSkipHeldRoles(t *testing.T) {
	current := map[string]bool{"r1": true}
	grants := EvaluateGrants(counters(0, 0, 0, 50), owoRules(), current)
	assert.Equal(t, []string{"r2"}, roleIDs(grants))
}

func TestGrantsIdempotent(t *testing.T) {
	u := counters(0, 0, 0, 50)
	first := EvaluateGrants(u, owoRules(), map[string]bool{})

	// Pretend the collaborator applied them; re-evaluating yields nothing.
	current := map[string]bool{}
	for _, c := range first {
		current[c.RoleID] = true
	}
	assert.Empty(t, EvaluateGrants(u, owoRules(), current))
}

func TestGrantsArePeriodAware(t *testing.T) {
	rules := []model.RewardRule{
		{Period: model.PeriodDaily, Threshold: 5, RoleID: "daily-champ"},
	}
	assert.Empty(t, EvaluateGrants(counters(4, 20, 30, 100), rules, map[string]bool{}))
	grants := EvaluateGrants(counters(5, 20, 30, 100), rules, map[string]bool{})
	assert.Equal(t, []string{"daily-champ"}, roleIDs(grants))
}

func TestRevocationsAfterCounterDrop(t *testing.T) {
	rules := []model.RewardRule{
		{Period: model.PeriodDaily, Threshold: 5, RoleID: "daily-champ"},
	}
	current := map[string]bool{"daily-champ": true}

	revokes := EvaluateRevocations(counters(0, 0, 0, 100), rules, current)
	assert.Equal(t, []string{"daily-champ"}, roleIDs(revokes))

	// Still at threshold: nothing to revoke.
	assert.Empty(t, EvaluateRevocations(counters(5, 0, 0, 100), rules, current))
}

func TestRevocationsNeverTouchTotalRules(t *testing.T) {
	current := map[string]bool{"r1": true, "r2": true}
	// Total can never decrease, so even absurd inputs must not revoke.
	revokes := EvaluateRevocations(counters(0, 0, 0, 0), owoRules(), current)
	assert.Empty(t, revokes)
}

func TestRevocationsSkipUnheldRoles(t *testing.T) {
	rules := []model.RewardRule{
		{Period: model.PeriodWeekly, Threshold: 5, RoleID: "weekly-champ"},
	}
	assert.Empty(t, EvaluateRevocations(counters(0, 0, 0, 0), rules, map[string]bool{}))
}

func TestRevocationsForReset(t *testing.T) {
	rewards := map[string][]model.RewardRule{
		"owo": {
			{Period: model.PeriodDaily, Threshold: 3, RoleID: "daily-champ"},
			{Period: model.PeriodWeekly, Threshold: 3, RoleID: "weekly-champ"},
			{Period: model.PeriodTotal, Threshold: 3, RoleID: "forever"},
		},
	}
	u := counters(5, 5, 5, 5)
	current := map[string]bool{"daily-champ": true, "weekly-champ": true, "forever": true}

	// Closing the daily period relinquishes only the daily role: the
	// weekly counter still stands and the total rule is untouchable.
	revokes := RevocationsForReset(model.PeriodDaily, u, rewards, current)
	assert.Equal(t, []string{"daily-champ"}, roleIDs(revokes))

	// The counters themselves must not have been mutated.
	assert.Equal(t, 5, u.DailyCount)
}
