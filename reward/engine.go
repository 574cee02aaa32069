// Package reward decides which reward roles a user should gain or lose
// from their counters. Decisions are pure; applying them to Discord is the
// executor's job.
package reward

import (
	"word-tracker/model"
)

// EvaluateGrants returns a grant command for every rule of one word whose
// period counter has reached its threshold and whose role the user does
// not hold yet. Rules stack: several thresholds on the same word may all
// be satisfied at once and every missing role is granted. Evaluating twice
// with unchanged inputs yields nothing new, since held roles are skipped.
func EvaluateGrants(u *model.UserCounters, rules []model.RewardRule, currentRoles map[string]bool) []model.RoleCommand {
	var cmds []model.RoleCommand
	for _, rule := range rules {
		if u.Count(rule.Period) < rule.Threshold {
			continue
		}
		if currentRoles[rule.RoleID] {
			continue
		}
		cmds = append(cmds, model.RoleCommand{
			GuildID: u.GuildID,
			UserID:  u.DiscordID,
			RoleID:  rule.RoleID,
		})
	}
	return cmds
}

// EvaluateRevocations returns a revoke command for every held role whose
// period counter has fallen below its rule's threshold. Only period resets
// can make that happen, so total-period rules are never revoked.
func EvaluateRevocations(u *model.UserCounters, rules []model.RewardRule, currentRoles map[string]bool) []model.RoleCommand {
	var cmds []model.RoleCommand
	for _, rule := range rules {
		if rule.Period == model.PeriodTotal {
			continue
		}
		if !currentRoles[rule.RoleID] {
			continue
		}
		if u.Count(rule.Period) >= rule.Threshold {
			continue
		}
		cmds = append(cmds, model.RoleCommand{
			GuildID: u.GuildID,
			UserID:  u.DiscordID,
			RoleID:  rule.RoleID,
		})
	}
	return cmds
}

// RevocationsForReset returns the revoke commands a reset of period will
// cause, evaluated against a copy of the counters with that period already
// zeroed, so roles are relinquished before the counts are cleared.
func RevocationsForReset(period model.Period, u *model.UserCounters, rewards map[string][]model.RewardRule, currentRoles map[string]bool) []model.RoleCommand {
	after := *u
	after.Reset(period)

	var cmds []model.RoleCommand
	for _, rules := range rewards {
		cmds = append(cmds, EvaluateRevocations(&after, rules, currentRoles)...)
	}
	return cmds
}
