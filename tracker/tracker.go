// Package tracker implements the cooldown-gated counting path: one
// qualifying word occurrence becomes one increment across all four
// period counters plus the cross-guild aggregate.
package tracker

import (
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"word-tracker/model"
	"word-tracker/store"
	"word-tracker/words"
)

// Auditor receives every counted occurrence for the append-only log.
// Audit failures are logged and never fail the count.
type Auditor interface {
	RecordOccurrence(guildID, userID, word string, at time.Time) error
}

// Tracker applies occurrences to the store.
type Tracker struct {
	store *store.Store
	audit Auditor
	clock clockwork.Clock
}

// New returns a tracker. audit may be nil to disable the occurrence log.
func New(s *store.Store, audit Auditor, clock clockwork.Clock) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Tracker{store: s, audit: audit, clock: clock}
}

// Result reports the outcome of one occurrence. Suppression by cooldown is
// a normal outcome, not an error.
type Result struct {
	Counted          bool
	RemainingSeconds int
	// User is a snapshot of the counters after the increment, valid
	// only when Counted is true.
	User model.UserCounters
}

// RecordOccurrence counts one occurrence of word for a user, unless the
// word is still cooling down. The whole check-and-increment runs under the
// guild's counters lock, so two near-simultaneous occurrences can never
// both pass the cooldown gate. The per-guild write is durable before the
// global aggregate is touched; a crash in between leaves the global total
// stale by one, which the design accepts.
func (t *Tracker) RecordOccurrence(guildID, userID, word string, cooldownSeconds int) (Result, error) {
	now := t.clock.Now()
	var res Result

	err := t.store.UpdateUsers(guildID, func(users map[string]*model.UserCounters) error {
		u, ok := users[userID]
		if !ok {
			u = model.NewUserCounters(guildID, userID)
			users[userID] = u
		}

		last := u.LastCounted[word]
		if !words.CooldownExpired(last, cooldownSeconds, now) {
			res.RemainingSeconds = words.RemainingCooldown(last, cooldownSeconds, now)
			return store.ErrNoChange
		}

		u.Increment(word, now.UnixMilli())
		res.Counted = true
		res.User = *u
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to update counters for user %s in guild %s: %w", userID, guildID, err)
	}
	if !res.Counted {
		return res, nil
	}

	err = t.store.UpdateGlobalUsers(func(global map[string]*model.GlobalUser) error {
		g, ok := global[userID]
		if !ok {
			g = &model.GlobalUser{DiscordID: userID}
			global[userID] = g
		}
		g.TotalCountGlobal++
		g.RecordGuild(guildID)
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to update global aggregate for user %s: %w", userID, err)
	}

	if t.audit != nil {
		if err := t.audit.RecordOccurrence(guildID, userID, word, now); err != nil {
			log.Printf("Failed to log occurrence of %q by %s in guild %s: %v", word, userID, guildID, err)
		}
	}
	return res, nil
}
