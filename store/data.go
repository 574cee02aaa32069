package store

import (
	"fmt"
	"os"
	"strings"

	"word-tracker/model"
)

// Key layout: "config" maps guild id -> GuildConfig, "users_<guild>" maps
// user id -> UserCounters, "global" holds the cross-guild aggregate. Each
// guild's counters live behind their own key so guilds never serialize on
// one another's writes.

const (
	configKey      = "config"
	globalKey      = "global"
	usersKeyPrefix = "users_"
)

func usersKey(guildID string) string {
	return usersKeyPrefix + guildID
}

// globalData is the persisted shape of the global aggregate partition.
type globalData struct {
	Users map[string]*model.GlobalUser `json:"users"`
}

// GuildConfig returns the config for a guild, creating and persisting a
// default one on first access.
func (s *Store) GuildConfig(guildID string, defaultCooldown int) (*model.GuildConfig, error) {
	configs := make(map[string]*model.GuildConfig)
	if err := s.Read(configKey, &configs); err != nil {
		return nil, err
	}
	if cfg, ok := configs[guildID]; ok {
		normalizeGuildConfig(cfg)
		return cfg, nil
	}

	var created *model.GuildConfig
	err := s.Update(configKey, &configs, func() error {
		// Re-check under the lock: another caller may have created it.
		if cfg, ok := configs[guildID]; ok {
			created = cfg
			return nil
		}
		created = model.NewGuildConfig(defaultCooldown)
		configs[guildID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	normalizeGuildConfig(created)
	return created, nil
}

// UpdateGuildConfig mutates a guild's config under the config key lock.
func (s *Store) UpdateGuildConfig(guildID string, defaultCooldown int, fn func(*model.GuildConfig) error) error {
	configs := make(map[string]*model.GuildConfig)
	return s.Update(configKey, &configs, func() error {
		cfg, ok := configs[guildID]
		if !ok {
			cfg = model.NewGuildConfig(defaultCooldown)
			configs[guildID] = cfg
		}
		normalizeGuildConfig(cfg)
		return fn(cfg)
	})
}

// Users returns all counters of a guild. Never nil.
func (s *Store) Users(guildID string) (map[string]*model.UserCounters, error) {
	users := make(map[string]*model.UserCounters)
	if err := s.Read(usersKey(guildID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUsers mutates a guild's counters as one locked read-modify-write.
func (s *Store) UpdateUsers(guildID string, fn func(map[string]*model.UserCounters) error) error {
	users := make(map[string]*model.UserCounters)
	return s.Update(usersKey(guildID), &users, func() error {
		return fn(users)
	})
}

// GlobalUsers returns the cross-guild aggregate map. Never nil.
func (s *Store) GlobalUsers() (map[string]*model.GlobalUser, error) {
	var g globalData
	if err := s.Read(globalKey, &g); err != nil {
		return nil, err
	}
	if g.Users == nil {
		g.Users = make(map[string]*model.GlobalUser)
	}
	return g.Users, nil
}

// UpdateGlobalUsers mutates the global aggregate under its key lock.
func (s *Store) UpdateGlobalUsers(fn func(map[string]*model.GlobalUser) error) error {
	var g globalData
	return s.Update(globalKey, &g, func() error {
		if g.Users == nil {
			g.Users = make(map[string]*model.GlobalUser)
		}
		return fn(g.Users)
	})
}

// ResetCounts zeroes one resettable period for every user of a guild.
// Total counters and the global aggregate are untouched.
func (s *Store) ResetCounts(guildID string, period model.Period) error {
	if period == model.PeriodTotal {
		return fmt.Errorf("refusing to reset total counts for guild %s", guildID)
	}
	if !period.Valid() {
		return fmt.Errorf("unknown period %q", period)
	}
	return s.UpdateUsers(guildID, func(users map[string]*model.UserCounters) error {
		for _, u := range users {
			u.Reset(period)
		}
		return nil
	})
}

// GuildIDs lists every guild that has a counters partition on disk.
func (s *Store) GuildIDs() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, usersKeyPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, usersKeyPrefix), ".json"))
	}
	return ids, nil
}

// normalizeGuildConfig backfills nil maps and slices after decoding, so
// callers and handlers never need nil checks.
func normalizeGuildConfig(cfg *model.GuildConfig) {
	if cfg.EnabledChannels == nil {
		cfg.EnabledChannels = []string{}
	}
	if cfg.TrackedWords == nil {
		cfg.TrackedWords = make(map[string]model.TrackedWord)
	}
	if cfg.RoleRewards == nil {
		cfg.RoleRewards = make(map[string][]model.RewardRule)
	}
}
