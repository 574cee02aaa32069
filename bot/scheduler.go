package bot

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"word-tracker/leaderboard"
	"word-tracker/model"
	"word-tracker/reward"
	"word-tracker/store"
)

// tickInterval is how often guild clocks are checked for a boundary.
// Detection recomputes local wall-clock time on every tick, so timezone
// edits and DST shifts self-correct within one tick.
const tickInterval = time.Minute

// RoleExecutor is the role-mutation collaborator the scheduler needs.
type RoleExecutor interface {
	MemberRoles(guildID, userID string) (map[string]bool, error)
	Apply(grants, revokes []model.RoleCommand)
}

// RankPoster is the messaging collaborator for ranked snapshots.
type RankPoster interface {
	PostGuild(guildID, channelID string, post model.RankingPost) error
}

// Scheduler watches every guild's local clock and runs the period reset
// sequence when a local midnight boundary passes: post the closing
// leaderboard, revoke period-scoped reward roles, then zero the counters.
type Scheduler struct {
	store           *store.Store
	exec            RoleExecutor
	poster          RankPoster
	defaultCooldown int
	clock           clockwork.Clock

	mu           sync.Mutex
	lastBoundary map[string]string // guild id -> local date already processed
	inFlight     map[string]bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewScheduler wires a scheduler. clock may be nil for the real clock.
func NewScheduler(s *store.Store, exec RoleExecutor, poster RankPoster, defaultCooldown int, clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		store:           s,
		exec:            exec,
		poster:          poster,
		defaultCooldown: defaultCooldown,
		clock:           clock,
		lastBoundary:    make(map[string]string),
		inFlight:        make(map[string]bool),
		done:            make(chan struct{}),
	}
}

// Start begins the tick loop in a background goroutine.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := s.clock.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				s.Tick()
			case <-s.done:
				return
			}
		}
	}()
	log.Println("Scheduler started, checking guild boundaries every minute")
}

// Stop terminates the tick loop and waits for in-flight guild processing.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	close(s.done)
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}

// Tick checks every guild once. Guilds are independent: a failure in one
// never prevents the others from being processed.
func (s *Scheduler) Tick() {
	guildIDs, err := s.store.GuildIDs()
	if err != nil {
		log.Printf("Scheduler: failed to list guilds: %v", err)
		return
	}
	now := s.clock.Now()
	for _, guildID := range guildIDs {
		s.checkGuild(guildID, now)
	}
}

// checkGuild fires the boundary sequence for a guild if its local clock
// just crossed midnight. Each local date is processed at most once, and a
// guild still being processed is never started a second time.
func (s *Scheduler) checkGuild(guildID string, now time.Time) {
	cfg, err := s.store.GuildConfig(guildID, s.defaultCooldown)
	if err != nil {
		log.Printf("Scheduler: failed to load config for guild %s: %v", guildID, err)
		return
	}

	local := now.In(guildLocation(cfg.Timezone, guildID))
	if local.Hour() != 0 || local.Minute() != 0 {
		return
	}

	localDate := local.Format("2006-01-02")
	s.mu.Lock()
	if s.lastBoundary[guildID] == localDate || s.inFlight[guildID] {
		s.mu.Unlock()
		return
	}
	s.lastBoundary[guildID] = localDate
	s.inFlight[guildID] = true
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Scheduler: panic while processing guild %s: %v", guildID, r)
		}
		s.mu.Lock()
		s.inFlight[guildID] = false
		s.mu.Unlock()
	}()
	for _, period := range boundaryPeriods(local) {
		log.Printf("Running %s reset for guild %s", period, guildID)
		if err := s.runBoundary(guildID, cfg, period); err != nil {
			log.Printf("Scheduler: %s reset failed for guild %s: %v", period, guildID, err)
		}
	}
}

// boundaryPeriods returns which periods close at the given local midnight:
// daily always, weekly on Mondays, monthly on the first of the month.
func boundaryPeriods(local time.Time) []model.Period {
	periods := []model.Period{model.PeriodDaily}
	if local.Weekday() == time.Monday {
		periods = append(periods, model.PeriodWeekly)
	}
	if local.Day() == 1 {
		periods = append(periods, model.PeriodMonthly)
	}
	return periods
}

// guildLocation resolves a guild's configured timezone, falling back to
// UTC for empty or unknown identifiers.
func guildLocation(tz, guildID string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Unknown timezone %q for guild %s, using UTC", tz, guildID)
		return time.UTC
	}
	return loc
}

// RunReset runs the full boundary sequence for one guild and period on
// demand (the manual /reset command). It refuses to interleave with
// boundary processing already running for the guild.
func (s *Scheduler) RunReset(guildID string, period model.Period) error {
	s.mu.Lock()
	if s.inFlight[guildID] {
		s.mu.Unlock()
		return fmt.Errorf("a reset is already running for guild %s", guildID)
	}
	s.inFlight[guildID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight[guildID] = false
		s.mu.Unlock()
	}()

	cfg, err := s.store.GuildConfig(guildID, s.defaultCooldown)
	if err != nil {
		return err
	}
	return s.runBoundary(guildID, cfg, period)
}

// runBoundary performs the three boundary steps in order for one period:
// (a) hand off the ranked snapshot of the closing period, (b) revoke
// reward roles the zeroed counters no longer justify, (c) clear the
// counters. Collaborator failures in (a) and (b) are logged and skipped;
// only a failed durable write aborts.
func (s *Scheduler) runBoundary(guildID string, cfg *model.GuildConfig, period model.Period) error {
	users, err := s.store.Users(guildID)
	if err != nil {
		return fmt.Errorf("failed to load users for guild %s: %w", guildID, err)
	}

	if cfg.LeaderboardChannelID != "" {
		post := model.RankingPost{
			GuildID: guildID,
			Period:  period,
			Entries: leaderboard.Rank(leaderboard.GuildEntries(users, period), leaderboard.DefaultTopN),
		}
		if err := s.poster.PostGuild(guildID, cfg.LeaderboardChannelID, post); err != nil {
			log.Printf("Failed to post %s leaderboard for guild %s: %v", period, guildID, err)
		}
	}

	if len(cfg.RoleRewards) > 0 {
		for userID, u := range users {
			currentRoles, err := s.exec.MemberRoles(guildID, userID)
			if err != nil {
				log.Printf("Failed to fetch roles for user %s in guild %s: %v", userID, guildID, err)
				continue
			}
			revokes := reward.RevocationsForReset(period, u, cfg.RoleRewards, currentRoles)
			s.exec.Apply(nil, revokes)
		}
	}

	if err := s.store.ResetCounts(guildID, period); err != nil {
		return fmt.Errorf("failed to reset %s counts for guild %s: %w", period, guildID, err)
	}
	log.Printf("Reset %s counts for guild %s", period, guildID)
	return nil
}
