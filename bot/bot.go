package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"

	"word-tracker/config"
	"word-tracker/leaderboard"
	"word-tracker/reward"
	"word-tracker/store"
	"word-tracker/tracker"
	"word-tracker/utils/database"
)

// Bot owns the Discord session and the tracking engine around it.
type Bot struct {
	Session            *discordgo.Session
	Config             *config.Config
	Store              *store.Store
	Tracker            *tracker.Tracker
	Executor           *reward.Executor
	Poster             *leaderboard.Poster
	AuditDB            *database.OccurrenceDB
	Scheduler          *Scheduler
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	RegisteredCommands []*discordgo.ApplicationCommand
}

// New builds a bot with all engine components wired to the given store.
func New(cfg *config.Config, st *store.Store, auditDB *database.OccurrenceDB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMembers

	executor := reward.NewExecutor(dg)
	poster := leaderboard.NewPoster(dg)
	clock := clockwork.NewRealClock()

	// A typed nil must not end up inside the Auditor interface.
	var audit tracker.Auditor
	if auditDB != nil {
		audit = auditDB
	}

	b := &Bot{
		Session:   dg,
		Config:    cfg,
		Store:     st,
		Tracker:   tracker.New(st, audit, clock),
		Executor:  executor,
		Poster:    poster,
		AuditDB:   auditDB,
		Scheduler: NewScheduler(st, executor, poster, cfg.DefaultCooldown, clock),
	}
	return b, nil
}

// Close shuts the bot down gracefully: scheduler first so no boundary
// processing is cut off mid-sequence, then the session and the audit log.
func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.Scheduler.Stop()
	if err := b.Session.Close(); err != nil {
		log.Printf("Error closing session: %v", err)
	}
	if b.AuditDB != nil {
		if err := b.AuditDB.Close(); err != nil {
			log.Printf("Error closing occurrence database: %v", err)
		}
	}
}
