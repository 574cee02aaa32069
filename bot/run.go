package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"word-tracker/utils"
)

// Run opens the session, registers commands and blocks until a shutdown
// signal arrives.
func (b *Bot) Run(commands []*discordgo.ApplicationCommand) {
	if err := b.Session.Open(); err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	b.RegisterCommands(commands)
	b.Scheduler.Start()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	utils.LogInfo(b.Session, b.Config.LogChannelID, "System", "Startup", "Word tracker has started successfully.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// RegisterCommands overwrites the application's slash commands. With a
// GUILD_ID configured they are registered to that guild only, which
// propagates instantly during development.
func (b *Bot) RegisterCommands(commands []*discordgo.ApplicationCommand) {
	log.Printf("Registering %d slash commands...", len(commands))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, b.Config.GuildID, commands)
	if err != nil {
		log.Printf("Cannot register commands: %v", err)
		return
	}
	b.RegisteredCommands = registered
}
