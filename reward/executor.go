package reward

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"word-tracker/model"
)

// Executor applies role commands through the Discord API. Every command is
// handled independently: a permission or hierarchy failure on one grant
// never blocks the rest of the batch.
type Executor struct {
	session *discordgo.Session
}

func NewExecutor(session *discordgo.Session) *Executor {
	return &Executor{session: session}
}

// MemberRoles returns the set of role ids the member currently holds.
func (e *Executor) MemberRoles(guildID, userID string) (map[string]bool, error) {
	member, err := e.session.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s in guild %s: %w", userID, guildID, err)
	}
	roles := make(map[string]bool, len(member.Roles))
	for _, id := range member.Roles {
		roles[id] = true
	}
	return roles, nil
}

// Grant adds the role of one grant command.
func (e *Executor) Grant(cmd model.RoleCommand) error {
	if err := e.session.GuildMemberRoleAdd(cmd.GuildID, cmd.UserID, cmd.RoleID); err != nil {
		return fmt.Errorf("failed to grant role %s to user %s in guild %s: %w", cmd.RoleID, cmd.UserID, cmd.GuildID, err)
	}
	return nil
}

// Revoke removes the role of one revoke command.
func (e *Executor) Revoke(cmd model.RoleCommand) error {
	if err := e.session.GuildMemberRoleRemove(cmd.GuildID, cmd.UserID, cmd.RoleID); err != nil {
		return fmt.Errorf("failed to revoke role %s from user %s in guild %s: %w", cmd.RoleID, cmd.UserID, cmd.GuildID, err)
	}
	return nil
}

// Apply executes a batch of grants and revokes, logging and skipping past
// individual failures.
func (e *Executor) Apply(grants, revokes []model.RoleCommand) {
	for _, cmd := range grants {
		if err := e.Grant(cmd); err != nil {
			log.Printf("Role grant failed: %v", err)
		} else {
			log.Printf("Granted role %s to user %s in guild %s", cmd.RoleID, cmd.UserID, cmd.GuildID)
		}
	}
	for _, cmd := range revokes {
		if err := e.Revoke(cmd); err != nil {
			log.Printf("Role revoke failed: %v", err)
		} else {
			log.Printf("Revoked role %s from user %s in guild %s", cmd.RoleID, cmd.UserID, cmd.GuildID)
		}
	}
}

// CanManageRole reports whether the bot can assign the role: it must exist
// and sit below the bot's highest role. Used at config-write time so bad
// reward rules are rejected up front.
func (e *Executor) CanManageRole(guildID, roleID string) (bool, string, error) {
	roles, err := e.session.GuildRoles(guildID)
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}
	positions := make(map[string]int, len(roles))
	for _, r := range roles {
		positions[r.ID] = r.Position
	}
	target, ok := positions[roleID]
	if !ok {
		return false, "role not found", nil
	}

	me, err := e.session.GuildMember(guildID, e.session.State.User.ID)
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch bot member in guild %s: %w", guildID, err)
	}
	highest := -1
	for _, id := range me.Roles {
		if p, ok := positions[id]; ok && p > highest {
			highest = p
		}
	}
	if target >= highest {
		return false, "role is higher than the bot's highest role", nil
	}
	return true, "", nil
}
