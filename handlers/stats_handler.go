package handlers

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"word-tracker/bot"
	"word-tracker/utils"
)

// HandleStats shows host metrics and occurrence-log statistics.
func HandleStats(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	guildTotal, globalTotal := 0, 0
	var topWords []string
	if b.AuditDB != nil {
		if n, err := b.AuditDB.GuildOccurrenceCount(i.GuildID); err == nil {
			guildTotal = n
		}
		if n, err := b.AuditDB.TotalOccurrenceCount(); err == nil {
			globalTotal = n
		}
		if rows, err := b.AuditDB.TopWords(i.GuildID, 5); err == nil {
			for _, r := range rows {
				topWords = append(topWords, fmt.Sprintf("%s (%d)", r.Word, r.Count))
			}
		}
	}
	topWordsValue := "—"
	if len(topWords) > 0 {
		topWordsValue = strings.Join(topWords, ", ")
	}

	platform := "unknown"
	if hostInfo != nil {
		platform = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
	}
	memValue := "unknown"
	if vm != nil {
		memValue = fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024)
	}

	embed := &discordgo.MessageEmbed{
		Title: "📊 Bot Statistics",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💻 OS", Value: platform, Inline: true},
			{Name: "🐹 Go Version", Value: runtime.Version(), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "🔼 CPU Cores", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "🔥 CPU Usage", Value: fmt.Sprintf("%.1f%%", cpuUsage), Inline: true},
			{Name: "🧠 Memory", Value: memValue, Inline: true},
			{Name: "⏱️ Gateway Latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "🔤 Counted Here", Value: fmt.Sprintf("%d", guildTotal), Inline: true},
			{Name: "🌍 Counted Everywhere", Value: fmt.Sprintf("%d", globalTotal), Inline: true},
			{Name: "🏆 Top Words Here", Value: topWordsValue, Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Snapshot at " + time.Now().Format("15:04"),
		},
	}
	utils.SendEmbedResponse(s, i, embed)
}
