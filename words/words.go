// Package words normalizes message tokens and resolves them against a
// guild's tracked words and aliases.
package words

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"word-tracker/model"
)

// Normalize lowercases a token, strips everything that is not a letter,
// digit or whitespace, and trims the result. Pure and deterministic.
func Normalize(token string) string {
	lowered := strings.ToLower(token)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ExtractTokens splits text on whitespace runs and normalizes each token,
// dropping empty results. Order and duplicates are preserved: the same
// tracked word appearing twice must be matched twice, each occurrence
// gated by its own cooldown check.
func ExtractTokens(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if n := Normalize(f); n != "" {
			tokens = append(tokens, n)
		}
	}
	return tokens
}

// Resolve returns the canonical tracked word the token maps to, either
// directly or through an alias. Tracked words are visited in sorted order
// so resolution is deterministic even if configured aliases overlap;
// config writes reject overlaps up front.
func Resolve(token string, tracked map[string]model.TrackedWord) (string, bool) {
	normalized := Normalize(token)
	if normalized == "" {
		return "", false
	}

	names := make([]string, 0, len(tracked))
	for w := range tracked {
		names = append(names, w)
	}
	sort.Strings(names)

	for _, word := range names {
		if Normalize(word) == normalized {
			return word, true
		}
		for _, alias := range tracked[word].Aliases {
			if Normalize(alias) == normalized {
				return word, true
			}
		}
	}
	return "", false
}

// CooldownExpired reports whether enough wall-clock time has passed since
// the last counted occurrence. A zero lastMillis means never counted.
func CooldownExpired(lastMillis int64, cooldownSeconds int, now time.Time) bool {
	if lastMillis == 0 {
		return true
	}
	elapsed := now.Sub(time.UnixMilli(lastMillis))
	return elapsed >= time.Duration(cooldownSeconds)*time.Second
}

// RemainingCooldown returns the whole seconds left before the word can be
// counted again, rounded up, never negative.
func RemainingCooldown(lastMillis int64, cooldownSeconds int, now time.Time) int {
	if lastMillis == 0 {
		return 0
	}
	elapsed := now.Sub(time.UnixMilli(lastMillis)).Seconds()
	remaining := float64(cooldownSeconds) - elapsed
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining))
}
