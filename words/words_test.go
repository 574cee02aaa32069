package words

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"word-tracker/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"OwO", "owo"},
		{"owo!!!", "owo"},
		{"  OwO?! ", "owo"},
		{"o.w.o", "owo"},
		{"!!!", ""},
		{"café", "café"},
		{"123abc", "123abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestExtractTokensKeepsOrderAndDuplicates(t *testing.T) {
	got := ExtractTokens("OwO what's   this? owo!  ...")
	assert.Equal(t, []string{"owo", "whats", "this", "owo"}, got)
}

func TestExtractTokensEmptyText(t *testing.T) {
	assert.Empty(t, ExtractTokens("   "))
	assert.Empty(t, ExtractTokens("!!! ??? ..."))
}

func TestResolve(t *testing.T) {
	tracked := map[string]model.TrackedWord{
		"owo": {Aliases: []string{"uwu", "0w0"}},
		"nya": {},
	}

	word, ok := Resolve("OwO!", tracked)
	assert.True(t, ok)
	assert.Equal(t, "owo", word)

	word, ok = Resolve("UwU", tracked)
	assert.True(t, ok)
	assert.Equal(t, "owo", word)

	word, ok = Resolve("nya", tracked)
	assert.True(t, ok)
	assert.Equal(t, "nya", word)

	_, ok = Resolve("hello", tracked)
	assert.False(t, ok)

	_, ok = Resolve("!!!", tracked)
	assert.False(t, ok)
}

func TestResolveDeterministicOrder(t *testing.T) {
	// Overlapping aliases are rejected at config-write time, but if two
	// words ever share one, resolution must stay deterministic.
	tracked := map[string]model.TrackedWord{
		"bbb": {Aliases: []string{"shared"}},
		"aaa": {Aliases: []string{"shared"}},
	}
	for range [10]struct{}{} {
		word, ok := Resolve("shared", tracked)
		assert.True(t, ok)
		assert.Equal(t, "aaa", word)
	}
}

func TestCooldownExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, CooldownExpired(0, 10, now), "never counted")
	assert.True(t, CooldownExpired(now.Add(-10*time.Second).UnixMilli(), 10, now), "exactly elapsed")
	assert.True(t, CooldownExpired(now.Add(-time.Hour).UnixMilli(), 10, now))
	assert.False(t, CooldownExpired(now.Add(-9*time.Second).UnixMilli(), 10, now))
}

func TestRemainingCooldown(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, RemainingCooldown(0, 10, now))
	assert.Equal(t, 0, RemainingCooldown(now.Add(-time.Minute).UnixMilli(), 10, now))
	assert.Equal(t, 10, RemainingCooldown(now.UnixMilli(), 10, now))
	// Partial seconds round up.
	assert.Equal(t, 8, RemainingCooldown(now.Add(-2500*time.Millisecond).UnixMilli(), 10, now))
}
