package builders

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{
		Text: text,
	}
	return b
}

// Discord rejects the whole message when an embed goes over these
const (
	MaxFields     = 25
	MaxFieldName  = 256
	MaxFieldValue = 1024

	// MaxEmbedTotal is shared by every embed in one message
	MaxEmbedTotal = 6000
)

// Field adds a field to the embed. Fields past MaxFields are dropped and
// long names or values are cut to Discord's limits.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if len(b.embed.Fields) >= MaxFields {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   truncate(name, MaxFieldName),
		Value:  truncate(value, MaxFieldValue),
		Inline: inline,
	})
	return b
}

// Size counts the characters Discord holds against MaxEmbedTotal
func (b *EmbedBuilder) Size() int {
	size := utf8.RuneCountInString(b.embed.Title) + utf8.RuneCountInString(b.embed.Description)
	if b.embed.Footer != nil {
		size += utf8.RuneCountInString(b.embed.Footer.Text)
	}
	for _, f := range b.embed.Fields {
		size += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	return size
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

// joinLines joins whole lines and, when they pass limit, keeps as many as
// fit alongside a note of how many were left out.
func joinLines(lines []string, limit int) string {
	joined := strings.Join(lines, "\n")
	if utf8.RuneCountInString(joined) <= limit {
		return joined
	}

	size, kept := 0, 0
	for i, line := range lines {
		next := size + utf8.RuneCountInString(line)
		if i > 0 {
			next++
		}
		note := utf8.RuneCountInString(fmt.Sprintf("\n…and %d more", len(lines)-i-1))
		if next+note > limit {
			break
		}
		size, kept = next, i+1
	}

	out := append(lines[:kept:kept], fmt.Sprintf("…and %d more", len(lines)-kept))
	return truncate(strings.Join(out, "\n"), limit)
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// Common embed colors
const (
	ColorSuccess = 0x00ff00 // Green
	ColorError   = 0xff0000 // Red
	ColorInfo    = 0x0099ff // Blue
	ColorMuted   = 0x99aab5 // Grey
)

// ErrorEmbed creates a pre-styled error embed
func ErrorEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title("❌ " + title).
		Description(description).
		Color(ColorError).
		Timestamp(time.Now())
}
