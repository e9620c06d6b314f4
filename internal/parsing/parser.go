// Package parsing turns raw resume and job-description text into structured data.
package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ats/internal/dates"
	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

// Parser extracts structured data using one resolved configuration.
// It holds no mutable state and may be shared.
type Parser struct {
	skills *skills.Normalizer
	dates  dates.Resolver
}

// NewParser builds a Parser from a resolved configuration. Profile skills join
// the known skill vocabulary.
func NewParser(cfg *types.ResolvedATSConfig) *Parser {
	var extra []string
	if cfg.Profile != nil {
		extra = append(extra, cfg.Profile.MandatorySkills...)
		extra = append(extra, cfg.Profile.OptionalSkills...)
	}
	return &Parser{
		skills: skills.NewNormalizer(cfg.Aliases, extra...),
		dates:  dates.NewResolver(cfg.Now),
	}
}

// Skills returns the normalizer used by this parser.
func (p *Parser) Skills() *skills.Normalizer {
	return p.skills
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

const bullets = "-*•·▪◦>"

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), bullets))
}

func startsWithBullet(line string) bool {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(line))
	return strings.ContainsRune(bullets, r)
}
