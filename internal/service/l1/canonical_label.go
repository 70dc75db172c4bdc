package l1_service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"outlookengine/internal/domain"
)

// minTokenOverlap is the fraction of a candidate's tokens that must be
// matched by the raw label for a token-overlap match to count.
const minTokenOverlap = 0.8

var stemSuffixes = []string{"ing", "es", "s"}

// CanonicalizeLabel maps a free-text label onto one of the document's own
// candidate labels. Resolution order is exact (case-insensitive), then
// containment (shortest candidate wins), then stemmed token overlap
// (highest coverage >= 0.8 wins). Ties go to the earlier candidate. If
// nothing qualifies, raw is returned unchanged.
func CanonicalizeLabel(raw string, candidates []string) string {
	if raw == "" || len(candidates) == 0 {
		return raw
	}
	rawLower := strings.ToLower(raw)

	for _, c := range candidates {
		if strings.ToLower(c) == rawLower {
			return c
		}
	}

	if c, ok := containmentMatch(rawLower, candidates); ok {
		return c
	}

	if c, ok := tokenOverlapMatch(rawLower, candidates); ok {
		return c
	}

	return raw
}

func containmentMatch(rawLower string, candidates []string) (string, bool) {
	best := -1
	bestLen := 0
	for i, c := range candidates {
		cLower := strings.ToLower(c)
		// every string contains "", which would make an empty
		// candidate win every containment check
		if cLower == "" {
			continue
		}
		if !strings.Contains(rawLower, cLower) && !strings.Contains(cLower, rawLower) {
			continue
		}
		l := utf8.RuneCountInString(c)
		if best == -1 || l < bestLen {
			best = i
			bestLen = l
		}
	}
	if best == -1 {
		return "", false
	}
	return candidates[best], true
}

func tokenOverlapMatch(rawLower string, candidates []string) (string, bool) {
	rawTokens := labelTokens(rawLower)
	if len(rawTokens) == 0 {
		return "", false
	}

	best := -1
	bestScore := 0.0
	for i, c := range candidates {
		candidateTokens := labelTokens(strings.ToLower(c))
		if len(candidateTokens) == 0 {
			continue
		}

		matched := 0
		for _, ct := range candidateTokens {
			for _, rt := range rawTokens {
				if ct == rt || strings.Contains(ct, rt) || strings.Contains(rt, ct) {
					matched++
					break
				}
			}
		}

		score := float64(matched) / float64(len(candidateTokens))
		if score >= minTokenOverlap && score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best == -1 {
		return "", false
	}
	return candidates[best], true
}

// labelTokens splits on anything that isn't a letter or digit and
// strips one plural/gerund suffix from each token.
func labelTokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, stemToken(f))
	}
	return tokens
}

func stemToken(t string) string {
	for _, suffix := range stemSuffixes {
		if len(t) > len(suffix) && strings.HasSuffix(t, suffix) {
			return strings.TrimSuffix(t, suffix)
		}
	}
	return t
}

// CanonicalizePredictions rewrites every prediction's theme and asset
// labels against the document's own theme and asset lists. The input is
// not modified.
func CanonicalizePredictions(predictions []domain.Prediction, themes, assets []string) []domain.Prediction {
	out := make([]domain.Prediction, 0, len(predictions))
	for _, p := range predictions {
		canonical := domain.Prediction{
			Claim:     p.Claim,
			Timeframe: p.Timeframe,
			Themes:    make([]string, 0, len(p.Themes)),
			Assets:    make([]string, 0, len(p.Assets)),
		}
		for _, t := range p.Themes {
			canonical.Themes = append(canonical.Themes, CanonicalizeLabel(t, themes))
		}
		for _, a := range p.Assets {
			canonical.Assets = append(canonical.Assets, CanonicalizeLabel(a, assets))
		}
		out = append(out, canonical)
	}
	return out
}
