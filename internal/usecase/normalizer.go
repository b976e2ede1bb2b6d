package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex patterns for performance
var (
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
	bulletPattern       = regexp.MustCompile(`(?m)^[ \t・\-*]+`)
	multiSpacePattern   = regexp.MustCompile(`  +`)
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
	labelLinePattern    = regexp.MustCompile(`^[^:：]+[:：]`)
)

// PreprocessExtremeCases runs before Unicode normalization. It strips HTML tags,
// strips leading bullet/dash characters from each line, and folds long-form unit
// spellings so the numeric-unit patterns match consistently.
func PreprocessExtremeCases(text string) string {
	withoutHTML := htmlTagPattern.ReplaceAllString(text, "")
	withoutBullets := bulletPattern.ReplaceAllString(withoutHTML, "")

	replacer := strings.NewReplacer(
		"グラム", "g",
		"ｇ", "g",
		"キロカロリー", "kcal",
	)
	return replacer.Replace(withoutBullets)
}

// NormalizeText canonicalizes the input: NFKC folding (full-width digits and
// Latin letters become half-width), ideographic space and tab to space,
// full-width colon to half-width, space runs collapsed, 3+ newlines collapsed
// to two, surrounding whitespace trimmed. Idempotent.
func NormalizeText(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "　", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "：", ":")
	text = multiSpacePattern.ReplaceAllString(text, " ")
	text = multiNewlinePattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// MergeBrokenLines rejoins label/value pairs that arrived on separate lines.
// A line without a colon absorbs the following non-empty lines as its value,
// space-joined and attached with a colon. Lookahead stops at a blank line, a
// line opening a new block (■ or 【), or a line already shaped like "label:".
// A label line with no value lines passes through unchanged.
func MergeBrokenLines(text string) string {
	lines := strings.Split(text, "\n")
	merged := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			merged = append(merged, line)
			continue
		}

		if !strings.Contains(line, ":") && i+1 < len(lines) {
			var valueLines []string
			j := i + 1
			for j < len(lines) {
				next := strings.TrimSpace(lines[j])
				if next == "" {
					break
				}
				if strings.HasPrefix(next, "■") || strings.HasPrefix(next, "【") {
					break
				}
				if labelLinePattern.MatchString(next) {
					break
				}
				valueLines = append(valueLines, next)
				j++
			}

			if len(valueLines) > 0 {
				merged = append(merged, line+":"+strings.Join(valueLines, " "))
				i = j - 1
				continue
			}
		}

		merged = append(merged, line)
	}

	return strings.Join(merged, "\n")
}
