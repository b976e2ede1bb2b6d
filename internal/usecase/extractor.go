package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/staff-star/HTML-parser/internal/domain"
)

const (
	numericPattern = `([0-9]+(?:\.[0-9]+)?)`
	unitPattern    = `([a-zA-Zμ％%/.ーァ-ヶ]+)?`
)

// fieldPatterns holds the three match strategies for one label variation:
// block form (marker + label + colon, value runs to the next block), line form
// (label at line start, value is the rest of the line), and next-line form
// (label alone, value on the following line).
type fieldPatterns struct {
	block    *regexp.Regexp
	line     *regexp.Regexp
	nextLine *regexp.Regexp
}

// nutritionPatterns holds the three numeric-capture strategies for one
// nutrition label variation.
type nutritionPatterns struct {
	separated     *regexp.Regexp
	parenthesized *regexp.Regexp
	endOfLine     *regexp.Regexp
}

var (
	fieldPatternTable     = buildFieldPatterns()
	nutritionPatternTable = buildNutritionPatterns()

	// Block scan for labels outside every known variation list. The terminator
	// group is consumed rather than asserted (RE2 has no lookahead).
	unknownFieldPattern = regexp.MustCompile(`(?s)[■【\[]?\s*(.+?)\s*[:：]\s*(.+?)(?:\n[■【\[]|【|※|$)`)

	allergenPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)※(.+)`),
		regexp.MustCompile(`(?is)注意[:：\s]+(.+)`),
		regexp.MustCompile(`(?is)アレルギー[:：\s]+(.+)`),
	}

	leadingNumberPattern = regexp.MustCompile(`(\d+\.?\d*)`)
)

func buildFieldPatterns() map[string][]fieldPatterns {
	table := make(map[string][]fieldPatterns, len(FieldVariations))
	for _, fv := range FieldVariations {
		patterns := make([]fieldPatterns, 0, len(fv.Variations))
		for _, variation := range fv.Variations {
			v := regexp.QuoteMeta(variation)
			patterns = append(patterns, fieldPatterns{
				block:    regexp.MustCompile(`(?is)[■【\[]?\s*` + v + `\s*[:：]\s*(.+?)(?:\n[■【\[]|【栄養|※|$)`),
				line:     regexp.MustCompile(`(?im)^\s*` + v + `\s*[:：]\s*(.+)`),
				nextLine: regexp.MustCompile(`(?i)` + v + `\s*\n\s*(.+)`),
			})
		}
		table[fv.Key] = patterns
	}
	return table
}

func buildNutritionPatterns() map[string][]nutritionPatterns {
	table := make(map[string][]nutritionPatterns, len(NutritionVariations))
	for _, nv := range NutritionVariations {
		patterns := make([]nutritionPatterns, 0, len(nv.Variations))
		for _, variation := range nv.Variations {
			v := regexp.QuoteMeta(variation)
			patterns = append(patterns, nutritionPatterns{
				separated:     regexp.MustCompile(`(?i)` + v + `\s*[:：\s]+` + numericPattern + `\s*` + unitPattern),
				parenthesized: regexp.MustCompile(`(?i)` + v + `\s*[（(]\s*` + numericPattern + `\s*` + unitPattern + `\s*[）)]`),
				endOfLine:     regexp.MustCompile(`(?i)` + v + `\s*[:：\s]+` + numericPattern + `\s*$`),
			})
		}
		table[nv.Key] = patterns
	}
	return table
}

// ExtractFieldValue scans text for the given canonical field key, trying each
// label variation in order with the three match strategies. The first non-empty
// capture wins. Returns "" when nothing matches; absence is a normal outcome.
func ExtractFieldValue(text, fieldKey string) string {
	for _, p := range fieldPatternTable[fieldKey] {
		for _, re := range []*regexp.Regexp{p.block, p.line, p.nextLine} {
			if m := re.FindStringSubmatch(text); m != nil {
				if value := strings.TrimSpace(m[1]); value != "" {
					return value
				}
			}
		}
	}
	return ""
}

// ExtractNutrition scans text for the eight nutrition keys in declared order.
// For each key the first (variation, pattern) combination that matches wins.
// Values are stored as "<number><canonical unit>" with the unit folded to
// kcal/g/mg where recognized.
func ExtractNutrition(text string) *domain.OrderedMap {
	results := domain.NewOrderedMap()

	for _, nv := range NutritionVariations {
		patterns := nutritionPatternTable[nv.Key]
	variations:
		for _, p := range patterns {
			for _, re := range []*regexp.Regexp{p.separated, p.parenthesized, p.endOfLine} {
				m := re.FindStringSubmatch(text)
				if m == nil {
					continue
				}
				number := strings.TrimSpace(m[1])
				unit := ""
				if len(m) > 2 {
					unit = strings.TrimSpace(m[2])
				}
				results.Set(nv.Key, number+canonicalizeUnit(unit))
				break variations
			}
		}
	}

	return results
}

func canonicalizeUnit(unit string) string {
	lower := strings.ToLower(unit)
	switch {
	case strings.Contains(unit, "キロカロリー"), strings.Contains(unit, "ｋｃａｌ"), strings.Contains(lower, "kcal"):
		return "kcal"
	case lower == "g" || lower == "ｇ":
		return "g"
	case lower == "mg" || lower == "ｍｇ":
		return "mg"
	}
	return unit
}

// ConvertSodiumToSalt derives a salt-equivalent entry from sodium when salt was
// not extracted directly. Sodium in milligrams converts at mg × 2.54 / 1000;
// grams at g × 2.54; an unrecognized unit is treated as milligrams. The result
// is stored to one decimal place with a "g" suffix. A directly extracted salt
// value is never overwritten.
func ConvertSodiumToSalt(nutrition *domain.OrderedMap) {
	if nutrition.Has("salt") {
		return
	}
	sodiumStr, ok := nutrition.Get("sodium")
	if !ok {
		return
	}

	m := leadingNumberPattern.FindStringSubmatch(sodiumStr)
	if m == nil {
		return
	}
	sodium, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return
	}

	lower := strings.ToLower(sodiumStr)
	var salt float64
	switch {
	case strings.Contains(lower, "mg"):
		salt = sodium * 2.54 / 1000
	case strings.Contains(lower, "g"):
		salt = sodium * 2.54
	default:
		salt = sodium * 2.54 / 1000
	}

	nutrition.Set("salt", fmt.Sprintf("%.1fg", salt))
}

// ExtractAllergen captures the trailing cautionary note: text after a ※ marker,
// or after 注意/アレルギー with a separator, whichever pattern matches first.
// Multi-line capture is allowed.
func ExtractAllergen(text string) string {
	for _, re := range allergenPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ExtractUnknownFields collects label:value blocks whose label matches no known
// field or nutrition variation. Labels of 20 or more characters are skipped to
// avoid capturing a value as a label when the true separator is missing. The
// literal label text is preserved; a label seen twice keeps its first value.
func ExtractUnknownFields(text string) *domain.OrderedMap {
	unknown := domain.NewOrderedMap()

	for _, m := range unknownFieldPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if name == "" {
			continue
		}
		if IsKnownFieldName(name) {
			continue
		}
		if utf8.RuneCountInString(name) >= 20 {
			continue
		}
		unknown.SetIfAbsent(name, value)
	}

	return unknown
}
