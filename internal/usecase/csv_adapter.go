package usecase

import (
	"regexp"
	"strings"
)

const nutritionSectionHeader = "【栄養成分表示(100g当たり)】（推定値）"

var headerHintPattern = regexp.MustCompile(`(?i)項目|field|key|name`)

// CSVToText reshapes delimited tabular input into the label:value line format
// the extractor expects. The delimiter is whichever of comma/tab/semicolon/pipe
// yields the most columns on the first line; input that does not split into at
// least two columns is returned unchanged. A first line carrying a header hint
// is skipped. Nutrition-variation labels are emitted bare and prefixed with a
// synthetic section header; all other labels are emitted block-marked.
func CSVToText(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return content
	}

	delimiter, maxCols := ",", 0
	for _, d := range []string{",", "\t", ";", "|"} {
		if cols := len(strings.Split(lines[0], d)); cols > maxCols {
			maxCols = cols
			delimiter = d
		}
	}
	if maxCols < 2 {
		return content
	}

	startIndex := 0
	if headerHintPattern.MatchString(lines[0]) {
		startIndex = 1
	}

	var textLines []string
	for _, line := range lines[startIndex:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		parts := strings.Split(line, delimiter)
		if len(parts) < 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			continue
		}

		if IsNutritionVariation(key) {
			textLines = append(textLines, key+":"+value)
		} else {
			textLines = append(textLines, "■"+key+":"+value)
		}
	}

	if len(textLines) == 0 {
		return content
	}

	hasNutrition := false
	for _, line := range textLines {
		if !strings.HasPrefix(line, "■") {
			hasNutrition = true
			break
		}
	}
	if !hasNutrition {
		return strings.Join(textLines, "\n")
	}

	output := make([]string, 0, len(textLines)+1)
	headerInserted := false
	for _, line := range textLines {
		if !strings.HasPrefix(line, "■") && !headerInserted {
			output = append(output, nutritionSectionHeader)
			headerInserted = true
		}
		output = append(output, line)
	}
	return strings.Join(output, "\n")
}
