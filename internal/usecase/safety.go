package usecase

import (
	"fmt"
	"strings"

	"github.com/staff-star/HTML-parser/internal/domain"
)

// dangerousPatterns are markup/script injection substrings that cause input to
// be rejected outright, matched case-insensitively.
var dangerousPatterns = []string{
	"<script", "<iframe", "javascript:", "<object", "<embed", "onerror=",
}

// ValidateInputSafety rejects oversized or markup-injection-bearing input before
// any processing. maxLength is in characters (runes), not bytes.
func ValidateInputSafety(text string, maxLength int) error {
	if len([]rune(text)) > maxLength {
		return domain.NewValidationError("入力が長すぎます（最大100KB）")
	}

	lowered := strings.ToLower(text)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowered, pattern) {
			return domain.NewValidationError(fmt.Sprintf("禁止されたパターン『%s』が含まれています", pattern))
		}
	}
	return nil
}
