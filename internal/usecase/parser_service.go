package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/staff-star/HTML-parser/internal/domain"
)

// DefaultMaxInputLength is the input size cap in characters.
const DefaultMaxInputLength = 100000

// ParserServiceConfig holds configuration for the parser service
type ParserServiceConfig struct {
	MaxInputLength     int
	EnableDebugLogging bool
}

// ParserService converts normalized label text into a structured ProductInfo.
// Each Parse call allocates its own record and log buffer; the service itself
// carries no per-request state and is safe for concurrent use.
type ParserService struct {
	maxInputLength     int
	enableDebugLogging bool
}

// ParseResult bundles the structured record with its diagnostic log trail.
type ParseResult struct {
	Product *domain.ProductInfo
	Logs    *domain.LogBuffer
}

// NewParserService creates a parser service with the given configuration.
func NewParserService(config ParserServiceConfig) *ParserService {
	maxLen := config.MaxInputLength
	if maxLen <= 0 {
		maxLen = DefaultMaxInputLength
	}
	return &ParserService{
		maxInputLength:     maxLen,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MaxInputLength returns the configured input size cap.
func (s *ParserService) MaxInputLength() int {
	return s.maxInputLength
}

// Validate runs the safety gate without parsing.
func (s *ParserService) Validate(text string) error {
	return ValidateInputSafety(text, s.maxInputLength)
}

// Parse runs the full extraction pipeline: pre-pass, normalization, line merge,
// then field, nutrition, allergen and unknown-field extraction. It never fails;
// extraction misses are recorded as warnings and the field left absent.
// Empty or whitespace-only input short-circuits with a single warning.
func (s *ParserService) Parse(text string) *ParseResult {
	logs := domain.NewLogBuffer()
	product := domain.NewProductInfo()
	result := &ParseResult{Product: product, Logs: logs}

	if strings.TrimSpace(text) == "" {
		logs.Warning("入力テキストが空です", "")
		return result
	}

	processed := PreprocessExtremeCases(text)
	processed = NormalizeText(processed)
	processed = MergeBrokenLines(processed)

	if s.enableDebugLogging {
		log.Printf("[PARSE] normalized %d chars", len(processed))
	}

	for _, accessor := range domain.FieldAccessors {
		value := ExtractFieldValue(processed, accessor.Key)
		if value != "" {
			accessor.Set(product, value)
			logs.Info(fmt.Sprintf("%sを抽出: %s...", accessor.Key, truncateRunes(value, 30)), accessor.Key)
		} else {
			logs.Warning(fmt.Sprintf("%sが見つかりませんでした", accessor.Key), accessor.Key)
		}
	}

	nutrition := ExtractNutrition(processed)
	ConvertSodiumToSalt(nutrition)
	product.Nutrition = nutrition
	if nutrition.Len() > 0 {
		for _, key := range nutrition.Keys() {
			value, _ := nutrition.Get(key)
			logs.Info(fmt.Sprintf("栄養成分 %s: %s", key, value), "nutrition."+key)
		}
	} else {
		logs.Warning("栄養成分が見つかりませんでした", "nutrition")
	}

	if allergen := ExtractAllergen(processed); allergen != "" {
		product.Allergen = allergen
		logs.Info(fmt.Sprintf("注意書きを抽出: %s...", truncateRunes(allergen, 50)), "allergen")
	}

	extras := ExtractUnknownFields(processed)
	product.ExtraFields = extras
	for _, name := range extras.Keys() {
		value, _ := extras.Get(name)
		logs.Info(fmt.Sprintf("未知の項目『%s』: %s...", name, truncateRunes(value, 30)), "extra."+name)
	}

	return result
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
