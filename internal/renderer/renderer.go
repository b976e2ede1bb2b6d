// Package renderer turns a parsed ProductInfo into the storefront HTML layout
// variants: Rakuten and Yahoo, each in desktop (pc) and mobile (sp) form. Every
// generator is a pure function of the record; all user text goes through
// escapeHTML.
package renderer

import (
	"github.com/staff-star/HTML-parser/internal/domain"
	"github.com/staff-star/HTML-parser/internal/usecase"
)

// Palette used across all layout variants.
const (
	colorHeaderBg       = "#f5f5f5"
	colorLabelBg        = "#e8e8e8"
	colorBorder         = "#333"
	colorAllergenBorder = "#ff6b6b"
	colorAllergenBg     = "#fff5f5"
)

// fieldLabelsJP maps canonical field keys to their Japanese display labels.
var fieldLabelsJP = map[string]string{
	"product_name": "商品名",
	"product_type": "名称",
	"ingredients":  "原材料",
	"content":      "内容量",
	"expiry":       "賞味期限",
	"storage":      "保存方法",
	"seller":       "販売者",
	"manufacturer": "製造者",
	"processor":    "加工者",
	"importer":     "輸入者",
}

// nutritionLabelsJP maps nutrition keys to their Japanese display labels.
var nutritionLabelsJP = map[string]string{
	"energy":  "エネルギー",
	"protein": "たんぱく質",
	"fat":     "脂質",
	"carbs":   "炭水化物",
	"salt":    "食塩相当量",
	"sugar":   "糖質",
	"fiber":   "食物繊維",
	"sodium":  "ナトリウム",
}

// Generator produces the four storefront HTML variants for a product record.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateAll renders every layout variant keyed by its identifier.
func (g *Generator) GenerateAll(data *domain.ProductInfo) map[string]string {
	return map[string]string{
		"rakuten_pc": g.GenerateRakutenPC(data),
		"rakuten_sp": g.GenerateRakutenSP(data),
		"yahoo_pc":   g.GenerateYahooPC(data),
		"yahoo_sp":   g.GenerateYahooSP(data),
	}
}

func fieldLabel(key string) string {
	if label, ok := fieldLabelsJP[key]; ok {
		return label
	}
	return key
}

func nutritionLabel(key string) string {
	if label, ok := nutritionLabelsJP[key]; ok {
		return label
	}
	return key
}

// labelValue is one display row: Japanese label plus extracted value.
type labelValue struct {
	label string
	value string
}

// productRows lists the populated product fields in canonical order followed by
// the unknown fields in document order.
func productRows(data *domain.ProductInfo) []labelValue {
	var rows []labelValue
	for _, accessor := range domain.FieldAccessors {
		if value := accessor.Get(data); value != "" {
			rows = append(rows, labelValue{fieldLabel(accessor.Key), value})
		}
	}
	for _, name := range data.ExtraFields.Keys() {
		value, _ := data.ExtraFields.Get(name)
		rows = append(rows, labelValue{name, value})
	}
	return rows
}

// nutritionRows lists nutrition entries with the priority keys first, then the
// rest in extraction order.
func nutritionRows(nutrition *domain.OrderedMap) []labelValue {
	var rows []labelValue
	priority := make(map[string]bool, len(usecase.NutritionPriority))
	for _, key := range usecase.NutritionPriority {
		priority[key] = true
		if value, ok := nutrition.Get(key); ok {
			rows = append(rows, labelValue{nutritionLabel(key), value})
		}
	}
	for _, key := range nutrition.Keys() {
		if priority[key] {
			continue
		}
		value, _ := nutrition.Get(key)
		rows = append(rows, labelValue{nutritionLabel(key), value})
	}
	return rows
}
