package renderer

import (
	"fmt"
	"strings"

	"github.com/staff-star/HTML-parser/internal/domain"
)

func dlItem(label, value string) string {
	return fmt.Sprintf(
		"<dt style=\"font-weight:bold;color:#444;margin-bottom:4px;\">%s</dt>"+
			"<dd style=\"margin:0 0 12px 0;padding-bottom:12px;border-bottom:1px solid %s;\">%s</dd>",
		escapeHTML(label), colorBorder, escapeHTML(value))
}

func yahooSection(title, items string) string {
	return "<section style=\"margin-bottom:24px;font-family:'ヒラギノ角ゴ ProN',sans-serif;\">\n" +
		fmt.Sprintf("  <h2 style=\"font-size:18px;border-bottom:2px solid #333;padding-bottom:6px;\">%s</h2>\n", title) +
		"  <dl style=\"margin:16px 0;\">" + items + "</dl>\n" +
		"</section>"
}

// GenerateYahooPC renders the desktop Yahoo layout: definition lists grouped in
// sections.
func (g *Generator) GenerateYahooPC(data *domain.ProductInfo) string {
	var items []string
	for _, row := range productRows(data) {
		items = append(items, dlItem(row.label, row.value))
	}

	var nutritionItems []string
	for _, row := range nutritionRows(data.Nutrition) {
		nutritionItems = append(nutritionItems, dlItem(row.label, row.value))
	}

	var parts []string
	if len(items) > 0 {
		parts = append(parts, yahooSection("商品情報", strings.Join(items, "")))
	}
	if len(nutritionItems) > 0 {
		parts = append(parts, yahooSection("栄養成分表示（100g当たり）推定値", strings.Join(nutritionItems, "")))
	}
	if data.Allergen != "" {
		parts = append(parts, fmt.Sprintf(
			"<section style=\"border:2px solid %s;padding:16px;background:%s;\">\n"+
				"  <h2 style=\"margin-top:0;\">注意事項</h2>\n"+
				"  <p style=\"margin:0;\">%s</p>\n"+
				"</section>",
			colorAllergenBorder, colorAllergenBg, escapeHTML(data.Allergen)))
	}

	if len(parts) == 0 {
		return "<div style=\"padding:16px;color:#666;\">情報を抽出できませんでした</div>"
	}
	return strings.Join(parts, "")
}

// GenerateYahooSP renders the mobile Yahoo layout: stacked item tables with a
// titled nutrition block.
func (g *Generator) GenerateYahooSP(data *domain.ProductInfo) string {
	var blocks []string
	for _, row := range productRows(data) {
		blocks = append(blocks, spItem(row.label, row.value))
	}

	if data.Nutrition.Len() > 0 {
		var nutriBlocks []string
		for _, row := range nutritionRows(data.Nutrition) {
			nutriBlocks = append(nutriBlocks, spItem(row.label, row.value))
		}
		blocks = append(blocks, fmt.Sprintf(
			"<table width=\"100%%\" cellpadding=\"0\" cellspacing=\"0\" style=\"margin-top:16px;\">"+
				"<tr><td style=\"font-weight:bold;padding-bottom:8px;\">栄養成分表示（100g当たり）推定値</td></tr>"+
				"<tr><td>%s</td></tr>"+
				"</table>",
			strings.Join(nutriBlocks, "")))
	}

	if data.Allergen != "" {
		blocks = append(blocks, allergenSectionSP(data.Allergen))
	}

	if len(blocks) == 0 {
		return "<p>情報を抽出できませんでした</p>"
	}
	return strings.Join(blocks, "<br>")
}
