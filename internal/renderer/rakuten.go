package renderer

import (
	"fmt"
	"strings"

	"github.com/staff-star/HTML-parser/internal/domain"
)

func tableRowPC(label, value string) string {
	return fmt.Sprintf(
		"<tr>\n"+
			"      <th style=\"background:%s;padding:10px;border:1px solid %s;text-align:left;width:25%%;\">%s</th>\n"+
			"      <td style=\"padding:10px;border:1px solid %s;\">%s</td>\n"+
			"    </tr>",
		colorLabelBg, colorBorder, escapeHTML(label), colorBorder, escapeHTML(value))
}

func wrapInTablePC(title, rowsHTML string) string {
	return fmt.Sprintf(
		"<div style=\"margin-bottom:20px;\">\n"+
			"  <div style=\"background:%s;padding:12px 16px;border:1px solid %s;font-weight:bold;\">%s</div>\n"+
			"  <table style=\"width:100%%;border-collapse:collapse;font-size:14px;\">\n    %s\n  </table>\n"+
			"</div>",
		colorHeaderBg, colorBorder, escapeHTML(title), rowsHTML)
}

func allergenSectionPC(allergen string) string {
	return fmt.Sprintf(
		"<div style=\"border:2px solid %s;background:%s;padding:16px;margin-top:20px;\">\n"+
			"  <strong>注意事項</strong><br>%s\n"+
			"</div>",
		colorAllergenBorder, colorAllergenBg, escapeHTML(allergen))
}

// GenerateRakutenPC renders the desktop Rakuten layout: bordered tables with a
// header bar per section.
func (g *Generator) GenerateRakutenPC(data *domain.ProductInfo) string {
	var sections []string

	var productHTML []string
	for _, row := range productRows(data) {
		productHTML = append(productHTML, tableRowPC(row.label, row.value))
	}
	if len(productHTML) > 0 {
		sections = append(sections, wrapInTablePC("商品情報", strings.Join(productHTML, "\n    ")))
	}

	var nutritionHTML []string
	for _, row := range nutritionRows(data.Nutrition) {
		nutritionHTML = append(nutritionHTML, tableRowPC(row.label, row.value))
	}
	if len(nutritionHTML) > 0 {
		sections = append(sections, wrapInTablePC("栄養成分表示（100g当たり）推定値", strings.Join(nutritionHTML, "\n    ")))
	}

	if data.Allergen != "" {
		sections = append(sections, allergenSectionPC(data.Allergen))
	}

	if len(sections) == 0 {
		return "<div style=\"padding:20px;color:#999;\">情報を抽出できませんでした</div>"
	}
	return "<div style=\"margin:20px auto;max-width:800px;font-family:'メイリオ',Meiryo,sans-serif;\">\n  " +
		strings.Join(sections, "\n  ") +
		"\n</div>"
}

func spItem(label, value string) string {
	return fmt.Sprintf(
		"<table width=\"100%%\" cellpadding=\"10\" cellspacing=\"0\" style=\"border:1px solid %s;background:#fff;margin-bottom:8px;\">"+
			"<tr><td style=\"font-weight:bold;color:#555;border-bottom:1px solid #ddd;\">%s</td></tr>"+
			"<tr><td style=\"line-height:1.6;\">%s</td></tr>"+
			"</table>",
		colorBorder, escapeHTML(label), escapeHTML(value))
}

func wrapInTableSP(title, body string) string {
	return fmt.Sprintf(
		"<table width=\"100%%\" cellpadding=\"0\" cellspacing=\"0\" style=\"margin-bottom:16px;\">"+
			"<tr><td style=\"background:%s;padding:10px 12px;font-weight:bold;\">%s</td></tr>"+
			"<tr><td style=\"padding:12px;background:#fafafa;\">%s</td></tr>"+
			"</table>",
		colorHeaderBg, escapeHTML(title), body)
}

func allergenSectionSP(allergen string) string {
	return fmt.Sprintf(
		"<table width=\"100%%\" cellpadding=\"12\" cellspacing=\"0\" style=\"border:2px solid %s;background:%s;margin-top:16px;\">"+
			"<tr><td><b>注意事項</b><br>%s</td></tr>"+
			"</table>",
		colorAllergenBorder, colorAllergenBg, escapeHTML(allergen))
}

// GenerateRakutenSP renders the mobile Rakuten layout: stacked one-column
// tables per item.
func (g *Generator) GenerateRakutenSP(data *domain.ProductInfo) string {
	var sections []string

	var productHTML []string
	for _, row := range productRows(data) {
		productHTML = append(productHTML, spItem(row.label, row.value))
	}
	if len(productHTML) > 0 {
		sections = append(sections, wrapInTableSP("商品情報", strings.Join(productHTML, "")))
	}

	var nutritionHTML []string
	for _, row := range nutritionRows(data.Nutrition) {
		nutritionHTML = append(nutritionHTML, spItem(row.label, row.value))
	}
	if len(nutritionHTML) > 0 {
		sections = append(sections, wrapInTableSP("栄養成分表示（100g当たり）推定値", strings.Join(nutritionHTML, "")))
	}

	if data.Allergen != "" {
		sections = append(sections, allergenSectionSP(data.Allergen))
	}

	if len(sections) == 0 {
		return "<p>情報を抽出できませんでした</p>"
	}
	return strings.Join(sections, "<br>")
}
