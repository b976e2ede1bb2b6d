package usecase

import (
	"strings"
	"testing"
)

func TestCSVToText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "header row with field rows becomes block-marked lines",
			input: "項目名,値\n商品名,テスト商品\n原材料,砂糖",
			want:  "■商品名:テスト商品\n■原材料:砂糖",
		},
		{
			name:  "nutrition rows emitted bare behind synthetic header",
			input: "項目名,値\n商品名,テスト商品\n名称,スイーツ\nエネルギー,120\n",
			want:  "■商品名:テスト商品\n■名称:スイーツ\n【栄養成分表示(100g当たり)】（推定値）\nエネルギー:120",
		},
		{
			name:  "tab delimiter detected",
			input: "商品名\tテスト商品\n原材料\t砂糖",
			want:  "■商品名:テスト商品\n■原材料:砂糖",
		},
		{
			name:  "semicolon delimiter detected",
			input: "商品名;テスト商品",
			want:  "■商品名:テスト商品",
		},
		{
			name:  "pipe delimiter detected",
			input: "商品名|テスト商品",
			want:  "■商品名:テスト商品",
		},
		{
			name:  "single column input passes through unchanged",
			input: "ただのテキストです",
			want:  "ただのテキストです",
		},
		{
			name:  "empty input passes through unchanged",
			input: "",
			want:  "",
		},
		{
			name:  "comment rows are skipped",
			input: "商品名,テスト商品\n#コメント,無視\n原材料,砂糖",
			want:  "■商品名:テスト商品\n■原材料:砂糖",
		},
		{
			name:  "rows with empty key or value are skipped",
			input: "商品名,テスト商品\n,値なし\nラベルのみ,",
			want:  "■商品名:テスト商品",
		},
		{
			name:  "extra columns beyond the second are ignored",
			input: "商品名,テスト商品,おまけ",
			want:  "■商品名:テスト商品",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CSVToText(tc.input)
			if got != tc.want {
				t.Errorf("CSVToText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// CSV input converted by the adapter must parse like ordinary label text.
func TestCSVRoundTrip(t *testing.T) {
	csv := "項目名,値\n商品名,テスト商品\n名称,スイーツ\nエネルギー,120\n"

	text := CSVToText(csv)
	if !strings.Contains(text, "■商品名:テスト商品") {
		t.Fatalf("adapter output missing product line: %q", text)
	}

	result := NewParserService(ParserServiceConfig{}).Parse(text)

	if result.Product.ProductName != "テスト商品" {
		t.Errorf("product_name = %q, want テスト商品", result.Product.ProductName)
	}
	if result.Product.ProductType != "スイーツ" {
		t.Errorf("product_type = %q, want スイーツ", result.Product.ProductType)
	}
	if got, ok := result.Product.Nutrition.Get("energy"); !ok || got != "120" {
		t.Errorf("nutrition[energy] = %q (present=%v), want 120", got, ok)
	}
}
