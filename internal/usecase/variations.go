package usecase

import "strings"

// FieldVariation maps a canonical product-field key to its recognized label
// spellings. Order matters twice over: keys are tried in slice order, and within
// a key the first variation that matches wins. There is no scoring; downstream
// consumers depend on this exact precedence.
type FieldVariation struct {
	Key        string
	Variations []string
}

// FieldVariations lists the ten product fields and their label spellings.
var FieldVariations = []FieldVariation{
	{"product_name", []string{
		"商品名", "品名", "製品名", "名前", "商品", "品目",
		"product name", "product", "name", "商品の名前",
	}},
	{"product_type", []string{
		"名称", "品種", "種類", "type", "分類", "品目名",
		"商品の種類", "商品種別", "category",
	}},
	{"ingredients", []string{
		"原材料", "原材料名", "原料", "成分", "ingredients",
		"使用原材料", "材料", "配合成分", "原材料等",
	}},
	{"content", []string{
		"内容量", "容量", "量", "volume", "content", "内容",
		"正味量", "net weight", "入数", "個数",
	}},
	{"expiry", []string{
		"賞味期限", "消費期限", "期限", "expiry", "best before",
		"賞味", "消費", "有効期限", "保存期間",
	}},
	{"storage", []string{
		"保存方法", "保管方法", "保存", "storage",
		"貯蔵方法", "取扱方法", "保存の方法", "保管の方法",
	}},
	{"seller", []string{
		"販売者", "売主", "販売", "seller", "販売元", "販売業者",
		"販売会社", "distributor", "発売元", "販売店",
	}},
	{"manufacturer", []string{
		"製造者", "製造元", "製造", "manufacturer", "製造業者",
		"製造会社", "maker", "メーカー", "製造場所",
	}},
	{"processor", []string{
		"加工者", "加工元", "加工", "processor", "加工業者",
		"加工会社", "加工場所",
	}},
	{"importer", []string{
		"輸入者", "輸入元", "輸入", "importer", "輸入業者",
		"輸入会社", "輸入元会社",
	}},
}

// NutritionVariations lists the eight nutrition keys and their label spellings,
// in extraction priority order.
var NutritionVariations = []FieldVariation{
	{"energy", []string{
		"エネルギー", "energy", "カロリー", "calorie", "kcal",
		"熱量", "calories", "エネルギー量",
	}},
	{"protein", []string{
		"たんぱく質", "タンパク質", "蛋白質", "protein",
		"たんぱく", "タンパク", "プロテイン",
	}},
	{"fat", []string{
		"脂質", "脂肪", "fat", "lipid", "油脂", "脂肪分",
	}},
	{"carbs", []string{
		"炭水化物", "糖質", "carbohydrate", "carbs", "炭水化物量",
	}},
	{"salt", []string{
		"食塩相当量", "食塩", "塩分", "salt",
	}},
	{"sodium", []string{
		"ナトリウム", "ナトリウム量", "sodium", "Na",
	}},
	{"sugar", []string{
		"糖質", "糖類", "sugar", "sugars", "炭水化物(糖質)",
	}},
	{"fiber", []string{
		"食物繊維", "繊維", "fiber", "dietary fiber", "繊維質",
	}},
}

// NutritionPriority orders the keys shown first by the HTML renderers.
var NutritionPriority = []string{"energy", "protein", "fat", "carbs", "salt"}

var (
	fieldVariationSet     = buildVariationSet(FieldVariations)
	nutritionVariationSet = buildVariationSet(NutritionVariations)
	allKnownFieldNames    = unionSets(fieldVariationSet, nutritionVariationSet)
)

func buildVariationSet(table []FieldVariation) map[string]bool {
	set := make(map[string]bool)
	for _, fv := range table {
		for _, v := range fv.Variations {
			set[strings.ToLower(v)] = true
		}
	}
	return set
}

func unionSets(sets ...map[string]bool) map[string]bool {
	union := make(map[string]bool)
	for _, set := range sets {
		for k := range set {
			union[k] = true
		}
	}
	return union
}

// IsNutritionVariation reports whether label (any case) is a recognized
// nutrition label spelling.
func IsNutritionVariation(label string) bool {
	return nutritionVariationSet[strings.ToLower(label)]
}

// IsKnownFieldName reports whether label (any case) is a recognized product or
// nutrition label spelling.
func IsKnownFieldName(label string) bool {
	return allKnownFieldNames[strings.ToLower(label)]
}
