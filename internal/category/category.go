// Package category maps free-text instrument labels onto the fixed set of
// report buckets. The report pages group every line item by these values, so
// the set is closed and classification is total: the last rule always matches.
package category

import "strings"

// Source is the classification tag carried by every breakdown line item.
type Source string

const (
	SourceCash       Source = "cash"
	SourceSaving     Source = "saving"
	SourcePension    Source = "pension"
	SourceRealEstate Source = "realEstate"
	SourceAsset      Source = "asset"
	SourceDebt       Source = "debt"
	SourceLiving     Source = "living"
	SourceMedical    Source = "medical"
	SourceFinancing  Source = "financing"
	SourceOther      Source = "other"
)

// Kind mirrors the instrument kinds without importing the instrument package
// (instrument depends on category, not the other way around).
type Kind string

const (
	KindIncome     Kind = "income"
	KindExpense    Kind = "expense"
	KindSaving     Kind = "saving"
	KindPension    Kind = "pension"
	KindRealEstate Kind = "realEstate"
	KindAsset      Kind = "asset"
	KindDebt       Kind = "debt"
)

type rule struct {
	kind     Kind     // empty matches any kind
	keywords []string // empty matches any label
	source   Source
}

// Rules are evaluated top to bottom; the first match wins. Structural kinds
// come first so a free-text label can never reclassify a pension as, say,
// living expense. Keyword rules cover the survey's free-text categories in
// both Korean and English.
var rules = []rule{
	{kind: KindPension, source: SourcePension},
	{kind: KindSaving, source: SourceSaving},
	{kind: KindRealEstate, source: SourceRealEstate},
	{kind: KindAsset, source: SourceAsset},
	{kind: KindDebt, source: SourceDebt},

	{keywords: []string{"연금", "pension"}, source: SourcePension},
	{keywords: []string{"부동산", "임대", "월세", "전세", "real estate", "rent"}, source: SourceRealEstate},
	{keywords: []string{"의료", "병원", "건강", "간병", "medical", "health"}, source: SourceMedical},
	{keywords: []string{"이자", "대출", "상환", "금융", "interest", "loan"}, source: SourceFinancing},
	{keywords: []string{"저축", "적금", "예금", "saving", "deposit"}, source: SourceSaving},
	{keywords: []string{"생활", "식비", "주거", "교육", "living", "grocery"}, source: SourceLiving},

	{kind: KindIncome, source: SourceCash},
	{kind: KindExpense, source: SourceLiving},

	{source: SourceOther},
}

// Classify returns the report bucket for an instrument kind and free-text
// label. It never fails: the final rule is an unconditional fallback.
func Classify(kind Kind, label string) Source {
	lower := strings.ToLower(label)

	for _, r := range rules {
		if r.kind != "" && r.kind != kind {
			continue
		}

		if len(r.keywords) > 0 && !containsAny(lower, r.keywords) {
			continue
		}

		return r.source
	}

	// Unreachable: the last rule has no conditions.
	return SourceOther
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}

	return false
}
