package krbank

import (
	"strings"

	"github.com/shopspring/decimal"
)

// wonPerManwon converts raw won amounts to the engine's manwon unit.
var wonPerManwon = decimal.NewFromInt(10_000)

// parseWonAmount parses a comma-grouped won amount into manwon.
// Format examples: "3,000,000" -> 300, "45,000,000" -> 4500.
func parseWonAmount(s string) (float64, error) {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimSuffix(clean, "원")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	f, _ := d.Div(wonPerManwon).Float64()

	return f, nil
}
