// Package krbank parses the CSV layout Korean banks use for the planning
// survey export: one row per instrument, Korean headers, amounts in won.
package krbank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/dydtjq94/lycon-engine/internal/encoding"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

// Expected header columns. 구분 and 금액 are mandatory; the rest are
// optional per kind.
const (
	colKind      = "구분"
	colTitle     = "항목"
	colCategory  = "분류"
	colAmount    = "금액"
	colBasis     = "주기"
	colStartYear = "시작연도"
	colEndYear   = "종료연도"
	colGrowth    = "상승률"
	colInterest  = "금리"
)

// kindNames maps the export's Korean kind labels onto record kinds.
var kindNames = map[string]instrument.Kind{
	"수입":  instrument.KindIncome,
	"지출":  instrument.KindExpense,
	"저축":  instrument.KindSaving,
	"연금":  instrument.KindPension,
	"부동산": instrument.KindRealEstate,
	"자산":  instrument.KindAsset,
	"부채":  instrument.KindDebt,
}

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

func (i *Importer) Parse(r io.Reader) ([]*instrument.Record, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row found: expected %s and %s columns", colKind, colAmount)
	}

	var records []*instrument.Record

	for _, row := range rows[headerIdx+1:] {
		rec, ok := parseRow(cols, row)
		if !ok {
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}

type colIndex map[string]int

// findHeader scans for the first row carrying the mandatory columns.
func findHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			// Headers sometimes carry a unit suffix, e.g. "상승률(%)".
			name := strings.TrimSpace(cell)
			if idx := strings.IndexByte(name, '('); idx > 0 {
				name = name[:idx]
			}

			if name != "" {
				cols[name] = i
			}
		}

		if _, ok := cols[colKind]; !ok {
			continue
		}

		if _, ok := cols[colAmount]; ok {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func parseRow(cols colIndex, row []string) (*instrument.Record, bool) {
	kind, ok := kindNames[cellValue(cols, row, colKind)]
	if !ok {
		return nil, false
	}

	amount, err := parseWonAmount(cellValue(cols, row, colAmount))
	if err != nil {
		return nil, false
	}

	rec := &instrument.Record{
		Kind:     kind,
		Title:    cellValue(cols, row, colTitle),
		Category: cellValue(cols, row, colCategory),
		Basis:    parseBasis(cellValue(cols, row, colBasis)),
	}

	rec.StartYear = parseInt(cellValue(cols, row, colStartYear))
	rec.EndYear = parseInt(cellValue(cols, row, colEndYear))

	growth := parseRate(cellValue(cols, row, colGrowth))
	interest := parseRate(cellValue(cols, row, colInterest))

	switch kind {
	case instrument.KindIncome, instrument.KindExpense, instrument.KindPension:
		rec.Amount = &amount
		rec.GrowthRatePercent = growth

	case instrument.KindSaving:
		rec.Amount = &amount
		rec.GrowthRatePercent = growth
		rec.InterestRatePercent = interest

	case instrument.KindRealEstate:
		rec.CurrentValue = &amount
		rec.AppreciationRatePercent = growth

	case instrument.KindAsset:
		rec.CurrentValue = &amount
		rec.GrowthRatePercent = growth

	case instrument.KindDebt:
		rec.Principal = &amount
		rec.InterestRatePercent = interest
		rec.RepaymentType = instrument.RepayInterestOnly
	}

	return rec, true
}

func cellValue(cols colIndex, row []string, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func parseBasis(s string) instrument.AmountBasis {
	if strings.HasPrefix(s, "월") {
		return instrument.BasisMonthly
	}

	return instrument.BasisAnnual
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return v
}

func parseRate(s string) float64 {
	s = strings.TrimSuffix(s, "%")

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return v
}
