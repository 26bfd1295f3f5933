package krbank_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/dydtjq94/lycon-engine/internal/importer/krbank"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

func TestImporter_Parse(t *testing.T) {
	csv := `가계 재무 설문 내보내기
작성일,2026-08-28

구분,항목,분류,금액,주기,시작연도,종료연도,상승률(%),금리(%)
수입,급여,근로소득,"4,500,000",월,,2042,3,
지출,생활비,생활,"3,000,000",월,,,2,
저축,적금,저축,"500,000",월,,2035,,3.5
연금,국민연금,연금,"900,000",월,2047,2072,,
부동산,오피스텔,임대,"450,000,000",연,,,1.5,
자산,펀드,투자,"80,000,000",연,,,4,
부채,주택담보대출,대출,"200,000,000",연,,2035,,4.2
`

	imp := krbank.New()
	records, err := imp.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 7)

	salary := records[0]
	assert.Equal(t, instrument.KindIncome, salary.Kind)
	assert.Equal(t, "급여", salary.Title)
	assert.Equal(t, "근로소득", salary.Category)
	require.NotNil(t, salary.Amount)
	assert.InDelta(t, 450, *salary.Amount, 1e-9)
	assert.Equal(t, instrument.BasisMonthly, salary.Basis)
	assert.Zero(t, salary.StartYear)
	assert.Equal(t, 2042, salary.EndYear)
	assert.InDelta(t, 3, salary.GrowthRatePercent, 1e-9)

	saving := records[2]
	assert.Equal(t, instrument.KindSaving, saving.Kind)
	require.NotNil(t, saving.Amount)
	assert.InDelta(t, 50, *saving.Amount, 1e-9)
	assert.InDelta(t, 3.5, saving.InterestRatePercent, 1e-9)

	pension := records[3]
	assert.Equal(t, instrument.KindPension, pension.Kind)
	assert.Equal(t, 2047, pension.StartYear)
	assert.Equal(t, 2072, pension.EndYear)

	flat := records[4]
	assert.Equal(t, instrument.KindRealEstate, flat.Kind)
	require.NotNil(t, flat.CurrentValue)
	assert.InDelta(t, 45000, *flat.CurrentValue, 1e-9)
	assert.Equal(t, instrument.BasisAnnual, flat.Basis)
	assert.InDelta(t, 1.5, flat.AppreciationRatePercent, 1e-9)

	loan := records[6]
	assert.Equal(t, instrument.KindDebt, loan.Kind)
	require.NotNil(t, loan.Principal)
	assert.InDelta(t, 20000, *loan.Principal, 1e-9)
	assert.InDelta(t, 4.2, loan.InterestRatePercent, 1e-9)
	assert.Equal(t, instrument.RepayInterestOnly, loan.RepaymentType)
}

func TestImporter_Parse_EUCKR(t *testing.T) {
	csv := "구분,항목,금액\n수입,급여,\"4,500,000\"\n"

	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(csv))
	require.NoError(t, err)

	imp := krbank.New()
	records, err := imp.Parse(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "급여", records[0].Title)
	assert.InDelta(t, 450, *records[0].Amount, 1e-9)
}

func TestImporter_Parse_SkipsUnparsableRows(t *testing.T) {
	csv := `구분,항목,금액
수입,급여,"4,500,000"
잡동사니,뭔가,"1,000"
지출,생활비,없음
`

	imp := krbank.New()
	records, err := imp.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, instrument.KindIncome, records[0].Kind)
}

func TestImporter_Parse_NoHeader(t *testing.T) {
	imp := krbank.New()
	_, err := imp.Parse(strings.NewReader("just,some,cells\n1,2,3\n"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestImporter_Parse_AmountWithWonSuffix(t *testing.T) {
	csv := "구분,항목,금액\n자산,예금,30000000원\n"

	imp := krbank.New()
	records, err := imp.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 3000, *records[0].CurrentValue, 1e-9)
}
