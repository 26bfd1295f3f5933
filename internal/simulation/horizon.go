package simulation

// Horizon is the inclusive year range a projection covers, from the current
// year through the household's life-expectancy year.
type Horizon struct {
	Start int
	End   int
}

// NewHorizon clamps the range so it never has negative length: an end before
// the start yields an empty horizon, which is valid output, not an error.
func NewHorizon(currentYear, finalYear int) Horizon {
	if finalYear < currentYear {
		finalYear = currentYear - 1
	}

	return Horizon{Start: currentYear, End: finalYear}
}

// Years returns every year in the horizon in ascending order.
func (h Horizon) Years() []int {
	if h.End < h.Start {
		return nil
	}

	years := make([]int, 0, h.End-h.Start+1)
	for y := h.Start; y <= h.End; y++ {
		years = append(years, y)
	}

	return years
}

// Len is the number of projected years.
func (h Horizon) Len() int {
	if h.End < h.Start {
		return 0
	}

	return h.End - h.Start + 1
}
