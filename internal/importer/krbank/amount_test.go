package krbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWonAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "Grouped", in: "3,000,000", want: 300},
		{name: "Plain", in: "45000000", want: 4500},
		{name: "WonSuffix", in: "1,000,000원", want: 100},
		{name: "SubManwon", in: "5,000", want: 0.5},
		{name: "Zero", in: "0", want: 0},
		{name: "Empty", in: "", wantErr: true},
		{name: "Garbage", in: "많이", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWonAmount(tt.in)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
