package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "Zero"},
		{in: -5, want: "Zero"},
		{in: 1, want: "One only"},
		{in: 13, want: "Thirteen only"},
		{in: 40, want: "Forty only"},
		{in: 45, want: "Forty five only"},
		{in: 100, want: "One hundred only"},
		{in: 101, want: "One hundred and one only"},
		{in: 450, want: "Four hundred and fifty only"},
		{in: 999, want: "Nine hundred and ninety nine only"},
		{in: 1000, want: "One thousand only"},
		{in: 1234, want: "One thousand two hundred and thirty four only"},
		{in: 5050, want: "Five thousand fifty only"},
		{in: 100000, want: "One hundred thousand only"},
		{in: 2000003, want: "Two million three only"},
		{in: 1000000000, want: "One billion only"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, AmountInWords(tt.in))
		})
	}
}
