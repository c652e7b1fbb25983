package pricing

import "testing"

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "Rp 0"},
		{amount: 500, want: "Rp 500"},
		{amount: 52_000, want: "Rp 52.000"},
		{amount: 1_250_000, want: "Rp 1.250.000"},
		{amount: 999_999_000, want: "Rp 999.999.000"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
