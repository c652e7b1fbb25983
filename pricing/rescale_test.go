package pricing

import "testing"

func TestRescalerApply(t *testing.T) {
	r := DefaultRescaler()

	tests := []struct {
		name  string
		price int64
		want  int64
	}{
		{
			name:  "abbreviated thousands entry",
			price: 150,
			want:  150_000,
		},
		{
			name:  "just below threshold rescales",
			price: 999_999,
			want:  999_999_000,
		},
		{
			name:  "exact threshold passes through",
			price: 1_000_000,
			want:  1_000_000,
		},
		{
			name:  "above threshold passes through",
			price: 2_500_000,
			want:  2_500_000,
		},
		{
			name:  "zero stays zero",
			price: 0,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Apply(tt.price); got != tt.want {
				t.Errorf("Apply(%d) = %d, want %d", tt.price, got, tt.want)
			}
		})
	}
}

func TestRescalerCustomBounds(t *testing.T) {
	r := Rescaler{Threshold: 100, Multiplier: 10}
	if got := r.Apply(99); got != 990 {
		t.Errorf("Apply(99) = %d, want 990", got)
	}
	if got := r.Apply(100); got != 100 {
		t.Errorf("Apply(100) = %d, want 100", got)
	}
}
