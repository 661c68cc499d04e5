package service

import "testing"

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole rupees", 1250, 125000},
		{"exact half", 1250.50, 125050},
		{"quarter", 500.25, 50025},
		{"inexact float representation", 19.99, 1999},
		{"inexact sum of two payments", 39.98, 3998},
		{"small inexact value", 0.07, 7},
		{"single cent", 0.01, 1},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		if got := toCents(tt.amount); got != tt.want {
			t.Errorf("%s: toCents(%v) = %d, want %d", tt.name, tt.amount, got, tt.want)
		}
	}
}
