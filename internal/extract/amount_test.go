package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts AmountOptions
		want int64
	}{
		{
			name: "plain dollars",
			text: "We request $250,000 for the effort.",
			opts: AmountOptions{FallbackCents: 500_000_000},
			want: 25_000_000,
		},
		{
			name: "million suffix word",
			text: "Total ask: $4.0 million over two years.",
			opts: AmountOptions{FallbackCents: 500_000_000},
			want: 400_000_000,
		},
		{
			name: "single letter suffixes",
			text: "Phase 1 is $750K and phase 2 is $2M.",
			opts: AmountOptions{FallbackCents: 500_000_000},
			want: 200_000_000,
		},
		{
			name: "max wins over smaller figures",
			text: "$10,000 for travel, $3.5 million for hardware, $500,000 for integration.",
			opts: AmountOptions{FallbackCents: 500_000_000},
			want: 350_000_000,
		},
		{
			name: "below window is rejected",
			text: "See page $5 of the attachment.",
			opts: AmountOptions{FallbackCents: 250_000_000},
			want: 250_000_000,
		},
		{
			name: "at or above one billion is rejected",
			text: "The program of record totals $1 billion across the FYDP.",
			opts: AmountOptions{FallbackCents: 250_000_000},
			want: 250_000_000,
		},
		{
			name: "no figure falls back",
			text: "Funding level to be determined.",
			opts: AmountOptions{FallbackCents: 250_000_000},
			want: 250_000_000,
		},
		{
			name: "no figure with DRL resolves to zero",
			text: "Requesting report language only.",
			opts: AmountOptions{FallbackCents: 250_000_000, IsDRL: true},
			want: 0,
		},
		{
			name: "DRL with explicit figure keeps the figure",
			text: "Report language plus $1,500,000 in RDT&E.",
			opts: AmountOptions{FallbackCents: 250_000_000, IsDRL: true},
			want: 150_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferAmount(tt.text, tt.opts))
		})
	}
}

func TestFormatAmountCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "$0"},
		{"plain dollars grouped", 25_000_000, "$250,000"},
		{"round millions", 400_000_000, "$4 MILLION"},
		{"half million steps", 350_000_000, "$3.5 MILLION"},
		{"non round millions stay grouped", 123_456_700, "$1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmountCents(tt.cents))
		})
	}
}
