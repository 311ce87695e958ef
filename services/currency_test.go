package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "zero", amount: 0, expected: "£0"},
		{name: "small", amount: 950, expected: "£950"},
		{name: "thousands", amount: 1500, expected: "£1,500"},
		{name: "hundred thousands", amount: 100000, expected: "£100,000"},
		{name: "millions", amount: 1250000, expected: "£1,250,000"},
		{name: "rounds to whole pounds", amount: 1250000.75, expected: "£1,250,001"},
		{name: "negative", amount: -45000, expected: "-£45,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatGBP(tt.amount))
		})
	}
}
