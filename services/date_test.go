package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Valid date",
			input:    "2024-01-07",
			expected: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			wantErr:  false,
		},
		{
			name:     "Surrounding whitespace",
			input:    " 2024-01-07 ",
			expected: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			wantErr:  false,
		},
		{
			name:    "Invalid format",
			input:   "07-01-2024",
			wantErr: true,
		},
		{
			name:    "Invalid day",
			input:   "2024-01-32",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
