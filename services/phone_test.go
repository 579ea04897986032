package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMpesaPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Local format", "0712345678", false},
		{"International format", "254712345678", false},
		{"Plus prefix", "+254712345678", false},
		{"Empty", "", true},
		{"Whitespace only", "   ", true},
		{"Too short", "0712", true},
		{"Not a number", "not-a-phone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMpesaPhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMpesaPhoneEmptyIsRequiredError(t *testing.T) {
	assert.ErrorIs(t, ValidateMpesaPhone(""), ErrPhoneRequired)
}
