package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        string
	}{
		{"national french", "06 12 34 56 78", "33", "33612345678"},
		{"international plus", "+33 6 12 34 56 78", "33", "33612345678"},
		{"double zero prefix", "00238 991 23 45", "33", "2389912345"},
		{"country code with national zero", "+33 (0)6 12 34 56 78", "33", "33612345678"},
		{"no country code configured", "06-12-34-56-78", "", "0612345678"},
		{"empty", "n/a", "33", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneNumber(tt.phone, tt.countryCode))
		})
	}
}
