package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"905551234567", "905551234567"},
		{"+90 555 123 45 67", "905551234567"},
		{"(0555) 123-45-67", "05551234567"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestNormalizePhoneOnlyDigits(t *testing.T) {
	for _, in := range []string{"+90-555.123 45 67", "tel:905551234567", "½905551234567"} {
		got := NormalizePhone(in)
		for i := 0; i < len(got); i++ {
			assert.True(t, got[i] >= '0' && got[i] <= '9', "non-digit %q in %q", got[i], got)
		}
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("905551234567"))
	assert.True(t, ValidPhone("0555 123 45 67"))
	assert.False(t, ValidPhone("123456789")) // 9 digits
	assert.False(t, ValidPhone(""))
}
