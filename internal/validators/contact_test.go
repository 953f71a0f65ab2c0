package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/validators"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain digits", "9876543210", "9876543210"},
		{"country code", "+919876543210", "+919876543210"},
		{"spaced", " +91 98765 43210 ", "+919876543210"},
		{"dashes and parens", "(987) 654-3210", "9876543210"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validators.NormalizePhone(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhoneRejectsInvalid(t *testing.T) {
	for _, in := range []string{
		"not-a-phone",
		"12345",
		"+1234567890123456",
		"98765+43210",
	} {
		_, err := validators.NormalizePhone(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
	}
}
