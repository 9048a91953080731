package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+12025550123":       "+12025550123",
		"+7 (912) 555-01-23": "+79125550123",
		"447911123456":       "447911123456",
	}
	for input, want := range cases {
		got, ok := NormalizePhone(input)
		require.True(t, ok, "phone %q", input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "0000", "not a phone", "+1-abc-555"} {
		_, ok := NormalizePhone(input)
		assert.False(t, ok, "phone %q", input)
	}
}
