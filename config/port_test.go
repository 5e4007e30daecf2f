package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, tc := range []struct {
			Arg  string
			Want uint16
		}{
			{"1", 1},
			{"8080", 8080},
			{"65535", 65535},
		} {
			port, err := ParsePort(tc.Arg)
			require.NoError(t, err, tc.Arg)
			require.Equal(t, tc.Want, port, tc.Arg)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, arg := range []string{"", "0", "-1", "65536", "http", "80a", " 80"} {
			_, err := ParsePort(arg)
			require.ErrorIs(t, err, ErrBadPort, arg)
		}
	})
}
