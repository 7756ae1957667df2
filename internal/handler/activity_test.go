package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDeviceName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ua   string
		want string
	}{
		{"", "Unknown"},
		{"Mozilla/5.0 (Windows NT 10.0) Chrome/124.0 Safari/537.36 Edg/124.0", "Microsoft Edge"},
		{"Mozilla/5.0 Chrome/124.0 Safari/537.36 OPR/110.0", "Opera"},
		{"Mozilla/5.0 (X11; Linux x86_64) Chrome/124.0 Safari/537.36", "Chrome"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0", "Firefox"},
		{"Mozilla/5.0 (Macintosh) AppleWebKit/605.1.15 Version/17.4 Safari/605.1.15", "Safari"},
		{"curl/8.5.0", "Unknown"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanDeviceName(tc.ua), tc.ua)
	}
}
