package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clip-cast/cmd/api/services"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 42, "0:42"},
		{"minutes", 754, "12:34"},
		{"exact hour", 3600, "1:00:00"},
		{"hours", 3754, "1:02:34"},
		{"negative clamped", -5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.FormatDuration(tt.seconds))
		})
	}
}
