package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare digits", input: "9999999999", want: "9999999999"},
		{name: "plus prefix", input: "+919999999999", want: "919999999999"},
		{name: "spaces and dashes", input: "+91 99999-99999", want: "919999999999"},
		{name: "surrounding whitespace", input: "  9999999999  ", want: "9999999999"},
		{name: "empty", input: "", wantErr: true},
		{name: "only separators", input: " - ", wantErr: true},
		{name: "letters", input: "99999abcde", wantErr: true},
		{name: "too short", input: "12345", wantErr: true},
		{name: "too long", input: "1234567890123456", wantErr: true},
		{name: "plus in the middle", input: "99999+99999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMobile(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
