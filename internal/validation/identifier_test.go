package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid lowercase", id: "64b2f0c8e4a1d92b3c5f7a01", wantErr: false},
		{name: "valid uppercase", id: "64B2F0C8E4A1D92B3C5F7A01", wantErr: false},
		{name: "too short", id: "64b2f0c8e4a1", wantErr: true},
		{name: "too long", id: strings.Repeat("a", 25), wantErr: true},
		{name: "empty", id: "", wantErr: true},
		{name: "non-hex character", id: "64b2f0c8e4a1d92b3c5f7a0g", wantErr: true},
		{name: "embedded space", id: "64b2f0c8e4a1 92b3c5f7a01", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Identifier(tc.id)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMalformedIdentifier)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
