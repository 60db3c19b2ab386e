package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSignal(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		description string
		token       string
		want        SignalType
		wantErr     bool
	}{
		{"Should parse short red token", "r", SignalRed, false},
		{"Should parse long red token", "red", SignalRed, false},
		{"Should parse short green token", "g", SignalGreen, false},
		{"Should parse long green token", "green", SignalGreen, false},
		{"Should parse short yellow token", "y", SignalYellow, false},
		{"Should parse long yellow token", "yellow", SignalYellow, false},
		{"Should parse short red-yellow token", "ry", SignalRedYellow, false},
		{"Should parse long red-yellow token", "redyellow", SignalRedYellow, false},
		{"Should reject an unknown token", "blue", SignalRed, true},
		{"Should reject an empty token", "", SignalRed, true},
		{"Should reject uppercase variants", "G", SignalRed, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := ParseSignal(tt.token)
			if tt.wantErr {
				req.Error(err)
				req.Contains(err.Error(), tt.token)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestSignalType_String(t *testing.T) {
	req := require.New(t)

	req.Equal("r", SignalRed.String())
	req.Equal("g", SignalGreen.String())
	req.Equal("y", SignalYellow.String())
	req.Equal("ry", SignalRedYellow.String())
	// Out-of-range values degrade to red, the safe signal.
	req.Equal("r", SignalType(42).String())
}
