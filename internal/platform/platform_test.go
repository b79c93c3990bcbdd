package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Identity
		wantErr bool
	}{
		{input: "windows", want: Windows},
		{input: "Windows", want: Windows},
		{input: "mac", want: Darwin},
		{input: "macos", want: Darwin},
		{input: "darwin", want: Darwin},
		{input: " linux ", want: Linux},
		{input: "freebsd", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := Parse(tc.input)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.want, got)
	}
}

func TestDetectReturnsClosedSet(t *testing.T) {
	id := Detect()
	require.Contains(t, []Identity{Windows, Darwin, Linux}, id)
}
