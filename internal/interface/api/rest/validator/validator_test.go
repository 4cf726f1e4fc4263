package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"empty defaults to first page", "", 1, false},
		{"plain number", "3", 3, false},
		{"not a number", "abc", 0, true},
		{"negative", "-3", 0, true},
		{"zero", "0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ValidatePage(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestValidateID(t *testing.T) {
	id, err := ValidateID("7")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err = ValidateID(bad)
		assert.Error(t, err, bad)
	}
}
