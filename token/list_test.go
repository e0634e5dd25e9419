package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntList(t *testing.T) {
	tests := []struct {
		input string
		want  []int16
	}{
		{"[]", nil},
		{"[0]", []int16{0}},
		{"[1, -2, 3]", []int16{1, -2, 3}},
		{"[32767, -32768]", []int16{32767, -32768}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			values, err := NewReader(strings.NewReader(tt.input)).IntList()
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestIntListErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"[32768]", ErrIntOutOfRange},
		{"[-32769]", ErrIntOutOfRange},
		{"[99999]", ErrIntOutOfRange},
		{"[-]", ErrMissingDigits},
		{"[,1]", ErrMissingDigits},
		{"[1-2]", ErrMisplacedSign},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.input)).IntList()
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := NewReader(strings.NewReader("[1;2]")).IntList()
	var invalid *InvalidDigitError
	assert.ErrorAs(t, err, &invalid)

	// The separator is a comma followed by a single space.
	_, err = NewReader(strings.NewReader("[1,2]")).IntList()
	var unexpected *UnexpectedTokenError
	assert.ErrorAs(t, err, &unexpected)

	_, err = NewReader(strings.NewReader("[1,]")).IntList()
	assert.ErrorAs(t, err, &unexpected)
}

func TestWriteIntList(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteIntList(&b, nil))
	assert.Equal(t, "[]", b.String())

	b.Reset()
	require.NoError(t, WriteIntList(&b, []int16{1, -2, 3}))
	assert.Equal(t, "[1, -2, 3]", b.String())
}
