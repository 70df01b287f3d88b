package sobol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGF2Mod(t *testing.T) {
	tests := []struct {
		a, b, want uint32
	}{
		{0b101, 0b11, 0},    // x^2+1 = (x+1)^2
		{0b1001, 0b111, 0},  // x^3+1 = (x+1)(x^2+x+1)
		{0b1011, 0b11, 1},   // x^3+x+1 at x=1
		{0b10, 0b111, 0b10}, // already reduced
		{0b10011, 0b111, 1}, // x^4+x+1 = (x^2+x)(x^2+x+1) + 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gf2Mod(tt.a, tt.b), "%b mod %b", tt.a, tt.b)
	}
}

// withInitialNumbers replaces the initial numbers of dimension d for the
// duration of the test.
func withInitialNumbers(t *testing.T, d int, m []uint64) {
	t.Helper()
	// Build the shared table before the numbers are changed.
	SharedTable()

	saved := initialNumbers[d-1]
	initialNumbers[d-1] = m
	t.Cleanup(func() { initialNumbers[d-1] = saved })
}

func recoverError(f func()) (err error) {
	defer func() { err, _ = recover().(error) }()
	f()
	return nil
}

func TestBuildTableRejectsBadInitialNumbers(t *testing.T) {
	tests := []struct {
		name string
		m    []uint64
	}{
		{"too few", []uint64{1}},
		{"too many", []uint64{1, 3, 1}},
		{"even", []uint64{1, 2}},
		{"too large", []uint64{1, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Dimension 2 uses x^2 + x + 1.
			withInitialNumbers(t, 2, tt.m)

			tab, err := BuildTable()
			assert.Nil(t, tab)
			require.ErrorIs(t, err, ErrBadDirectionNumbers)

			err = recoverError(func() { mustBuildTable() })
			assert.ErrorIs(t, err, ErrBadDirectionNumbers)
		})
	}

	tab, err := BuildTable()
	require.NoError(t, err)
	assert.Equal(t, *SharedTable(), *tab)
}
