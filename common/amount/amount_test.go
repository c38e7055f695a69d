package amount

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount_NewInterpretsArgsBigEndian(t *testing.T) {
	require := require.New(t)

	require.True(New().IsZero())
	require.Equal("100", New(100).String())
	require.Equal("18446744073709551616", New(1, 0).String()) // 2^64
	require.Panics(func() { New(1, 2, 3, 4, 5) })
}

func TestAmount_SubIsChecked(t *testing.T) {
	require := require.New(t)

	res, ok := New(100).Sub(New(40))
	require.True(ok)
	require.Equal(New(60), res)

	// An insufficient amount reports failure instead of wrapping.
	res, ok = New(60).Sub(New(61))
	require.False(ok)
	require.True(res.IsZero())
}

func TestAmount_AddReportsOverflow(t *testing.T) {
	require := require.New(t)

	res, ok := New(1).Add(New(2))
	require.True(ok)
	require.Equal(New(3), res)

	max := New(^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0))
	_, ok = max.Add(New(1))
	require.False(ok)
}

func TestAmount_Comparisons(t *testing.T) {
	require := require.New(t)

	require.True(New(1).Less(New(2)))
	require.False(New(2).Less(New(2)))
	require.False(New(3).Less(New(2)))
}

func TestAmount_BigConversionRoundTrip(t *testing.T) {
	require := require.New(t)

	value := new(big.Int).Lsh(big.NewInt(1), 200)
	a, ok := NewFromBig(value)
	require.True(ok)
	require.Equal(value, a.ToBig())

	_, ok = NewFromBig(big.NewInt(-1))
	require.False(ok)

	_, ok = NewFromBig(new(big.Int).Lsh(big.NewInt(1), 256))
	require.False(ok)
}

func TestAmount_TextRoundTrip(t *testing.T) {
	require := require.New(t)

	text, err := New(12345).MarshalText()
	require.NoError(err)
	require.Equal("12345", string(text))

	var restored Amount
	require.NoError(restored.UnmarshalText(text))
	require.Equal(New(12345), restored)

	require.Error(restored.UnmarshalText([]byte("minus one")))
}
