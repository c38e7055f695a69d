package receipt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// abiEncodeError builds the ABI encoding of Error(reason): the selector,
// the offset of the string, its length, and its right-padded content.
func abiEncodeError(reason string) []byte {
	data := append([]byte{}, errorSelector[:]...)
	data = append(data, word(0x20)...)
	data = append(data, word(uint64(len(reason)))...)
	data = append(data, []byte(reason)...)
	for len(data)%32 != 4 {
		data = append(data, 0)
	}
	return data
}

// abiEncodePanic builds the ABI encoding of Panic(code).
func abiEncodePanic(code uint64) []byte {
	return append(append([]byte{}, panicSelector[:]...), word(code)...)
}

func word(value uint64) []byte {
	var res [32]byte
	for i := 0; i < 8; i++ {
		res[31-i] = byte(value >> (8 * i))
	}
	return res[:]
}

func TestClassifyReturnData_CleanReturnCarriesSelector(t *testing.T) {
	require := require.New(t)

	// A bytes4 return value is left-aligned in a 32-byte word.
	ret := make([]byte, 32)
	copy(ret, ReceivedSelector[:])
	require.Equal(Returned{Value: ReceivedSelector}, ClassifyReturnData(true, ret))
}

func TestClassifyReturnData_ShortCleanReturnIsAnEmptySelector(t *testing.T) {
	require := require.New(t)

	require.Equal(Returned{}, ClassifyReturnData(true, nil))
	require.Equal(Returned{}, ClassifyReturnData(true, []byte{1, 2}))
}

func TestClassifyReturnData_ErrorStringBecomesReason(t *testing.T) {
	require := require.New(t)

	outcome := ClassifyReturnData(false, abiEncodeError("token gated"))
	require.Equal(RevertedWithReason{Reason: "token gated"}, outcome)
}

func TestClassifyReturnData_PanicBecomesPanicked(t *testing.T) {
	require := require.New(t)

	// 0x11 is the arithmetic overflow fault code.
	outcome := ClassifyReturnData(false, abiEncodePanic(0x11))
	require.Equal(Panicked{Code: 0x11}, outcome)
}

func TestClassifyReturnData_OpaqueDataStaysOpaque(t *testing.T) {
	require := require.New(t)

	require.Equal(Reverted{}, ClassifyReturnData(false, nil))
	require.Equal(Reverted{Data: []byte{1}}, ClassifyReturnData(false, []byte{1}))

	custom := []byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 1}
	require.Equal(Reverted{Data: custom}, ClassifyReturnData(false, custom))

	// A malformed Error(string) payload is not a decodable reason.
	truncated := abiEncodeError("reason")[:40]
	require.Equal(Reverted{Data: truncated}, ClassifyReturnData(false, truncated))
}

func TestClassifyReturnData_MalformedPanicStaysOpaque(t *testing.T) {
	require := require.New(t)

	short := abiEncodePanic(1)[:20]
	require.Equal(Reverted{Data: short}, ClassifyReturnData(false, short))
}
