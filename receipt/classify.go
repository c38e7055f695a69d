package receipt

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/holiman/uint256"

	"github.com/tokenlabs/multitoken/common"
)

// Revert payload selectors of the EVM ABI: Error(string) carries a
// human-readable reason, Panic(uint256) a fault code.
var (
	errorSelector = common.SelectorOf("Error(string)")
	panicSelector = common.SelectorOf("Panic(uint256)")
)

// ClassifyReturnData classifies the raw return data of an EVM-style
// receipt-hook call into an outcome. The ok flag distinguishes a cleanly
// returning call from a reverting one; ret is the returned or revert
// data.
//
// A clean return yields Returned with the leading four bytes as the
// acknowledgement selector. Revert data ABI-encoded as Error(string) is
// decoded into RevertedWithReason, Panic(uint256) into Panicked, and
// anything else, including empty revert data, is the opaque Reverted
// case.
func ClassifyReturnData(ok bool, ret []byte) Outcome {
	if ok {
		if len(ret) < 4 {
			return Returned{}
		}
		return Returned{Value: common.Selector(ret[:4])}
	}
	if len(ret) < 4 {
		return Reverted{Data: ret}
	}
	switch common.Selector(ret[:4]) {
	case errorSelector:
		reason, err := abi.UnpackRevert(ret)
		if err != nil {
			return Reverted{Data: ret}
		}
		return RevertedWithReason{Reason: reason}
	case panicSelector:
		if len(ret) != 36 {
			return Reverted{Data: ret}
		}
		var code uint256.Int
		code.SetBytes(ret[4:])
		return Panicked{Code: code.Uint64()}
	default:
		return Reverted{Data: ret}
	}
}
