package vm

import "github.com/evmlite/evmlite/u256"

// BlockContext is a fixed-valued record of block-scope queryable fields.
// It is populated at VM construction via functional options and never
// mutated during a run. It omits gas-pricing and transfer-function fields,
// since those only matter to a full call/contract-creation pipeline that
// this interpreter does not implement.
type BlockContext struct {
	BlockHash   u256.Word
	Coinbase    Address
	Timestamp   u256.Word
	Number      u256.Word
	PrevRandao  u256.Word
	GasLimit    u256.Word
	ChainID     u256.Word
	SelfBalance u256.Word
	BaseFee     u256.Word
}
