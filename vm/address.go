package vm

import (
	"fmt"

	"github.com/evmlite/evmlite/u256"
)

// AddressLength is the byte width of an Address, matching canonical EVM.
const AddressLength = 20

// Address is the 20-byte identifier of an account.
type Address [AddressLength]byte

// BytesToAddress converts b to an Address, left-padding with zeros if b is
// shorter than AddressLength and truncating from the left if longer.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// WordToAddress takes the low 20 bytes of w, matching how the interpreter
// reduces a popped stack Word (e.g. BALANCE's operand) to an Address.
func WordToAddress(w u256.Word) Address {
	b := w.Bytes32()
	return BytesToAddress(b[12:])
}

// Word zero-extends a to a 256-bit Word, matching COINBASE's encoding of
// the block's coinbase address.
func (a Address) Word() u256.Word {
	var w u256.Word
	w.SetBytes(a[:])
	return w
}

// Bytes returns the raw 20-byte slice.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the 0x-prefixed hex representation of a.
func (a Address) Hex() string { return fmt.Sprintf("0x%x", a[:]) }

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool { return a == Address{} }
