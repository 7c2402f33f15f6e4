// Package u256 provides the 256-bit machine word used throughout the
// interpreter, built on top of github.com/holiman/uint256.
package u256

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// ErrDivByZero is returned by Div when the divisor is zero. Unlike the
// canonical EVM DIV opcode (which defines x/0 = 0), this interpreter traps
// the condition and surfaces it to the caller.
var ErrDivByZero = errors.New("u256: division by zero")

// Word is a 256-bit unsigned integer with wrapping arithmetic, matching the
// machine word of the virtual machine's stack, memory, and storage.
type Word struct {
	v uint256.Int
}

// Zero is the additive identity.
var Zero = Word{}

// One is the multiplicative identity.
var One = FromUint64(1)

// FromUint64 builds a Word from a native uint64.
func FromUint64(x uint64) Word {
	var w Word
	w.v.SetUint64(x)
	return w
}

// FromBytes32 builds a Word from a 32-byte big-endian encoding.
func FromBytes32(b [32]byte) Word {
	var w Word
	w.v.SetBytes32(b[:])
	return w
}

// SetBytes32 sets w from a 32-byte big-endian encoding.
func (w *Word) SetBytes32(b []byte) {
	w.v.SetBytes(b)
}

// SetBytes sets w from an arbitrary-length big-endian encoding, left-padded
// conceptually with zeros, matching PUSHn's semantics for n < 32.
func (w *Word) SetBytes(b []byte) {
	w.v.SetBytes(b)
}

// Bytes32 returns the 32-byte big-endian encoding of w.
func (w Word) Bytes32() [32]byte {
	return w.v.Bytes32()
}

// Add returns w + x with 256-bit wraparound.
func (w Word) Add(x Word) Word {
	var out Word
	out.v.Add(&w.v, &x.v)
	return out
}

// Sub returns w - x with 256-bit wraparound.
func (w Word) Sub(x Word) Word {
	var out Word
	out.v.Sub(&w.v, &x.v)
	return out
}

// Mul returns w * x with 256-bit wraparound.
func (w Word) Mul(x Word) Word {
	var out Word
	out.v.Mul(&w.v, &x.v)
	return out
}

// Div returns w / x using unsigned integer division. It returns
// ErrDivByZero if x is zero rather than the canonical EVM definition of
// x/0 = 0.
func (w Word) Div(x Word) (Word, error) {
	if x.IsZero() {
		return Zero, ErrDivByZero
	}
	var out Word
	out.v.Div(&w.v, &x.v)
	return out, nil
}

// And returns the bitwise AND of w and x.
func (w Word) And(x Word) Word {
	var out Word
	out.v.And(&w.v, &x.v)
	return out
}

// Or returns the bitwise OR of w and x.
func (w Word) Or(x Word) Word {
	var out Word
	out.v.Or(&w.v, &x.v)
	return out
}

// Not returns the bitwise complement of w.
func (w Word) Not() Word {
	var out Word
	out.v.Not(&w.v)
	return out
}

// Lt reports whether w < x as unsigned 256-bit integers.
func (w Word) Lt(x Word) bool {
	return w.v.Lt(&x.v)
}

// Gt reports whether w > x as unsigned 256-bit integers.
func (w Word) Gt(x Word) bool {
	return w.v.Gt(&x.v)
}

// Eq reports whether w == x.
func (w Word) Eq(x Word) bool {
	return w.v.Eq(&x.v)
}

// IsZero reports whether w is the zero word.
func (w Word) IsZero() bool {
	return w.v.IsZero()
}

// BoolToWord converts a boolean into the canonical 0/1 machine word used by
// comparison and boolean opcodes.
func BoolToWord(b bool) Word {
	if b {
		return One
	}
	return Zero
}

// Uint64 returns the low 64 bits of w, discarding any higher bits.
func (w Word) Uint64() uint64 {
	return w.v.Uint64()
}

// String returns the decimal representation of w.
func (w Word) String() string {
	return w.v.Dec()
}

// Hex returns the 0x-prefixed hexadecimal representation of w.
func (w Word) Hex() string {
	return w.v.Hex()
}

// Bytes returns the minimal big-endian byte representation of w, with no
// leading zero bytes (the empty slice for the zero word). This mirrors
// uint256.Int.Bytes().
func (w Word) Bytes() []byte {
	return w.v.Bytes()
}

// GoString implements fmt.GoStringer for friendlier test failure output.
func (w Word) GoString() string {
	return fmt.Sprintf("u256.Word(%s)", w.v.Hex())
}
