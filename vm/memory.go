package vm

import (
	"fmt"
	"math"

	"github.com/evmlite/evmlite/u256"
)

// Memory is a byte-addressable linear memory that grows monotonically to
// satisfy each access, zero-filling newly allocated bytes. Growth is
// exact-size: there is no 32-byte word rounding, since there is no gas
// schedule here that such rounding would amortize against.
type Memory struct {
	store []byte
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the current length of memory in bytes.
func (m *Memory) Len() int {
	return len(m.store)
}

// ensure grows memory to at least offset+size bytes, zero-filling the new
// region, and returns ErrArithOverflow if offset+size overflows a uint64.
func (m *Memory) ensure(offset, size uint64) error {
	if size == 0 {
		return nil
	}
	end := offset + size
	if end < offset { // overflow
		return fmt.Errorf("%w: offset %d + size %d", ErrArithOverflow, offset, size)
	}
	if end > math.MaxInt {
		return fmt.Errorf("%w: required size %d exceeds addressable range", ErrArithOverflow, end)
	}
	if uint64(len(m.store)) < end {
		m.store = append(m.store, make([]byte, end-uint64(len(m.store)))...)
	}
	return nil
}

// Grow extends memory to at least offset+size bytes without writing
// anything, used by handlers (SHA3, EXTCODECOPY) that need the region
// present before reading or copying into it.
func (m *Memory) Grow(offset, size uint64) error {
	return m.ensure(offset, size)
}

// Set writes value into memory at [offset, offset+len(value)), growing
// memory as needed.
func (m *Memory) Set(offset uint64, value []byte) error {
	if err := m.ensure(offset, uint64(len(value))); err != nil {
		return err
	}
	copy(m.store[offset:], value)
	return nil
}

// Set32 writes the 32-byte big-endian encoding of val at offset, growing
// memory to at least offset+32 bytes.
func (m *Memory) Set32(offset uint64, val u256.Word) error {
	if err := m.ensure(offset, 32); err != nil {
		return err
	}
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
	return nil
}

// SetByte writes the single low-order byte of val at offset, growing
// memory to at least offset+1 bytes. Used by MSTORE8.
func (m *Memory) SetByte(offset uint64, val u256.Word) error {
	if err := m.ensure(offset, 1); err != nil {
		return err
	}
	b := val.Bytes32()
	m.store[offset] = b[31]
	return nil
}

// Get returns a copy of memory bytes [offset, offset+size), right-zero-padding
// the result if the requested window extends past the current memory
// length. Unlike Set/Set32, Get never grows memory: callers that must
// extend memory first (SHA3, EXTCODECOPY) call Grow explicitly; MLOAD and
// LOGn read through Get alone.
func (m *Memory) Get(offset, size uint64) []byte {
	out := make([]byte, size)
	if offset >= uint64(len(m.store)) || size == 0 {
		return out
	}
	avail := uint64(len(m.store)) - offset
	n := size
	if avail < n {
		n = avail
	}
	copy(out, m.store[offset:offset+n])
	return out
}

// Data returns the full backing slice. Callers must not retain or mutate
// it beyond the current call.
func (m *Memory) Data() []byte {
	return m.store
}
