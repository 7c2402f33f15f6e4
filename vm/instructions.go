package vm

import (
	"fmt"

	"github.com/evmlite/evmlite/u256"
	"golang.org/x/crypto/sha3"
)

// opStop halts execution; the dispatch loop checks operation.halts rather
// than having this handler do anything itself.
func opStop(pc *uint64, vm *VM) error {
	return nil
}

func opAdd(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(a.Add(b))
}

func opMul(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(a.Mul(b))
}

// opSub implements SUB with the non-canonical operand order this
// interpreter uses throughout: result is (b - a), where a is the
// first-popped (former top) operand.
func opSub(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(b.Sub(a))
}

// opDiv implements DIV with this interpreter's non-canonical operand order
// (result is floor(b/a)) and traps on a=0 rather than pushing 0 as
// canonical EVM does.
func opDiv(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	res, err := b.Div(a)
	if err != nil {
		return fmt.Errorf("%w (DIV at pc %d)", ErrDivByZero, *pc)
	}
	return vm.stack.Push(res)
}

func opLt(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(u256.BoolToWord(b.Lt(a)))
}

func opGt(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(u256.BoolToWord(b.Gt(a)))
}

func opEq(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(u256.BoolToWord(a.Eq(b)))
}

func opAnd(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(b.And(a))
}

func opOr(pc *uint64, vm *VM) error {
	a, b, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.stack.Push(b.Or(a))
}

func opNot(pc *uint64, vm *VM) error {
	a, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	return vm.stack.Push(a.Not())
}

// pop2 pops the top two stack elements, returning a (first popped, former
// top) and b (second popped). Callers apply whatever operand order their
// opcode requires.
func pop2(vm *VM) (a, b u256.Word, err error) {
	a, err = vm.stack.Pop()
	if err != nil {
		return
	}
	b, err = vm.stack.Pop()
	return
}

func opKeccak256(pc *uint64, vm *VM) error {
	offsetW, lengthW, err := pop2(vm)
	if err != nil {
		return err
	}
	offset, length := offsetW.Uint64(), lengthW.Uint64()
	if err := vm.mem.Grow(offset, length); err != nil {
		return err
	}
	data := vm.mem.Get(offset, length)
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var digest [32]byte
	h.Sum(digest[:0])
	return vm.stack.Push(u256.FromBytes32(digest))
}

func opBalance(pc *uint64, vm *VM) error {
	addrW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	addr := WordToAddress(addrW)
	return vm.stack.Push(vm.accounts.Balance(addr))
}

func opExtCodeSize(pc *uint64, vm *VM) error {
	addrW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	addr := WordToAddress(addrW)
	return vm.stack.Push(u256.FromUint64(uint64(vm.accounts.CodeSize(addr))))
}

// opExtCodeCopy copies up to len bytes of an external account's code into
// memory, starting at codeOff. Bytes past the end of the account's code
// are NOT zero-padded into the destination region; the destination simply
// retains whatever was already there.
func opExtCodeCopy(pc *uint64, vm *VM) error {
	addrW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	memOffW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	codeOffW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	lenW, err := vm.stack.Pop()
	if err != nil {
		return err
	}

	length := lenW.Uint64()
	if length == 0 {
		return nil
	}
	memOff := memOffW.Uint64()
	codeOff := codeOffW.Uint64()

	if err := vm.mem.Grow(memOff, length); err != nil {
		return err
	}

	code := vm.accounts.Code(WordToAddress(addrW))
	if codeOff >= uint64(len(code)) {
		return nil
	}
	avail := uint64(len(code)) - codeOff
	n := length
	if avail < n {
		n = avail
	}
	return vm.mem.Set(memOff, code[codeOff:codeOff+n])
}

// opExtCodeHash pushes 0 only when addr is absent from the account
// database; a present account with empty code still hashes to
// keccak256("") rather than pushing 0.
func opExtCodeHash(pc *uint64, vm *VM) error {
	addrW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	addr := WordToAddress(addrW)
	if vm.accounts.Get(addr) == nil {
		return vm.stack.Push(u256.Zero)
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(vm.accounts.Code(addr))
	var digest [32]byte
	h.Sum(digest[:0])
	return vm.stack.Push(u256.FromBytes32(digest))
}

// opBlockhash pushes the block's configured hash only if the popped
// number equals the current block number; otherwise it pushes 0, matching
// the single-block simulated environment this interpreter runs against.
func opBlockhash(pc *uint64, vm *VM) error {
	numW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if numW.Eq(vm.block.Number) {
		return vm.stack.Push(vm.block.BlockHash)
	}
	return vm.stack.Push(u256.Zero)
}

func opCoinbase(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.Coinbase.Word())
}

func opTimestamp(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.Timestamp)
}

func opNumber(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.Number)
}

func opPrevRandao(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.PrevRandao)
}

func opGasLimit(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.GasLimit)
}

func opChainID(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.ChainID)
}

func opSelfBalance(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.SelfBalance)
}

func opBaseFee(pc *uint64, vm *VM) error {
	return vm.stack.Push(vm.block.BaseFee)
}

func opPop(pc *uint64, vm *VM) error {
	_, err := vm.stack.Pop()
	return err
}

// opMload reads 32 bytes starting at offset, zero-extending on the right
// past the end of memory, WITHOUT growing memory. This diverges
// deliberately from canonical EVM, which extends memory on MLOAD just as
// MSTORE does.
func opMload(pc *uint64, vm *VM) error {
	offsetW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	offset := offsetW.Uint64()
	if offset+32 < offset {
		return fmt.Errorf("%w: offset %d + 32", ErrArithOverflow, offset)
	}
	b := vm.mem.Get(offset, 32)
	var arr [32]byte
	copy(arr[:], b)
	return vm.stack.Push(u256.FromBytes32(arr))
}

func opMstore(pc *uint64, vm *VM) error {
	offsetW, valW, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.mem.Set32(offsetW.Uint64(), valW)
}

func opMstore8(pc *uint64, vm *VM) error {
	offsetW, valW, err := pop2(vm)
	if err != nil {
		return err
	}
	return vm.mem.SetByte(offsetW.Uint64(), valW)
}

func opSload(pc *uint64, vm *VM) error {
	keyW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	return vm.stack.Push(vm.storage.Get(keyW))
}

func opSstore(pc *uint64, vm *VM) error {
	keyW, valW, err := pop2(vm)
	if err != nil {
		return err
	}
	vm.storage.Set(keyW, valW)
	return nil
}

func opJump(pc *uint64, vm *VM) error {
	destW, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	dest := destW.Uint64()
	if !vm.jumpdests.has(dest) {
		return fmt.Errorf("%w: dest %d", ErrInvalidJump, dest)
	}
	*pc = dest
	return nil
}

func opJumpi(pc *uint64, vm *VM) error {
	destW, condW, err := pop2(vm)
	if err != nil {
		return err
	}
	if condW.IsZero() {
		return nil
	}
	dest := destW.Uint64()
	if !vm.jumpdests.has(dest) {
		return fmt.Errorf("%w: dest %d", ErrInvalidJump, dest)
	}
	*pc = dest
	return nil
}

// opPC pushes the value of pc as it stands after the opcode byte itself
// was consumed by the dispatch loop, i.e. the byte offset immediately
// following PC's own opcode byte.
func opPC(pc *uint64, vm *VM) error {
	return vm.stack.Push(u256.FromUint64(*pc))
}

func opMsize(pc *uint64, vm *VM) error {
	return vm.stack.Push(u256.FromUint64(uint64(vm.mem.Len())))
}

// opJumpdest is a runtime no-op; JUMPDEST exists only as a marker consumed
// by the pre-scanned jump-destination index.
func opJumpdest(pc *uint64, vm *VM) error {
	return nil
}

func opPush0(pc *uint64, vm *VM) error {
	return vm.stack.Push(u256.Zero)
}

// makePush returns a handler for PUSHn: read n immediate bytes starting at
// the current pc, zero-extend to 256 bits, push, and advance pc past the
// immediate.
func makePush(n int) executionFunc {
	return func(pc *uint64, vm *VM) error {
		start := *pc
		end := start + uint64(n)
		if end > uint64(len(vm.code)) {
			return fmt.Errorf("%w: PUSH%d at pc %d needs %d bytes, %d available",
				ErrCodeTruncated, n, start, n, uint64(len(vm.code))-start)
		}
		var w u256.Word
		w.SetBytes(vm.code[start:end])
		if err := vm.stack.Push(w); err != nil {
			return err
		}
		*pc = end
		return nil
	}
}

// makeDup returns a handler for DUPn.
func makeDup(n int) executionFunc {
	return func(pc *uint64, vm *VM) error {
		return vm.stack.Dup(n)
	}
}

// makeSwap returns a handler for SWAPn.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, vm *VM) error {
		return vm.stack.Swap(n)
	}
}

// makeLog returns a handler for LOGn. It pops offset, length, then n
// topics (in pop order), reads memory data WITHOUT growing it (matching
// MLOAD's policy, and diverging from canonical EVM's LOG which does
// extend memory), and appends a LogEntry stamped with the block's
// coinbase as the emitter address.
func makeLog(n int) executionFunc {
	return func(pc *uint64, vm *VM) error {
		offsetW, lengthW, err := pop2(vm)
		if err != nil {
			return err
		}
		topics := make([]u256.Word, n)
		for i := 0; i < n; i++ {
			t, err := vm.stack.Pop()
			if err != nil {
				return err
			}
			topics[i] = t
		}
		data := vm.mem.Get(offsetW.Uint64(), lengthW.Uint64())
		vm.logs.append(LogEntry{
			Address: vm.block.Coinbase,
			Topics:  topics,
			Data:    data,
		})
		return nil
	}
}
