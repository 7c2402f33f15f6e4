package vm

import (
	"errors"
	"testing"

	"github.com/evmlite/evmlite/u256"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack(0)
	if err := s.Push(u256.FromUint64(1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := s.Push(u256.FromUint64(2)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	top, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if !top.Eq(u256.FromUint64(2)) {
		t.Fatalf("Pop = %s, want 2", top.String())
	}
	if s.Len() != 1 {
		t.Fatalf("Len after pop = %d, want 1", s.Len())
	}
}

func TestStackUnderflow(t *testing.T) {
	s := NewStack(0)
	if _, err := s.Pop(); !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("Pop on empty stack = %v, want ErrStackUnderflow", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("Peek on empty stack = %v, want ErrStackUnderflow", err)
	}
}

func TestStackOverflow(t *testing.T) {
	s := NewStack(2)
	if err := s.Push(u256.FromUint64(1)); err != nil {
		t.Fatalf("Push 1: %v", err)
	}
	if err := s.Push(u256.FromUint64(2)); err != nil {
		t.Fatalf("Push 2: %v", err)
	}
	if err := s.Push(u256.FromUint64(3)); !errors.Is(err, ErrStackOverflow) {
		t.Fatalf("Push past limit = %v, want ErrStackOverflow", err)
	}
}

func TestStackDup(t *testing.T) {
	s := NewStack(0)
	for i := uint64(1); i <= 3; i++ {
		s.Push(u256.FromUint64(i))
	}
	// stack (bottom->top): 1 2 3
	if err := s.Dup(2); err != nil {
		t.Fatalf("Dup(2): %v", err)
	}
	top, _ := s.Peek()
	if !top.Eq(u256.FromUint64(2)) {
		t.Fatalf("Dup(2) top = %s, want 2", top.String())
	}
	if s.Len() != 4 {
		t.Fatalf("Len after Dup = %d, want 4", s.Len())
	}
}

func TestStackDupInvalidPosition(t *testing.T) {
	s := NewStack(0)
	s.Push(u256.FromUint64(1))
	if err := s.Dup(0); !errors.Is(err, ErrInvalidDupPosition) {
		t.Fatalf("Dup(0) = %v, want ErrInvalidDupPosition", err)
	}
}

func TestStackSwap(t *testing.T) {
	s := NewStack(0)
	for i := uint64(1); i <= 3; i++ {
		s.Push(u256.FromUint64(i))
	}
	// stack (bottom->top): 1 2 3
	if err := s.Swap(2); err != nil {
		t.Fatalf("Swap(2): %v", err)
	}
	top, _ := s.Peek()
	if !top.Eq(u256.FromUint64(1)) {
		t.Fatalf("Swap(2) top = %s, want 1", top.String())
	}
}

func TestStackRequire(t *testing.T) {
	s := NewStack(0)
	s.Push(u256.FromUint64(1))
	if err := s.Require(1); err != nil {
		t.Fatalf("Require(1) with 1 element: %v", err)
	}
	if err := s.Require(2); !errors.Is(err, ErrStackUnderflow) {
		t.Fatalf("Require(2) with 1 element = %v, want ErrStackUnderflow", err)
	}
}
