package vm

import (
	"testing"

	"github.com/evmlite/evmlite/u256"
)

func TestAccountDBAbsentAddress(t *testing.T) {
	db := NewAccountDB()
	addr := BytesToAddress([]byte{0x01})

	if !db.Balance(addr).IsZero() {
		t.Fatalf("Balance(absent) != 0")
	}
	if db.Code(addr) != nil {
		t.Fatalf("Code(absent) != nil")
	}
	if db.CodeSize(addr) != 0 {
		t.Fatalf("CodeSize(absent) != 0")
	}
	if db.Get(addr) != nil {
		t.Fatalf("Get(absent) != nil")
	}
}

func TestAccountDBSetAndRead(t *testing.T) {
	db := NewAccountDB()
	addr := BytesToAddress([]byte{0x02})
	db.Set(addr, &Account{
		Balance: u256.FromUint64(100),
		Code:    []byte{0xde, 0xad, 0xbe, 0xef},
	})

	if !db.Balance(addr).Eq(u256.FromUint64(100)) {
		t.Fatalf("Balance = %s, want 100", db.Balance(addr).String())
	}
	if db.CodeSize(addr) != 4 {
		t.Fatalf("CodeSize = %d, want 4", db.CodeSize(addr))
	}
}

func TestAddressRoundTripThroughWord(t *testing.T) {
	addr := BytesToAddress([]byte{0xde, 0xad, 0xbe, 0xef})
	w := addr.Word()
	got := WordToAddress(w)
	if got != addr {
		t.Fatalf("round trip = %x, want %x", got, addr)
	}
}
