package vm

import "github.com/evmlite/evmlite/u256"

// Account is a minimal account record: balance, nonce, a private storage
// mapping, and code. There is no CreateAccount/AddBalance/Snapshot surface
// here, since this interpreter never creates or mutates accounts during
// execution; it only reads the database the caller populated beforehand.
type Account struct {
	Balance u256.Word
	Nonce   u256.Word
	Storage map[u256.Word]u256.Word
	Code    []byte
}

// AccountDB is a caller-populated mapping from Address to Account,
// read-only during execution. Addresses absent from the map behave as the
// zero account: balance 0, nonce 0, empty storage, empty code.
type AccountDB struct {
	accounts map[Address]*Account
}

// NewAccountDB returns an empty AccountDB.
func NewAccountDB() *AccountDB {
	return &AccountDB{accounts: make(map[Address]*Account)}
}

// Set installs account at addr, overwriting any existing entry.
func (db *AccountDB) Set(addr Address, account *Account) {
	db.accounts[addr] = account
}

// Get returns the account at addr, or nil if absent. Callers that need
// zero-valued reads should use Balance/CodeSize/Code instead of checking
// for nil directly. Note that a present account can still have nil/empty
// Code, so callers distinguishing "no account" from "account with no
// code" (e.g. EXTCODEHASH) must check Get(addr) == nil, not Code(addr)
// == nil.
func (db *AccountDB) Get(addr Address) *Account {
	return db.accounts[addr]
}

// Balance returns the account's balance, or the zero Word if addr is
// absent from the database.
func (db *AccountDB) Balance(addr Address) u256.Word {
	acc := db.accounts[addr]
	if acc == nil {
		return u256.Zero
	}
	return acc.Balance
}

// Code returns the account's code, or nil if addr is absent.
func (db *AccountDB) Code(addr Address) []byte {
	acc := db.accounts[addr]
	if acc == nil {
		return nil
	}
	return acc.Code
}

// CodeSize returns len(Code(addr)).
func (db *AccountDB) CodeSize(addr Address) int {
	return len(db.Code(addr))
}
