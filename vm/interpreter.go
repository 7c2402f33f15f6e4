package vm

import (
	"context"
	"fmt"

	"github.com/evmlite/evmlite/log"
)

// Config holds construction-time options for a VM. There is no tracer or
// call-depth limit field, since there is no CALL family of opcodes here.
type Config struct {
	Block      BlockContext
	Accounts   *AccountDB
	StackLimit int
	Logger     *log.Logger
}

// Option configures a VM at construction time.
type Option func(*Config)

// WithBlockContext sets the block-scope values exposed to BLOCKHASH,
// COINBASE, TIMESTAMP, and the other environment opcodes.
func WithBlockContext(bc BlockContext) Option {
	return func(c *Config) { c.Block = bc }
}

// WithAccounts installs a pre-populated account database. Accounts absent
// from db behave as the zero account for every read opcode.
func WithAccounts(db *AccountDB) Option {
	return func(c *Config) { c.Accounts = db }
}

// WithStackLimit overrides the default 1024-element stack ceiling.
func WithStackLimit(n int) Option {
	return func(c *Config) { c.StackLimit = n }
}

// WithLogger installs a logger used for diagnostic output (e.g.
// unsupported-opcode notices). Defaults to log.Default().Module("interp").
func WithLogger(l *log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// VM is a single-use, single-threaded interpreter instance: code,
// JumpDestSet, and all defaults are materialized eagerly at construction,
// and Run executes the code exactly once until STOP, end-of-code, or a
// fatal error. State is observable on the VM's exported accessor methods
// after termination.
type VM struct {
	code      []byte
	jumpdests *jumpDestSet
	jumptable *JumpTable

	stack    *Stack
	mem      *Memory
	storage  *Storage
	accounts *AccountDB
	block    BlockContext
	logs     logBuffer

	logger *log.Logger
}

// NewVM constructs a VM over the given immutable code, applying opts in
// order. The jump-destination index and an empty stack/memory/storage are
// built immediately; nothing is deferred to Run.
func NewVM(code []byte, opts ...Option) *VM {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Accounts == nil {
		cfg.Accounts = NewAccountDB()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default().Module("interp")
	}

	return &VM{
		code:      code,
		jumpdests: newJumpDestSet(code),
		jumptable: newJumpTable(),
		stack:     NewStack(cfg.StackLimit),
		mem:       NewMemory(),
		storage:   NewStorage(),
		accounts:  cfg.Accounts,
		block:     cfg.Block,
		logger:    cfg.Logger,
	}
}

// Stack returns the VM's stack for post-execution inspection.
func (vm *VM) Stack() *Stack { return vm.stack }

// Memory returns the VM's memory for post-execution inspection.
func (vm *VM) Memory() *Memory { return vm.mem }

// Storage returns the VM's storage for post-execution inspection.
func (vm *VM) Storage() *Storage { return vm.storage }

// Logs returns the log entries emitted during the run, in emission order.
func (vm *VM) Logs() []LogEntry { return vm.logs.entries }

// Run executes code starting at pc=0 until STOP, end-of-code, or a fatal
// handler error. The fetch-decode-dispatch loop checks ctx for
// cancellation once per instruction; this is a safety net against
// pathological infinite JUMP loops, since this interpreter has no gas
// metering to bound execution on its own.
func (vm *VM) Run(ctx context.Context) error {
	var pc uint64
	for pc < uint64(len(vm.code)) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		op := OpCode(vm.code[pc])
		pc++

		opDef := vm.jumptable[op]
		if opDef == nil {
			vm.logger.Opcode(op, pc-1).Debug("unsupported opcode")
			continue
		}

		if err := vm.stack.Require(opDef.minStack); err != nil {
			return fmt.Errorf("%w (%s at pc %d)", err, op, pc-1)
		}

		if err := opDef.execute(&pc, vm); err != nil {
			return fmt.Errorf("%s at pc %d: %w", op, pc-1, err)
		}

		if opDef.halts {
			return nil
		}
	}
	return nil
}
