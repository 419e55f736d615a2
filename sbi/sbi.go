// Package sbi implements the firmware side of the supervisor binary
// interface: the register-level call bridge and the extension catalog
// behind it.
package sbi

// Extension IDs
const (
	ExtBase          = 0x10
	ExtTimer         = 0x54494D45 // "TIME"
	ExtIPI           = 0x735049   // "sPI"
	ExtLegacyPutchar = 0x01
	ExtLegacyGetchar = 0x02
)

// Base extension function IDs
const (
	BaseGetSpecVersion = 0
	BaseGetImplID      = 1
	BaseGetImplVersion = 2
	BaseProbeExtension = 3
	BaseGetMvendorID   = 4
	BaseGetMarchID     = 5
	BaseGetMimplID     = 6
)

// Timer extension function IDs
const (
	TimerSetTimer = 0
)

// IPI extension function IDs
const (
	IPISendIPI = 0
)

// Error codes
const (
	Success         = 0
	ErrFailed       = -1
	ErrNotSupported = -2
	ErrInvalidParam = -3
	ErrDenied       = -4
	ErrInvalidAddr  = -5
	ErrAlreadyAvail = -6
)

// Ret is one call result. Error == Success means Value is meaningful.
type Ret struct {
	Error int64
	Value uint64
}

// Dispatcher resolves one SBI call: extension id from a7, function id
// from a6, arguments from a0..a5.
type Dispatcher interface {
	Ecall(ext, fn uint64, args [6]uint64) Ret
}

// Extension serves the functions of a single extension id.
type Extension interface {
	Call(hart uint64, fn uint64, args [6]uint64) Ret
}

// Mux routes calls to registered extensions. It serves one hart; the
// hart id is threaded to extensions that address CLINT slots.
type Mux struct {
	hart uint64
	exts map[uint64]Extension
}

func NewMux(hart uint64) *Mux {
	return &Mux{hart: hart, exts: make(map[uint64]Extension)}
}

// Register binds an extension id. Later registrations win; harmless,
// and it lets tests stub single extensions out.
func (m *Mux) Register(id uint64, e Extension) {
	m.exts[id] = e
}

// Probed reports whether an extension id would answer calls.
func (m *Mux) Probed(id uint64) bool {
	_, ok := m.exts[id]
	return ok
}

func (m *Mux) Ecall(ext, fn uint64, args [6]uint64) Ret {
	e, ok := m.exts[ext]
	if !ok {
		return Ret{Error: ErrNotSupported}
	}
	return e.Call(m.hart, fn, args)
}

var _ Dispatcher = (*Mux)(nil)
