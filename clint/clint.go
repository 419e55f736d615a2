// Package clint abstracts the core-local interruptor: the per-hart
// software-interrupt pending flags and timer compare registers, plus
// the shared running counter.
//
// Any hart may set another hart's pending flag (that is the IPI send
// path); only the owning hart clears its own.
package clint

// Registers is the CLINT as seen by the firmware.
type Registers interface {
	// SendSoft asserts the software-interrupt pending flag of hart.
	SendSoft(hart uint64)

	// ClearSoft retracts the pending flag of hart. Called only by
	// the owning hart on itself.
	ClearSoft(hart uint64)

	// Soft reports whether hart's pending flag is set.
	Soft(hart uint64) bool

	// Mtime reads the shared running counter.
	Mtime() uint64

	// SetTimer programs hart's compare register.
	SetTimer(hart uint64, cmp uint64)
}
