// Package boot takes every hart from reset to its trap/resume loop:
// one boot hart runs the global one-time initialization, the others
// rendezvous on the inter-hart software interrupt.
package boot

import "unsafe"

// Magic identifies the dynamic-info boot protocol.
const Magic = 0x4942534f

// Privilege modes for Info.NextMode.
const (
	ModeUser       = 0
	ModeSupervisor = 1
	ModeMachine    = 3
)

// Info is the fixed-layout descriptor the previous boot stage hands
// over: six machine words at the address passed in the third argument
// register at entry. Owned by the loader, read-only here.
type Info struct {
	Magic    uint64
	Version  uint64
	NextAddr uint64
	NextMode uint64
	Options  uint64
	BootHart uint64
}

// InfoAt reads the descriptor at a raw address.
func InfoAt(addr uintptr) *Info {
	return (*Info)(unsafe.Pointer(addr))
}
