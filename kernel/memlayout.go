//go:build riscv64

package main

// Physical memory layout of the FU740 as this firmware uses it.
//
// 02000000 -- CLINT: per-hart msip and mtimecmp, shared mtime
// 10010000 -- UART0, the serial console
// 80000000 -- previous stage loads this firmware here
// 80200000 -- next stage (supervisor image) expected here
//
// The firmware owns [80000000, 80200000): text and data at the
// bottom, then the hart stacks, then the heap extent at the top.
// The heap extent is carved out of the RAM window the runtime sees.

import "github.com/usbarmory/tamago/soc/sifive/fu540"

const (
	clintBase = fu540.CLINT_BASE
	uart0Base = 0x10010000
)

const (
	firmwareBase = 0x80000000
	firmwareSize = 0x200000 // 2MiB, next stage starts past it

	numHarts = 5
)

// Heap extent: a single shared arena behind the allocator lock,
// zeroed and handed to the allocator once, by the boot hart.
const (
	heapStart = firmwareBase + firmwareSize - heapSize
	heapSize  = 64 * 1024
)
