package boot

// Per-hart firmware stack slice. The stack arena is partitioned once,
// by hart id, and each slice belongs to its hart for good.
const PerHartStackSize = 4 * 4096 // 16KiB

// StackTop is the initial stack pointer of a hart: stacks grow down
// from the top of the hart's slice.
func StackTop(base uintptr, hart uint64) uintptr {
	return base + uintptr(hart+1)*PerHartStackSize
}

// StackSlice is the [lo, hi) extent owned by a hart.
func StackSlice(base uintptr, hart uint64) (lo, hi uintptr) {
	hi = StackTop(base, hart)
	return hi - PerHartStackSize, hi
}
