//go:build riscv64

package machine

// CSR accessors, bodies in csr_riscv64.s. A go version of the
// usual r_*/w_* helpers: one stub per register and direction, since
// the csr number is an instruction immediate.

func read_mhartid() uint64

func read_mip() uint64
func set_mip(mask uint64)
func clear_mip(mask uint64)

func read_mie() uint64
func set_mie(mask uint64)
func clear_mie(mask uint64)

func read_mideleg() uint64
func set_mideleg(mask uint64)

func read_medeleg() uint64
func set_medeleg(mask uint64)

func wfi()

// HW drives the calling hart's own CSRs.
type HW struct{}

func (HW) HartID() uint64         { return read_mhartid() }
func (HW) ReadMip() uint64        { return read_mip() }
func (HW) SetMip(mask uint64)     { set_mip(mask) }
func (HW) ClearMip(mask uint64)   { clear_mip(mask) }
func (HW) ReadMie() uint64        { return read_mie() }
func (HW) SetMie(mask uint64)     { set_mie(mask) }
func (HW) ClearMie(mask uint64)   { clear_mie(mask) }
func (HW) ReadMideleg() uint64    { return read_mideleg() }
func (HW) SetMideleg(mask uint64) { set_mideleg(mask) }
func (HW) ReadMedeleg() uint64    { return read_medeleg() }
func (HW) SetMedeleg(mask uint64) { set_medeleg(mask) }
func (HW) Wfi()                   { wfi() }

var _ CSR = HW{}
