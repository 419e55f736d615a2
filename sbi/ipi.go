package sbi

import (
	"github.com/usbarmory/tamago/bits"

	"sbi-in-go/clint"
)

// ipiExt implements the sPI extension: send_ipi asserts the software
// interrupt of every hart selected by the (mask, base) pair.
type ipiExt struct {
	clint    clint.Registers
	numHarts uint64
}

func NewIPI(c clint.Registers, numHarts uint64) Extension {
	return &ipiExt{clint: c, numHarts: numHarts}
}

func (p *ipiExt) Call(hart uint64, fn uint64, args [6]uint64) Ret {
	switch fn {
	case IPISendIPI:
		mask, base := args[0], args[1]
		if base >= p.numHarts {
			return Ret{Error: ErrInvalidParam}
		}
		for i := uint64(0); i < 64 && base+i < p.numHarts; i++ {
			if bits.Get64(&mask, int(i), 1) != 0 {
				p.clint.SendSoft(base + i)
			}
		}
		return Ret{}
	}
	return Ret{Error: ErrNotSupported}
}
