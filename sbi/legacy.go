package sbi

// Console is the byte-level console the legacy extensions talk to.
// Getchar returns -1 when no input is pending.
type Console interface {
	Putchar(c byte)
	Getchar() int
}

// Legacy putchar/getchar, still issued by early kernel consoles
// before they probe for anything newer. The legacy ABI returns its
// result in a0, which the Ret error slot maps onto.
type legacyPutchar struct{ con Console }
type legacyGetchar struct{ con Console }

func NewLegacyPutchar(con Console) Extension { return &legacyPutchar{con: con} }
func NewLegacyGetchar(con Console) Extension { return &legacyGetchar{con: con} }

func (l *legacyPutchar) Call(hart uint64, fn uint64, args [6]uint64) Ret {
	l.con.Putchar(byte(args[0]))
	return Ret{}
}

func (l *legacyGetchar) Call(hart uint64, fn uint64, args [6]uint64) Ret {
	return Ret{Error: int64(l.con.Getchar())}
}
