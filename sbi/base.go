package sbi

// Implementation identity reported through the base extension.
const (
	specVersion = 0x0100_0000 // v1.0, major<<24 | minor
	implID      = 0x676f      // "go"
	implVersion = 0x0001_0000
)

// baseExt answers the mandatory base extension: versions, identity
// and extension probing.
type baseExt struct {
	mux *Mux
}

// NewBase builds the base extension over the mux it probes against.
func NewBase(m *Mux) Extension {
	return &baseExt{mux: m}
}

func (b *baseExt) Call(hart uint64, fn uint64, args [6]uint64) Ret {
	switch fn {
	case BaseGetSpecVersion:
		return Ret{Value: specVersion}
	case BaseGetImplID:
		return Ret{Value: implID}
	case BaseGetImplVersion:
		return Ret{Value: implVersion}
	case BaseProbeExtension:
		if b.mux.Probed(args[0]) {
			return Ret{Value: 1}
		}
		return Ret{Value: 0}
	case BaseGetMvendorID, BaseGetMarchID, BaseGetMimplID:
		// mvendorid and friends are optionally zero; nothing
		// useful to report from firmware level.
		return Ret{Value: 0}
	}
	return Ret{Error: ErrNotSupported}
}
