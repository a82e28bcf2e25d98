package fhandle

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind classifies the object behind a descriptor.
type Kind int

const (
	KindUnknown Kind = iota
	KindRegular
	KindDirectory
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindPipe
	KindSocket
)

// HasSize reports whether descriptors of this kind have a meaningful size.
func (k Kind) HasSize() bool {
	return k == KindRegular || k == KindBlockDevice
}
