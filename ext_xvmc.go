//go:build !xgbext_no_xvmc

package xgbext

func init() {
	errorSchemas[Xvmc] = errorSchema{
		names: xvmcErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &XvmcError{ErrorHeader: h, Kind: XvmcErrorKind(number)}
		},
	}
}

type XvmcErrorKind uint8

const (
	XvmcBadContext XvmcErrorKind = iota
	XvmcBadSurface
	XvmcBadSubpicture
)

var xvmcErrorNames = []string{
	XvmcBadContext:    "BadContext",
	XvmcBadSurface:    "BadSurface",
	XvmcBadSubpicture: "BadSubpicture",
}

func (k XvmcErrorKind) String() string { return kindName(xvmcErrorNames, int(k)) }

type XvmcError struct {
	ErrorHeader
	Kind XvmcErrorKind
}

func (err *XvmcError) Extension() Extension { return Xvmc }
func (err *XvmcError) Error() string        { return err.describe("XvMC", err.Kind.String()) }
