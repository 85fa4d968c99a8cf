//go:build !xgbext_no_render

package xgbext

func init() {
	errorSchemas[Render] = errorSchema{
		names: renderErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &RenderError{ErrorHeader: h, Kind: RenderErrorKind(number)}
		},
	}
}

type RenderErrorKind uint8

const (
	RenderPictFormat RenderErrorKind = iota
	RenderPicture
	RenderPictOp
	RenderGlyphSet
	RenderGlyph
)

var renderErrorNames = []string{
	RenderPictFormat: "PictFormat",
	RenderPicture:    "Picture",
	RenderPictOp:     "PictOp",
	RenderGlyphSet:   "GlyphSet",
	RenderGlyph:      "Glyph",
}

func (k RenderErrorKind) String() string { return kindName(renderErrorNames, int(k)) }

type RenderError struct {
	ErrorHeader
	Kind RenderErrorKind
}

func (err *RenderError) Extension() Extension { return Render }
func (err *RenderError) Error() string        { return err.describe("Render", err.Kind.String()) }
