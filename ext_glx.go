//go:build !xgbext_no_glx

package xgbext

import "fmt"

func init() {
	errorSchemas[Glx] = errorSchema{
		names: glxErrorNames,
		new: func(h ErrorHeader, number uint8) Error {
			return &GlxError{ErrorHeader: h, Kind: GlxErrorKind(number)}
		},
	}
	eventSchemas[Glx] = eventSchema{
		names: glxEventNames,
		new: func(w wire, h EventHeader, number uint8) Event {
			return &GlxEvent{
				EventHeader: h,
				Kind:        GlxEventKind(number),
				EventType:   w.get16(4),
				Drawable:    w.get32(8),
			}
		},
	}
}

type GlxErrorKind uint8

const (
	GlxBadContext GlxErrorKind = iota
	GlxBadContextState
	GlxBadDrawable
	GlxBadPixmap
	GlxBadContextTag
	GlxBadCurrentWindow
	GlxBadRenderRequest
	GlxBadLargeRequest
	GlxUnsupportedPrivateRequest
	GlxBadFBConfig
	GlxBadPbuffer
	GlxBadCurrentDrawable
	GlxBadWindow
	GlxBadProfileARB
)

var glxErrorNames = []string{
	GlxBadContext:                "BadContext",
	GlxBadContextState:           "BadContextState",
	GlxBadDrawable:               "BadDrawable",
	GlxBadPixmap:                 "BadPixmap",
	GlxBadContextTag:             "BadContextTag",
	GlxBadCurrentWindow:          "BadCurrentWindow",
	GlxBadRenderRequest:          "BadRenderRequest",
	GlxBadLargeRequest:           "BadLargeRequest",
	GlxUnsupportedPrivateRequest: "UnsupportedPrivateRequest",
	GlxBadFBConfig:               "BadFBConfig",
	GlxBadPbuffer:                "BadPbuffer",
	GlxBadCurrentDrawable:        "BadCurrentDrawable",
	GlxBadWindow:                 "BadWindow",
	GlxBadProfileARB:             "GLXBadProfileARB",
}

func (k GlxErrorKind) String() string { return kindName(glxErrorNames, int(k)) }

type GlxError struct {
	ErrorHeader
	Kind GlxErrorKind
}

func (err *GlxError) Extension() Extension { return Glx }
func (err *GlxError) Error() string        { return err.describe("GLX", err.Kind.String()) }

type GlxEventKind uint8

const (
	GlxPbufferClobber GlxEventKind = iota
	GlxBufferSwapComplete
)

var glxEventNames = []string{
	GlxPbufferClobber:     "PbufferClobber",
	GlxBufferSwapComplete: "BufferSwapComplete",
}

func (k GlxEventKind) String() string { return kindName(glxEventNames, int(k)) }

// GlxEvent is a GLX event. EventType is the GLX-level event type carried
// in the body of both events.
type GlxEvent struct {
	EventHeader
	Kind      GlxEventKind
	EventType uint16
	Drawable  uint32
}

func (ev *GlxEvent) Extension() Extension { return Glx }

func (ev *GlxEvent) String() string {
	return ev.describe("GLX", fmt.Sprintf("%s (drawable: %d)", ev.Kind, ev.Drawable))
}
