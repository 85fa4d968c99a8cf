package xgbext

import (
	"fmt"
	"strings"
)

// Extension identifies one of the optional X11 protocol extensions this
// package knows about. The zero value, NoExtension, is used by core protocol
// errors and events and by values whose owner could not be determined.
type Extension uint8

const (
	NoExtension Extension = iota
	Composite
	Damage
	Dpms
	Dri2
	Dri3
	Ge
	Glx
	Present
	Randr
	Record
	Render
	Res
	ScreenSaver
	Shape
	Shm
	Sync
	Xevie
	Xf86dri
	Xfixes
	Xinerama
	Xinput
	Xkb
	Xprint
	Xselinux
	Xtest
	Xv
	Xvmc
)

// extensionInfo is the compiled-in description of an extension. The X
// server's QueryExtension reply only reports where an extension's codes
// start, so the number of codes it consumes has to be known up front.
type extensionInfo struct {
	title     string
	xname     string
	numErrors uint8
	numEvents uint8

	// numGeneric is one past the highest event type the extension sends
	// inside the Generic Event envelope.
	numGeneric uint16
}

var extensionTable = [...]extensionInfo{
	NoExtension: {title: "Core", xname: ""},
	Composite:   {title: "Composite", xname: "Composite"},
	Damage:      {title: "Damage", xname: "DAMAGE", numErrors: 1, numEvents: 1},
	Dpms:        {title: "DPMS", xname: "DPMS", numGeneric: 1},
	Dri2:        {title: "DRI2", xname: "DRI2", numEvents: 2},
	Dri3:        {title: "DRI3", xname: "DRI3"},
	Ge:          {title: "GE", xname: "Generic Event Extension"},
	Glx:         {title: "GLX", xname: "GLX", numErrors: 14, numEvents: 2},
	Present:     {title: "Present", xname: "Present", numGeneric: 4},
	Randr:       {title: "RandR", xname: "RANDR", numErrors: 4, numEvents: 2},
	Record:      {title: "Record", xname: "RECORD", numErrors: 1},
	Render:      {title: "Render", xname: "RENDER", numErrors: 5},
	Res:         {title: "Res", xname: "X-Resource"},
	ScreenSaver: {title: "ScreenSaver", xname: "MIT-SCREEN-SAVER", numEvents: 1},
	Shape:       {title: "Shape", xname: "SHAPE", numEvents: 1},
	Shm:         {title: "Shm", xname: "MIT-SHM", numErrors: 1, numEvents: 1},
	Sync:        {title: "Sync", xname: "SYNC", numErrors: 2, numEvents: 2},
	Xevie:       {title: "Xevie", xname: "XEVIE"},
	Xf86dri:     {title: "Xf86dri", xname: "XFree86-DRI"},
	Xfixes:      {title: "Xfixes", xname: "XFIXES", numErrors: 1, numEvents: 2},
	Xinerama:    {title: "Xinerama", xname: "XINERAMA"},
	Xinput:      {title: "Xinput", xname: "XInputExtension", numErrors: 5, numEvents: 17, numGeneric: 33},
	Xkb:         {title: "Xkb", xname: "XKEYBOARD", numErrors: 1, numEvents: 1},
	Xprint:      {title: "Xprint", xname: "XpExtension", numErrors: 2, numEvents: 2},
	Xselinux:    {title: "Xselinux", xname: "SELinux"},
	Xtest:       {title: "Xtest", xname: "XTEST"},
	Xv:          {title: "Xv", xname: "XVideo", numErrors: 3, numEvents: 2},
	Xvmc:        {title: "Xvmc", xname: "XVideo-MotionCompensation", numErrors: 3},
}

// Extensions returns every known extension in declaration order.
func Extensions() []Extension {
	exts := make([]Extension, 0, len(extensionTable)-1)
	for e := Composite; int(e) < len(extensionTable); e++ {
		exts = append(exts, e)
	}
	return exts
}

// ExtensionByName finds an extension by the name the X server knows it by
// (e.g. "XInputExtension") or by its short title (e.g. "Xinput"). Titles
// are matched without regard to case; server names are matched exactly.
func ExtensionByName(name string) (Extension, bool) {
	for _, e := range Extensions() {
		if extensionTable[e].xname == name {
			return e, true
		}
	}
	for _, e := range Extensions() {
		if strings.EqualFold(extensionTable[e].title, name) {
			return e, true
		}
	}
	return NoExtension, false
}

func (e Extension) valid() bool {
	return e != NoExtension && int(e) < len(extensionTable)
}

func (e Extension) info() extensionInfo {
	if int(e) >= len(extensionTable) {
		return extensionInfo{}
	}
	return extensionTable[e]
}

func (e Extension) String() string {
	if int(e) >= len(extensionTable) {
		return fmt.Sprintf("Extension(%d)", uint8(e))
	}
	return extensionTable[e].title
}

// XName is the name passed to QueryExtension for this extension.
func (e Extension) XName() string { return e.info().xname }

// NumErrors is the number of error codes the extension allocates,
// starting at its first error code.
func (e Extension) NumErrors() uint8 { return e.info().numErrors }

// NumEvents is the number of event codes the extension allocates,
// starting at its first event code.
func (e Extension) NumEvents() uint8 { return e.info().numEvents }

// NumGenericEvents is one past the highest event type the extension
// delivers inside the Generic Event envelope. Zero means the extension
// never uses it.
func (e Extension) NumGenericEvents() uint16 { return e.info().numGeneric }

// Compiled reports whether decode schemas for the extension are part of
// this build. Codes of an extension built without them classify as
// *UnsupportedError. Extensions that allocate no codes report false.
func (e Extension) Compiled() bool {
	_, errs := errorSchemas[e]
	_, evs := eventSchemas[e]
	_, gen := genericSchemas[e]
	return errs || evs || gen
}
