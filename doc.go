/*
Package xgbext classifies X errors and events that belong to X protocol
extensions.

The X server decides at runtime where each extension lives: it hands out a
major opcode, a first event code and a first error code to every extension
a client asks about with QueryExtension. An error with code 148 is a RandR
BadCrtc on one server and something else entirely on the next. A Registry
remembers those assignments for one connection and uses them to turn raw
32-byte error and event buffers back into typed values.

Resolving

Nothing is sent to the server until an extension is resolved. The first
Resolve of an extension issues exactly one QueryExtension request; the
answer, including "not present" and "the query failed", is cached for the
life of the registry.

	conn, err := xgbconn.Dial("")
	if err != nil {
		log.Fatal(err)
	}
	r := xgbext.NewRegistry(conn)

	binding, ok := r.Resolve(xgbext.Randr)
	if !ok {
		log.Fatal("RandR is not available")
	}
	fmt.Println(binding)

Only resolved extensions take part in classification. If you never resolve
Xinput, its errors come back as *UnknownError.

Classifying

ClassifyError and ClassifyEvent never fail and never panic. Use a type
switch to find out what you got:

	switch ev := r.ClassifyEvent(buf).(type) {
	case *xgbext.CoreEvent:
		fmt.Println("core", ev.Kind)
	case *xgbext.RandrEvent:
		fmt.Println("randr", ev.Kind, ev.SubCode)
	case *xgbext.GenericEvent:
		fmt.Println(ev.Owner, ev.Data)
	case *xgbext.UnknownEvent:
		fmt.Println("nobody owns code", ev.Code)
	case *xgbext.UnsupportedError, *xgbext.MalformedError:
		fmt.Println(ev)
	}

DecodeError and DecodeEvent do the same thing, but return unsupported and
malformed buffers as a Go error instead.

Generic events (code 35) are recognized before any event range is looked
at. Their owner comes from the major opcode in the event, not from the
event code, so an extension whose range happens to cover 35 cannot steal
them.

Leaving extensions out

Every extension's decoders are in a file of their own, guarded by a build
tag of the form xgbext_no_<extension>:

	go build -tags xgbext_no_xkb,xgbext_no_glx

The extension stays known and can still be resolved, but its errors and
events classify as *UnsupportedError.

Byte order

Multi-byte fields are read in the byte order reported by the connection.
xgb always talks little endian; xgbconn.Static and WithByteOrder can be
used for buffers captured elsewhere.
*/
package xgbext
