// Copyright 2009 The XGB Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xgbext

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// A Registry tracks which extensions have been resolved on one connection
// and where the server placed their opcodes, errors and events.
//
// Only extensions that were explicitly resolved take part in
// classification: an error from an extension that was never passed to
// Resolve classifies as *UnknownError.
type Registry struct {
	conn     Conn
	order    binary.ByteOrder
	logger   xgblog
	tracer   trace.Tracer
	observer Observer

	extLock     sync.Mutex
	resolved    map[Extension]resolution
	byMajor     map[uint8]Extension
	errorRanges []codeRange
	eventRanges []codeRange
}

// resolution is the cached outcome of one presence query. Absent and failed
// queries are cached as well so they are never repeated.
type resolution struct {
	binding Binding
	present bool
	err     error
}

type codeRange struct {
	first uint8
	count uint8
	ext   Extension
}

func (cr codeRange) contains(code uint8) bool {
	return code >= cr.first && int(code) < int(cr.first)+int(cr.count)
}

func (cr codeRange) overlaps(o codeRange) bool {
	if cr.count == 0 || o.count == 0 {
		return false
	}
	return int(cr.first) < int(o.first)+int(o.count) &&
		int(o.first) < int(cr.first)+int(cr.count)
}

// ByteOrder is the byte order used to decode multi-byte fields.
func (r *Registry) ByteOrder() binary.ByteOrder { return r.order }

// Resolve is ResolveContext with a background context.
func (r *Registry) Resolve(ext Extension) (Binding, bool) {
	return r.ResolveContext(context.Background(), ext)
}

// ResolveContext returns the binding of ext on this connection. The first
// call for an extension queries the server; every later call returns the
// cached answer without I/O. The second result is false if the server does
// not implement the extension, if the query failed, or if the server's
// answer conflicts with an extension that is already bound or with the
// codes of the core protocol.
func (r *Registry) ResolveContext(ctx context.Context, ext Extension) (Binding, bool) {
	if !ext.valid() {
		return Binding{}, false
	}

	r.extLock.Lock()
	if res, ok := r.resolved[ext]; ok {
		r.extLock.Unlock()
		return res.binding, res.present
	}

	res := r.query(ctx, ext)
	if res.present {
		if err := r.index(res.binding); err != nil {
			r.logger.Printf("Ignoring extension %s: %s", ext, err)
			res = resolution{err: err}
		}
	}
	r.resolved[ext] = res
	r.extLock.Unlock()

	// The observer may call back into the registry.
	r.observer.ObserveResolve(ext, res.present)
	return res.binding, res.present
}

// ResolveAll resolves every known extension and returns the bindings of
// those the server implements, ordered by major opcode.
func (r *Registry) ResolveAll(ctx context.Context) []Binding {
	for _, ext := range Extensions() {
		r.ResolveContext(ctx, ext)
	}
	return r.Bindings()
}

// Bindings returns the bindings resolved so far, ordered by major opcode.
func (r *Registry) Bindings() []Binding {
	r.extLock.Lock()
	defer r.extLock.Unlock()

	bindings := make([]Binding, 0, len(r.byMajor))
	for _, res := range r.resolved {
		if res.present {
			bindings = append(bindings, res.binding)
		}
	}
	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].MajorOpcode < bindings[j].MajorOpcode
	})
	return bindings
}

// QueryErr returns the reason a resolved extension is unavailable when that
// reason was something other than the server reporting it absent. It
// returns nil for present, absent and never-resolved extensions.
func (r *Registry) QueryErr(ext Extension) error {
	r.extLock.Lock()
	defer r.extLock.Unlock()
	return r.resolved[ext].err
}

// LookupByErrorCode returns the resolved extension whose error range holds
// code.
func (r *Registry) LookupByErrorCode(code uint8) (Extension, bool) {
	r.extLock.Lock()
	defer r.extLock.Unlock()
	return lookupRange(r.errorRanges, code)
}

// LookupByEventCode returns the resolved extension whose event range holds
// code.
func (r *Registry) LookupByEventCode(code uint8) (Extension, bool) {
	r.extLock.Lock()
	defer r.extLock.Unlock()
	return lookupRange(r.eventRanges, code)
}

// LookupByMajorOpcode returns the resolved extension with major opcode op.
func (r *Registry) LookupByMajorOpcode(op uint8) (Extension, bool) {
	r.extLock.Lock()
	defer r.extLock.Unlock()
	ext, ok := r.byMajor[op]
	return ext, ok
}

// errorOwner returns the binding whose error range holds code.
func (r *Registry) errorOwner(code uint8) (Binding, bool) {
	r.extLock.Lock()
	defer r.extLock.Unlock()
	if ext, ok := lookupRange(r.errorRanges, code); ok {
		return r.resolved[ext].binding, true
	}
	return Binding{}, false
}

// eventOwner returns the binding whose event range holds code.
func (r *Registry) eventOwner(code uint8) (Binding, bool) {
	r.extLock.Lock()
	defer r.extLock.Unlock()
	if ext, ok := lookupRange(r.eventRanges, code); ok {
		return r.resolved[ext].binding, true
	}
	return Binding{}, false
}

func (r *Registry) query(ctx context.Context, ext Extension) resolution {
	if r.conn == nil {
		return resolution{err: fmt.Errorf("no connection to query %s", ext.XName())}
	}

	ctx, span := r.tracer.Start(ctx, "xgbext.QueryExtension",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("x11.extension", ext.XName())))
	defer span.End()

	p, err := r.conn.QueryExtension(ctx, ext.XName())
	if err != nil {
		r.logger.Printf("Could not query extension %s: %s", ext.XName(), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return resolution{err: err}
	}
	span.SetAttributes(attribute.Bool("x11.extension.present", p.Present))
	span.SetStatus(codes.Ok, "")
	if !p.Present {
		return resolution{}
	}

	info := ext.info()
	return resolution{
		present: true,
		binding: Binding{
			Extension:   ext,
			MajorOpcode: p.MajorOpcode,
			FirstEvent:  p.FirstEvent,
			FirstError:  p.FirstError,
			NumEvents:   info.numEvents,
			NumErrors:   info.numErrors,
		},
	}
}

// index adds b to the reverse lookup tables. Nothing is added if any of
// b's codes is already owned by another extension.
func (r *Registry) index(b Binding) error {
	errs := codeRange{first: b.FirstError, count: b.NumErrors, ext: b.Extension}
	evs := codeRange{first: b.FirstEvent, count: b.NumEvents, ext: b.Extension}

	if errs.count > 0 && errs.first <= lastCoreError {
		return fmt.Errorf("error codes %d+%d overlap the core errors",
			errs.first, errs.count)
	}
	if evs.count > 0 && evs.first <= lastCoreEvent {
		return fmt.Errorf("event codes %d+%d overlap the core events",
			evs.first, evs.count)
	}
	if int(errs.first)+int(errs.count) > 256 {
		return fmt.Errorf("error codes %d+%d exceed the code space",
			errs.first, errs.count)
	}
	if evs.count > 0 && int(evs.first)+int(evs.count) > 128 {
		return fmt.Errorf("event codes %d+%d exceed the code space",
			evs.first, evs.count)
	}
	if other, ok := r.byMajor[b.MajorOpcode]; ok {
		return fmt.Errorf("major opcode %d is already bound to %s",
			b.MajorOpcode, other)
	}
	for _, cr := range r.errorRanges {
		if cr.overlaps(errs) {
			return fmt.Errorf("error codes %d+%d overlap %s",
				errs.first, errs.count, cr.ext)
		}
	}
	for _, cr := range r.eventRanges {
		if cr.overlaps(evs) {
			return fmt.Errorf("event codes %d+%d overlap %s",
				evs.first, evs.count, cr.ext)
		}
	}

	r.byMajor[b.MajorOpcode] = b.Extension
	if errs.count > 0 {
		r.errorRanges = append(r.errorRanges, errs)
	}
	if evs.count > 0 {
		r.eventRanges = append(r.eventRanges, evs)
	}
	return nil
}

func lookupRange(ranges []codeRange, code uint8) (Extension, bool) {
	for _, cr := range ranges {
		if cr.contains(code) {
			return cr.ext, true
		}
	}
	return NoExtension, false
}
