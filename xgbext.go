// Copyright 2009 The XGB Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xgbext

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/BurntSushi/xgbext"

// Conn is the part of an X connection the registry depends on.
//
// QueryExtension asks the server whether the named extension is present.
// A reply with Present set to false means the server does not implement
// it; a non-nil error means the question could not be answered.
type Conn interface {
	QueryExtension(ctx context.Context, name string) (Presence, error)
	ByteOrder() binary.ByteOrder
}

// Presence is the server's answer to QueryExtension.
type Presence struct {
	Present     bool
	MajorOpcode uint8
	FirstEvent  uint8
	FirstError  uint8
}

// Binding records where the server placed an extension on one connection.
type Binding struct {
	Extension   Extension
	MajorOpcode uint8
	FirstEvent  uint8
	FirstError  uint8
	NumEvents   uint8
	NumErrors   uint8
}

func (b Binding) String() string {
	return fmt.Sprintf("%s{major: %d, events: %d+%d, errors: %d+%d}",
		b.Extension, b.MajorOpcode, b.FirstEvent, b.NumEvents,
		b.FirstError, b.NumErrors)
}

// Observer is told about every resolution and every classified value.
// Implementations must not retain the values past the call if they intend
// to mutate them.
type Observer interface {
	ObserveResolve(ext Extension, present bool)
	ObserveError(err Error)
	ObserveEvent(ev Event)
}

type nopObserver struct{}

func (nopObserver) ObserveResolve(Extension, bool) {}
func (nopObserver) ObserveError(Error)             {}
func (nopObserver) ObserveEvent(Event)             {}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sends registry diagnostics to l instead of stderr.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = xgblog{l}
		}
	}
}

// WithTracer traces presence queries with t instead of the global
// OpenTelemetry tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithObserver reports resolutions and classifications to o.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithByteOrder overrides the byte order reported by the connection.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(r *Registry) {
		if order != nil {
			r.order = order
		}
	}
}

// NewRegistry creates an empty registry for one connection. No requests
// are sent until an extension is resolved.
func NewRegistry(c Conn, opts ...Option) *Registry {
	r := &Registry{
		conn:     c,
		order:    binary.LittleEndian,
		logger:   newLogger(),
		tracer:   otel.Tracer(tracerName),
		observer: nopObserver{},
		resolved: make(map[Extension]resolution),
		byMajor:  make(map[uint8]Extension),
	}
	if c != nil && c.ByteOrder() != nil {
		r.order = c.ByteOrder()
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
