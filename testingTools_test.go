package xgbext

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log"
	"regexp"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeConn answers presence queries from a fixed table and counts how often
// each name was asked for.
type fakeConn struct {
	order   binary.ByteOrder
	present map[string]Presence
	fail    map[string]error

	mu      sync.Mutex
	queries map[string]int
}

func newFakeConn(order binary.ByteOrder) *fakeConn {
	return &fakeConn{
		order:   order,
		present: make(map[string]Presence),
		fail:    make(map[string]error),
		queries: make(map[string]int),
	}
}

// bind makes ext present at the given codes.
func (c *fakeConn) bind(ext Extension, major, firstEvent, firstError uint8) *fakeConn {
	c.present[ext.XName()] = Presence{
		Present:     true,
		MajorOpcode: major,
		FirstEvent:  firstEvent,
		FirstError:  firstError,
	}
	return c
}

func (c *fakeConn) failWith(ext Extension, err error) *fakeConn {
	c.fail[ext.XName()] = err
	return c
}

func (c *fakeConn) QueryExtension(ctx context.Context, name string) (Presence, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries[name]++
	if err := c.fail[name]; err != nil {
		return Presence{}, err
	}
	return c.present[name], nil
}

func (c *fakeConn) ByteOrder() binary.ByteOrder { return c.order }

func (c *fakeConn) queried(ext Extension) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queries[ext.XName()]
}

func (c *fakeConn) totalQueries() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, q := range c.queries {
		n += q
	}
	return n
}

var errFakeQuery = errors.New("connection reset by peer")

// newTestRegistry builds a registry over c that logs nowhere.
func newTestRegistry(c Conn, opts ...Option) *Registry {
	opts = append([]Option{WithLogger(log.New(io.Discard, "", 0))}, opts...)
	return NewRegistry(c, opts...)
}

// randrConn is the RandR binding used throughout the tests: major opcode
// 140, first event 89, first error 147.
func randrConn() *fakeConn {
	return newFakeConn(binary.LittleEndian).bind(Randr, 140, 89, 147)
}

// errorBuf returns a 32-byte error with the common header filled in.
func errorBuf(order binary.ByteOrder, code uint8, seq uint16, bad uint32, minor uint16, major uint8) []byte {
	buf := make([]byte, responseSize)
	buf[0] = 0
	buf[1] = code
	order.PutUint16(buf[2:], seq)
	order.PutUint32(buf[4:], bad)
	order.PutUint16(buf[8:], minor)
	buf[10] = major
	return buf
}

// eventBuf returns a 32-byte event with the code, detail and sequence set.
func eventBuf(order binary.ByteOrder, code, detail uint8, seq uint16) []byte {
	buf := make([]byte, responseSize)
	buf[0] = code
	buf[1] = detail
	order.PutUint16(buf[2:], seq)
	return buf
}

// genericBuf returns a generic event carrying extra 4-byte units after the
// 32-byte header.
func genericBuf(order binary.ByteOrder, major uint8, evtype uint16, seq uint16, extra uint32) []byte {
	buf := make([]byte, responseSize+int(extra)*genericLengthUnit)
	buf[0] = GenericEventCode
	buf[1] = major
	order.PutUint16(buf[2:], seq)
	order.PutUint32(buf[4:], extra)
	order.PutUint16(buf[8:], evtype)
	return buf
}

// withoutSchema removes every decode schema of ext for the duration of the
// test, as if the package had been built with its xgbext_no_ tag.
func withoutSchema(t *testing.T, ext Extension) {
	t.Helper()
	errs, hasErrs := errorSchemas[ext]
	evs, hasEvs := eventSchemas[ext]
	gen, hasGen := genericSchemas[ext]
	delete(errorSchemas, ext)
	delete(eventSchemas, ext)
	delete(genericSchemas, ext)
	t.Cleanup(func() {
		if hasErrs {
			errorSchemas[ext] = errs
		}
		if hasEvs {
			eventSchemas[ext] = evs
		}
		if hasGen {
			genericSchemas[ext] = gen
		}
	})
}

// recordingObserver remembers everything the registry reported.
type recordingObserver struct {
	resolves []Extension
	errors   []Error
	events   []Event
}

func (o *recordingObserver) ObserveResolve(ext Extension, present bool) {
	o.resolves = append(o.resolves, ext)
}
func (o *recordingObserver) ObserveError(err Error) { o.errors = append(o.errors, err) }
func (o *recordingObserver) ObserveEvent(ev Event)  { o.events = append(o.events, ev) }

// inspired by https://golang.org/src/runtime/debug/stack.go?s=587:606#L21
// stack returns a formatted stack trace of all goroutines.
// It calls runtime.Stack with a large enough buffer to capture the entire trace.
func stack() []byte {
	buf := make([]byte, 1024)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}

type goroutine struct {
	id    int
	name  string
	stack []byte
}

// leaks is a snapshot of the running goroutines, taken so a test can check
// that the code under test started none of its own.
type leaks struct {
	name       string
	goroutines map[int]goroutine
}

func leaksMonitor(name string) leaks {
	return leaks{
		name,
		leaks{}.collectGoroutines(),
	}
}

var regexpId = regexp.MustCompile(`^\s*goroutine\s*(\d+)`)

func (_ leaks) collectGoroutines() map[int]goroutine {
	res := make(map[int]goroutine)
	for _, st := range bytes.Split(stack(), []byte{'\n', '\n'}) {
		lines := bytes.Split(st, []byte{'\n'})
		if len(lines) < 2 {
			continue
		}
		idMatches := regexpId.FindSubmatch(lines[0])
		if len(idMatches) < 2 {
			continue
		}
		id, err := strconv.Atoi(string(idMatches[1]))
		if err != nil {
			continue
		}
		res[id] = goroutine{id, string(bytes.TrimSpace(lines[1])), st}
	}
	return res
}

func (l leaks) leakingGoroutines() []goroutine {
	goroutines := l.collectGoroutines()
	res := []goroutine{}
	for id, gr := range goroutines {
		if _, ok := l.goroutines[id]; ok {
			continue
		}
		res = append(res, gr)
	}
	return res
}

func (l leaks) checkTesting(t *testing.T) {
	if len(l.leakingGoroutines()) == 0 {
		return
	}
	leakTimeout := 100 * time.Millisecond
	t.Logf("%s: possible goroutine leakage, waiting %v", l.name, leakTimeout)
	time.Sleep(leakTimeout)
	lgrs := l.leakingGoroutines()
	if len(lgrs) == 0 {
		return
	}
	t.Errorf("%s: %d goroutine leaks", l.name, len(lgrs))
	for _, gr := range lgrs {
		t.Log(gr.name, "\n", string(gr.stack))
	}
}
