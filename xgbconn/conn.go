// Package xgbconn connects an xgbext.Registry to an X server.
//
// Conn answers presence queries over a live xgb connection. Static answers
// them from a fixed table, which is useful for decoding buffers captured
// from a server that is no longer running.
//
// Check, CheckReply and CheckEvent turn the results xgb hands back into
// nil, ErrMissingReply, a *RequestError or a *ConnectionError.
package xgbconn

import (
	"context"
	"encoding/binary"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/BurntSushi/xgbext"
)

// Conn is an xgbext.Conn over an xgb connection.
type Conn struct {
	X *xgb.Conn
}

// New wraps an open xgb connection. The caller keeps ownership of X.
func New(X *xgb.Conn) *Conn {
	return &Conn{X: X}
}

// Dial opens a connection to display. An empty display means the one named
// by $DISPLAY.
func Dial(display string) (*Conn, error) {
	X, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to display %q", display)
	}
	return &Conn{X: X}, nil
}

// QueryExtension sends a QueryExtension request and waits for the reply or
// for ctx to be done, whichever comes first.
func (c *Conn) QueryExtension(ctx context.Context, name string) (xgbext.Presence, error) {
	if err := ctx.Err(); err != nil {
		return xgbext.Presence{}, err
	}

	type result struct {
		reply *xproto.QueryExtensionReply
		err   error
	}
	done := make(chan result, 1)
	cookie := xproto.QueryExtension(c.X, uint16(len(name)), name)
	go func() {
		reply, err := cookie.Reply()
		reply, err = CheckReply(reply, err)
		done <- result{reply, err}
	}()

	select {
	case <-ctx.Done():
		return xgbext.Presence{}, errors.Wrapf(ctx.Err(), "QueryExtension %q", name)
	case res := <-done:
		if res.err != nil {
			return xgbext.Presence{}, errors.Wrapf(res.err, "QueryExtension %q", name)
		}
		return xgbext.Presence{
			Present:     res.reply.Present,
			MajorOpcode: res.reply.MajorOpcode,
			FirstEvent:  res.reply.FirstEvent,
			FirstError:  res.reply.FirstError,
		}, nil
	}
}

// ByteOrder is always little endian: xgb announces that byte order in its
// connection setup, so the server sends everything that way.
func (c *Conn) ByteOrder() binary.ByteOrder { return binary.LittleEndian }

// Close closes the underlying xgb connection.
func (c *Conn) Close() {
	c.X.Close()
}
