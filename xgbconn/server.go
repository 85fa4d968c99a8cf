package xgbconn

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// ServerInfo is what an X server announced about itself.
type ServerInfo struct {
	ProtocolMajor    uint16
	ProtocolMinor    uint16
	Release          uint32
	Vendor           string
	MaxRequestLength uint16
	Screens          []Screen

	// Extensions is every extension name the server listed, sorted.
	Extensions []string
}

// Screen is the part of a screen's setup that describes its size and
// depths. Depths is sorted.
type Screen struct {
	Width     uint16
	Height    uint16
	RootDepth byte
	Depths    []byte
}

func newServerInfo(setup *xproto.SetupInfo, extensions []string) ServerInfo {
	info := ServerInfo{
		ProtocolMajor:    setup.ProtocolMajorVersion,
		ProtocolMinor:    setup.ProtocolMinorVersion,
		Release:          setup.ReleaseNumber,
		Vendor:           setup.Vendor,
		MaxRequestLength: setup.MaximumRequestLength,
		Extensions:       append([]string(nil), extensions...),
	}
	sort.Strings(info.Extensions)
	for _, root := range setup.Roots {
		s := Screen{
			Width:     root.WidthInPixels,
			Height:    root.HeightInPixels,
			RootDepth: root.RootDepth,
		}
		for _, d := range root.AllowedDepths {
			s.Depths = append(s.Depths, d.Depth)
		}
		sort.Slice(s.Depths, func(i, j int) bool { return s.Depths[i] < s.Depths[j] })
		info.Screens = append(info.Screens, s)
	}
	return info
}

// Server describes the X server at the other end of c. The setup comes from
// the connection handshake; the extension names cost one ListExtensions
// round trip.
func (c *Conn) Server(ctx context.Context) (ServerInfo, error) {
	if err := ctx.Err(); err != nil {
		return ServerInfo{}, err
	}

	type result struct {
		reply *xproto.ListExtensionsReply
		err   error
	}
	done := make(chan result, 1)
	cookie := xproto.ListExtensions(c.X)
	go func() {
		reply, err := cookie.Reply()
		reply, err = CheckReply(reply, err)
		done <- result{reply, err}
	}()

	select {
	case <-ctx.Done():
		return ServerInfo{}, errors.Wrap(ctx.Err(), "ListExtensions")
	case res := <-done:
		if res.err != nil {
			return ServerInfo{}, errors.Wrap(res.err, "ListExtensions")
		}
		names := make([]string, len(res.reply.Names))
		for i, name := range res.reply.Names {
			names[i] = name.Name
		}
		return newServerInfo(xproto.Setup(c.X), names), nil
	}
}

// WriteTo writes a human readable summary of the server to w.
func (info ServerInfo) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "X server protocol version: %d.%d (release %d)\n",
		info.ProtocolMajor, info.ProtocolMinor, info.Release)
	fmt.Fprintf(&b, "  Vendor: %s\n", info.Vendor)
	fmt.Fprintf(&b, "  Maximum request length: %d\n", info.MaxRequestLength)
	fmt.Fprintln(&b, "  Screens:")
	for _, s := range info.Screens {
		fmt.Fprintf(&b, "    - Size: %dx%d\n", s.Width, s.Height)
		fmt.Fprintf(&b, "      Root depth: %d\n", s.RootDepth)
		fmt.Fprintf(&b, "      Allowed depths: %v\n", s.Depths)
	}
	fmt.Fprintln(&b, "  Extensions:")
	for _, name := range info.Extensions {
		fmt.Fprintf(&b, "    - %s\n", name)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
