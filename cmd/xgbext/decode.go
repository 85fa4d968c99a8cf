package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/BurntSushi/xgbext"
	"github.com/BurntSushi/xgbext/xgbconn"
)

type decodeFlags struct {
	bindings  []string
	live      bool
	bigEndian bool
	asError   bool
	asEvent   bool
}

func decodeCmd(flags *connFlags) *cobra.Command {
	df := &decodeFlags{}
	cmd := &cobra.Command{
		Use:   "decode [flags] HEX...",
		Short: "Classify X error or event buffers",
		Long: `Classify hex-encoded X error or event buffers.

Extension codes are taken from --bind flags, or from the display with
--live. Each buffer is printed with its class and decoded form. Spaces and
colons in HEX are ignored.

Examples:
  xgbext decode --bind RANDR=140:89:147 --error 00942a00...
  xgbext decode --live --event 23830100...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if df.asError == df.asEvent {
				return errors.New("exactly one of --error and --event is required")
			}
			logger := xgbext.WithLogger(flags.logger(cmd.ErrOrStderr()))

			var r *xgbext.Registry
			if df.live {
				conn, err := xgbconn.Dial(flags.display)
				if err != nil {
					return err
				}
				defer conn.Close()
				r = xgbext.NewRegistry(conn, logger)
				r.ResolveAll(cmd.Context())
			} else {
				var err error
				if r, err = staticRegistry(df, logger); err != nil {
					return err
				}
			}
			return decodeBuffers(cmd.OutOrStdout(), r, df.asError, args)
		},
	}

	fs := cmd.Flags()
	fs.StringArrayVarP(&df.bindings, "bind", "b", nil, "Extension binding NAME=major:event:error (repeatable)")
	fs.BoolVar(&df.live, "live", false, "Resolve extensions against the display instead of --bind")
	fs.BoolVar(&df.bigEndian, "big-endian", false, "Buffers are big endian (--bind only)")
	fs.BoolVar(&df.asError, "error", false, "Buffers are X errors")
	fs.BoolVar(&df.asEvent, "event", false, "Buffers are X events")
	return cmd
}

// staticRegistry builds a registry from --bind flags and resolves every
// bound extension, so that classification can see them.
func staticRegistry(df *decodeFlags, opts ...xgbext.Option) (*xgbext.Registry, error) {
	var order binary.ByteOrder = binary.LittleEndian
	if df.bigEndian {
		order = binary.BigEndian
	}
	conn := xgbconn.NewStatic(order)
	var exts []xgbext.Extension
	for _, arg := range df.bindings {
		ext, p, err := xgbconn.ParseBinding(arg)
		if err != nil {
			return nil, err
		}
		conn.Extensions[ext.XName()] = p
		exts = append(exts, ext)
	}

	r := xgbext.NewRegistry(conn, opts...)
	for _, ext := range exts {
		if _, ok := r.Resolve(ext); !ok {
			if err := r.QueryErr(ext); err != nil {
				return nil, errors.Wrapf(err, "binding for %s rejected", ext)
			}
			return nil, errors.Errorf("binding for %s rejected", ext)
		}
	}
	return r, nil
}

func decodeBuffers(w io.Writer, r *xgbext.Registry, asError bool, args []string) error {
	for _, arg := range args {
		buf, err := parseHex(arg)
		if err != nil {
			return err
		}
		var v interface{ Extension() xgbext.Extension }
		var desc string
		if asError {
			xerr := r.ClassifyError(buf)
			v, desc = xerr, xerr.Error()
		} else {
			ev := r.ClassifyEvent(buf)
			v, desc = ev, ev.String()
		}
		fmt.Fprintf(w, "%s: %s\n", xgbext.ClassOf(v), desc)
	}
	return nil
}

func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(s)
	s = strings.TrimPrefix(s, "0x")
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "bad buffer %q", s)
	}
	return buf, nil
}
