package xgbconn

import (
	"context"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/BurntSushi/xgbext"
)

// Static is an xgbext.Conn that answers from a fixed table keyed by the
// extension's wire name. Names that are not in the table are absent.
type Static struct {
	Order      binary.ByteOrder
	Extensions map[string]xgbext.Presence
}

// NewStatic returns an empty table using order. A nil order means little
// endian.
func NewStatic(order binary.ByteOrder) *Static {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Static{
		Order:      order,
		Extensions: make(map[string]xgbext.Presence),
	}
}

// Bind marks ext as present at the given codes.
func (s *Static) Bind(ext xgbext.Extension, major, firstEvent, firstError uint8) *Static {
	s.Extensions[ext.XName()] = xgbext.Presence{
		Present:     true,
		MajorOpcode: major,
		FirstEvent:  firstEvent,
		FirstError:  firstError,
	}
	return s
}

func (s *Static) QueryExtension(ctx context.Context, name string) (xgbext.Presence, error) {
	if err := ctx.Err(); err != nil {
		return xgbext.Presence{}, err
	}
	return s.Extensions[name], nil
}

func (s *Static) ByteOrder() binary.ByteOrder { return s.Order }

// ParseBinding parses a binding of the form NAME=major:firstEvent:firstError,
// e.g. "RANDR=140:89:147". NAME is either the extension's wire name or its
// short title.
func ParseBinding(s string) (xgbext.Extension, xgbext.Presence, error) {
	name, codes, ok := strings.Cut(s, "=")
	if !ok {
		return 0, xgbext.Presence{}, errors.Errorf("binding %q: want NAME=major:event:error", s)
	}
	ext, ok := xgbext.ExtensionByName(name)
	if !ok {
		return 0, xgbext.Presence{}, errors.Errorf("binding %q: unknown extension %q", s, name)
	}

	fields := strings.Split(codes, ":")
	if len(fields) != 3 {
		return 0, xgbext.Presence{}, errors.Errorf("binding %q: want 3 codes, got %d", s, len(fields))
	}
	var vals [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 0, 8)
		if err != nil {
			return 0, xgbext.Presence{}, errors.Wrapf(err, "binding %q", s)
		}
		vals[i] = uint8(v)
	}
	return ext, xgbext.Presence{
		Present:     true,
		MajorOpcode: vals[0],
		FirstEvent:  vals[1],
		FirstError:  vals[2],
	}, nil
}
