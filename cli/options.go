package cli

import (
	"reflect"

	"github.com/alecthomas/kong"

	"go.hackfix.me/dashfeed/xtime"
)

// DurationMapper parses duration values that may use calendar units,
// such as "90d" or "1y".
type DurationMapper struct{}

var _ kong.Mapper = (*DurationMapper)(nil)

// Decode implements the kong.Mapper interface.
func (dm DurationMapper) Decode(kctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := kctx.Scan.PopValueInto("duration", &value)
	if err != nil {
		return err
	}

	dur, err := xtime.ParseDuration(value)
	if err != nil {
		return err
	}

	target.Set(reflect.ValueOf(dur))

	return nil
}
