package config

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ByteSize is a byte count that also accepts human sizes such as "64KiB" or
// "1MB", both in YAML and on the command line.
type ByteSize int64

var _ pflag.Value = (*ByteSize)(nil)

// ParseByteSize parses a plain integer or a humanized size.
func ParseByteSize(s string) (ByteSize, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ByteSize(n), nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errors.NotValidf("byte size %q", s)
	}
	return ByteSize(n), nil
}

func (b ByteSize) String() string {
	return strconv.FormatInt(int64(b), 10)
}

// Human renders the size in IEC units, e.g. "62 KiB".
func (b ByteSize) Human() string {
	if b < 0 {
		return b.String()
	}
	return humanize.IBytes(uint64(b))
}

// Int converts b to an int, clamped to the platform's int range.
func (b ByteSize) Int() int {
	return int(min(max(int64(b), math.MinInt), math.MaxInt))
}

func (b *ByteSize) Set(s string) error {
	n, err := ParseByteSize(s)
	if err != nil {
		return err
	}
	*b = n
	return nil
}

func (b *ByteSize) Type() string {
	return "bytes"
}

func (b *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.NotValidf("byte size at line %d", node.Line)
	}
	return b.Set(node.Value)
}

func (b ByteSize) MarshalYAML() (interface{}, error) {
	return int64(b), nil
}
