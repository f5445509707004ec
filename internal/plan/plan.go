// Package plan reads edit plans: YAML documents listing the regions to splice
// into one file.
//
//	buffer_size: 4KiB
//	regions:
//	  - begin: 4
//	    len: 2
//	    text: "hello"
//	  - begin: 0
//	    hex: "de ad be ef"
package plan

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"gosplice/internal/config"
	"gosplice/pkg/region"
)

// Plan is a parsed edit plan.
type Plan struct {
	BufferSize config.ByteSize `yaml:"buffer_size,omitempty"` // zero means use the configured size
	Entries    []Entry         `yaml:"regions"`
}

// Entry is one region of a plan. At most one of Text, Hex and Base64 may be
// set; none of them means the bytes are deleted.
type Entry struct {
	Begin  int64   `yaml:"begin"`
	Len    int64   `yaml:"len,omitempty"`
	Text   *string `yaml:"text,omitempty"`
	Hex    *string `yaml:"hex,omitempty"`
	Base64 *string `yaml:"base64,omitempty"`
}

// Load reads and validates the plan stored at path.
func Load(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "opening plan %s", path)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, errors.Annotatef(err, "plan %s", path)
	}
	return p, nil
}

// Parse decodes a plan from r. Unknown keys are rejected so typos in a plan
// never turn into silent deletions.
func Parse(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.NotValidf("empty plan")
		}
		return nil, errors.Annotate(err, "decoding plan")
	}
	if p.BufferSize < 0 {
		return nil, errors.NotValidf("buffer_size %d", p.BufferSize)
	}
	if _, err := p.Regions(); err != nil {
		return nil, errors.Trace(err)
	}
	return &p, nil
}

// Regions converts the entries to regions, in plan order.
func (p *Plan) Regions() ([]region.Region, error) {
	regions := make([]region.Region, 0, len(p.Entries))
	for i, e := range p.Entries {
		r, err := e.Region()
		if err != nil {
			return nil, errors.Annotatef(err, "region #%d", i)
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// Region decodes the entry's replacement bytes.
func (e Entry) Region() (region.Region, error) {
	r := region.Region{Begin: e.Begin, Len: e.Len}
	if err := r.Validate(); err != nil {
		return r, errors.NotValidf("begin %d len %d", e.Begin, e.Len)
	}

	set := 0
	for _, s := range []*string{e.Text, e.Hex, e.Base64} {
		if s != nil {
			set++
		}
	}
	if set > 1 {
		return r, errors.NotValidf("more than one of text, hex and base64")
	}

	var err error
	switch {
	case e.Text != nil:
		r.Data = []byte(*e.Text)
	case e.Hex != nil:
		r.Data, err = DecodeHex(*e.Hex)
	case e.Base64 != nil:
		r.Data, err = DecodeBase64(*e.Base64)
	}
	return r, err
}

// DecodeHex decodes hex digits, ignoring any whitespace between them.
func DecodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, errors.NewNotValid(err, "decoding hex")
	}
	return data, nil
}

// DecodeBase64 decodes standard, padded base64.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.NewNotValid(err, "decoding base64")
	}
	return data, nil
}
