package cmd

import (
	"os"

	"github.com/juju/errors"
	"github.com/spf13/pflag"

	"gosplice/internal/plan"
)

// dataSource holds the replacement bytes given by exactly one of the data
// flags. When no flag is set the replaced range is deleted.
type dataSource struct {
	flag string // name of the flag that supplied data
	data []byte
}

// dataFlag is a pflag.Value feeding a shared dataSource.
type dataFlag struct {
	src    *dataSource
	name   string
	raw    string
	decode func(string) ([]byte, error)
}

var _ pflag.Value = (*dataFlag)(nil)

func (f *dataFlag) String() string { return f.raw }
func (f *dataFlag) Type() string   { return "string" }

func (f *dataFlag) Set(s string) error {
	if f.src.flag != "" && f.src.flag != f.name {
		return errors.NotValidf("--%s together with --%s", f.name, f.src.flag)
	}
	data, err := f.decode(s)
	if err != nil {
		return err
	}
	f.src.flag, f.src.data, f.raw = f.name, data, s
	return nil
}

// register adds --text, --hex, --base64 and --data-file to fs.
func (src *dataSource) register(fs *pflag.FlagSet) {
	fs.Var(&dataFlag{src: src, name: "text", decode: decodeText}, "text", "replacement text")
	fs.Var(&dataFlag{src: src, name: "hex", decode: plan.DecodeHex}, "hex", "replacement bytes as hex digits")
	fs.Var(&dataFlag{src: src, name: "base64", decode: plan.DecodeBase64}, "base64", "replacement bytes as base64")
	fs.Var(&dataFlag{src: src, name: "data-file", decode: readDataFile}, "data-file", "file holding the replacement bytes")
}

func decodeText(s string) ([]byte, error) {
	return []byte(s), nil
}

func readDataFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "reading data file")
	}
	return data, nil
}
