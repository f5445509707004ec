package plan_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosplice/internal/config"
	"gosplice/internal/plan"
	"gosplice/pkg/region"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		want       []region.Region
		wantBuffer config.ByteSize
		wantErr    bool
	}{
		{
			name: "text hex and base64",
			yaml: `
buffer_size: 4KiB
regions:
  - begin: 4
    len: 2
    text: "hello"
  - begin: 0
    hex: "de ad be ef"
  - begin: 10
    len: 1
    base64: "AQID"
`,
			want: []region.Region{
				{Begin: 4, Len: 2, Data: []byte("hello")},
				{Begin: 0, Data: []byte{0xde, 0xad, 0xbe, 0xef}},
				{Begin: 10, Len: 1, Data: []byte{1, 2, 3}},
			},
			wantBuffer: 4096,
		},
		{
			name: "deletion has no data",
			yaml: `
regions:
  - begin: 1
    len: 3
`,
			want: []region.Region{{Begin: 1, Len: 3}},
		},
		{
			name: "empty text replaces with nothing",
			yaml: `
regions:
  - begin: 1
    len: 3
    text: ""
`,
			want: []region.Region{{Begin: 1, Len: 3, Data: []byte{}}},
		},
		{
			name: "no regions",
			yaml: "regions: []\n",
			want: []region.Region{},
		},
		{
			name:    "two encodings",
			yaml:    "regions:\n  - begin: 1\n    text: a\n    hex: '61'\n",
			wantErr: true,
		},
		{
			name:    "negative begin",
			yaml:    "regions:\n  - begin: -1\n",
			wantErr: true,
		},
		{
			name:    "end overflows",
			yaml:    "regions:\n  - begin: 1099511627776\n    len: 9223370937343148033\n    text: x\n",
			wantErr: true,
		},
		{
			name:    "bad hex",
			yaml:    "regions:\n  - begin: 1\n    hex: zz\n",
			wantErr: true,
		},
		{
			name:    "unknown key",
			yaml:    "regions:\n  - begin: 1\n    lenght: 3\n",
			wantErr: true,
		},
		{
			name:    "empty document",
			yaml:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := plan.Parse(strings.NewReader(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBuffer, p.BufferSize)

			got, err := p.Regions()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ErrorNamesEntry(t *testing.T) {
	_, err := plan.Parse(strings.NewReader("regions:\n  - begin: 1\n  - begin: 2\n    len: -4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region #1")
	assert.True(t, errors.IsNotValid(err), "got %v", err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regions:\n  - begin: 0\n    text: x\n"), 0644))

	p, err := plan.Load(path)
	require.NoError(t, err)
	require.Len(t, p.Entries, 1)

	_, err = plan.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
