package region

import (
	"errors"
	"math"
	"testing"
)

func TestRegion_KindAndDelta(t *testing.T) {
	tests := []struct {
		name      string
		region    Region
		wantKind  Kind
		wantDelta int64
	}{
		{
			name:      "growing replacement",
			region:    Region{Begin: 2, Len: 2, Data: []byte{7, 7, 7, 7, 7}},
			wantKind:  Grow,
			wantDelta: 3,
		},
		{
			name:      "shrinking replacement",
			region:    Region{Begin: 1, Len: 3, Data: []byte{7, 7}},
			wantKind:  Shrink,
			wantDelta: -1,
		},
		{
			name:      "same size overwrite",
			region:    Region{Begin: 1, Len: 2, Data: []byte{7, 3}},
			wantKind:  Same,
			wantDelta: 0,
		},
		{
			name:      "pure insertion",
			region:    Region{Begin: 2, Data: []byte{1}},
			wantKind:  Grow,
			wantDelta: 1,
		},
		{
			name:      "pure deletion",
			region:    Region{Begin: 2, Len: 4},
			wantKind:  Shrink,
			wantDelta: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.region.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.region.Delta(); got != tt.wantDelta {
				t.Errorf("Delta() = %d, want %d", got, tt.wantDelta)
			}
		})
	}
}

func TestRegion_Validate(t *testing.T) {
	if err := (Region{Begin: 0, Len: 0}).Validate(); err != nil {
		t.Errorf("Validate() on empty region = %v, want nil", err)
	}
	for _, r := range []Region{{Begin: -1}, {Len: -3}} {
		if err := r.Validate(); !errors.Is(err, ErrNegative) {
			t.Errorf("Validate(%s) = %v, want ErrNegative", r, err)
		}
	}
	for _, r := range []Region{
		{Begin: 1 << 40, Len: math.MaxInt64 - (1 << 40) + 2},
		{Begin: math.MaxInt64, Len: 1},
	} {
		if err := r.Validate(); !errors.Is(err, ErrOverflow) {
			t.Errorf("Validate(begin %d, len %d) = %v, want ErrOverflow", r.Begin, r.Len, err)
		}
	}
	if err := (Region{Begin: 1, Len: math.MaxInt64 - 1}).Validate(); err != nil {
		t.Errorf("Validate() ending at MaxInt64 = %v, want nil", err)
	}
}

func TestRegion_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Region
		want bool
	}{
		{"disjoint", Region{Begin: 0, Len: 3}, Region{Begin: 4, Len: 2}, false},
		{"adjacent", Region{Begin: 1, Len: 2}, Region{Begin: 3, Len: 2}, false},
		{"shared byte", Region{Begin: 1, Len: 3}, Region{Begin: 3, Len: 2}, true},
		{"contained", Region{Begin: 0, Len: 9}, Region{Begin: 3, Len: 1}, true},
		{"insert at start of replacement", Region{Begin: 2}, Region{Begin: 2, Len: 2}, false},
		{"insert at end of replacement", Region{Begin: 4}, Region{Begin: 2, Len: 2}, false},
		{"insert inside replacement", Region{Begin: 3}, Region{Begin: 2, Len: 2}, true},
		{"two inserts same offset", Region{Begin: 2}, Region{Begin: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRegion_String(t *testing.T) {
	r := Region{Begin: 4, Len: 2, Data: []byte("abc")}
	if got, want := r.String(), "[4,6)->3 bytes"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
