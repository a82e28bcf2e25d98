package fhandle_test

import (
	"testing"

	"github.com/gwangyi/fhandle"
)

func TestKindString(t *testing.T) {
	for _, tt := range []struct {
		kind    fhandle.Kind
		want    string
		hasSize bool
	}{
		{fhandle.KindUnknown, "Unknown", false},
		{fhandle.KindRegular, "Regular", true},
		{fhandle.KindDirectory, "Directory", false},
		{fhandle.KindSymlink, "Symlink", false},
		{fhandle.KindBlockDevice, "BlockDevice", true},
		{fhandle.KindCharDevice, "CharDevice", false},
		{fhandle.KindPipe, "Pipe", false},
		{fhandle.KindSocket, "Socket", false},
		{fhandle.Kind(42), "Kind(42)", false},
	} {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.kind.HasSize(); got != tt.hasSize {
				t.Errorf("HasSize() = %v, want %v", got, tt.hasSize)
			}
		})
	}
}
