//go:build linux

package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gwangyi/fhandle/internal"
)

func TestBlockDeviceSizeOnRegularFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "plain")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer func() { _ = f.Close() }()

	// BLKGETSIZE64 is meaningless for a regular file; the capability reports
	// that it cannot answer rather than a bogus size.
	if size, ok := (internal.Unix{}).BlockDeviceSize(int(f.Fd())); ok {
		t.Errorf("BlockDeviceSize() = %d, true; want false", size)
	}
}
