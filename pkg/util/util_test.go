// pkg/util/util_test.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestSelect(t *testing.T) {
	if got := Select(true, 1, 2); got != 1 {
		t.Errorf("Select(true) = %d", got)
	}
	if got := Select(false, 1, 2); got != 2 {
		t.Errorf("Select(false) = %d", got)
	}
	if got := Select(true, "a", "b"); got != "a" {
		t.Errorf("Select(true) = %q", got)
	}
}

func TestLoadResourceBytesPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	want := []byte("hello resources")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadResourceBytes(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("read %q, want %q", got, want)
	}
}

func TestLoadResourceBytesZstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt.zst")
	want := bytes.Repeat([]byte("compress me "), 100)

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write(want); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadResourceBytes(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("decompressed contents differ from the original")
	}
}

func TestLoadResourceBytesMissing(t *testing.T) {
	if _, err := LoadResourceBytes(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("missing file did not error")
	}
}
