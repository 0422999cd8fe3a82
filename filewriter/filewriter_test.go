// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package filewriter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.data")
	fw, err := New(p)
	if err != nil {
		t.Fatal("New() failed: ", err)
	}
	fw.Printf("# %s\n", "header")
	fw.Row("20200301", "1.5")
	if err := fw.Close(); err != nil {
		t.Fatal("Close() failed: ", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal("Failed reading output: ", err)
	}
	if want := "# header\n20200301\t1.5\n"; string(b) != want {
		t.Errorf("Wrote %q; want %q", b, want)
	}
}

func TestTemp(t *testing.T) {
	p, err := Temp("filewriter.test.", func(fw *FileWriter) {
		fw.Row("a", "b")
	})
	if err != nil {
		t.Fatal("Temp() failed: ", err)
	}
	defer os.Remove(p)

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal("Failed reading output: ", err)
	}
	if want := "a\tb\n"; string(b) != want {
		t.Errorf("Wrote %q; want %q", b, want)
	}
}
