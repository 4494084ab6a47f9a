package util_test

import (
	"os"
	"strings"
	"testing"

	"github.com/blackwell-systems/librec/internal/util"
)

func TestSHA256Reader(t *testing.T) {
	// sha256("") is well known
	got, err := util.SHA256Reader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	const want = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("SHA256('') = %q, want %q", got, want)
	}
}

func TestSHA256File(t *testing.T) {
	f, err := os.CreateTemp("", "sha256test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	f.WriteString("seed data")
	f.Close()

	got, err := util.SHA256File(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	want, err := util.SHA256Reader(strings.NewReader("seed data"))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("SHA256File = %q, want %q", got, want)
	}
}

func TestSHA256File_MissingFile(t *testing.T) {
	_, err := util.SHA256File("/no/such/file.bin")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
