package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFileOrStdinContent_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.bean")
	assert.NoError(t, os.WriteFile(path, []byte("open Assets:Checking\n"), 0o644))

	f := &FileOrStdin{Filename: path}
	content, err := f.Content()
	assert.NoError(t, err)
	assert.Equal(t, "open Assets:Checking\n", content)
}

func TestFileOrStdinContent_UsesCapturedStdinContents(t *testing.T) {
	f := &FileOrStdin{Filename: "<stdin>", Contents: []byte("commodity USD\n")}
	content, err := f.Content()
	assert.NoError(t, err)
	assert.Equal(t, "commodity USD\n", content)
}

func TestFileOrStdinDisplayName(t *testing.T) {
	f := &FileOrStdin{Filename: "<stdin>"}
	assert.Equal(t, "<stdin>", f.DisplayName())

	f2 := &FileOrStdin{Filename: "ledger.bean"}
	abs, err := filepath.Abs("ledger.bean")
	assert.NoError(t, err)
	assert.Equal(t, abs, f2.DisplayName())
}
