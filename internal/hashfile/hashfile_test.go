package hashfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rickgorman/email-hasher/pkg/hash"
)

func TestWrite(t *testing.T) {
	t.Run("creates file with exact digest", func(t *testing.T) {
		dir := t.TempDir()
		digest := hash.SHA256Sum("test@example.com")

		if err := Write(dir, digest); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dir, FileName))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != digest {
			t.Errorf("file content = %q, want %q", data, digest)
		}
	})

	t.Run("overwrites previous content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, FileName)
		if err := os.WriteFile(path, []byte("stale content that is longer than a digest, by quite a bit indeed\n"), 0644); err != nil {
			t.Fatal(err)
		}

		digest := hash.SHA256Sum("user@example.org")
		if err := Write(dir, digest); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != digest {
			t.Errorf("file content = %q, want %q", data, digest)
		}
	})

	t.Run("missing directory returns path error", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "does-not-exist")

		err := Write(dir, hash.SHA256Sum("x@y.zz"))
		if err == nil {
			t.Fatal("Write() expected error for missing directory")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Write() error = %v, want fs.ErrNotExist", err)
		}
		if n := strings.Count(err.Error(), FileName); n != 1 {
			t.Errorf("Write() error = %q mentions %s %d times, want once", err, FileName, n)
		}
	})
}

func TestRead(t *testing.T) {
	t.Run("tolerates trailing whitespace", func(t *testing.T) {
		dir := t.TempDir()
		digest := hash.SHA256Sum("hello")
		if err := os.WriteFile(Path(dir), []byte(digest+"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := Read(dir)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if got != digest {
			t.Errorf("Read() = %s, want %s", got, digest)
		}
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(Path(dir), []byte("not a digest"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := Read(dir)
		if !errors.Is(err, hash.ErrInvalidDigest) {
			t.Errorf("Read() error = %v, want ErrInvalidDigest", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(t.TempDir())
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Read() error = %v, want fs.ErrNotExist", err)
		}
	})
}
