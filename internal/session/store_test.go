package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none", "session.yaml"))
	token, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	s := NewFileStore(path)
	if err := s.Save("abc.def.ghi"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// a second store reads what the first one wrote
	token, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q, want %q", token, "abc.def.ghi")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), TokenKey+": abc.def.ghi") {
		t.Errorf("file content = %q, want key %s", string(data), TokenKey)
	}
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := NewFileStore(path).Save("tok"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("perm = %o, want 600", perm)
	}
}

func TestFileStore_KeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Save("tok"); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "theme: dark") {
		t.Errorf("file content = %q, other keys should survive", string(data))
	}
	if token, _ := s.Load(); token != "" {
		t.Errorf("token after Clear = %q, want empty", token)
	}
}

func TestFileStore_ClearWithoutFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "session.yaml"))
	if err := s.Clear(); err != nil {
		t.Errorf("Clear error: %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("- just\n- a list\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if _, err := s.Load(); err == nil {
		t.Error("Load of a non-mapping file should return error")
	}
	if err := s.Save("tok"); err != nil {
		t.Fatalf("Save over corrupt file error: %v", err)
	}
	if token, _ := s.Load(); token != "tok" {
		t.Errorf("token = %q, want %q", token, "tok")
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("")
	if token, _ := s.Load(); token != "" {
		t.Errorf("initial token = %q, want empty", token)
	}
	s.Save("tok")
	if token, _ := s.Load(); token != "tok" {
		t.Errorf("token = %q, want %q", token, "tok")
	}
	s.Clear()
	if token, _ := s.Load(); token != "" {
		t.Errorf("token after Clear = %q, want empty", token)
	}
}
