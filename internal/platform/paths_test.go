package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home dir: %v", err)
	}

	tests := []struct {
		path     string
		expected string
	}{
		{"~", home},
		{"~/Games", filepath.Join(home, "Games")},
		{"/tmp/abs", "/tmp/abs"},
		{"relative/path", "relative/path"},
		{"~user/x", "~user/x"}, // other users are not expanded
	}

	for _, test := range tests {
		result := ExpandUser(test.path)
		if result != test.expected {
			t.Errorf("ExpandUser(%q) = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestReverseExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home dir: %v", err)
	}

	tests := []struct {
		path     string
		expected string
	}{
		{home, "~"},
		{filepath.Join(home, "Games"), "~/Games"},
		{"/tmp/elsewhere", "/tmp/elsewhere"},
	}

	for _, test := range tests {
		result := ReverseExpandUser(test.path)
		if result != test.expected {
			t.Errorf("ReverseExpandUser(%q) = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestExistingParent(t *testing.T) {
	tempDir := t.TempDir()

	// Path itself exists
	if got := ExistingParent(tempDir); got != tempDir {
		t.Errorf("ExistingParent(%q) = %q, expected the path itself", tempDir, got)
	}

	// Deep nonexistent path resolves to the existing ancestor
	deep := filepath.Join(tempDir, "a", "b", "c")
	if got := ExistingParent(deep); got != tempDir {
		t.Errorf("ExistingParent(%q) = %q, expected %q", deep, got, tempDir)
	}
}

func TestIsWritable(t *testing.T) {
	tempDir := t.TempDir()

	if !IsWritable(tempDir) {
		t.Errorf("Expected temp dir %s to be writable", tempDir)
	}

	if IsWritable(filepath.Join(tempDir, "does-not-exist")) {
		t.Error("Expected nonexistent directory to be reported as not writable")
	}
}

func TestDirNotEmpty(t *testing.T) {
	tempDir := t.TempDir()

	if DirNotEmpty(tempDir) {
		t.Error("Expected fresh temp dir to be empty")
	}

	if err := os.WriteFile(filepath.Join(tempDir, "file.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if !DirNotEmpty(tempDir) {
		t.Error("Expected dir with a file to be reported as non-empty")
	}

	if DirNotEmpty(filepath.Join(tempDir, "missing")) {
		t.Error("Expected missing dir to be reported as empty")
	}
}

func TestFsTypeFromMounts(t *testing.T) {
	mounts := "/dev/sda1 / ext4 rw 0 0\n" +
		"/dev/sdb1 /mnt/windows fuseblk rw 0 0\n" +
		"/dev/sdc1 /mnt/data btrfs rw 0 0\n" +
		"tmpfs /tmp tmpfs rw 0 0\n"

	tests := []struct {
		path     string
		expected string
	}{
		{"/home/user/Games", "ext4"},
		{"/mnt/windows/Games", "ntfs"}, // fuseblk reported as ntfs
		{"/mnt/windows", "ntfs"},
		{"/mnt/data/stuff", "btrfs"},
		{"/tmp/x", "tmpfs"},
		{"/mnt/datastore", "ext4"}, // prefix must match on path boundary
	}

	for _, test := range tests {
		result := fsTypeFromMounts(mounts, test.path)
		if result != test.expected {
			t.Errorf("fsTypeFromMounts(%q) = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestCompletionCandidates(t *testing.T) {
	tempDir := t.TempDir()

	for _, name := range []string{"alpha", "amber", "beta", ".hidden"} {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}

	// Existing directory lists everything visible
	candidates := CompletionCandidates(tempDir)
	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d: %v", len(candidates), candidates)
	}

	// Hidden files are skipped
	for _, c := range candidates {
		if filepath.Base(c) == ".hidden" {
			t.Error("Hidden file should not appear in candidates")
		}
	}

	// Last component acts as a prefix filter
	candidates = CompletionCandidates(filepath.Join(tempDir, "a"))
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates for prefix 'a', got %d: %v", len(candidates), candidates)
	}
	for _, c := range candidates {
		if filepath.Base(c)[0] != 'a' {
			t.Errorf("Candidate %q does not match prefix 'a'", c)
		}
	}

	// Nonexistent directory yields nothing
	if got := CompletionCandidates(filepath.Join(tempDir, "missing", "x")); got != nil {
		t.Errorf("Expected no candidates for missing dir, got %v", got)
	}
}

func TestCompletionCandidates_Cap(t *testing.T) {
	tempDir := t.TempDir()

	for i := 0; i < MaxCompletionItems+10; i++ {
		name := filepath.Join(tempDir, "file-"+string(rune('a'+i%26))+string(rune('a'+i/26)))
		if err := os.WriteFile(name, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}

	candidates := CompletionCandidates(tempDir)
	if len(candidates) > MaxCompletionItems {
		t.Errorf("Expected at most %d candidates, got %d", MaxCompletionItems, len(candidates))
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestRevealInFileManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.txt")

	err := RevealInFileManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
