package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Completion limits
const (
	// MaxCompletionItems caps the number of entries offered for a path prefix
	MaxCompletionItems = 15
)

// mountsFile lists mounted filesystems on Linux
const mountsFile = "/proc/self/mounts"

// ExpandUser replaces a leading ~ with the current user's home directory.
// Paths without a ~ prefix are returned unchanged.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ReverseExpandUser replaces the home directory prefix with ~ for display
func ReverseExpandUser(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}

// PathExists reports whether a path exists on the filesystem
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// ExistingParent returns the closest ancestor of path that exists as a
// directory, or an empty string if none does
func ExistingParent(path string) string {
	path = ExpandUser(path)
	for path != "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}
	return ""
}

// IsWritable reports whether the current user can create files in dir
func IsWritable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	probe, err := os.CreateTemp(dir, ".playdeck-write-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}

// DirNotEmpty reports whether path is an existing directory with content
func DirNotEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	return len(entries) > 0
}

// FilesystemType returns the filesystem type the path lives on, e.g. "ntfs"
// or "ext4". Only implemented for Linux; other platforms return "".
func FilesystemType(path string) string {
	if runtime.GOOS != OSLinux {
		return ""
	}
	data, err := os.ReadFile(mountsFile)
	if err != nil {
		return ""
	}
	abs, err := filepath.Abs(ExpandUser(path))
	if err != nil {
		return ""
	}
	return fsTypeFromMounts(string(data), abs)
}

// fsTypeFromMounts finds the filesystem type for path given the contents of
// a mounts file. The longest matching mount point wins.
func fsTypeFromMounts(mounts, path string) string {
	bestLen := -1
	bestType := ""
	for _, line := range strings.Split(mounts, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		mountPoint := fields[1]
		fsType := fields[2]
		if path != mountPoint && !strings.HasPrefix(path, strings.TrimSuffix(mountPoint, "/")+"/") {
			continue
		}
		if len(mountPoint) > bestLen {
			bestLen = len(mountPoint)
			bestType = fsType
		}
	}
	// fuseblk is how the kernel reports ntfs-3g mounts
	if bestType == "fuseblk" {
		return "ntfs"
	}
	return bestType
}

// CompletionCandidates returns path suggestions for what the user typed so
// far. When the path does not exist its last component is treated as a
// prefix filter on the parent directory. Hidden files are skipped and the
// result is capped at MaxCompletionItems.
func CompletionCandidates(current string) []string {
	current = ExpandUser(current)

	prefix := ""
	if !PathExists(current) {
		current, prefix = filepath.Split(current)
	}

	info, err := os.Stat(current)
	if err != nil || !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(current)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		candidates = append(candidates, filepath.Join(current, name))
		if len(candidates) >= MaxCompletionItems {
			break
		}
	}
	sort.Strings(candidates)
	return candidates
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FindExecutable returns the full path of an executable in PATH, or ""
func FindExecutable(name string) string {
	if name == "" {
		return ""
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

// RevealInFileManager opens the system file manager with the file selected
func RevealInFileManager(filePath string) error {
	if !PathExists(filePath) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return revealInFileManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealInFileManagerLinux opens the directory containing the file.
// File selection is not standardized on Linux, so the parent directory is
// opened instead.
func revealInFileManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if FindExecutable(fm) != "" {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
