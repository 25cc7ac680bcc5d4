package report

import (
	"os"
	"path/filepath"
)

// WriteFile stores doc at dest atomically: the bytes go to a temporary file in
// the same directory, which is synced and then renamed over dest. A failure
// leaves dest untouched and removes the temporary file.
func WriteFile(dest string, doc []byte) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".srcdiff-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, 0o644)

	if _, err := tmp.Write(doc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
