package dotfiles

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/logging"
)

const defaultMode = os.FileMode(0644)

// Backup holds a temporary copy of a file's original bytes for the
// duration of one rewrite. It is created before the file is touched,
// restored if the rewrite fails, and discarded on every exit path.
type Backup struct {
	path    string
	backup  string
	tempDir string
	mode    os.FileMode
}

// NewBackup copies the file at path into a private temporary directory,
// preserving its permission bits.
func NewBackup(path string) (*Backup, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackupCreate, "cannot stat %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackupCreate, "cannot read %s", path)
	}

	tempDir, err := os.MkdirTemp("", "preflight-backup-")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrBackupCreate, "cannot create backup directory")
	}

	backup := filepath.Join(tempDir, filepath.Base(path)+".bak")
	if err := os.WriteFile(backup, data, info.Mode().Perm()); err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, errors.Wrapf(err, errors.ErrBackupCreate, "cannot write backup of %s", path)
	}

	return &Backup{
		path:    path,
		backup:  backup,
		tempDir: tempDir,
		mode:    info.Mode().Perm(),
	}, nil
}

// Restore writes the backed-up bytes over the original path
func (b *Backup) Restore() error {
	data, err := os.ReadFile(b.backup)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRestoreFailed, "cannot read backup of %s", b.path)
	}
	if err := os.WriteFile(b.path, data, b.mode); err != nil {
		return errors.Wrapf(err, errors.ErrRestoreFailed, "cannot restore %s", b.path)
	}
	return nil
}

// Discard removes the temporary backup storage. Safe to call on every
// exit path, including after Restore.
func (b *Backup) Discard() {
	if err := os.RemoveAll(b.tempDir); err != nil {
		logger := logging.GetLogger("dotfiles.backup")
		logger.Warn().
			Err(err).
			Str("tempDir", b.tempDir).
			Msg("Failed to remove backup directory")
	}
}

// EnsureExists creates path as an empty file if it does not exist.
// It reports whether the file had to be created.
func EnsureExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}

	if err := os.WriteFile(path, nil, defaultMode); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", path)
	}
	return true, nil
}

// ReadLines reads a file and splits it into lines
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	return SplitLines(string(data)), nil
}

// Overwrite replaces the contents of path with the given lines. The
// original file is backed up first and restored if the write fails, so
// a crash mid-write never leaves a partially written file behind.
func Overwrite(path string, lines []string) error {
	return overwriteWith(path, lines, os.WriteFile)
}

type writeFunc func(name string, data []byte, perm os.FileMode) error

func overwriteWith(path string, lines []string, write writeFunc) error {
	backup, err := NewBackup(path)
	if err != nil {
		return err
	}
	defer backup.Discard()

	if err := write(path, []byte(Render(lines)), backup.mode); err != nil {
		werr := errors.Wrapf(err, errors.ErrFileWrite, "failed to update %s", path)
		if rerr := backup.Restore(); rerr != nil {
			return errors.Wrapf(rerr, errors.ErrRestoreFailed,
				"failed to update %s and could not restore the original", path)
		}
		return werr
	}
	return nil
}
