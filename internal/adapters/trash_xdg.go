package adapters

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"agesweep/internal/ports"
)

// TrashAdapter moves paths into a freedesktop.org trash directory:
// files land in <trash>/files and each gets a matching
// <trash>/info/<name>.trashinfo recording the original path and
// deletion date, so desktop environments can restore them. Dir
// defaults to $XDG_DATA_HOME/Trash (falling back to
// ~/.local/share/Trash) when empty.
type TrashAdapter struct {
	Dir   string
	Clock func() time.Time
}

func NewTrashAdapter() TrashAdapter {
	return TrashAdapter{Clock: time.Now}
}

func (a TrashAdapter) MoveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve path " + path).
			WithCause(err)
	}
	trashDir, err := a.trashDir()
	if err != nil {
		return err
	}
	filesDir := filepath.Join(trashDir, "files")
	infoDir := filepath.Join(trashDir, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create trash directory").
				WithCause(err)
		}
	}

	name, infoPath, err := a.reserveName(infoDir, abs)
	if err != nil {
		return err
	}
	target := filepath.Join(filesDir, name)
	if err := movePath(abs, target); err != nil {
		// Release the reserved info entry so a retry can reuse the name.
		_ = os.Remove(infoPath)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to move " + abs + " to trash").
			WithCause(err)
	}
	return nil
}

func (a TrashAdapter) trashDir() (string, error) {
	if a.Dir != "" {
		return a.Dir, nil
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "Trash"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to locate home directory").
			WithCause(err)
	}
	return filepath.Join(home, ".local", "share", "Trash"), nil
}

// reserveName claims a unique trash entry name by exclusively creating
// the .trashinfo file, per the freedesktop trash spec.
func (a TrashAdapter) reserveName(infoDir string, original string) (string, string, error) {
	now := time.Now()
	if a.Clock != nil {
		now = a.Clock()
	}
	base := filepath.Base(original)
	for attempt := 0; ; attempt++ {
		name := base
		if attempt > 0 {
			name = fmt.Sprintf("%s.%d", base, attempt)
		}
		infoPath := filepath.Join(infoDir, name+".trashinfo")
		file, err := os.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write trash info").
				WithCause(err)
		}
		content := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
			escapeTrashPath(original), now.Format("2006-01-02T15:04:05"))
		if _, err := file.WriteString(content); err != nil {
			file.Close()
			_ = os.Remove(infoPath)
			return "", "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write trash info").
				WithCause(err)
		}
		if err := file.Close(); err != nil {
			_ = os.Remove(infoPath)
			return "", "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write trash info").
				WithCause(err)
		}
		return name, infoPath, nil
	}
}

// escapeTrashPath percent-encodes a path the way the trash spec wants:
// like a URL path, slashes kept.
func escapeTrashPath(path string) string {
	u := url.URL{Path: path}
	return u.EscapedPath()
}

// movePath renames src to dst, falling back to copy+remove for regular
// files when the trash directory lives on another device.
func movePath(src string, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	info, statErr := os.Lstat(src)
	if statErr != nil {
		return statErr
	}
	if info.IsDir() {
		if copyErr := copyTree(src, dst, info); copyErr != nil {
			return copyErr
		}
		return os.RemoveAll(src)
	}
	if !info.Mode().IsRegular() {
		return err
	}
	if copyErr := copyFile(src, dst, info.Mode().Perm()); copyErr != nil {
		return copyErr
	}
	return os.Remove(src)
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return errors.Is(linkErr.Err, syscall.EXDEV)
}

func copyFile(src string, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}

func copyTree(src string, dst string, info os.FileInfo) error {
	if err := os.Mkdir(dst, info.Mode().Perm()); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		childSrc := filepath.Join(src, entry.Name())
		childDst := filepath.Join(dst, entry.Name())
		childInfo, err := entry.Info()
		if err != nil {
			return err
		}
		switch {
		case childInfo.IsDir():
			err = copyTree(childSrc, childDst, childInfo)
		case childInfo.Mode().IsRegular():
			err = copyFile(childSrc, childDst, childInfo.Mode().Perm())
		default:
			// Symlinks and special files are recreated as links where
			// possible, otherwise skipped.
			if target, linkErr := os.Readlink(childSrc); linkErr == nil {
				err = os.Symlink(target, childDst)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var _ ports.TrashPort = TrashAdapter{}
