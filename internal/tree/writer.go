package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	kerrors "github.com/PolarWolf314/libset/internal/errors"
	"github.com/PolarWolf314/libset/internal/format"
	logger "github.com/PolarWolf314/libset/internal/logging"
)

// Writer materializes element trees on a filesystem.
type Writer struct {
	fs  afero.Fs
	log logger.Logger
}

// NewWriter returns a Writer over fs. A nil fs means the OS filesystem.
func NewWriter(fs afero.Fs, log logger.Logger) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs, log: log}
}

// Write creates root and its subtree in pre-order. Every node must carry
// an absolute path.
//
// Directories are created only when missing and never recursively, since
// every ancestor is written before its children. Files are truncated and
// rewritten on every call. The first failure stops the walk and nothing
// already written is rolled back.
func (w *Writer) Write(root *Node) error {
	return root.Walk(w.writeNode)
}

func (w *Writer) writeNode(n *Node) error {
	if n.path == "" {
		return fmt.Errorf("%w: %s %q has no path, attach it under a rooted node", kerrors.ErrInvalidTree, n.kind, n.name)
	}
	if !filepath.IsAbs(n.path) {
		return fmt.Errorf("%w: %s %s is relative, attach it under a rooted node", kerrors.ErrInvalidTree, n.kind, n.path)
	}

	switch n.kind {
	case Directory:
		return w.writeDirectory(n)
	case File:
		if len(n.children) > 0 {
			return fmt.Errorf("%w: file %s has children", kerrors.ErrInvalidTree, n.path)
		}
		return w.writeFile(n)
	default:
		return fmt.Errorf("%w: %s has unknown kind %d", kerrors.ErrInvalidTree, n.path, int(n.kind))
	}
}

func (w *Writer) writeDirectory(n *Node) error {
	exists, err := afero.DirExists(w.fs, n.path)
	if err != nil {
		return kerrors.IO("stat", n.path, err)
	}
	if exists {
		w.log.Debugf("Directory %s already exists", n.path)
		return nil
	}
	if err := w.fs.Mkdir(n.path, 0o755); err != nil {
		return kerrors.IO("mkdir", n.path, err)
	}
	w.log.Infof("Created directory %s", n.path)
	return nil
}

func (w *Writer) writeFile(n *Node) error {
	var data []byte
	if n.content != nil {
		encoded, err := format.Marshal(n.content, n.format)
		if err != nil {
			return fmt.Errorf("writing %s: %w", n.path, err)
		}
		data = encoded
	}

	f, err := w.fs.OpenFile(n.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return kerrors.IO("create", n.path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return kerrors.IO("write", n.path, err)
	}
	if err := f.Close(); err != nil {
		return kerrors.IO("close", n.path, err)
	}
	w.log.Infof("Wrote %s (%d bytes, %s)", n.path, len(data), n.format)
	return nil
}
