// Package transfer performs the category-specific copy operations
// between the internal and external areas.
//
// All operations share one copy primitive that preserves file content
// and modification time and silently overwrites an existing
// destination. Failures never abort a batch: each operation reduces its
// error to a return value that the orchestrator aggregates into
// success/failure counts. There are no retries; re-running a failed
// copy is safe because every operation is an idempotent overwrite.
package transfer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/delivtools/delivsync/internal/config"
	"github.com/delivtools/delivsync/internal/pathing"
	"github.com/delivtools/delivsync/pkg/delivsync"
)

// Service implements delivsync.Copier over the OS filesystem.
// Not safe for concurrent use; a run is single-threaded by design.
type Service struct {
	cfg    *config.Config
	logger delivsync.Logger
}

// NewService creates a copier bound to the loaded settings.
// Panics on nil dependencies; see scan.NewService for the rationale.
func NewService(cfg *config.Config, logger delivsync.Logger) *Service {
	if cfg == nil {
		panic("cfg cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{cfg: cfg, logger: logger}
}

// CopyDocument copies a document into the destination phase directory
// (no subfolder), creating missing ancestors. The file name is carried
// over unchanged.
func (s *Service) CopyDocument(src delivsync.FileDescriptor, target delivsync.Target, dir delivsync.Direction) error {
	destDir := pathing.BuildPhasePath(s.cfg.DestRoot(dir), target)
	return s.copyInto(src, destDir, "ドキュメント")
}

// CopyReviewRecordOutgoing copies a review record into the external
// 成果物 folder. The internal 外部レビュー level and any date subfolder
// are intentionally collapsed away: the external area stays flat.
func (s *Service) CopyReviewRecordOutgoing(src delivsync.FileDescriptor, target delivsync.Target) error {
	destDir := pathing.ArtifactsPath(s.cfg.BasePathExternal, target)
	return s.copyInto(src, destDir, "レビュー記録表")
}

// CopyReviewRecordIncoming overwrites the same-named file already staged
// under the internal phase tree, wherever it sits. A record with no
// internal counterpart is skipped and reported as ErrNoInternalMatch;
// only a file that was staged internally should receive the customer's
// returned reviewed copy, so no new file is ever created.
func (s *Service) CopyReviewRecordIncoming(src delivsync.FileDescriptor, target delivsync.Target) error {
	name := filepath.Base(src.Path)
	dest, err := s.FindInternalMatch(name, target)
	if err != nil {
		return err
	}
	if dest == "" {
		s.logger.Error("コピー先が見つかりません（スキップ）: %s", name)
		return fmt.Errorf("%s: %w", name, delivsync.ErrNoInternalMatch)
	}
	if err := s.copyFile(src.Path, dest); err != nil {
		return err
	}
	s.logger.Info("レビュー記録表をコピーしました: %s -> %s", name, dest)
	return nil
}

// CopyExtraFile copies a configured extra file into the external 成果物
// folder, flattened the same way as an outgoing review record.
func (s *Service) CopyExtraFile(src delivsync.FileDescriptor, target delivsync.Target) error {
	destDir := pathing.ArtifactsPath(s.cfg.BasePathExternal, target)
	return s.copyInto(src, destDir, "例外ファイル")
}

// FindInternalMatch recursively searches the internal phase tree for a
// regular file named exactly name. Returns the empty string when the
// tree or the file does not exist.
func (s *Service) FindInternalMatch(name string, target delivsync.Target) (string, error) {
	phaseDir := pathing.BuildPhasePath(s.cfg.BasePathInternal, target)
	if _, err := os.Stat(phaseDir); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var match string
	err := filepath.WalkDir(phaseDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if match != "" {
			return fs.SkipAll
		}
		if d.Type().IsRegular() && d.Name() == name {
			match = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return match, nil
}

// copyInto creates destDir (with ancestors) and copies the source file
// into it under its own name, logging the result under label.
func (s *Service) copyInto(src delivsync.FileDescriptor, destDir, label string) error {
	name := filepath.Base(src.Path)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		s.logger.Error("ファイルコピーに失敗しました: %s, エラー: %v", src.Path, err)
		return err
	}
	dest := filepath.Join(destDir, name)
	if err := s.copyFile(src.Path, dest); err != nil {
		return err
	}
	s.logger.Info("%sをコピーしました: %s -> %s", label, name, dest)
	return nil
}

// copyFile copies src to dest, overwriting dest if present, and carries
// the source modification time over to the destination.
func (s *Service) copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return s.classify(src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return s.classify(src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return s.classify(dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return s.classify(dest, err)
	}
	if err := out.Close(); err != nil {
		return s.classify(dest, err)
	}

	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}

// classify reduces an I/O failure to a logged, typed error.
// Permission errors get their own sentinel because the common cause is
// a spreadsheet still open in Excel.
func (s *Service) classify(path string, err error) error {
	if os.IsPermission(err) {
		s.logger.Error("ファイルが開かれているためコピーできません: %s", path)
		return fmt.Errorf("%s: %w", path, delivsync.ErrFileInUse)
	}
	s.logger.Error("ファイルコピーに失敗しました: %s, エラー: %v", path, err)
	return err
}

// Verify Service implements the Copier interface at compile time
var _ delivsync.Copier = (*Service)(nil)
