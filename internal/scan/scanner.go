// Package scan discovers copy candidates in the internal and external
// area trees.
//
// Discovery is split across the three file categories, each with its own
// search root and matching rule. A missing search directory always
// yields an empty result rather than an error, so orchestration code
// never branches on directory existence. The recency filter compares
// file modification times against local midnight, so a window of 0 days
// means "modified today only".
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/delivtools/delivsync/internal/config"
	"github.com/delivtools/delivsync/internal/pathing"
	"github.com/delivtools/delivsync/pkg/delivsync"
)

// Service implements delivsync.Scanner over the OS filesystem.
// Not safe for concurrent use; a run is single-threaded by design.
type Service struct {
	cfg    *config.Config
	logger delivsync.Logger
	now    func() time.Time
}

// NewService creates a scanner bound to the loaded settings.
// Panics on nil dependencies: those are programmer errors that should
// fail loudly at startup, not surface as nil dereferences mid-scan.
func NewService(cfg *config.Config, logger delivsync.Logger) *Service {
	if cfg == nil {
		panic("cfg cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{cfg: cfg, logger: logger, now: time.Now}
}

// NewServiceWithClock creates a scanner with an injected clock.
// Primarily useful for recency-window tests.
func NewServiceWithClock(cfg *config.Config, logger delivsync.Logger, now func() time.Time) *Service {
	svc := NewService(cfg, logger)
	if now == nil {
		panic("now cannot be nil")
	}
	svc.now = now
	return svc
}

// cutoff returns the oldest accepted modification time: local midnight
// minus daysAgo days.
func (s *Service) cutoff(daysAgo int) time.Time {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -daysAgo)
}

// ScanDocuments lists documents directly inside the phase directory.
// Each configured prefix for the phase is matched as "<prefix>_*.xlsx"
// against immediate children only; subfolders are never descended into.
// Prefix order follows the settings file. Overlapping prefixes may list
// the same file twice; that is accepted, not deduplicated.
func (s *Service) ScanDocuments(target delivsync.Target, dir delivsync.Direction, daysAgo int) ([]delivsync.FileDescriptor, error) {
	prefixes := s.cfg.DocumentPrefixes[target.Phase]
	if len(prefixes) == 0 {
		return nil, nil
	}

	phaseDir := pathing.BuildPhasePath(s.cfg.SourceRoot(dir), target)
	entries, err := os.ReadDir(phaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	cutoff := s.cutoff(daysAgo)
	var found []delivsync.FileDescriptor
	for _, prefix := range prefixes {
		pattern := prefix + "_*" + delivsync.DocumentExtension
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			ok, matchErr := filepath.Match(pattern, entry.Name())
			if matchErr != nil || !ok {
				continue
			}
			info, infoErr := entry.Info()
			if infoErr != nil || info.ModTime().Before(cutoff) {
				continue
			}
			found = append(found, delivsync.FileDescriptor{
				Path:     filepath.Join(phaseDir, entry.Name()),
				Category: delivsync.CategoryDocument,
				Phase:    target.Phase,
			})
		}
	}

	s.logger.Verbose("scanned documents in %s: %d hit(s)", phaseDir, len(found))
	return found, nil
}

// ScanReviewRecords lists review records under the deliverables tree.
// Outgoing searches 成果物/外部レビュー in the internal area; incoming
// searches 成果物 in the external area. Both search recursively so
// date-stamped subfolders are traversed. The filename rule is a bare
// prefix match on レビュー記録表(社外) with an .xlsx extension; no
// separator is required after the prefix.
func (s *Service) ScanReviewRecords(target delivsync.Target, dir delivsync.Direction, daysAgo int) ([]delivsync.FileDescriptor, error) {
	var searchRoot string
	if dir == delivsync.DirectionOutgoing {
		searchRoot = pathing.ExternalReviewPath(s.cfg.SourceRoot(dir), target)
	} else {
		searchRoot = pathing.ArtifactsPath(s.cfg.SourceRoot(dir), target)
	}

	found, err := s.walkMatching(searchRoot, target.Phase, delivsync.CategoryReviewRecord, daysAgo, func(name string) bool {
		return strings.HasPrefix(name, delivsync.ReviewRecordPrefix) &&
			strings.HasSuffix(name, delivsync.DocumentExtension)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Verbose("scanned review records in %s: %d hit(s)", searchRoot, len(found))
	return found, nil
}

// ScanExtraFiles lists configured exact-name files under the internal
// 成果物/外部レビュー tree. Extra files only travel outgoing; incoming
// always yields an empty result. A configured name may carry glob
// metacharacters, which are honored; a malformed pattern falls back to
// literal comparison.
func (s *Service) ScanExtraFiles(target delivsync.Target, dir delivsync.Direction, daysAgo int) ([]delivsync.FileDescriptor, error) {
	if dir != delivsync.DirectionOutgoing {
		return nil, nil
	}
	if len(s.cfg.ExtraFiles) == 0 {
		return nil, nil
	}

	searchRoot := pathing.ExternalReviewPath(s.cfg.SourceRoot(dir), target)

	var found []delivsync.FileDescriptor
	for _, name := range s.cfg.ExtraFiles {
		pattern := name
		hits, err := s.walkMatching(searchRoot, target.Phase, delivsync.CategoryExtraFile, daysAgo, func(candidate string) bool {
			ok, matchErr := filepath.Match(pattern, candidate)
			if matchErr != nil {
				return candidate == pattern
			}
			return ok
		})
		if err != nil {
			return nil, err
		}
		found = append(found, hits...)
	}

	s.logger.Verbose("scanned extra files in %s: %d hit(s)", searchRoot, len(found))
	return found, nil
}

// walkMatching recursively collects regular files under root whose name
// satisfies match and whose modification time is inside the recency
// window. A missing root is an empty result.
func (s *Service) walkMatching(root string, phase delivsync.Phase, category delivsync.FileCategory, daysAgo int, match func(name string) bool) ([]delivsync.FileDescriptor, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	cutoff := s.cutoff(daysAgo)
	var found []delivsync.FileDescriptor
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !match(d.Name()) {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil || info.ModTime().Before(cutoff) {
			return nil
		}
		found = append(found, delivsync.FileDescriptor{
			Path:     path,
			Category: category,
			Phase:    phase,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Verify Service implements the Scanner interface at compile time
var _ delivsync.Scanner = (*Service)(nil)
