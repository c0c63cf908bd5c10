// Package pathing builds canonical directory paths inside the internal
// and external area trees.
//
// The layout convention is fixed:
//
//	<root>/<project>/<quarter>/[<item>/]<code>.<name>/
//	<root>/.../<code>.<name>/成果物/[外部レビュー/[<date>/]]<file>
//
// Path construction is pure string computation; this package never
// touches the filesystem. Scanner and copier each re-derive paths
// through these functions so both sides always agree on the layout.
package pathing

import (
	"path/filepath"
	"strings"

	"github.com/delivtools/delivsync/pkg/delivsync"
)

// BuildPhasePath returns the phase directory for a target under root.
// A blank (or whitespace-only) item omits the item level entirely; this
// conditional skip is the only branching in the layout.
func BuildPhasePath(root string, target delivsync.Target) string {
	if strings.TrimSpace(target.Item) != "" {
		return filepath.Join(root, target.Project, target.Quarter, target.Item, target.Phase.Folder())
	}
	return filepath.Join(root, target.Project, target.Quarter, target.Phase.Folder())
}

// ArtifactsPath returns the 成果物 folder inside the phase directory.
func ArtifactsPath(root string, target delivsync.Target) string {
	return filepath.Join(BuildPhasePath(root, target), delivsync.ArtifactsFolderName)
}

// ExternalReviewPath returns the 成果物/外部レビュー folder inside the
// phase directory. In the internal area this folder may hold
// date-stamped subfolders.
func ExternalReviewPath(root string, target delivsync.Target) string {
	return filepath.Join(ArtifactsPath(root, target), delivsync.ExternalReviewFolderName)
}
