package delivsync

// Scanner discovers copy candidates in the source area for one phase.
// A missing search directory is not an error: every entry point returns
// an empty result for it, so call sites stay branch-free.
type Scanner interface {
	// ScanDocuments lists documents directly inside the phase directory
	// whose names match a configured "<prefix>_*.xlsx" pattern for the
	// target phase and whose modification time falls inside the recency
	// window. Results follow configured prefix order; overlapping
	// prefixes may yield duplicates.
	ScanDocuments(target Target, dir Direction, daysAgo int) ([]FileDescriptor, error)

	// ScanReviewRecords lists review records under the deliverables
	// tree, recursively, to traverse date-stamped subfolders.
	ScanReviewRecords(target Target, dir Direction, daysAgo int) ([]FileDescriptor, error)

	// ScanExtraFiles lists configured exact-name files under the
	// external-review tree. Extra files only travel outgoing; the
	// incoming direction always yields an empty result.
	ScanExtraFiles(target Target, dir Direction, daysAgo int) ([]FileDescriptor, error)
}
