package delivsync

// Copier performs the category-specific copy operations between the
// internal and external areas. Every operation preserves content and
// modification time and overwrites an existing destination silently.
// I/O failures are returned as errors, never panics; the caller
// aggregates them into success/failure counts so one bad file never
// blocks the rest of the batch.
type Copier interface {
	// CopyDocument copies a document into the destination phase
	// directory (no subfolder), creating missing ancestors.
	CopyDocument(src FileDescriptor, target Target, dir Direction) error

	// CopyReviewRecordOutgoing copies a review record into the external
	// 成果物 folder. The internal 外部レビュー level and any date
	// subfolder are intentionally collapsed away.
	CopyReviewRecordOutgoing(src FileDescriptor, target Target) error

	// CopyReviewRecordIncoming overwrites the same-named file already
	// staged somewhere under the internal phase tree. When no
	// counterpart exists the operation is skipped and reports
	// ErrNoInternalMatch; no new file is created.
	CopyReviewRecordIncoming(src FileDescriptor, target Target) error

	// CopyExtraFile copies a configured extra file into the external
	// 成果物 folder, same as an outgoing review record.
	CopyExtraFile(src FileDescriptor, target Target) error
}
