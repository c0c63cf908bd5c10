package delivsync

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error (including configuration load failure)
//   - 2: CLI usage error (misuse of command line)
//   - 3: Internal panic
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitPanic        = 3
)

const (
	// ArtifactsFolderName is the deliverables subfolder inside a phase
	// directory.
	ArtifactsFolderName = "成果物"

	// ExternalReviewFolderName is the externally-reviewed deliverables
	// subfolder inside 成果物. In the internal area it may contain
	// date-stamped subfolders; the external area is flat.
	ExternalReviewFolderName = "外部レビュー"

	// ReviewRecordPrefix is the fixed filename prefix of externally
	// shared review records. Matching is a bare prefix match: no
	// separator is required after the literal, so both
	// "レビュー記録表(社外)_1回目.xlsx" and "レビュー記録表(社外)調査.xlsx"
	// qualify.
	ReviewRecordPrefix = "レビュー記録表(社外)"

	// DocumentExtension is the only extension scanned for documents and
	// review records.
	DocumentExtension = ".xlsx"

	// ExternalMarker marks a file name as the customer-facing variant,
	// which makes the external-participant cell required during checks.
	ExternalMarker = "社外"
)
