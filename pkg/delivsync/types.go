package delivsync

// Direction selects which root tree is the source and which is the
// destination for a transfer run.
type Direction string

const (
	// DirectionOutgoing copies from the internal area to the external
	// area (submission to the customer).
	DirectionOutgoing Direction = "OUTGOING"

	// DirectionIncoming copies from the external area back to the
	// internal area (intake of customer deliverables).
	DirectionIncoming Direction = "INCOMING"
)

// String returns the direction identifier.
func (d Direction) String() string {
	return string(d)
}

// FileCategory classifies a discovered file and determines which copy
// routine handles it.
type FileCategory string

const (
	CategoryDocument     FileCategory = "document"
	CategoryReviewRecord FileCategory = "review_record"
	CategoryExtraFile    FileCategory = "extra_file"
)

// Label returns the Japanese display label used in file listings.
func (c FileCategory) Label() string {
	switch c {
	case CategoryDocument:
		return "ドキュメント"
	case CategoryReviewRecord:
		return "レビュー記録表"
	case CategoryExtraFile:
		return "例外ファイル"
	}
	return string(c)
}

// Target addresses one phase directory within a root tree: which project,
// quarter, optional item level, and phase. Item may be blank, in which
// case the item level is omitted from every derived path.
type Target struct {
	Project string
	Quarter string
	Item    string
	Phase   Phase
}

// FileDescriptor is a file located by a scan together with its inferred
// category and phase. Descriptors are transient: created during a scan,
// consumed by a single copy call, never persisted.
type FileDescriptor struct {
	Path     string
	Category FileCategory
	Phase    Phase
}

// CheckResult is the outcome of a spreadsheet content check. It is
// display-only: a failed check never blocks a copy.
type CheckResult struct {
	OK     bool
	Errors []string
}

// Summary renders the result as a short status string for file listings.
func (r CheckResult) Summary() string {
	if r.OK {
		return "OK"
	}
	msg := "NG"
	for i, e := range r.Errors {
		if i == 0 {
			msg += ": " + e
		} else {
			msg += ", " + e
		}
	}
	return msg
}
