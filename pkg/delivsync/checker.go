package delivsync

// Checker validates spreadsheet review artifacts before submission.
// Results are advisory: they are shown next to the file listing and
// never block a copy. Implementations fail closed, reducing any read or
// parse failure to a single generic error message in the result.
type Checker interface {
	// CheckReviewRecord verifies the required header cells of a review
	// record. The external-participant cell is required only when the
	// file name contains the (社外) marker.
	CheckReviewRecord(path string) CheckResult

	// CheckReviewChecklist verifies the required cells of a review
	// checklist: project info, date, and conditionally the external
	// participant.
	CheckReviewChecklist(path string) CheckResult
}
