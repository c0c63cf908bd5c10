package delivsync

import "testing"

// TestCheckResultSummary tests status rendering for listings
func TestCheckResultSummary(t *testing.T) {
	ok := CheckResult{OK: true}
	if got := ok.Summary(); got != "OK" {
		t.Errorf("Summary() = %q, want OK", got)
	}

	ng := CheckResult{OK: false, Errors: []string{"AE2 (レビュー名称) が未記入です", "AE8 (内部メンバ) が未記入です"}}
	want := "NG: AE2 (レビュー名称) が未記入です, AE8 (内部メンバ) が未記入です"
	if got := ng.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

// TestCategoryLabel tests the Japanese display labels
func TestCategoryLabel(t *testing.T) {
	cases := map[FileCategory]string{
		CategoryDocument:     "ドキュメント",
		CategoryReviewRecord: "レビュー記録表",
		CategoryExtraFile:    "例外ファイル",
	}
	for category, want := range cases {
		if got := category.Label(); got != want {
			t.Errorf("%s Label() = %q, want %q", category, got, want)
		}
	}
}

// TestExitCodeForError tests exit code mapping
func TestExitCodeForError(t *testing.T) {
	if got := ExitCodeForError(nil); got != ExitSuccess {
		t.Errorf("ExitCodeForError(nil) = %d, want %d", got, ExitSuccess)
	}
	if got := ExitCodeForError(ErrConfigNotFound); got != ExitGeneralError {
		t.Errorf("ExitCodeForError(ErrConfigNotFound) = %d, want %d", got, ExitGeneralError)
	}
}
