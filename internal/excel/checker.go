// Package excel checks review artifacts for required cell content.
//
// Checks read computed cell values (cached formula results, not formula
// text) from fixed coordinates on the active sheet. The results are
// advisory only: they decorate the file listing before a copy and never
// block one. Any failure to open or parse a workbook fails closed into
// a single generic message.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/delivtools/delivsync/pkg/delivsync"
)

// Checker implements delivsync.Checker using excelize.
type Checker struct {
	logger delivsync.Logger
}

// NewChecker creates a checker. Panics on a nil logger.
func NewChecker(logger delivsync.Logger) *Checker {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Checker{logger: logger}
}

// cellCheck names one required cell and its semantic label.
type cellCheck struct {
	cell     string
	label    string
	required bool
}

// CheckReviewRecord verifies the review record header cells:
// AE2 (レビュー名称) and AE8 (内部メンバ) are always required; AE7
// (外部メンバ) only when the file name carries the (社外) marker.
func (c *Checker) CheckReviewRecord(path string) delivsync.CheckResult {
	external := strings.Contains(filepath.Base(path), "("+delivsync.ExternalMarker+")")
	return c.checkCells(path, []cellCheck{
		{cell: "AE2", label: "レビュー名称", required: true},
		{cell: "AE8", label: "内部メンバ", required: true},
		{cell: "AE7", label: "外部メンバ", required: external},
	})
}

// CheckReviewChecklist verifies the review checklist cells:
// E4/E5/E6 (案件情報) and N6 (日付) are always required; M15
// (外部メンバ) only when 社外 appears anywhere in the file name.
func (c *Checker) CheckReviewChecklist(path string) delivsync.CheckResult {
	external := strings.Contains(filepath.Base(path), delivsync.ExternalMarker)
	return c.checkCells(path, []cellCheck{
		{cell: "E4", label: "案件情報", required: true},
		{cell: "E5", label: "案件情報", required: true},
		{cell: "E6", label: "案件情報", required: true},
		{cell: "N6", label: "日付", required: true},
		{cell: "M15", label: "外部メンバ", required: external},
	})
}

// checkCells opens the workbook and reports every required cell that is
// blank. Open/read failures reduce to a single generic message.
func (c *Checker) checkCells(path string, checks []cellCheck) delivsync.CheckResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return delivsync.CheckResult{OK: false, Errors: []string{c.openFailure(path, err)}}
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	var messages []string
	for _, check := range checks {
		if !check.required {
			continue
		}
		value, err := f.GetCellValue(sheet, check.cell)
		if err != nil {
			c.logger.Error("Excelファイルの読み込みに失敗しました: %s, エラー: %v", path, err)
			return delivsync.CheckResult{
				OK:     false,
				Errors: []string{fmt.Sprintf("Excelファイルの読み込みエラー: %s", filepath.Base(path))},
			}
		}
		if strings.TrimSpace(value) == "" {
			messages = append(messages, fmt.Sprintf("%s (%s) が未記入です", check.cell, check.label))
		}
	}

	return delivsync.CheckResult{OK: len(messages) == 0, Errors: messages}
}

// openFailure logs an open failure and renders the generic message for
// the result. The cause is distinguished only in the log.
func (c *Checker) openFailure(path string, err error) string {
	name := filepath.Base(path)
	switch {
	case os.IsNotExist(err):
		c.logger.Error("ファイルが見つかりません: %s", path)
		return fmt.Sprintf("ファイルが見つかりません: %s", name)
	case os.IsPermission(err):
		c.logger.Error("ファイルが開かれているため読み込めません: %s", path)
		return fmt.Sprintf("ファイルアクセスエラー: %s", name)
	default:
		c.logger.Error("Excelファイルの読み込みに失敗しました: %s, エラー: %v", path, err)
		return fmt.Sprintf("Excelファイルの読み込みエラー: %s", name)
	}
}

// Verify Checker implements the Checker interface at compile time
var _ delivsync.Checker = (*Checker)(nil)
