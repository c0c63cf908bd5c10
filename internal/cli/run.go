package cli

import (
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/delivtools/delivsync/internal/config"
	"github.com/delivtools/delivsync/internal/excel"
	"github.com/delivtools/delivsync/internal/logging"
	"github.com/delivtools/delivsync/internal/scan"
	"github.com/delivtools/delivsync/internal/transfer"
	"github.com/delivtools/delivsync/internal/tui"
	"github.com/delivtools/delivsync/internal/ui"
	"github.com/delivtools/delivsync/pkg/delivsync"
)

// fileTypeFilter narrows which categories a run copies.
type fileTypeFilter string

const (
	filterAll       fileTypeFilter = "all"
	filterDocuments fileTypeFilter = "documents"
	filterReviews   fileTypeFilter = "reviews"
)

// runParams holds every prompt-resolved parameter of one run.
type runParams struct {
	project   string
	quarter   string
	item      string
	phases    []delivsync.Phase
	direction delivsync.Direction
	daysAgo   int
	filter    fileTypeFilter
}

// target addresses one phase for a file during execution.
func (p *runParams) target(phase delivsync.Phase) delivsync.Target {
	return delivsync.Target{
		Project: p.project,
		Quarter: p.quarter,
		Item:    p.item,
		Phase:   phase,
	}
}

// runSync is the whole interactive flow: resolve parameters, scan,
// select, confirm, copy, report counts.
func runSync(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	// Optional .env overlay; absence is not an error.
	_ = godotenv.Load()

	console := logging.NewConsoleLogger(verbose)
	var logger delivsync.Logger = console
	fileLog, logErr := logging.NewFileLogger("log")
	if logErr != nil {
		console.Error("ログファイルを作成できません: %v", logErr)
	} else {
		defer fileLog.Close()
		logger = logging.NewTeeLogger(console, fileLog)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("設定ファイルの読み込みに失敗しました: %v", err)
		return err
	}

	prompter := ui.NewPrompter()
	params, err := collectRunParams(cfg, prompter)
	if err != nil {
		return err
	}

	scanner := scan.NewService(cfg, logger)
	copier := transfer.NewService(cfg, logger)
	checker := excel.NewChecker(logger)

	logger.Info("ファイルスキャンを開始します...")
	files, err := scanAll(scanner, params)
	if err != nil {
		logger.Error("スキャンに失敗しました: %v", err)
		return err
	}
	files = applyFileTypeFilter(files, params.filter)

	if len(files) == 0 {
		prompter.Println("\n対象ファイルが見つかりませんでした。")
		return nil
	}

	selected, err := selectFiles(prompter, checker, files, params.direction)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return nil
	}

	confirmed, err := prompter.Confirm("\nコピーを実行しますか？ (y/n): ")
	if err != nil {
		return err
	}
	if !confirmed {
		prompter.Println("処理を中止しました。")
		return nil
	}

	prompter.Println("\nコピーを実行中...")
	success, failure := executeCopy(copier, selected, params)

	prompter.Println("\n=== 実行結果 ===")
	prompter.Printf("成功: %d件\n", success)
	prompter.Printf("失敗: %d件\n", failure)
	if fileLog != nil {
		prompter.Printf("\nログファイル: %s\n", fileLog.Path())
	}
	return nil
}

// collectRunParams resolves project/quarter/item from the settings
// defaults or prompts, then asks for phase set, direction, file-type
// filter, and the recency window.
func collectRunParams(cfg *config.Config, prompter *ui.Prompter) (*runParams, error) {
	prompter.Println("\n=== ファイルコピーチェックツール ===")
	prompter.Println()

	params := &runParams{}
	var err error

	if cfg.ProjectName != "" {
		params.project = cfg.ProjectName
		prompter.Printf("案件名: %s (設定ファイルから取得)\n", params.project)
	} else if params.project, err = prompter.Ask("案件名を入力してください: "); err != nil {
		return nil, err
	}

	if cfg.Quarter != "" {
		params.quarter = cfg.Quarter
		prompter.Printf("クォータ: %s (設定ファイルから取得)\n", params.quarter)
	} else if params.quarter, err = prompter.Ask("クォータを入力してください (例: 2025_4Q): "); err != nil {
		return nil, err
	}

	if cfg.ItemName != "" {
		params.item = cfg.ItemName
		prompter.Printf("アイテム名: %s (設定ファイルから取得)\n", params.item)
	} else if params.item, err = prompter.Ask("アイテム名を入力してください (空欄可): "); err != nil {
		return nil, err
	}

	if params.phases, err = choosePhases(prompter); err != nil {
		return nil, err
	}
	if params.direction, err = chooseDirection(prompter); err != nil {
		return nil, err
	}
	if params.filter, err = chooseFileType(prompter); err != nil {
		return nil, err
	}

	daysInput, err := prompter.Ask("\n期間フィルタ（N日前以降、0=今日のみ）: ")
	if err != nil {
		return nil, err
	}
	if params.daysAgo, err = strconv.Atoi(daysInput); err != nil {
		params.daysAgo = 0
	}

	return params, nil
}

// choosePhases asks for a single phase or all phases. An invalid or
// cancelled choice falls back to all phases.
func choosePhases(prompter *ui.Prompter) ([]delivsync.Phase, error) {
	if tui.IsInteractive() {
		options := make([]tui.Option, 0, len(delivsync.AllPhases)+1)
		for _, p := range delivsync.AllPhases {
			options = append(options, tui.Option{Label: p.Folder(), Value: p.Code()})
		}
		options = append(options, tui.Option{Label: "全工程", Value: "all"})

		chosen, err := tui.Select("工程を選択してください", options)
		if err != nil {
			return nil, err
		}
		if chosen == nil || chosen.Value == "all" {
			return delivsync.AllPhases, nil
		}
		phase, err := delivsync.ParsePhase(chosen.Value)
		if err != nil {
			return nil, err
		}
		return []delivsync.Phase{phase}, nil
	}

	prompter.Println("\n工程を選択してください:")
	for i, p := range delivsync.AllPhases {
		prompter.Printf("%d. %s\n", i+1, p.Folder())
	}
	prompter.Printf("%d. 全工程\n", len(delivsync.AllPhases)+1)

	choice, err := prompter.Ask("選択 (1-8): ")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(delivsync.AllPhases) {
		return delivsync.AllPhases, nil
	}
	return []delivsync.Phase{delivsync.AllPhases[n-1]}, nil
}

// chooseDirection asks for the transfer direction. Anything but an
// explicit outgoing choice means incoming.
func chooseDirection(prompter *ui.Prompter) (delivsync.Direction, error) {
	if tui.IsInteractive() {
		chosen, err := tui.Select("動作モードを選択してください", []tui.Option{
			{Label: "Outgoing", Description: "内部→外部: 提出", Value: string(delivsync.DirectionOutgoing)},
			{Label: "Incoming", Description: "外部→内部: 取込", Value: string(delivsync.DirectionIncoming)},
		})
		if err != nil {
			return "", err
		}
		if chosen != nil && chosen.Value == string(delivsync.DirectionOutgoing) {
			return delivsync.DirectionOutgoing, nil
		}
		return delivsync.DirectionIncoming, nil
	}

	prompter.Println("\n動作モードを選択してください:")
	prompter.Println("1. Outgoing (内部→外部: 提出)")
	prompter.Println("2. Incoming (外部→内部: 取込)")

	choice, err := prompter.Ask("選択 (1-2): ")
	if err != nil {
		return "", err
	}
	if choice == "1" {
		return delivsync.DirectionOutgoing, nil
	}
	return delivsync.DirectionIncoming, nil
}

// chooseFileType asks which categories to copy. Default is all.
func chooseFileType(prompter *ui.Prompter) (fileTypeFilter, error) {
	if tui.IsInteractive() {
		chosen, err := tui.Select("コピー対象ファイルタイプを選択してください", []tui.Option{
			{Label: "すべて", Value: string(filterAll)},
			{Label: "ドキュメントのみ", Value: string(filterDocuments)},
			{Label: "レビュー記録表のみ", Value: string(filterReviews)},
		})
		if err != nil {
			return "", err
		}
		if chosen == nil {
			return filterAll, nil
		}
		return fileTypeFilter(chosen.Value), nil
	}

	prompter.Println("\nコピー対象ファイルタイプを選択してください:")
	prompter.Println("1. すべて")
	prompter.Println("2. ドキュメントのみ")
	prompter.Println("3. レビュー記録表のみ")

	choice, err := prompter.Ask("選択 (1-3): ")
	if err != nil {
		return "", err
	}
	switch choice {
	case "2":
		return filterDocuments, nil
	case "3":
		return filterReviews, nil
	}
	return filterAll, nil
}

// scanAll runs every category scan for every requested phase and
// returns the hits grouped by category: documents first, then review
// records, then extra files. The extra-file scan guards the incoming
// direction itself.
func scanAll(scanner delivsync.Scanner, params *runParams) ([]delivsync.FileDescriptor, error) {
	var documents, reviews, extras []delivsync.FileDescriptor

	for _, phase := range params.phases {
		target := params.target(phase)

		docs, err := scanner.ScanDocuments(target, params.direction, params.daysAgo)
		if err != nil {
			return nil, err
		}
		documents = append(documents, docs...)

		records, err := scanner.ScanReviewRecords(target, params.direction, params.daysAgo)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, records...)

		extra, err := scanner.ScanExtraFiles(target, params.direction, params.daysAgo)
		if err != nil {
			return nil, err
		}
		extras = append(extras, extra...)
	}

	all := make([]delivsync.FileDescriptor, 0, len(documents)+len(reviews)+len(extras))
	all = append(all, documents...)
	all = append(all, reviews...)
	all = append(all, extras...)
	return all, nil
}

// applyFileTypeFilter narrows the scan result to the chosen categories.
// The documents filter keeps extra files too; they travel with the
// document set.
func applyFileTypeFilter(files []delivsync.FileDescriptor, filter fileTypeFilter) []delivsync.FileDescriptor {
	if filter == filterAll {
		return files
	}

	var kept []delivsync.FileDescriptor
	for _, f := range files {
		switch filter {
		case filterDocuments:
			if f.Category == delivsync.CategoryDocument || f.Category == delivsync.CategoryExtraFile {
				kept = append(kept, f)
			}
		case filterReviews:
			if f.Category == delivsync.CategoryReviewRecord {
				kept = append(kept, f)
			}
		}
	}
	return kept
}

// selectFiles shows the indexed listing (with check status for outgoing
// review records) and returns the subset the user picked. An empty
// answer aborts; "all" selects everything.
func selectFiles(prompter *ui.Prompter, checker delivsync.Checker, files []delivsync.FileDescriptor, dir delivsync.Direction) ([]delivsync.FileDescriptor, error) {
	prompter.Println("\n=== ファイル一覧 ===")
	prompter.Println()

	for i, f := range files {
		status := ""
		if dir == delivsync.DirectionOutgoing && f.Category == delivsync.CategoryReviewRecord {
			status = " [" + checker.CheckReviewRecord(f.Path).Summary() + "]"
		}
		prompter.Printf("%3d. [%s] %s%s\n", i+1, f.Category.Label(), filepath.Base(f.Path), status)
	}

	prompter.Printf("\n合計: %d件\n", len(files))
	prompter.Println("\nコピーするファイルを選択してください:")
	prompter.Println("- 番号をカンマ区切りで指定 (例: 1,3,5)")
	prompter.Println("- 範囲指定も可能 (例: 1-5,7,9-11)")
	prompter.Println("- 'all' ですべて選択")
	prompter.Println("- Enter キーで処理を中止")

	answer, err := prompter.Ask("\n選択: ")
	if err != nil {
		return nil, err
	}
	if answer == "" {
		prompter.Println("処理を中止しました。")
		return nil, nil
	}
	if answer == "all" || answer == "ALL" {
		return files, nil
	}

	indices := ui.ParseSelection(answer, len(files))
	if len(indices) == 0 {
		prompter.Println("有効な選択がありません。処理を中止しました。")
		return nil, nil
	}

	selected := make([]delivsync.FileDescriptor, 0, len(indices))
	for i, f := range files {
		if indices[i+1] {
			selected = append(selected, f)
		}
	}

	prompter.Printf("\n%d件のファイルを選択しました。\n", len(selected))
	return selected, nil
}

// executeCopy routes each selected file to its category-specific copy
// operation and aggregates per-file results. A failed copy never stops
// the batch.
func executeCopy(copier delivsync.Copier, files []delivsync.FileDescriptor, params *runParams) (success, failure int) {
	for _, f := range files {
		target := params.target(f.Phase)

		var err error
		switch f.Category {
		case delivsync.CategoryDocument:
			err = copier.CopyDocument(f, target, params.direction)
		case delivsync.CategoryReviewRecord:
			if params.direction == delivsync.DirectionOutgoing {
				err = copier.CopyReviewRecordOutgoing(f, target)
			} else {
				err = copier.CopyReviewRecordIncoming(f, target)
			}
		case delivsync.CategoryExtraFile:
			err = copier.CopyExtraFile(f, target)
		}

		if err != nil {
			failure++
		} else {
			success++
		}
	}
	return success, failure
}
