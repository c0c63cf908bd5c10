package delivsync

import (
	"fmt"
	"strings"
)

// Phase identifies one stage of the delivery workflow by its three-digit code.
// The set of phases is closed; folder names on disk are "<code>.<name>".
type Phase string

const (
	Phase030 Phase = "030" // 調査
	Phase040 Phase = "040" // 設計
	Phase050 Phase = "050" // 製造
	Phase060 Phase = "060" // UD作成
	Phase070 Phase = "070" // UD消化
	Phase080 Phase = "080" // SD作成
	Phase090 Phase = "090" // SD消化
)

// AllPhases lists every phase in workflow order.
// The order is significant for scanning and display.
var AllPhases = []Phase{
	Phase030,
	Phase040,
	Phase050,
	Phase060,
	Phase070,
	Phase080,
	Phase090,
}

// phaseNames maps each phase code to its Japanese folder-name suffix.
var phaseNames = map[Phase]string{
	Phase030: "調査",
	Phase040: "設計",
	Phase050: "製造",
	Phase060: "UD作成",
	Phase070: "UD消化",
	Phase080: "SD作成",
	Phase090: "SD消化",
}

// Code returns the three-digit phase code (e.g. "030").
func (p Phase) Code() string {
	return string(p)
}

// Name returns the Japanese phase name (e.g. "調査").
func (p Phase) Name() string {
	return phaseNames[p]
}

// Folder returns the on-disk folder name for the phase (e.g. "030.調査").
func (p Phase) Folder() string {
	return fmt.Sprintf("%s.%s", p.Code(), p.Name())
}

// Valid reports whether p is one of the seven known phases.
func (p Phase) Valid() bool {
	_, ok := phaseNames[p]
	return ok
}

// ParsePhase converts a phase code string to a Phase.
// Returns ErrUnknownPhase for codes outside the closed set.
func ParsePhase(code string) (Phase, error) {
	p := Phase(strings.TrimSpace(code))
	if !p.Valid() {
		return "", fmt.Errorf("phase code %q: %w", code, ErrUnknownPhase)
	}
	return p, nil
}

// PhaseFromPath infers the phase of a file by matching path segments
// against the phase folder names. Returns ErrUnknownPhase when no
// segment is a phase folder.
func PhaseFromPath(path string) (Phase, error) {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, segment := range segments {
		for _, p := range AllPhases {
			if segment == p.Folder() {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("path %q contains no phase folder: %w", path, ErrUnknownPhase)
}
