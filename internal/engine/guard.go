package engine

import (
	"slices"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// GuidanceMessage is shown when a run is attempted outside the icon library.
const GuidanceMessage = "This plugin should only be run within the ZDS - Assets file on the Icons page"

// DefaultAllowedFiles returns the file names a run is allowed in.
func DefaultAllowedFiles() []string {
	return []string{"Icon Library", "🦓 ZDS - Assets"}
}

// DefaultAllowedPages returns the page names a run is allowed on.
func DefaultAllowedPages() []string {
	return []string{"🦓 Icons", "Icons"}
}

// Guard restricts runs to known files and pages.
type Guard struct {
	Files []string
	Pages []string
}

// DefaultGuard returns a Guard for the default files and pages.
func DefaultGuard() *Guard {
	return &Guard{Files: DefaultAllowedFiles(), Pages: DefaultAllowedPages()}
}

// Check returns an error marked errors.ErrWrongContext unless doc is one of
// the allowed files and is open on one of the allowed pages.
func (g *Guard) Check(doc host.Document) error {
	if slices.Contains(g.Files, doc.FileName()) && slices.Contains(g.Pages, doc.PageName()) {
		return nil
	}
	err := errors.Wrapf(errors.ErrWrongContext, "file %q, page %q", doc.FileName(), doc.PageName())
	return errors.WithHint(err, GuidanceMessage)
}
