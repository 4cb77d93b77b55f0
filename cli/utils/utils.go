package utils

import (
	"fmt"
	"strings"
	"time"

	"lostfound/shared/constants"
)

// GenerateTitle produces the header line used at the top of each view.
func GenerateTitle(subtitle string) string {
	return fmt.Sprintf("Lost & Found ▸ %s", subtitle)
}

// GenerateDescriptionSection renders a named block of detail text with
// an underlined header, for use inside huh notes.
func GenerateDescriptionSection(title, content string) string {
	return fmt.Sprintf("%s\n%s\n%s",
		title,
		strings.Repeat("─", len(title)+2),
		content)
}

// FormatDate renders an item timestamp the way the web app does, and
// leaves a placeholder for zero dates so cards still line up.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	return t.Local().Format(constants.DateFormat)
}
