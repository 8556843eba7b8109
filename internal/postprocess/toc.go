// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"fmt"
	"strings"
)

// tocHeading is the heading the table of contents is inserted under.
const tocHeading = "## Table of Contents"

// InjectTOC builds a table of contents from level-2 to level-4 headings and
// inserts it after the title heading. Text that already carries one, or has
// no section headings, is returned unchanged. Headings inside code fences
// are ignored.
func InjectTOC(markdown string) string {
	if strings.Contains(markdown, tocHeading) {
		return markdown
	}

	lines := strings.Split(markdown, "\n")

	var toc strings.Builder
	toc.WriteString(tocHeading + "\n\n")
	entries := 0
	inFence := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		level := headingLevel(trimmed)
		if level < 2 || level > 4 {
			continue
		}
		title := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		indent := strings.Repeat("  ", level-2)
		fmt.Fprintf(&toc, "%s- [%s](#%s)\n", indent, title, Slugify(title))
		entries++
	}

	if entries == 0 {
		return markdown
	}

	// Insert after the title heading and its trailing blank line, or at the
	// top when there is no title.
	insertAt := 0
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			insertAt = i + 1
			break
		}
	}

	var out []string
	out = append(out, lines[:insertAt]...)
	out = append(out, "", toc.String())
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n")
}

// headingLevel counts leading # characters followed by a space.
func headingLevel(line string) int {
	level := 0
	for _, r := range line {
		if r == '#' {
			level++
			continue
		}
		if r == ' ' && level > 0 {
			return level
		}
		break
	}
	return 0
}
