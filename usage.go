package clipper

import (
	"fmt"
	"slices"
	"strings"
)

// MakeHelp renders the application help text from the registered descriptors
// and the Clipper metadata. Options and flags are listed alphabetically by
// primary name; descriptions wrap at 80 columns. MakeHelp is pure formatting
// over the registry and never mutates descriptor state.
func (c *Clipper) MakeHelp() string {
	var b strings.Builder

	if c.Description != "" {
		b.WriteString("DESCRIPTION\n")
		for _, line := range wrapText(c.Description, 78) {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("SYNOPSIS\n")
	b.WriteString("  " + c.synopsis() + "\n")

	flagRows := c.flagRows()
	if len(flagRows) > 0 {
		b.WriteString("\nFLAGS\n")
		writeRows(&b, flagRows)
	}

	optionRows := c.optionRows()
	if len(optionRows) > 0 {
		b.WriteString("\nOPTIONS\n")
		writeRows(&b, optionRows)
	}

	if c.License != "" {
		b.WriteString("\nLICENSE\n  " + c.License + "\n")
	}
	if c.Author != "" {
		b.WriteString("\nAUTHOR\n  " + c.Author + "\n")
	}
	if c.WebLink != "" {
		b.WriteString("\n" + c.WebLink + "\n")
	}
	return b.String()
}

// MakeVersionInfo renders the version notice: application name and version on
// the first line, author on the second.
func (c *Clipper) MakeVersionInfo() string {
	return c.Name + " " + c.Version + "\n" + c.Author + "\n"
}

// synopsis lists the application name followed by every required option and
// flag, using the alternate name when one exists.
func (c *Clipper) synopsis() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, name := range sortedKeys(c.optionNames) {
		arg := c.names[name]
		if !arg.Required() {
			continue
		}
		b.WriteString(" " + displayName(name, c.optionNames[name]) + " " + arg.ValueInfo())
	}
	for _, name := range sortedKeys(c.flagNames) {
		if !c.names[name].Required() {
			continue
		}
		b.WriteString(" " + displayName(name, c.flagNames[name]))
	}
	b.WriteString(" [...]")
	return b.String()
}

type helpRow struct {
	names string
	doc   string
}

func (c *Clipper) flagRows() []helpRow {
	var rows []helpRow
	if c.helpFlag.name != "" {
		rows = append(rows, helpRow{c.helpFlag.handle.Synopsis(), c.helpFlag.handle.Description()})
	}
	if c.versionFlag.name != "" {
		rows = append(rows, helpRow{c.versionFlag.handle.Synopsis(), c.versionFlag.handle.Description()})
	}
	for _, name := range sortedKeys(c.flagNames) {
		arg := c.names[name]
		rows = append(rows, helpRow{arg.Synopsis(), arg.Description()})
	}
	return rows
}

func (c *Clipper) optionRows() []helpRow {
	var rows []helpRow
	for _, name := range sortedKeys(c.optionNames) {
		arg := c.names[name]
		rows = append(rows, helpRow{arg.Synopsis(), arg.Description()})
	}
	return rows
}

// writeRows renders aligned name/description columns, wrapping descriptions
// so continuation lines stay in the description column.
func writeRows(b *strings.Builder, rows []helpRow) {
	maxNameLen := 0
	for _, r := range rows {
		if len(r.names) > maxNameLen {
			maxNameLen = len(r.names)
		}
	}
	nameWidth := maxNameLen + 4
	wrapWidth := 80 - nameWidth

	for _, r := range rows {
		if r.doc == "" {
			fmt.Fprintf(b, "  %s\n", r.names)
			continue
		}
		lines := wrapText(r.doc, wrapWidth)
		padding := strings.Repeat(" ", maxNameLen-len(r.names)+4)
		fmt.Fprintf(b, "  %s%s%s\n", r.names, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

// wrapText greedily wraps text into lines of at most width characters,
// breaking on spaces only. Words longer than width get their own line.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func displayName(name, altName string) string {
	if altName != "" {
		return altName
	}
	return name
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
