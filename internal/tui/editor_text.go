package tui

import "strings"

// The textarea expands tabs to four spaces and turns CRLF into LF. Its
// value is never written to the session as-is: restoreLines maps lines the
// user did not touch back to their original bytes.

const textareaTab = "    "

// displayLine is how the textarea shows line.
func displayLine(line string) string {
	return strings.ReplaceAll(strings.TrimSuffix(line, "\r"), "\t", textareaTab)
}

// restoreLines returns edited with every line that still reads exactly like
// a line of orig replaced by that original line. orig's line ending is kept.
func restoreLines(orig, edited string) string {
	if !strings.ContainsAny(orig, "\t\r") {
		return edited
	}
	origLines := strings.Split(orig, "\n")
	byDisplay := make(map[string]string, len(origLines))
	for _, ln := range origLines {
		d := displayLine(ln)
		if _, ok := byDisplay[d]; !ok {
			byDisplay[d] = strings.TrimSuffix(ln, "\r")
		}
	}

	lines := strings.Split(edited, "\n")
	for i, ln := range lines {
		if o, ok := byDisplay[ln]; ok {
			lines[i] = o
		}
	}
	sep := "\n"
	if strings.Contains(orig, "\r\n") {
		sep = "\r\n"
	}
	return strings.Join(lines, sep)
}
