package welcome

import "strings"

// dieFaces holds the pip rows for faces one to six.
var dieFaces = [6][3]string{
	{"         ", "    ●    ", "         "},
	{" ●       ", "         ", "       ● "},
	{" ●       ", "    ●    ", "       ● "},
	{" ●     ● ", "         ", " ●     ● "},
	{" ●     ● ", "    ●    ", " ●     ● "},
	{" ●     ● ", " ●     ● ", " ●     ● "},
}

// renderDie draws face n (1-6) of a die.
func renderDie(n int) string {
	face := dieFaces[(n-1+6)%6]
	lines := []string{"╭─────────╮"}
	for _, row := range face {
		lines = append(lines, "│"+row+"│")
	}
	lines = append(lines, "╰─────────╯")
	return strings.Join(lines, "\n")
}
