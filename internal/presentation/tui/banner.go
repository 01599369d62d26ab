package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`   __ _ _   _| |_ ___  _ __ ___   __ _| |_ __ _ `, "#818cf8"},
	{`  / _' | | | | __/ _ \| '_ ' _ \ / _' | __/ _' |`, "#a78bfa"},
	{` | (_| | |_| | || (_) | | | | | | (_| | || (_| |`, "#c084fc"},
	{`  \__,_|\__,_|\__\___/|_| |_| |_|\__,_|\__\__,_|`, "#e879f9"},
}

// PrintBanner writes the automata banner to w using the terminal's color
// profile. Nothing is written when w is not a terminal.
func PrintBanner(w io.Writer) {
	if !IsTerminal(w) {
		return
	}
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w)
}
