package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"login":          {"whoami", "catalog list"},
	"logout":         {"login"},
	"register":       {"login"},
	"whoami":         {"loans list"},
	"catalog list":   {"catalog show <id>", "catalog search --title <text>"},
	"catalog show":   {"loans borrow <material-id>", "reviews list <material-id>"},
	"catalog search": {"catalog show <id>"},
	"loans borrow":   {"loans list"},
	"loans return":   {"loans list"},
	"reviews add":    {"reviews list <material-id>"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "bibctl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
