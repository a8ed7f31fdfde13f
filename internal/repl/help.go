package repl

import (
	"strings"
)

type helpItem struct {
	key  string
	desc string
}

var helpItems = []helpItem{
	{"all / list", "List all contacts of this account"},
	{"recent", "List the last 5 contacts"},
	{"time", "Show the current time"},
	{"help", "Show this help"},
	{"exit / logout", "Log out"},
	{"send <message>", "Send to the last contact you wrote to"},
	{"reply <message>", "Send to the last contact who wrote to you"},
	{"send <message> | <name>", "Send to a contact by name"},
	{"send <message> || <num>", "Send to a contact by number (see list)"},
}

// RenderHelp renders the command reference.
func RenderHelp() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Terminal Chat"))
	lines = append(lines, "")

	maxKeyLen := 0
	for _, item := range helpItems {
		if len(item.key) > maxKeyLen {
			maxKeyLen = len(item.key)
		}
	}

	for _, item := range helpItems {
		key := helpKeyStyle.Render(padRight(item.key, maxKeyLen))
		desc := helpDescStyle.Render(item.desc)
		lines = append(lines, key+"  "+desc)
	}

	return helpStyle.Render(strings.Join(lines, "\n"))
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
