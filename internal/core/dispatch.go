package core

import "strings"

// CommandKind identifies a parsed command line.
type CommandKind int

const (
	CmdNoop CommandKind = iota
	CmdHelp
	CmdExit
	CmdTime
	CmdListAll
	CmdListRecent
	CmdSend
	CmdReply
	CmdInvalid
)

var commandNames = map[CommandKind]string{
	CmdNoop:       "noop",
	CmdHelp:       "help",
	CmdExit:       "exit",
	CmdTime:       "time",
	CmdListAll:    "list",
	CmdListRecent: "recent",
	CmdSend:       "send",
	CmdReply:      "reply",
	CmdInvalid:    "invalid",
}

func (k CommandKind) String() string {
	return commandNames[k]
}

// Command is a parsed command line. Body holds the text after the send or
// reply keyword with its original case; Raw holds the trimmed input.
type Command struct {
	Kind CommandKind
	Body string
	Raw  string
}

// Dispatch classifies a raw input line. Keywords compare case-insensitively.
func Dispatch(line string) Command {
	raw := strings.TrimSpace(line)
	folded := strings.ToLower(raw)

	switch folded {
	case "":
		return Command{Kind: CmdNoop}
	case "help":
		return Command{Kind: CmdHelp, Raw: raw}
	case "exit", "logout":
		return Command{Kind: CmdExit, Raw: raw}
	case "time":
		return Command{Kind: CmdTime, Raw: raw}
	case "list", "all":
		return Command{Kind: CmdListAll, Raw: raw}
	case "recent":
		return Command{Kind: CmdListRecent, Raw: raw}
	}

	if body, ok := cutKeyword(raw, "send"); ok {
		return Command{Kind: CmdSend, Body: body, Raw: raw}
	}
	if body, ok := cutKeyword(raw, "reply"); ok {
		return Command{Kind: CmdReply, Body: body, Raw: raw}
	}
	return Command{Kind: CmdInvalid, Raw: raw}
}

func cutKeyword(s, keyword string) (string, bool) {
	if len(s) < len(keyword) || !strings.EqualFold(s[:len(keyword)], keyword) {
		return "", false
	}
	return s[len(keyword):], true
}
