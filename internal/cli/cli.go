package cli

import (
	"errors"
	"fmt"
	"strings"
)

type Command string

const (
	CommandRun     Command = "run"
	CommandAsk     Command = "ask"
	CommandDoctor  Command = "doctor"
	CommandVersion Command = "version"
	CommandHelp    Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandRun:     {},
	CommandAsk:     {},
	CommandDoctor:  {},
	CommandVersion: {},
	CommandHelp:    {},
}

type Parsed struct {
	Command    Command
	Query      string
	ConfigPath string
	Platform   string
	ShowHelp   bool
}

func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandHelp, ShowHelp: true}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			parsed.ShowHelp = true
			parsed.Command = CommandHelp
		case "--version":
			parsed.ShowHelp = false
			parsed.Command = CommandVersion
		case "--config":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--config requires a path")
			}
			parsed.ConfigPath = args[i]
		case "--platform":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--platform requires a name")
			}
			parsed.Platform = args[i]
		default:
			if strings.HasPrefix(arg, "-") {
				return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
			}

			cmd := Command(arg)
			if _, ok := validCommands[cmd]; !ok {
				return Parsed{}, fmt.Errorf("unknown command: %s", arg)
			}

			parsed.Command = cmd
			parsed.ShowHelp = cmd == CommandHelp

			if cmd == CommandAsk {
				if i == len(args)-1 {
					return Parsed{}, errors.New("ask requires a query")
				}
				parsed.Query = strings.Join(args[i+1:], " ")
				return parsed, nil
			}
			if i != len(args)-1 {
				return Parsed{}, fmt.Errorf("unexpected arguments after command %q", arg)
			}
		}
	}

	return parsed, nil
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [--config PATH] [--platform NAME] <command>

Commands:
  run       Start the interactive assistant loop (exit/quit to leave)
  ask TEXT  Handle a single query and print the response
  doctor    Run configuration and environment checks
  version   Print version information
  help      Show this help

Flags:
  --config PATH    Config file path (default: $XDG_CONFIG_HOME/taskar/config.conf)
  --platform NAME  Override platform detection (windows, mac, linux)
  -h, --help       Show help
  --version        Show version
`, binaryName)
}
