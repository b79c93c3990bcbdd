package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, CommandHelp, parsed.Command)
	require.True(t, parsed.ShowHelp)
}

func TestParseCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want Parsed
	}{
		{
			name: "run",
			args: []string{"run"},
			want: Parsed{Command: CommandRun},
		},
		{
			name: "doctor with config",
			args: []string{"--config", "/tmp/taskar.conf", "doctor"},
			want: Parsed{Command: CommandDoctor, ConfigPath: "/tmp/taskar.conf"},
		},
		{
			name: "platform override",
			args: []string{"--platform", "linux", "run"},
			want: Parsed{Command: CommandRun, Platform: "linux"},
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: Parsed{Command: CommandVersion},
		},
		{
			name: "help flag",
			args: []string{"-h"},
			want: Parsed{Command: CommandHelp, ShowHelp: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.want, parsed)
		})
	}
}

func TestParseAskJoinsTrailingArgs(t *testing.T) {
	parsed, err := Parse([]string{"ask", "what", "time", "is", "it"})
	require.NoError(t, err)
	require.Equal(t, CommandAsk, parsed.Command)
	require.Equal(t, "what time is it", parsed.Query)
}

func TestParseAskKeepsEarlierFlags(t *testing.T) {
	parsed, err := Parse([]string{"--platform", "mac", "ask", "open", "calculator"})
	require.NoError(t, err)
	require.Equal(t, "mac", parsed.Platform)
	require.Equal(t, "open calculator", parsed.Query)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown command", args: []string{"dance"}, want: "unknown command"},
		{name: "unknown flag", args: []string{"--loud"}, want: "unknown flag"},
		{name: "config without path", args: []string{"--config"}, want: "--config requires a path"},
		{name: "platform without name", args: []string{"--platform"}, want: "--platform requires a name"},
		{name: "ask without query", args: []string{"ask"}, want: "ask requires a query"},
		{name: "trailing args", args: []string{"doctor", "extra"}, want: "unexpected arguments"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.args)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestHelpTextNamesBinary(t *testing.T) {
	text := HelpText("taskar")
	require.Contains(t, text, "taskar [--config PATH]")
	require.Contains(t, text, "ask TEXT")
}
