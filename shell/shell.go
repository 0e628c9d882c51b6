// Package shell is a line-oriented command interpreter over an [imfs.Namespace].
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/brettbedarf/imfs"
	"github.com/brettbedarf/imfs/config"
	"github.com/brettbedarf/imfs/internal/util"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// command describes one shell verb. args holds the whitespace separated
// arguments; rest is the raw remainder after the first argument, used by
// commands whose last argument may contain spaces.
type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 for unlimited
	run     func(ns imfs.Namespace, args []string, rest string) (string, error)
}

var commands = map[string]command{
	"pwd": {"pwd", 0, 0, func(ns imfs.Namespace, _ []string, _ string) (string, error) {
		return ns.Pwd(), nil
	}},
	"ls": {"ls [path]", 0, 1, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		names, err := ns.Ls(optArg(args, 0))
		return strings.Join(names, "\n"), err
	}},
	"mkdir": {"mkdir name [path]", 1, 2, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		return "", ns.Mkdir(args[0], optArg(args, 1))
	}},
	"touch": {"touch name [path]", 1, 2, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		return "", ns.Touch(args[0], optArg(args, 1))
	}},
	"cd": {"cd target", 1, 1, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		return "", ns.Cd(args[0])
	}},
	"read": {"read path", 1, 1, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		return ns.Read(args[0])
	}},
	"write": {"write path [contents...]", 1, -1, func(ns imfs.Namespace, args []string, rest string) (string, error) {
		return "", ns.Write(args[0], rest)
	}},
	"rmdir": {"rmdir name", 1, 1, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		return "", ns.Rmdir(args[0])
	}},
	"rm": {"rm name", 1, 1, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		return "", ns.Rm(args[0])
	}},
	"find": {"find name", 1, 1, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		return strings.Join(ns.Find(args[0]), "\n"), nil
	}},
	"stat": {"stat path", 1, 1, func(ns imfs.Namespace, args []string, _ string) (string, error) {
		kind, err := ns.Stat(args[0])
		if err != nil {
			return "", err
		}
		return kind.String(), nil
	}},
	"tree": {"tree", 0, 0, func(ns imfs.Namespace, _ []string, _ string) (string, error) {
		return strings.TrimSuffix(ns.Tree(), "\n"), nil
	}},
	"cls": {"cls", 0, 0, func(ns imfs.Namespace, _ []string, _ string) (string, error) {
		ns.Cls()
		return "", nil
	}},
}

func optArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// Help lists the usage line of every command, sorted by name
func Help() string {
	lines := make([]string, 0, len(commands)+2)
	for _, cmd := range commands {
		lines = append(lines, cmd.usage)
	}
	lines = append(lines, "help", "exit")
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// Shell dispatches command lines to a namespace
type Shell struct {
	ns     imfs.Namespace
	prompt string
	logger util.Logger
}

// New creates a shell over ns. A nil cfg uses the defaults.
func New(ns imfs.Namespace, cfg *config.Config) *Shell {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Shell{
		ns:     ns,
		prompt: cfg.Prompt,
		logger: util.GetLogger("Shell"),
	}
}

// Exec runs a single command line and returns its output.
// Blank lines produce no output and no error.
func (s *Shell) Exec(line string) (string, error) {
	name, rest := cutField(line)
	if name == "" {
		return "", nil
	}
	if name == "help" {
		return Help(), nil
	}

	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w %q, try \"help\"", ErrUnknownCommand, name)
	}
	args := strings.Fields(rest)
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return "", fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}
	_, tail := cutField(rest)

	s.logger.Trace().Str("cmd", name).Strs("args", args).Msg("Executing command")
	out, err := cmd.run(s.ns, args, tail)
	if err != nil {
		s.logger.Debug().Err(err).Str("cmd", name).Msg("Command failed")
		return "", err
	}
	return out, nil
}

// Run reads commands from in until EOF or "exit", writing results and
// errors to out. Only read or write failures on the streams are returned.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if s.prompt != "" {
			if _, err := io.WriteString(out, s.prompt); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if name, _ := cutField(line); name == "exit" || name == "quit" {
			return nil
		}

		res, err := s.Exec(line)
		switch {
		case err != nil:
			_, err = fmt.Fprintf(out, "error: %v\n", err)
		case res != "":
			_, err = fmt.Fprintln(out, res)
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

// cutField splits off the first whitespace delimited field of s.
// rest starts right after the single separator that ended the field.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
