package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  show                      print the graph
  bridge <word1> <word2>    query bridge words
  generate <text...>        insert bridge words into text
  path <word1> [word2]      shortest path(s)
  pagerank [n]              top n words by PageRank (0 prints all)
  rank <word...>            PageRank of the given words
  walk [start]              random walk
  help                      this text
  exit                      leave the shell`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt over the loaded graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.shell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// shell reads one command per line from in until "exit" or EOF. Query
// errors are printed and do not end the session. The banner and prompt are
// only shown when in is a terminal.
func (a *app) shell(in io.Reader, out io.Writer) error {
	interactive := isTerminal(in)
	sc := bufio.NewScanner(in)
	if interactive {
		fmt.Fprintln(out, shellHelp)
	}
	for {
		if interactive {
			fmt.Fprint(out, color.CyanString("> "))
		}
		if !sc.Scan() {
			if interactive {
				fmt.Fprintln(out)
			}
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}
		if err := a.dispatch(out, fields[0], fields[1:]); err != nil {
			fmt.Fprintln(out, color.RedString("Error: %v", err))
		}
	}
}

func (a *app) dispatch(out io.Writer, name string, args []string) error {
	switch name {
	case "show":
		return a.show(out)
	case "bridge":
		if len(args) != 2 {
			return fmt.Errorf("usage: bridge <word1> <word2>")
		}
		a.bridge(out, args[0], args[1])
	case "generate":
		if len(args) == 0 {
			return fmt.Errorf("usage: generate <text...>")
		}
		return a.generate(out, strings.Join(args, " "))
	case "path":
		switch len(args) {
		case 1:
			a.path(out, args[0], "")
		case 2:
			a.path(out, args[0], args[1])
		default:
			return fmt.Errorf("usage: path <word1> [word2]")
		}
	case "pagerank":
		top := defaultTop
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("pagerank: bad count %q", args[0])
			}
			top = n
		}
		a.pagerank(out, top)
	case "rank":
		if len(args) == 0 {
			return fmt.Errorf("usage: rank <word...>")
		}
		a.rankOf(out, args)
	case "walk":
		start := ""
		if len(args) > 0 {
			start = args[0]
		}
		return a.walk(out, start)
	case "help":
		fmt.Fprintln(out, shellHelp)
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}

	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
