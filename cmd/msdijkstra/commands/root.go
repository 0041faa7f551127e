// SPDX-License-Identifier: MIT

// Package commands cmd/msdijkstra/commands/root.go
package commands

import (
	"bufio"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flags flagValues
	runID = uuid.NewString()
	mLog  = logrus.New()
)

func init() {
	flags.bind(RootCmd.Flags())
	var helpflag bool
	RootCmd.SetUsageTemplate(help)
	RootCmd.PersistentFlags().BoolVarP(&helpflag, "help", "h", false, "help for "+RootCmd.Use)
	RootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	RootCmd.PersistentFlags().MarkHidden("help") //nolint
}

// RootCmd is the msdijkstra command.
var RootCmd = &cobra.Command{
	Use:   "msdijkstra [graph-file] [source ...]",
	Short: "Multi-source shortest paths over an edge-weighted digraph",
	Long: `
	Reads an edge-weighted digraph in EWD format and prints, for every vertex,
	the distance to the nearest source and the last edge on that path.
	Arguments that are not given are asked for on standard input.`,
	Example: `  msdijkstra tinyEWD.txt 2 4 5 7
  msdijkstra -f csv --stats tinyEWD.txt 0
  msdijkstra -c msdijkstra.yaml`,
	SilenceErrors:         true,
	SilenceUsage:          true,
	DisableSuggestions:    true,
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := flags.resolve(cmd.Flags())
		if err != nil {
			return err
		}
		set, err := cfg.parse()
		if err != nil {
			return err
		}
		mLog.SetOutput(cmd.ErrOrStderr())
		mLog.SetLevel(set.level)
		// Leave the table plain when stdout is not a terminal.
		set.color = set.color && !color.NoColor

		s := &session{
			in:     bufio.NewReader(cmd.InOrStdin()),
			prompt: cmd.ErrOrStderr(),
			out:    cmd.OutOrStdout(),
			log:    mLog.WithField("run_id", runID),
			set:    set,
		}

		return s.run(args)
	},
}

// Execute executes root CLI command.
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:         RootCmd,
		Headings:        cc.HiBlue + cc.Bold,
		Commands:        cc.HiBlue + cc.Bold,
		CmdShortDescr:   cc.HiBlue,
		Example:         cc.HiBlue + cc.Italic,
		ExecName:        cc.HiBlue + cc.Bold,
		Flags:           cc.HiBlue + cc.Bold,
		FlagsDescr:      cc.HiBlue,
		NoExtraNewlines: true,
		NoBottomNewline: true,
	})
	if err := RootCmd.Execute(); err != nil {
		mLog.WithField("run_id", runID).WithError(err).Error("msdijkstra failed")
		os.Exit(1)
	}
}

const help = "Usage:\r\n" +
	"  {{.UseLine}}{{if .HasAvailableSubCommands}}{{end}} {{if gt (len .Aliases) 0}}\r\n\r\n" +
	"{{.NameAndAliases}}{{end}}{{if .HasExample}}\r\n\r\n" +
	"Examples:\r\n{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}\r\n\r\n" +
	"Flags:\r\n" +
	"{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}\r\n\r\n" +
	"Global Flags:\r\n" +
	"{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}\r\n\r\n"
