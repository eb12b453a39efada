package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var (
	// Version is injected at build time with -ldflags.
	Version = "DEV"
	// BuildDate is injected at build time with -ldflags.
	BuildDate = ""
)

const (
	appName  = "synclog"
	appShort = "synclog writes leveled, colored log lines to the console, files and callbacks"
	appLong  = `synclog drives the synclog logger from the command line.

	Configuration is read from the SYNCLOG_LEVEL, SYNCLOG_CONSOLE and
	SYNCLOG_FILES environment variables, then from an optional YAML file,
	then from flags. Later sources win.`

	versionCmdName  = "version"
	versionCmdShort = "Display the " + appName + " version"
)

func main() {
	exitCode := 0
	if err := rootCmd().Execute(); err != nil {
		exitCode = 1
	}
	os.Exit(exitCode)
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	cmd.AddCommand(
		emitCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionCmdShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}
			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

func versionString(version, buildDate, runtimeVersion string) string {
	out := version
	if buildDate != "" {
		out += " (" + buildDate + ")"
	}
	return out + ", Go Version: " + runtimeVersion
}
