package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/internal/config"
	"github.com/philipp01105/synclog/logger"
)

const (
	emitCmdUsage = "emit [MESSAGE...]"
	emitCmdShort = "write messages through the logger"
	emitCmdLong  = `Write each MESSAGE as one log line at the chosen level.
	Without arguments, every line read from standard input becomes a message.

	A message above the threshold is dropped. Files are opened in append
	mode for every line.`
	emitCmdExample = `# Write a warning to the console and a file
	synclog emit --level warn --file app.log "disk almost full"

	# Forward a command's output, only keeping up to INFO
	make 2>&1 | synclog emit --threshold info --no-console -f build.log`

	levelFlagName      = "level"
	levelFlagShort     = "l"
	levelFlagUsage     = "level of the emitted messages"
	thresholdFlagName  = "threshold"
	thresholdFlagUsage = "highest level that is emitted, overrides SYNCLOG_LEVEL and the config file"
	fileFlagName       = "file"
	fileFlagShort      = "f"
	fileFlagUsage      = "append messages to this file. Can be specified multiple times."
	noConsoleFlagName  = "no-console"
	noConsoleFlagUsage = "do not write to standard output"
	configFlagName     = "config"
	configFlagShort    = "c"
	configFlagUsage    = "YAML configuration file"
)

var errSinkFailed = errors.New("some log lines could not be written")

type emitFlags struct {
	level     string
	threshold string
	files     []string
	noConsole bool
	config    string
}

func (f *emitFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.level, levelFlagName, levelFlagShort, core.InfoLevel.String(), levelFlagUsage)
	flags.StringVar(&f.threshold, thresholdFlagName, "", thresholdFlagUsage)
	flags.StringArrayVarP(&f.files, fileFlagName, fileFlagShort, nil, fileFlagUsage)
	flags.BoolVar(&f.noConsole, noConsoleFlagName, false, noConsoleFlagUsage)
	flags.StringVarP(&f.config, configFlagName, configFlagShort, "", configFlagUsage)
}

// toConfig layers the environment, the config file and the flags
func (f *emitFlags) toConfig(cmd *cobra.Command) (*logger.Config, error) {
	cfg, err := logger.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	if f.config != "" {
		if cfg, err = config.Load(f.config, cfg); err != nil {
			return nil, fmt.Errorf("config file %q: %w", f.config, err)
		}
	}

	if f.threshold != "" {
		threshold, err := core.ParseLevel(f.threshold)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", thresholdFlagName, err)
		}
		cfg.SetLevel(threshold)
	}
	for _, path := range f.files {
		cfg.AddFile(path)
	}
	if f.noConsole {
		cfg.SetConsole(false)
	}

	return cfg.SetConsoleWriter(cmd.OutOrStdout()), nil
}

func emitCmd() *cobra.Command {
	flags := &emitFlags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := core.ParseLevel(flags.level)
			if err != nil {
				return handleError(cmd, fmt.Errorf("--%s: %w", levelFlagName, err))
			}

			cfg, err := flags.toConfig(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			l, err := logger.New(cfg)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := emit(cmd, l, level, args); err != nil {
				return handleError(cmd, err)
			}
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

func emit(cmd *cobra.Command, l *logger.Logger, level core.Level, args []string) error {
	if len(args) > 0 {
		for _, msg := range args {
			l.Write(level, msg)
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			l.Write(level, strings.TrimRight(scanner.Text(), "\r"))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
	}

	if s := l.Stats(); s.SinkFailed > 0 || s.FormatFailed > 0 {
		return fmt.Errorf("%w: %d sink failures, %d format failures", errSinkFailed, s.SinkFailed, s.FormatFailed)
	}
	return nil
}

// handleError prints err and returns it so the process exits with 1
func handleError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(err)
	if errors.Is(err, core.ErrUnknownLevel) {
		_ = cmd.Usage()
	}
	return err
}
