// Package cmd provides the CLI commands for comment-divider.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thirteen37/comment-divider/internal/config"
	"github.com/thirteen37/comment-divider/internal/divider"
	"github.com/thirteen37/comment-divider/internal/language"
)

// EnvPrefix prefixes the environment variables that set persistent flags,
// e.g. COMMENT_DIVIDER_CONFIG.
const EnvPrefix = "COMMENT_DIVIDER"

// errReported is returned by commands whose failure was already shown.
var errReported = errors.New("command failed")

// app carries the state shared by all commands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	rootCmd := &cobra.Command{
		Use:   "comment-divider",
		Short: "Turn lines of source code into comment dividers",
		Long: `comment-divider turns lines of source code into visual dividers
made of comment characters: main headers, subheaders and solid lines.

Requesting a header on a line that already is one undoes it, so every
command toggles. The comment syntax follows the language of the file,
detected from its name and content or set with --lang.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().String("config", "", "Settings file (.json, .jsonc, .toml or .ini)")
	rootCmd.PersistentFlags().String("lang", "", "Language id, overrides detection (e.g. python, go)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(newDividerCmd(a, "main-header", "Toggle a main header", divider.MainHeader))
	rootCmd.AddCommand(newDividerCmd(a, "subheader", "Toggle a subheader", divider.Subheader))
	rootCmd.AddCommand(newDividerCmd(a, "line", "Insert a solid line", divider.Line))
	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newLanguagesCmd(a))
	rootCmd.AddCommand(newSettingsCmd(a))

	return rootCmd
}

// setup binds the persistent flags and environment, then builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	for _, key := range []string{"config", "lang", "verbose"} {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	level := slog.LevelInfo
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	a.logger.Debug("resolved options",
		slog.String("config", a.v.GetString("config")),
		slog.String("lang", a.v.GetString("lang")))
	return nil
}

// provider resolves divider configs from --config, or the defaults.
func (a *app) provider() (*config.Provider, error) {
	file := a.v.GetString("config")
	if file == "" {
		return config.NewProvider(nil), nil
	}

	s, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded settings", slog.String("path", file))
	return config.NewProvider(s), nil
}

// language returns --lang, or the language detected for the file.
func (a *app) language(file string, content []byte) string {
	if lang := a.v.GetString("lang"); lang != "" {
		return lang
	}
	if file == stdinArg {
		file = ""
	}
	lang := language.Detect(file, content)
	a.logger.Debug("detected language", slog.String("file", file), slog.String("lang", lang))
	return lang
}

// Execute runs the root command.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the exit code.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd := newRootCmd(in, out, errOut)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			newNotifier(errOut).Notify(err)
		}
		return 1
	}
	return 0
}
