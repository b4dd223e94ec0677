package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	mdwlog "github.com/msto63/strview/foundation/core/log"
	"github.com/msto63/strview/foundation/utils/filex"
	"github.com/msto63/strview/internal/query"
	"github.com/msto63/strview/internal/render"
	"github.com/msto63/strview/pkg/core/config"
	"github.com/msto63/strview/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	width     string
	jsonOut   bool
	noColor   bool
	inputFile string
	language  string
)

// app holds what PersistentPreRunE builds for the running command
type app struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *query.Engine
	out    *render.Renderer
	errOut *render.Renderer
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "strview",
	Short: "strview - Zeichenketten-Ansichten untersuchen",
	Long: `strview führt Such-, Vergleichs- und Zerlegungsoperationen auf
nicht-besitzenden Zeichenketten-Ansichten aus.

Der Text wird in der gewählten Zeichenbreite kodiert; alle Positionen
und Längen zählen Code-Einheiten dieser Breite:
  8     - UTF-8 Bytes
  16    - UTF-16 Einheiten
  32    - Unicode Code Points
  wide  - breite Zeichen (32 Bit)

Der Text ist das erste Argument oder stammt aus --file (- für stdin).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $STRVIEW_CONFIG oder ./configs/strview.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVarP(&width, "width", "w", "", "Zeichenbreite: 8, 16, 32 oder wide")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Ausgabe als JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Keine Farben")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "Text aus Datei lesen (- für stdin)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "Sprache der Ausgabe: de, en oder auto")
}

func setup(cmd *cobra.Command, _ []string) error {
	current = nil

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if width != "" {
		cfg.Query.Width = width
	}
	if jsonOut {
		cfg.Output.Format = config.OutputJSON
	}
	if noColor {
		cfg.Output.Color = false
	}
	if language != "" {
		cfg.Output.Language = language
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.FromConfig(cfg, verbose, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", mdwlog.Fields{
		"config": cfgFile,
		"width":  cfg.Query.Width,
		"format": cfg.Output.Format,
		"lang":   cfg.Output.Language,
	})

	current = &app{
		cfg:    cfg,
		logger: logger,
		engine: query.NewEngine(cfg.Query, logger),
		out:    render.New(cmd.OutOrStdout(), cfg.Output),
		errOut: render.New(cmd.ErrOrStderr(), cfg.Output),
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// textArgs accepts the input text followed by n arguments and up to
// optional more. With --file the text argument is omitted.
func textArgs(n, optional int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		required := n
		if inputFile == "" {
			required++
		}
		return cobra.RangeArgs(required, required+optional)(cmd, args)
	}
}

// inputText returns the text to query and the remaining arguments
func inputText(cmd *cobra.Command, args []string) (string, []string, error) {
	if inputFile == "" {
		return args[0], args[1:], nil
	}

	data, err := filex.ReadInput(inputFile, cmd.InOrStdin(), current.cfg.Query.MaxInput)
	if err != nil {
		current.logger.ErrorWithErr("reading input failed", err, mdwlog.Fields{"file": inputFile})
		return "", nil, err
	}
	if err := filex.CheckText(data); err != nil {
		current.logger.WarnWithErr("input is not UTF-8 text", err, mdwlog.Fields{
			"file": inputFile,
			"size": filex.FormatSize(int64(len(data))),
		})
	}
	return string(data), args, nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "parse_"+name, s, "integer")
	}
	return n, nil
}

// runQuery executes req and renders the result
func runQuery(cmd *cobra.Command, req query.Request) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := current.engine.Run(ctx, req)
	if err != nil {
		current.logger.LogError(err)
		return err
	}
	return current.out.Result(res)
}

func printError(w io.Writer, err error) {
	if current != nil {
		current.errOut.Error(err, verbose)
		return
	}
	// configuration failed; report with defaults
	out := config.Default().Output
	out.Color = false
	if language != "" {
		out.Language = language
	}
	render.New(w, out).Error(err, verbose)
}
