package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/config"
	"github.com/brettbedarf/webtree/internal/render"
	"github.com/brettbedarf/webtree/internal/util"
	"github.com/brettbedarf/webtree/requests"
	"github.com/brettbedarf/webtree/server"
	"github.com/brettbedarf/webtree/sources"
)

// app carries the parsed flags and the loaded tree for one invocation
type app struct {
	out io.Writer

	configPath string
	source     string
	role       string
	verbose    int
	output     string

	cfg   *config.Config
	tree  *server.WebTree
	dirty bool
}

// RequestRender marks the view stale; the command prints it once it is done
func (a *app) RequestRender() {
	a.dirty = true
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "webtree",
		Short: "Browse and edit a permissioned folder/file tree",
		Long: "webtree loads a folder/file tree document from a file or http(s) URL, " +
			"then searches, deletes or moves nodes and prints the result for a viewer role.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to a yaml or json config file")
	flags.StringVarP(&a.source, "source", "s", "", "Tree document file path or http(s) URL (default \""+config.DefaultSource+"\")")
	flags.StringVarP(&a.role, "role", "r", "", "Viewer role (default \""+string(config.DefaultRole)+"\")")
	flags.IntVarP(&a.verbose, "verbose", "v", config.InfoVerbose, "Log verbosity level between 1 (error) and 5 (trace)")
	flags.StringVarP(&a.output, "output", "o", "text", "Tree output format: text, json or yaml")

	rootCmd.AddCommand(
		newTreeCmd(a),
		newSearchCmd(a),
		newDeleteCmd(a),
		newMoveCmd(a),
		newAccessCmd(a),
	)
	return rootCmd
}

// setup merges config file and flags, then initializes logging. Flags win
// over the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.NewDefaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(a.configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	override := &config.ConfigOverride{}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		override.LogLvl = &a.verbose
	}
	if flags.Changed("source") {
		override.Source = &a.source
	}
	if flags.Changed("role") {
		override.DefaultRole = &a.role
	}
	cfg.Merge(override)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch a.output {
	case "text", string(webtree.FormatJSON), string(webtree.FormatYAML):
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}

	util.InitializeLogger(cfg.LogLvl)
	a.cfg = cfg
	return nil
}

// load fetches and loads the configured tree document
func (a *app) load(ctx context.Context) error {
	logger := util.GetLogger("main")
	sources.RegisterBuiltins()

	raw, err := sources.Resolve(a.cfg.Source)
	if err != nil {
		return err
	}
	src, err := sources.NewSource(raw)
	if err != nil {
		return fmt.Errorf("invalid source %q: %w", a.cfg.Source, err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.FetchTimeoutDuration())
	defer cancel()

	a.tree = server.New(a.cfg)
	if err := a.tree.LoadSource(ctx, src); err != nil {
		return fmt.Errorf("failed to load %q: %w", a.cfg.Source, err)
	}
	folders, files := a.tree.Count()
	logger.Debug().Str("source", a.cfg.Source).Int("folders", folders).Int("files", files).Msg("Tree ready")

	// only mutations after the initial load count
	a.tree.SetRenderer(a)
	return nil
}

// printTree writes the current tree in the selected output format
func (a *app) printTree() error {
	switch a.output {
	case string(webtree.FormatJSON), string(webtree.FormatYAML):
		data, err := requests.Marshal(a.tree.Snapshot(), webtree.Format(a.output))
		if err != nil {
			return err
		}
		_, err = a.out.Write(data)
		return err
	default:
		ctx := a.tree.ReadCtx()
		defer ctx.Close()
		return render.Tree(a.out, ctx)
	}
}
