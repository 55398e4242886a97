package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sghaida/beaninit/bean"
	"github.com/sghaida/beaninit/beanfile"
	"github.com/sghaida/beaninit/examples/pipeline"
	"github.com/sghaida/beaninit/internal/config"
	"github.com/sghaida/beaninit/internal/logging"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg    config.Config
	file   string
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.FromEnv(), logger: logging.NewNop()}

	root := &cobra.Command{
		Use:          "beaninit",
		Short:        "Initialize bean graphs described in YAML or HCL files",
		Long:         `beaninit builds the beans of a graph file, then discovers and initializes every bean reachable from its root.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "", "bean file (.yaml, .yml or .hcl)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error ($"+config.EnvLogLevel+")")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "text or json ($"+config.EnvLogFormat+")")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(newRunCmd(a), newTreeCmd(a), newCheckCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(level, a.cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// load decodes and builds the bean file.
func (a *app) load() (*beanfile.Graph, error) {
	doc, err := beanfile.Load(a.file)
	if err != nil {
		return nil, err
	}
	g, err := beanfile.Build(doc, pipeline.Register(bean.NewKindRegistry()))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Bean file loaded.", "file", a.file, "beans", len(g.IDs()), "root", g.RootID())
	return g, nil
}
