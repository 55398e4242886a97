package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sghaida/beaninit/bean"
	"github.com/sghaida/beaninit/examples/pipeline"
	"github.com/sghaida/beaninit/internal/config"
	"github.com/sghaida/beaninit/metrics"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Initialize the graph and verify nothing reachable was left uninitialized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}
	cmd.Flags().StringVar(&a.cfg.ParamsFile, "params", a.cfg.ParamsFile, "YAML file overriding the default image parameters ($"+config.EnvParams+")")
	cmd.Flags().StringVar(&a.cfg.MetricsOut, "metrics-out", a.cfg.MetricsOut, "write pass metrics to this .prom file ($"+config.EnvMetricsOut+")")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	g, err := a.load()
	if err != nil {
		return err
	}

	params := pipeline.DefaultParams()
	if a.cfg.ParamsFile != "" {
		if err := config.LoadParams(a.cfg.ParamsFile, &params); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	obs, err := metrics.NewObserver(reg)
	if err != nil {
		return err
	}

	opts := append(pipeline.Options(), bean.WithObserver(obs))
	passErr := bean.InitializeRecursive(g.Root, params, a.logger, opts...)

	if a.cfg.MetricsOut != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Debug("Metrics written.", "file", a.cfg.MetricsOut)
	}
	if passErr != nil {
		return passErr
	}
	if err := bean.CheckMisconfigured(g.Root); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = bean.Visit(g.Root, func(n *bean.Node) error {
		state := "plain"
		if ib, ok := n.Bean().(bean.Initializable); ok && ib.IsInitialized() {
			state = "initialized"
		}
		_, err := fmt.Fprintf(out, "%-12s %s\n", state, n.PathFromRoot())
		return err
	})
	if err != nil {
		return err
	}

	initialized := 0
	for _, id := range g.IDs() {
		b, _ := g.Bean(id)
		if ib, ok := b.(bean.Initializable); ok && ib.IsInitialized() {
			initialized++
		}
	}
	_, err = fmt.Fprintf(out, "initialized %d of %d beans\n", initialized, len(g.IDs()))
	return err
}
