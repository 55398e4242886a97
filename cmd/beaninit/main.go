// Command beaninit loads a bean file and initializes the graph it describes
// with the example pipeline kinds.
//
//	beaninit run   -f graph.yaml [--params params.yaml] [--metrics-out pass.prom]
//	beaninit tree  -f graph.hcl
//	beaninit check -f graph.yaml
//
// Settings fall back to the BEANINIT_LOG_LEVEL, BEANINIT_LOG_FORMAT,
// BEANINIT_PARAMS and BEANINIT_METRICS_OUT environment variables.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
