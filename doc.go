// Package beaninit initializes hierarchical graphs of configuration objects.
//
// The repository is organised as:
//
//   - bean: the library. Beans, field schemas, child discovery, the type
//     dispatcher, the walker and InitializeRecursive.
//   - beanfile: builds bean graphs from YAML or HCL files.
//   - metrics: a Prometheus bean.Observer.
//   - cmd/beaninit: CLI running, printing and checking bean files.
//   - cmd/beangen: go:generate tool writing ConfigurableFields methods.
//   - examples/pipeline: an image-pipeline domain used by the CLI and tests.
//
// Start with the bean package documentation.
package beaninit
