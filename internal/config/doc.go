// Package config defines the format-agnostic model of op declarations read
// from definition files, along with the Loader interface implemented by each
// concrete file format.
//
// The `config.Model` is the single input of the `builder` package. Concrete
// loaders, such as for HCL and YAML, are provided in separate packages.
package config
