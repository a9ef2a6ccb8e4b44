// Package config defines the format-agnostic task model and the Loader
// interface that file-format packages implement.
//
// The `config.Model` is the single source of truth handed to the scheduler.
// Concrete loaders, such as the HCL one in package hcl or the JSON and YAML
// ones in package taskfile, translate their own syntax into it.
package config
