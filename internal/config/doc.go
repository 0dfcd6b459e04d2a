// Package config defines the logging settings of the disdat binaries and
// provides helpers to load, validate and save them in YAML format, bind them
// to command line flags and apply them to a logger.
package config
