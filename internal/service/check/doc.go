// Package check implements the disdat-log check command: it applies a logging
// configuration to a logger and emits one record per level, optionally again
// inside a scoped context, so operators can see what gets through.
package check
