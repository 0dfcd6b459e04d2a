// Package logger provides the package-wide diagnostic logging for disdat on top of zap:
//   - a registry of named loggers whose handlers and level can change at runtime,
//   - the shared "disdat" logger, silent until somebody configures it,
//   - scoped contexts (Context/WithContext) that attach a formatted handler and
//     restore the previous state when the scope ends,
//   - Enable for permanent start-up configuration,
//   - context helpers (ToContext/FromContext/WithName/WithKV) and convenience
//     functions (Infof, ErrorKV, etc.).
//
// Library output from gRPC can be routed into the registry with RedirectGRPC.
package logger
