// Package logger provides structured logging for primekit built on zerolog.
//
// A default logger is available through package-level functions; components
// create tagged child loggers via WithComponent:
//
//	log := logger.WithComponent("sieve")
//	log.Debug("prime emitted", logger.Fields("value", 13, "stage_depth", 5))
package logger
