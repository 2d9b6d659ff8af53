// Package logger provides structured logging for grantkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("authz")
//	log.Info("decision", logger.Fields("granted", true))
package logger
