// Package config loads grantkit service configuration from YAML files,
// .env files, and environment variables, in that order of precedence
// (environment wins).
//
// Projects embed ServiceConfig in their own config structs; Config is
// the ready-made struct for services that only need grantkit's own
// sections (logging, claims, observability, and a seedable in-memory
// privilege store).
package config
