// Package errors provides unified error handling for grantkit.
// It implements structured error types with machine-readable codes and
// HTTP status mapping, so privilege-data defects (a Project record with
// no context, a token with the wrong field count) surface to callers in
// a uniform shape.
package errors
