// Package validation provides input validation for grantkit.
//
// It offers two styles: a fluent Validator that collects field errors
// and resolves to an AppError, and tag-based struct validation built on
// go-playground/validator. Both know the domain rules that keep the
// token grammar sound, notably that area and context values must never
// contain the token delimiter (tag: nodelim).
package validation
