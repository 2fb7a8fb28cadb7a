// Package validation checks decoded JSON request bodies field by field.
//
// A Chain holds an ordered list of FieldRules. Each FieldRules names one body
// key and an ordered list of checks, each with the message reported when it
// fails. Run evaluates every field and returns the failures in declaration
// order as domain.ValidationErrors, ready to be written as a 400 response.
//
// The individual checks delegate to go-playground/validator, so "email",
// "min", "max" and "eqfield" have the same meaning here as in struct tags.
package validation
