// Package octx houses context keys shared by the log and generator packages.
package octx

type logContextKeyType string

// LogCtxKey is the name of the context key used to store a correlation id
// for diagnostic log events emitted while compiling patterns and generating
// batches.
const LogCtxKey = logContextKeyType("slugkit-logID")
