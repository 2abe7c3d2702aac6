package logs

// Span identifies one compilation unit in log records and errors.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
