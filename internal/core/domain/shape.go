package domain

// Shape identifies the calling convention of a resolved entry point. The
// three shapes form a closed, ordered set: job-context programs win over
// engine-context programs, which win over the static main fallback.
type Shape int

const (
	// ShapeContext runs with the job-side execution context.
	ShapeContext Shape = iota + 1
	// ShapeEngine runs with the lower-level engine context.
	ShapeEngine
	// ShapeMain is the static main(args) fallback.
	ShapeMain
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeContext:
		return "context"
	case ShapeEngine:
		return "engine"
	case ShapeMain:
		return "main"
	default:
		return "unknown"
	}
}
