package parse

// DefaultMaxDepth bounds container nesting.
const DefaultMaxDepth = 10000

type Option func(*parseOpts)

type parseOpts struct {
	maxDepth int
}

func MaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}
