package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Range and Cancellation Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxSafeN is the largest index whose Fibonacci number fits in an int64.
	// F(92) = 7540113804746346429; F(93) overflows.
	MaxSafeN = 92

	// MaxSafeValue is F(MaxSafeN).
	MaxSafeValue = 7540113804746346429

	// naiveCancelCheckMask controls how often the naive recursion polls its
	// context: once every naiveCancelCheckMask+1 calls. Polling on every call
	// would dominate the running time for small n.
	naiveCancelCheckMask = 1<<14 - 1

	// iterativeCancelCheckMask is the polling interval of the iterative loop.
	iterativeCancelCheckMask = 1<<20 - 1
)

// Algorithm keys registered by NewDefaultFactory.
const (
	AlgoNaive     = "naive"
	AlgoIterative = "iterative"
	AlgoMemo      = "memo"
)
