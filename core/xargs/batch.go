package xargs

// AddOutcome reports what the accumulator did with an offered token.
type AddOutcome int

const (
	// Accepted means the token was added to the current batch.
	Accepted AddOutcome = iota
	// Full means the token does not fit the current batch. The caller
	// keeps the token and offers it again once the batch is flushed.
	Full
	// TooLarge means the token, plus overhead, exceeds the size limit
	// even as a batch's only entry. No batch can ever hold it.
	TooLarge
)

// An Accumulator packs tokens into batches bounded by a byte budget
// and an optional entry count.
//
// Each entry is priced as its bytes plus a terminator. When the
// budget was derived from OS limits rather than set by the operator,
// a pointer-size slot per entry is charged on top, keeping derived
// budgets clear of the kernel's argument-vector accounting.
type Accumulator struct {
	limit      int // total byte budget, shared with the command prefix
	maxEntries int // 0 = unlimited
	overhead   int // fixed per-entry bookkeeping cost

	base   int // byte cost of the command prefix
	tokens []string
	bytes  int
}

// NewAccumulator returns an empty Accumulator with the given byte
// budget and entry limit. explicitLimit marks budgets configured by
// the operator, which waives the per-entry overhead.
func NewAccumulator(limit, maxEntries int, explicitLimit bool) *Accumulator {
	a := &Accumulator{limit: limit, maxEntries: maxEntries}
	if !explicitLimit {
		a.overhead = ptrSize + 1
	}
	return a
}

// entryCost prices one argument against the byte budget.
func (a *Accumulator) entryCost(arg string) int {
	return len(arg) + 1 + a.overhead
}

// SetPrefix charges the fixed command template against the budget.
// It reports false if the template alone leaves no room for input.
func (a *Accumulator) SetPrefix(argv []string) bool {
	a.base = 0
	for _, arg := range argv {
		a.base += a.entryCost(arg)
	}
	return a.base < a.limit
}

// Add offers the next input token to the current batch.
func (a *Accumulator) Add(token string) AddOutcome {
	cost := a.entryCost(token)

	if a.base+cost > a.limit {
		return TooLarge
	}
	if a.maxEntries > 0 && len(a.tokens) >= a.maxEntries {
		return Full
	}
	if a.base+a.bytes+cost > a.limit {
		return Full
	}

	a.tokens = append(a.tokens, token)
	a.bytes += cost
	return Accepted
}

// Len reports the number of tokens in the current batch.
func (a *Accumulator) Len() int {
	return len(a.tokens)
}

// Take hands off the finished batch and resets the accumulator for
// the next one. The caller must not retain the returned slice past
// the invocation it was built for.
func (a *Accumulator) Take() []string {
	tokens := a.tokens
	a.tokens = nil
	a.bytes = 0
	return tokens
}
