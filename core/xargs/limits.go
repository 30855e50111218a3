package xargs

import (
	"os"
	"strconv"

	"github.com/tklauser/go-sysconf"
)

// ptrSize is the per-entry bookkeeping overhead charged against
// derived size budgets: one argv pointer slot in the child.
const ptrSize = strconv.IntSize / 8

// reservedHeadroom is held back from derived budgets. POSIX requires
// 2048 bytes so the invoked utility has room to modify its
// environment and arguments and still exec another utility; keep
// double that.
const reservedHeadroom = 4096

// fallbackArgMax stands in for sysconf(_SC_ARG_MAX) when the lookup
// fails. It matches the historical Linux kernel minimum.
const fallbackArgMax = 128 * 1024

// DefaultSizeLimit computes the per-invocation byte budget from the
// OS argument-byte ceiling, less the current environment's footprint
// and the reserved headroom.
func DefaultSizeLimit() int {
	argMax, err := sysconf.Sysconf(sysconf.SC_ARG_MAX)
	if err != nil {
		argMax = fallbackArgMax
	}

	limit := int(argMax) - environBytes() - reservedHeadroom
	if limit < reservedHeadroom {
		// Pathologically large environment; still leave enough to run
		// short command lines.
		limit = reservedHeadroom
	}
	return limit
}

// environBytes prices the current environment the way the kernel
// does: string bytes, terminators, and one pointer slot per entry.
func environBytes() int {
	total := 0
	for _, kv := range os.Environ() {
		total += len(kv) + 1 + ptrSize
	}
	return total
}
