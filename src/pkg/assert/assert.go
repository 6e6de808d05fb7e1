package assert

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Assert panics with the caller's location when condition is false. The
// optional args are a format string followed by its operands.
func Assert(condition bool, args ...any) {
	if condition {
		return
	}

	where := "unknown"
	if _, file, line, ok := runtime.Caller(1); ok {
		where = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	if len(args) == 0 {
		panic(fmt.Sprintf("assertion failed at %s", where))
	}

	format, ok := args[0].(string)
	if !ok {
		panic(fmt.Sprintf("assertion failed at %s: %v", where, args))
	}
	panic(fmt.Sprintf("assertion failed at %s: %s", where, fmt.Sprintf(format, args[1:]...)))
}
