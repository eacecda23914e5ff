package mem

import (
	"fmt"

	"github.com/pavanmanishd/mem/logging"
)

// fail reports a contract violation through the diagnostic interface and
// halts. Contract violations are programmer errors; there is no recovery
// path and no error value.
func fail(msg string) {
	logging.Output(3, logging.LevelFatal, "%s", msg)
	panic("mem: " + msg)
}

func assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	fail(fmt.Sprintf(format, args...))
}

func fatalf(format string, args ...any) {
	fail(fmt.Sprintf(format, args...))
}
