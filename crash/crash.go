// Package crash reports unrecovered panics to the user. The panic value and
// stack are written to panic.log in the working directory and a message box
// points at it.
//
//	func main() {
//		defer crash.Handle()
//		...
//	}
package crash

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sqweek/dialog"
)

// LogFile is the file written in the working directory on a crash.
const LogFile = "panic.log"

const title = "Panic!"

// showMessage displays msg in an error message box.
var showMessage = func(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}

// Handle reports a panic in progress and re-panics with the same value. It
// must be deferred directly.
func Handle() {
	r := recover()
	if r == nil {
		return
	}
	showMessage(title, report(LogFile, r, debug.Stack()))
	panic(r)
}

// Go runs fn on a new goroutine with Handle installed.
func Go(fn func()) {
	go func() {
		defer Handle()
		fn()
	}()
}

// report writes the panic value and stack to path and returns the message
// shown to the user.
func report(path string, r any, stack []byte) string {
	f, err := os.Create(path)
	if err != nil {
		return "Could not create " + path
	}
	_, werr := fmt.Fprintf(f, "%v\n%s", r, stack)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		return "Could not create " + path
	}
	return "See " + path + " for details"
}
