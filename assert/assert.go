package assert

import (
	"fmt"

	"github.com/bloeys/rtshell/logging"
)

// T panics with the formatted message if check is false.
//
// Asserts are compiled out in release builds (-tags release), so
// nothing with side effects should be passed in.
func T(check bool, msg string, args ...any) {

	if !isEnabled || check {
		return
	}

	errMsg := fmt.Sprintf("Assert failed: "+msg, args...)
	logging.ErrLog.Println(errMsg)
	panic(errMsg)
}
