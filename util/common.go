package util

import (
	"fmt"
	"os"
)

// NoError aborts the process when err is set. Used by test helpers where
// there is no sensible way to continue.
func NoError(err error, msg string) {
	if err == nil {
		return
	}
	if msg != "" {
		fmt.Fprintf(os.Stderr, "\nfatal error: %s - %v\n\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "\nfatal error: %v\n\n", err)
	}
	os.Exit(3)
}

func Try[T any](input T, err error) T {
	NoError(err, "")
	return input
}
