package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Everything succeeded
	ExitValidationFailed = 1 // One or more input files failed validation
	ExitError            = 2 // Configuration or runtime error
)

// ValidationFailedError indicates that the command ran, but one or more
// input files did not pass validation.
type ValidationFailedError struct {
	Message string
}

func (e *ValidationFailedError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var validationErr *ValidationFailedError
	if errors.As(err, &validationErr) {
		return ExitValidationFailed
	}
	// All other errors are configuration/runtime errors
	return ExitError
}
