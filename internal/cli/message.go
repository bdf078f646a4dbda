package cli

import (
	stderrors "errors"
	"fmt"

	errors "github.com/go-sif/sifprep/errors"
)

// Message converts an error into the text shown to the user. Every known kind of
// failure yields a distinct message. Anything else still surfaces its own text.
func Message(err error) string {
	var (
		usage     usageError
		notFound  errors.FileNotFoundError
		invalid   errors.InvalidArgumentError
		empty     errors.EmptyInputError
		noLabel   errors.LabelNotFoundError
		tooSmall  errors.InsufficientClassSizeError
		writeFail errors.WriteFailureError
	)
	switch {
	case stderrors.As(err, &usage):
		return usage.Error()
	case stderrors.As(err, &notFound):
		return notFound.Error()
	case stderrors.As(err, &invalid):
		return invalid.Error()
	case stderrors.As(err, &empty):
		return empty.Error()
	case stderrors.As(err, &noLabel):
		return noLabel.Error() + ". Cannot continue."
	case stderrors.As(err, &tooSmall):
		return tooSmall.Error()
	case stderrors.As(err, &writeFail):
		return err.Error()
	case stderrors.As(err, new(errors.IncompatibleRowError)):
		return fmt.Sprintf("Error reading or processing the file: %v", err)
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}
