package errors

import "errors"

// DuplicateError reports an insertion whose element (or key) is already
// present in the target container. Description is the display form of the
// rejected element; for map entries that is "key: value".
type DuplicateError struct {
	Description string
}

// Duplicate returns a *DuplicateError for the given description.
func Duplicate(description string) error {
	return &DuplicateError{Description: description}
}

func (e *DuplicateError) Error() string {
	return "Duplicate element " + e.Description
}

// Is makes errors.Is(err, ErrDuplicate) hold for every DuplicateError.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate //nolint:errorlint,err113
}

// IsDuplicate reports whether err is, or wraps, a duplicate-element error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// DuplicateDescription extracts the description of the first DuplicateError
// in err's chain.
func DuplicateDescription(err error) (string, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup.Description, true
	}

	return "", false
}
