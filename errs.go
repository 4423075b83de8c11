package grip

import "errors"

var (
	// ErrNoCase reports an Unsplit whose per-case markers were all absent.
	ErrNoCase = errors.New("no case present")
	// ErrManyCases reports an Unsplit with more than one present marker.
	ErrManyCases = errors.New("multiple cases present")
)
