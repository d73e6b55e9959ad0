package picker

import "errors"

// ErrEmptyCatalog is returned by Pick when there is nothing to choose from.
// It is the only error the controller reports.
var ErrEmptyCatalog = errors.New("food catalog is empty")
