package table

import "errors"

// ErrFetchFailed is the generic error consumers see when the data source fails.
var ErrFetchFailed = errors.New("error fetching data")
