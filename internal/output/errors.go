package output

import "errors"

// ErrUnsupportedFormat is returned when no formatter matches a requested format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")
