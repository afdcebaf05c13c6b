package integrity

import "github.com/cockroachdb/errors"

// ErrArchiveNotConfigured is returned by archive checks when storage is disabled.
var ErrArchiveNotConfigured = errors.New("report archive is not configured")
