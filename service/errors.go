package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a user-supplied identifier is not a number
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPermissionDenied is returned when the caller fails a gate check
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
)

// ParseID parses a Discord snowflake typed by a user
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a numeric ID", ErrInvalidArgument, raw)
	}
	return id, nil
}
