// internal/app/system/convert/convert.go
package convert

import (
	"errors"
	"time"
)

// ErrBadDate means a caller-supplied date_created was not RFC 3339.
// Distinct from a validation failure: conversion aborts before any
// store call.
var ErrBadDate = errors.New("Invalid date_created. Must be an RFC 3339 date-time.")

// ParseDate parses the creation timestamp clients send with new
// entities.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}
