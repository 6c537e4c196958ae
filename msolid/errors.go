// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "fmt"

// Status is the integer status code returned by entry points that can fail
// in ways a host application needs to distinguish and possibly recover from
// (retrying with a substep, translating to a native exception, etc).
type Status int

// Status codes. SUCCESS is always zero so a bare `if status != 0` test works.
const (
	SUCCESS Status = iota
	INCOMPATIBLE_MODELS
	LINALG_FAILURE
	MAX_ITERATIONS
	KT_VIOLATION
	NODE_NOT_FOUND
	TOO_MANY_NODES
	ATTRIBUTE_NOT_FOUND
	UNKNOWN_TYPE
)

var statusText = map[Status]string{
	SUCCESS:             "success",
	INCOMPATIBLE_MODELS: "incompatible submodels",
	LINALG_FAILURE:      "linear algebra failure",
	MAX_ITERATIONS:      "maximum number of iterations reached",
	KT_VIOLATION:        "Kuhn-Tucker conditions violated",
	NODE_NOT_FOUND:      "node not found",
	TOO_MANY_NODES:      "too many nodes",
	ATTRIBUTE_NOT_FOUND: "attribute not found",
	UNKNOWN_TYPE:        "unknown model type",
}

// String converts a status code to a human-readable message, mirroring the
// string_error helper of the taxonomy this package's error channel follows.
func (s Status) String() string {
	if msg, ok := statusText[s]; ok {
		return msg
	}
	return "unknown error"
}

// StatusError wraps a Status with the call-site detail that produced it, so
// a caller can both `errors.As` to the code and print a useful message.
type StatusError struct {
	Code Status
	Msg  string
}

func (e *StatusError) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// newStatusErrorf builds a StatusError with a formatted detail message.
func newStatusErrorf(code Status, format string, args ...interface{}) *StatusError {
	return &StatusError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// StatusOf extracts the Status code from err, returning UNKNOWN_TYPE wrapped
// as a generic failure if err does not carry one (defensive default for
// errors raised below this package, e.g. by an external submodel).
func StatusOf(err error) Status {
	if err == nil {
		return SUCCESS
	}
	if se, ok := err.(*StatusError); ok {
		return se.Code
	}
	return UNKNOWN_TYPE
}
