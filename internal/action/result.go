// Package action defines the result contract shared by every dispatch operation.
package action

import "fmt"

// Class categorizes why an operation failed (or how it succeeded).
type Class string

const (
	// ClassNone marks an ordinary confirmed success.
	ClassNone Class = ""
	// ClassNotFound means no candidate tool was present to attempt.
	ClassNotFound Class = "not_found"
	// ClassLaunchError means a tool was present but the attempt failed.
	ClassLaunchError Class = "launch_error"
	// ClassUnsupported means the platform has no mechanism for this action.
	ClassUnsupported Class = "unsupported"
	// ClassCapabilityMissing means an optional host integration is absent.
	ClassCapabilityMissing Class = "capability_missing"
	// ClassValidation means a caller-supplied parameter was out of contract.
	ClassValidation Class = "validation"
	// ClassAmbiguous means a lookup matched several candidates.
	ClassAmbiguous Class = "ambiguous"
	// ClassPrivilege means the host refused the action for lack of rights.
	ClassPrivilege Class = "privilege"
)

// Result is the uniform outcome of every routed query and surface call.
// Message is always human-readable, even on failure. Fallback marks a
// best-effort substitute (web search instead of a confirmed resolution).
type Result struct {
	Message  string
	OK       bool
	Fallback bool
	Class    Class
}

// Success builds a confirmed success result.
func Success(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), OK: true}
}

// FallbackSuccess builds a success that is explicitly a substitute action.
func FallbackSuccess(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), OK: true, Fallback: true}
}

// Failure builds a classified failure result.
func Failure(class Class, format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), Class: class}
}

// Unavailable reports an absent optional capability in the standard phrasing.
func Unavailable(what string, reason string) Result {
	if reason == "" {
		return Failure(ClassCapabilityMissing, "%s is unavailable on this system", what)
	}
	return Failure(ClassCapabilityMissing, "%s is unavailable on this system (%s)", what, reason)
}
