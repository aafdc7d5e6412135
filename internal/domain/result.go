package domain

// FailureKind classifies why an operation did not produce a positive result
type FailureKind string

const (
	KindNone       FailureKind = ""           // Operation succeeded outright
	KindValidation FailureKind = "validation" // Bad input, nothing written
	KindNotFound   FailureKind = "not_found"  // Referenced entity absent
	KindStorage    FailureKind = "storage"    // Database or unexpected failure
	KindBusiness   FailureKind = "business"   // Expected negative outcome, e.g. insufficient funds
)

// Result is the envelope every banking operation returns.
//
// A business outcome such as insufficient funds is reported with IsSuccess
// set and a negative Value; IsSuccess is false only for validation, lookup
// and storage failures.
type Result[T any] struct {
	IsSuccess bool        `json:"isSuccess"`         // Operation completed without a system failure
	Message   string      `json:"message,omitempty"` // Human readable detail, never driver output
	Value     T           `json:"value"`             // Payload, zero value when absent
	Kind      FailureKind `json:"-"`                 // Failure class for transports
}

// Success wraps a value in a successful result
func Success[T any](value T) Result[T] {
	return Result[T]{IsSuccess: true, Value: value}
}

// Outcome is a successful result carrying an expected negative business answer
func Outcome[T any](value T, message string) Result[T] {
	return Result[T]{IsSuccess: true, Value: value, Message: message, Kind: KindBusiness}
}

// Failure builds a failed result with no value
func Failure[T any](kind FailureKind, message string) Result[T] {
	return Result[T]{Message: message, Kind: kind}
}
