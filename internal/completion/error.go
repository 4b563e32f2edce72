package completion

import "fmt"

// Kind classifies a completion failure so callers can tell transport
// problems, service rejections and unparsable bodies apart.
type Kind int

const (
	// KindNetwork is a transport-level error: the request never produced
	// an HTTP response.
	KindNetwork Kind = iota + 1
	// KindService is a non-success HTTP status from the service.
	KindService
	// KindMalformed is a success status whose body is missing the
	// expected response text.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network failure"
	case KindService:
		return "service failure"
	case KindMalformed:
		return "malformed response"
	}
	return "unknown failure"
}

type Error struct {
	Kind       Kind
	StatusCode int
	cause      error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindService:
		return fmt.Sprintf("completion %s: status %d", e.Kind, e.StatusCode)
	case e.cause != nil:
		return fmt.Sprintf("completion %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("completion %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }
