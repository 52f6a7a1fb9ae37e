package analysis

import (
	"fmt"

	"github.com/cognicore/parley/pkg/parley/internalerr"
)

// Capability names reported in CapabilityError.
const (
	CapTokenizer  = "tokenizer"
	CapRecognizer = "entity recognizer"
	CapScorer     = "sentiment scorer"
)

// CapabilityError reports an injected capability failing on a line. The run
// that produced it returns no result.
type CapabilityError struct {
	Capability string
	Line       int // 1-based
	Err        error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s failed on line %d: %v", e.Capability, e.Line, e.Err)
}

func (e *CapabilityError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, internalerr.ErrCapability) hold for every
// CapabilityError.
func (e *CapabilityError) Is(target error) bool {
	return target == internalerr.ErrCapability
}
