package tokenizer

import "fmt"

// EngineUnavailableError reports that a requested segmentation engine is a
// collaborator that has not been installed or registered in this build.
// This is distinct from the permissive fallback for unrecognized engine
// names, which silently behaves as the default engine.
type EngineUnavailableError struct {
	Engine string
	Reason string
}

func (e *EngineUnavailableError) Error() string {
	return fmt.Sprintf("tokenizer: engine %q is not available: %s", e.Engine, e.Reason)
}
