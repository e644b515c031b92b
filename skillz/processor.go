// skillz/processor.go
package skillz

import (
	"context"
)

////////////////////////////////////////////////////////////////////////
// Interface Definition
////////////////////////////////////////////////////////////////////////

// Processor turns free text (a post description, a bio) into skill tags.
// Handlers depend on this interface so tests can swap in a fake.
type Processor interface {
	// SuggestSkills returns normalized, canonical skill tags found in text.
	SuggestSkills(ctx context.Context, text string) ([]string, error)
}
