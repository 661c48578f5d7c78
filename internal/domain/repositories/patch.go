package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonmerge "github.com/apapsch/go-jsonmerge/v2"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// Patch is a partial record keyed by JSON field name, e.g. {"completedSessions": 6}.
type Patch map[string]any

// With returns a copy of p with key set to value
func (p Patch) With(key string, value any) Patch {
	out := make(Patch, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[key] = value
	return out
}

// ApplyPatch overlays patch onto value's JSON form and decodes the result back into T.
// Fields absent from patch keep their current value; keys unknown to T are dropped.
func ApplyPatch[T any](value T, patch Patch) (T, error) {
	var merged T

	if patch == nil {
		patch = Patch{}
	}

	current, err := json.Marshal(value)
	if err != nil {
		return merged, apperrors.NewInternalError("failed to encode record", err)
	}
	overlay, err := json.Marshal(patch)
	if err != nil {
		return merged, apperrors.NewValidationError(fmt.Sprintf("patch is not serializable: %v", err))
	}

	merger := jsonmerge.Merger{CopyNonexistent: true}
	out, err := merger.MergeBytes(current, overlay)
	if err != nil {
		return merged, apperrors.NewInternalError("failed to merge patch", err)
	}
	if len(merger.Errors) > 0 {
		return merged, apperrors.NewValidationError(errors.Join(merger.Errors...).Error())
	}

	if err := json.Unmarshal(out, &merged); err != nil {
		return merged, apperrors.NewValidationError(fmt.Sprintf("patch does not fit record: %v", err))
	}
	return merged, nil
}
