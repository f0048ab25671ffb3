package session

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/spetersoncode/agui/events"
)

// applyPatch applies JSON Patch operations to a document one at a time,
// skipping any operation that does not resolve. Patches come from a
// remote agent, so a bad path degrades the state rather than failing the
// stream. A nil document patches as an empty object.
func applyPatch(doc any, ops []events.JSONPatchOperation) any {
	raw := []byte("{}")
	if doc != nil {
		b, err := json.Marshal(doc)
		if err != nil {
			return doc
		}
		raw = b
	}

	for _, op := range ops {
		encoded, err := json.Marshal([]events.JSONPatchOperation{op})
		if err != nil {
			continue
		}
		patch, err := jsonpatch.DecodePatch(encoded)
		if err != nil {
			continue
		}
		next, err := patch.Apply(raw)
		if err != nil {
			continue
		}
		raw = next
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return doc
	}
	return out
}
