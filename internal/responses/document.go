package responses

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Document is a parsed Rasa domain file, reduced to its top-level
// "responses" mapping. Each variation list is re-encoded as the JSON blob
// the responses table stores.
type Document struct {
	Responses map[string]json.RawMessage
}

// ParseDocument parses a YAML domain document of the form:
//
//	responses:
//	  utter_greet:
//	    - text: "Hey!"
//	    - text: "Hi!"
//	      channel: "slack"
func ParseDocument(data []byte) (*Document, error) {
	var raw struct {
		Responses map[string]any `yaml:"responses"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	doc := &Document{Responses: make(map[string]json.RawMessage, len(raw.Responses))}
	for respID, variations := range raw.Responses {
		blob, err := json.Marshal(variations)
		if err != nil {
			return nil, fmt.Errorf("encoding response %q: %w", respID, err)
		}
		doc.Responses[respID] = blob
	}
	return doc, nil
}

// ids returns the response identifiers in a stable order so import runs are
// deterministic.
func (d *Document) ids() []string {
	ids := make([]string, 0, len(d.Responses))
	for id := range d.Responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of responses in the document.
func (d *Document) Len() int { return len(d.Responses) }
