// Package nlg implements the Rasa NLG endpoint: picking one concrete reply
// variation from a stored response for a requested channel.
package nlg

import (
	"encoding/json"
	"errors"
	"math/rand"
)

// ErrNoVariation is returned when neither a channel match nor a default
// variation exists for a selection request.
var ErrNoVariation = errors.New("no variation available")

// Variation is one candidate reply. The channel tag is the only field the
// selector inspects; everything else is carried opaquely.
type Variation struct {
	Channel string
	Fields  map[string]any
}

// UnmarshalJSON splits the channel tag off the otherwise opaque payload.
func (v *Variation) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if ch, ok := m["channel"].(string); ok {
		v.Channel = ch
	}
	delete(m, "channel")
	v.Fields = m
	return nil
}

// MarshalJSON folds the channel tag back into the payload.
func (v Variation) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(v.Fields)+1)
	for k, val := range v.Fields {
		m[k] = val
	}
	if v.Channel != "" {
		m["channel"] = v.Channel
	}
	return json.Marshal(m)
}

// Picker returns a value in [0, 1). It is injected so tests can fix the
// selection sequence.
type Picker func() float64

// Selector picks one variation from a response payload. It never touches
// persistence.
type Selector struct {
	pick Picker
}

// NewSelector creates a selector. A nil picker falls back to math/rand.
func NewSelector(pick Picker) *Selector {
	if pick == nil {
		pick = rand.Float64
	}
	return &Selector{pick: pick}
}

// Select partitions the variations into exact channel matches and untagged
// defaults, prefers matches, and picks uniformly from the winning bucket.
// Variations tagged with a different channel are never candidates.
func (s *Selector) Select(variations []Variation, channel string) (*Variation, error) {
	var matches, defaults []Variation
	for _, v := range variations {
		switch {
		case channel != "" && v.Channel == channel:
			matches = append(matches, v)
		case v.Channel == "":
			defaults = append(defaults, v)
		}
	}

	pool := matches
	if len(pool) == 0 {
		pool = defaults
	}
	if len(pool) == 0 {
		return nil, ErrNoVariation
	}

	index := int(s.pick() * float64(len(pool)))
	if index >= len(pool) {
		index = len(pool) - 1
	}
	return &pool[index], nil
}
