package responses

import "encoding/json"

// Response is one named set of reply variations, scoped to a single bot.
// The variation list is carried as an opaque JSON payload; only the NLG
// selector ever looks inside it.
type Response struct {
	ID        string          `json:"id"`
	Data      json.RawMessage `json:"data"`
	UpdatedOn string          `json:"updatedOn"`
}
