package nlg

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protonsvc/rasa-nlg/internal/api"
	"github.com/protonsvc/rasa-nlg/internal/responses"
)

// Request is the body of a Rasa NLG call. Newer Rasa versions send the
// response name under "response", older ones under "template".
type Request struct {
	Response string          `json:"response"`
	Template string          `json:"template"`
	Channel  *Channel        `json:"channel,omitempty"`
	Tracker  json.RawMessage `json:"tracker,omitempty"`
}

// Channel identifies the delivery surface the reply is destined for.
type Channel struct {
	Name string `json:"name"`
}

// ResponseID returns the requested response name, whichever field carried it.
func (r *Request) ResponseID() string {
	if r.Response != "" {
		return r.Response
	}
	return r.Template
}

// ChannelName returns the requested channel, or "" when none was sent.
func (r *Request) ChannelName() string {
	if r.Channel == nil {
		return ""
	}
	return r.Channel.Name
}

// RegisterRoutes mounts the NLG selection endpoint.
func RegisterRoutes(r chi.Router, respStore *responses.Store, selector *Selector) {
	r.Route("/nlg/bots/{botID}", func(r chi.Router) {
		r.Post("/", handleSelect(respStore, selector))
	})
}

func handleSelect(respStore *responses.Store, selector *Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.ErrServer)
			return
		}

		respID := req.ResponseID()
		resp, err := respStore.Get(r.Context(), chi.URLParam(r, "botID"), respID)
		if err != nil {
			api.WriteError(w, err)
			return
		}

		var variations []Variation
		if err := json.Unmarshal(resp.Data, &variations); err != nil {
			api.WriteError(w, err)
			return
		}

		chosen, err := selector.Select(variations, req.ChannelName())
		if err != nil {
			api.WriteError(w, api.NotFoundf("No variation available for response '%s'", respID))
			return
		}
		api.WriteJSON(w, http.StatusOK, chosen)
	}
}
