package bots

import "github.com/protonsvc/rasa-nlg/internal/responses"

// Summary is one row in the bot listing.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RasaVersion string `json:"rasaVersion"`
	UpdatedOn   string `json:"updatedOn"`
}

// Bot is a full bot record including its stored responses.
type Bot struct {
	Summary
	Responses []responses.Response `json:"responses"`
}

// UpsertRequest is the JSON body of a bot upsert. An upsert fully replaces
// the row; it never merges with existing fields.
type UpsertRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RasaVersion string `json:"rasaVersion"`
}
