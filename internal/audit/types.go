package audit

import "time"

// Source identifies how a bulk import reached the store.
type Source string

const (
	SourceUpload Source = "upload"
	SourceCLI    Source = "cli"
)

// Record is one bulk-import event.
type Record struct {
	ID        string    `json:"id"`
	BotID     string    `json:"botId"`
	Source    Source    `json:"source"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}
