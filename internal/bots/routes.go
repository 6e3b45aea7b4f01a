package bots

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/protonsvc/rasa-nlg/internal/api"
	"github.com/protonsvc/rasa-nlg/internal/audit"
	"github.com/protonsvc/rasa-nlg/internal/responses"
)

// maxUploadBytes bounds the in-memory portion of a multipart domain upload.
const maxUploadBytes = 10 << 20

// RegisterRoutes mounts the bot and response CRUD routes.
func RegisterRoutes(r chi.Router, store *Store, respStore *responses.Store, auditStore *audit.Store) {
	r.Route("/bots", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Route("/{botID}", func(r chi.Router) {
			r.Get("/", handleGetBot(store))
			r.Put("/", handleUpsertBot(store, respStore, auditStore))
			r.Delete("/", handleRemoveBot(store))
			r.Route("/{respID}", func(r chi.Router) {
				r.Get("/", handleGetResponse(respStore))
				r.Put("/", handleUpsertResponse(respStore))
				r.Delete("/", handleRemoveResponse(respStore))
			})
		})
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.List(r.Context())
		if err != nil {
			api.WriteError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string][]Summary{"items": items})
	}
}

func handleGetBot(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bot, err := store.Get(r.Context(), chi.URLParam(r, "botID"))
		if err != nil {
			api.WriteError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, bot)
	}
}

// handleUpsertBot dispatches PUT /bots/{botID} on content type: a multipart
// body with a boundary is a domain-file bulk import, anything else is a
// plain JSON metadata upsert.
func handleUpsertBot(store *Store, respStore *responses.Store, auditStore *audit.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err == nil && strings.HasPrefix(mediaType, "multipart/") && params["boundary"] != "" {
			handleImport(respStore, auditStore, w, r)
			return
		}

		var req UpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, api.ErrServer)
			return
		}

		botID := chi.URLParam(r, "botID")
		if err := store.Upsert(r.Context(), botID, req); err != nil {
			api.WriteError(w, err)
			return
		}
		api.WriteMessage(w, http.StatusAccepted, "Bot '%s' upserted", botID)
	}
}

func handleImport(respStore *responses.Store, auditStore *audit.Store, w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		api.WriteError(w, api.BadRequestf("Invalid file or form data"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, api.BadRequestf("Invalid file or form data"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	doc, err := responses.ParseDocument(data)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	botID := chi.URLParam(r, "botID")
	count, err := respStore.Load(r.Context(), botID, doc, nil)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	if _, err := auditStore.Record(r.Context(), audit.Record{
		BotID:     botID,
		Source:    audit.SourceUpload,
		ItemCount: count,
	}); err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteMessage(w, http.StatusAccepted, "Responses upserted")
}

func handleRemoveBot(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		botID := chi.URLParam(r, "botID")
		if err := store.Remove(r.Context(), botID); err != nil {
			api.WriteError(w, err)
			return
		}
		api.WriteMessage(w, http.StatusAccepted, "Bot '%s' deleted", botID)
	}
}

func handleGetResponse(respStore *responses.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := respStore.Get(r.Context(), chi.URLParam(r, "botID"), chi.URLParam(r, "respID"))
		if err != nil {
			api.WriteError(w, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, resp)
	}
}

func handleUpsertResponse(respStore *responses.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil || !json.Valid(body) {
			api.WriteError(w, api.ErrServer)
			return
		}

		respID := chi.URLParam(r, "respID")
		if err := respStore.Upsert(r.Context(), chi.URLParam(r, "botID"), respID, body); err != nil {
			api.WriteError(w, err)
			return
		}
		api.WriteMessage(w, http.StatusAccepted, "Response '%s' upserted", respID)
	}
}

func handleRemoveResponse(respStore *responses.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respID := chi.URLParam(r, "respID")
		if err := respStore.Remove(r.Context(), chi.URLParam(r, "botID"), respID); err != nil {
			api.WriteError(w, err)
			return
		}
		api.WriteMessage(w, http.StatusAccepted, "Response '%s' deleted", respID)
	}
}
