package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/NedohAR/marketplace-platform/config"
)

// NewRouter mounts the messaging API. Both browser views (conversation
// list and open chat) poll these read routes on independent timers.
func NewRouter(cfg *config.Config, handler *MessagingHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(cfg))

	api.HandleFunc("/conversations", handler.ListConversations).Methods(http.MethodGet)
	api.HandleFunc("/conversations", handler.StartConversation).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{id}", handler.GetConversationDetail).Methods(http.MethodGet)
	api.HandleFunc("/messages", handler.ListMessages).Methods(http.MethodGet)
	api.HandleFunc("/messages", handler.SendMessage).Methods(http.MethodPost)

	return r
}
