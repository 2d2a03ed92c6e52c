package routing

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SystemBuilders/ListKey/internal/listservice"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(ls listservice.ListService, r *mux.Router) *mux.Router {
	r.HandleFunc("/lists", makeHandler(ls, create)).Methods(http.MethodPost)
	r.HandleFunc("/lists", makeHandler(ls, ids)).Methods(http.MethodGet)
	r.HandleFunc("/stats", makeHandler(ls, stats)).Methods(http.MethodGet)

	r.HandleFunc("/lists/{id}", makeHandler(ls, snapshot)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}", makeHandler(ls, drop)).Methods(http.MethodDelete)

	r.HandleFunc("/lists/{id}/push", makeHandler(ls, push)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/unshift", makeHandler(ls, unshift)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/pop", makeHandler(ls, pop)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/shift", makeHandler(ls, shift)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/reverse", makeHandler(ls, reverse)).Methods(http.MethodPost)

	r.HandleFunc("/lists/{id}/items/{position}", makeHandler(ls, get)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/items/{position}", makeHandler(ls, set)).Methods(http.MethodPut)
	r.HandleFunc("/lists/{id}/items/{position}", makeHandler(ls, insert)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/items/{position}", makeHandler(ls, remove)).Methods(http.MethodDelete)
	return r
}

type handlerFunc func(w http.ResponseWriter, r *http.Request, ls listservice.ListService)

func makeHandler(ls listservice.ListService, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, ls)
	}
}
