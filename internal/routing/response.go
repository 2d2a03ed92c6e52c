package routing

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
	"github.com/valyala/bytebufferpool"

	"github.com/SystemBuilders/ListKey/internal/listservice"
)

// writeJSON encodes v into a pooled buffer before touching the
// response, so that an encoding failure can still become a 500.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.B)
}

// writeError writes the error string with a status matching the error.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

func statusFor(err error) int {
	switch err {
	case listservice.ErrListDoesntExist:
		return http.StatusNotFound
	case listservice.ErrEmptyList:
		return http.StatusConflict
	case listservice.ErrPositionOutOfRange:
		return http.StatusRequestedRangeNotSatisfiable
	case listservice.ErrInvalidValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func listID(w http.ResponseWriter, r *http.Request) (ulid.ULID, bool) {
	id, err := ulid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ulid.ULID{}, false
	}
	return id, true
}

func position(w http.ResponseWriter, r *http.Request) (int, bool) {
	pos, err := strconv.Atoi(mux.Vars(r)["position"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	return pos, true
}

func readValue(w http.ResponseWriter, r *http.Request) (listservice.Value, bool) {
	var req listservice.ValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return req.Value, true
}
