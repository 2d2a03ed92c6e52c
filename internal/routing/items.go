package routing

import (
	"net/http"

	"github.com/SystemBuilders/ListKey/internal/listservice"
)

func get(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	pos, ok := position(w, r)
	if !ok {
		return
	}
	v, err := ls.Get(id, pos)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.ValueRes{Value: v})
}

func set(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	pos, ok := position(w, r)
	if !ok {
		return
	}
	v, ok := readValue(w, r)
	if !ok {
		return
	}
	if err := ls.Set(id, pos, v); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func insert(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	pos, ok := position(w, r)
	if !ok {
		return
	}
	v, ok := readValue(w, r)
	if !ok {
		return
	}
	length, err := ls.Insert(id, pos, v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, listservice.LengthRes{Length: length})
}

func remove(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	pos, ok := position(w, r)
	if !ok {
		return
	}
	v, err := ls.Remove(id, pos)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.ValueRes{Value: v})
}
