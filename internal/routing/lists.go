package routing

import (
	"net/http"

	"github.com/SystemBuilders/ListKey/internal/listservice"
)

func create(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, err := ls.Create()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, listservice.CreateRes{ID: id})
}

func ids(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	writeJSON(w, http.StatusOK, listservice.IDsRes{IDs: ls.IDs()})
}

func stats(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	writeJSON(w, http.StatusOK, ls.Stats())
}

func snapshot(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	snap, err := ls.Snapshot(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func drop(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	if err := ls.Drop(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func push(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	v, ok := readValue(w, r)
	if !ok {
		return
	}
	length, err := ls.Push(id, v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.LengthRes{Length: length})
}

func unshift(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	v, ok := readValue(w, r)
	if !ok {
		return
	}
	length, err := ls.Unshift(id, v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.LengthRes{Length: length})
}

func pop(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	v, err := ls.Pop(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.ValueRes{Value: v})
}

func shift(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	v, err := ls.Shift(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listservice.ValueRes{Value: v})
}

func reverse(w http.ResponseWriter, r *http.Request, ls listservice.ListService) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	if err := ls.Reverse(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
