package listclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid"
	"github.com/pkg/errors"

	"github.com/SystemBuilders/ListKey/internal/listservice"
)

const requestTimeout = 10 * time.Second

var _ Client = (*SimpleClient)(nil)

// SimpleClient implements Client over HTTP.
type SimpleClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSimpleClient returns a client for the node described by cfg.
func NewSimpleClient(cfg Config) *SimpleClient {
	host := cfg.IP()
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	return &SimpleClient{
		baseURL: host + ":" + cfg.Port(),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// do sends a request and decodes a successful JSON response into out,
// which may be nil for responses without a body.
func (sc *SimpleClient) do(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, sc.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if out == nil {
		return nil
	}
	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decoding response")
}

// responseError maps the error string sent by the node back onto
// the listservice error it came from.
func responseError(resp *http.Response) error {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading error response")
	}
	msg := strings.TrimSpace(string(b))
	for _, known := range listservice.KnownErrors {
		if msg == known.Error() {
			return errors.WithStack(known)
		}
	}
	return errors.Wrapf(ErrUnexpectedResponse, "status %d: %s", resp.StatusCode, msg)
}

func listPath(id ulid.ULID) string {
	return "/lists/" + id.String()
}

func itemPath(id ulid.ULID, position int) string {
	return listPath(id) + "/items/" + strconv.Itoa(position)
}

// valueRequest checks v before it is sent, since invalid JSON
// can't be embedded in a request body.
func valueRequest(v listservice.Value) (listservice.ValueRequest, error) {
	if !json.Valid(v) {
		return listservice.ValueRequest{}, errors.WithStack(listservice.ErrInvalidValue)
	}
	return listservice.ValueRequest{Value: v}, nil
}

// Create creates a new list.
func (sc *SimpleClient) Create() (ulid.ULID, error) {
	var res listservice.CreateRes
	err := sc.do(http.MethodPost, "/lists", nil, &res)
	return res.ID, err
}

// Drop deletes a list.
func (sc *SimpleClient) Drop(id ulid.ULID) error {
	return sc.do(http.MethodDelete, listPath(id), nil, nil)
}

// IDs returns the IDs of the hosted lists.
func (sc *SimpleClient) IDs() ([]ulid.ULID, error) {
	var res listservice.IDsRes
	err := sc.do(http.MethodGet, "/lists", nil, &res)
	return res.IDs, err
}

// Snapshot returns the contents of a list.
func (sc *SimpleClient) Snapshot(id ulid.ULID) (listservice.Snapshot, error) {
	var snap listservice.Snapshot
	err := sc.do(http.MethodGet, listPath(id), nil, &snap)
	return snap, err
}

// Push appends a value to a list.
func (sc *SimpleClient) Push(id ulid.ULID, v listservice.Value) (int, error) {
	req, err := valueRequest(v)
	if err != nil {
		return 0, err
	}
	var res listservice.LengthRes
	err = sc.do(http.MethodPost, listPath(id)+"/push", req, &res)
	return res.Length, err
}

// Unshift prepends a value to a list.
func (sc *SimpleClient) Unshift(id ulid.ULID, v listservice.Value) (int, error) {
	req, err := valueRequest(v)
	if err != nil {
		return 0, err
	}
	var res listservice.LengthRes
	err = sc.do(http.MethodPost, listPath(id)+"/unshift", req, &res)
	return res.Length, err
}

// Pop removes the last value of a list.
func (sc *SimpleClient) Pop(id ulid.ULID) (listservice.Value, error) {
	var res listservice.ValueRes
	err := sc.do(http.MethodPost, listPath(id)+"/pop", nil, &res)
	return res.Value, err
}

// Shift removes the first value of a list.
func (sc *SimpleClient) Shift(id ulid.ULID) (listservice.Value, error) {
	var res listservice.ValueRes
	err := sc.do(http.MethodPost, listPath(id)+"/shift", nil, &res)
	return res.Value, err
}

// Get returns the value at a position of a list.
func (sc *SimpleClient) Get(id ulid.ULID, position int) (listservice.Value, error) {
	var res listservice.ValueRes
	err := sc.do(http.MethodGet, itemPath(id, position), nil, &res)
	return res.Value, err
}

// Set overwrites the value at a position of a list.
func (sc *SimpleClient) Set(id ulid.ULID, position int, v listservice.Value) error {
	req, err := valueRequest(v)
	if err != nil {
		return err
	}
	return sc.do(http.MethodPut, itemPath(id, position), req, nil)
}

// Insert adds a value at a position of a list.
func (sc *SimpleClient) Insert(id ulid.ULID, position int, v listservice.Value) (int, error) {
	req, err := valueRequest(v)
	if err != nil {
		return 0, err
	}
	var res listservice.LengthRes
	err = sc.do(http.MethodPost, itemPath(id, position), req, &res)
	return res.Length, err
}

// Remove removes the value at a position of a list.
func (sc *SimpleClient) Remove(id ulid.ULID, position int) (listservice.Value, error) {
	var res listservice.ValueRes
	err := sc.do(http.MethodDelete, itemPath(id, position), nil, &res)
	return res.Value, err
}

// Reverse reverses a list.
func (sc *SimpleClient) Reverse(id ulid.ULID) error {
	return sc.do(http.MethodPost, listPath(id)+"/reverse", nil, nil)
}

// Stats returns the node's counters.
func (sc *SimpleClient) Stats() (listservice.Stats, error) {
	var stats listservice.Stats
	err := sc.do(http.MethodGet, "/stats", nil, &stats)
	return stats, err
}
