package common

import (
	"encoding/json"
	"net/http"
)

// Application-level result codes carried in the response envelope. Every
// handler answers HTTP 200 with one of these; only the authentication guard
// uses 401/403 at the transport level.
const (
	CodeOK         = 200
	CodeStoreError = 1
	CodeAuth       = 2
	CodeValidation = 3
	CodeDomain     = 10
)

// Envelope is the fixed {data, msg, code} response shape. Token is set only
// on login responses and guard rejections.
type Envelope struct {
	Data  interface{} `json:"data"`
	Msg   string      `json:"msg"`
	Code  int         `json:"code"`
	Token string      `json:"token,omitempty"`
}

// EmptyData marshals to {} for domain outcomes that carry no payload.
var EmptyData = struct{}{}

func RespondEnvelope(w http.ResponseWriter, status int, data interface{}, msg string, code int) {
	RespondWithJSON(w, status, Envelope{Data: data, Msg: msg, Code: code})
}

func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"data":"Failed to marshal JSON response","msg":"API Error.","code":1}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}
