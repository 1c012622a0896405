// Package respond writes JSON replies for the HTTP API.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/isparth/Distributed-Systems/items-api/internal/logging"
	"github.com/isparth/Distributed-Systems/items-api/internal/types"
)

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Warnf("write response: %v", err)
	}
}

// Error writes an ErrorResponse carrying code and msg.
func Error(w http.ResponseWriter, status int, code, msg string) {
	JSON(w, status, types.ErrorResponse{Ok: false, ErrCode: code, ErrMsg: msg})
}

// NotFound reports a missing key, echoing it back for diagnostics.
func NotFound(w http.ResponseWriter, key, msg string) {
	JSON(w, http.StatusNotFound, types.ErrorResponse{
		Ok:      false,
		ErrCode: "not_found",
		ErrMsg:  msg,
		Key:     key,
	})
}
