package response

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error kinds. The human-readable message field is the
// primary contract; kind is a compatible addition for API clients.
const (
	KindInvalidInput          = "invalid_input"
	KindDuplicateAccount      = "duplicate_account"
	KindInvalidCredentials    = "invalid_credentials"
	KindMissingToken          = "missing_token"
	KindInvalidToken          = "invalid_token"
	KindExpiredToken          = "expired_token"
	KindMissingFile           = "missing_file"
	KindMissingClassification = "missing_classification"
	KindUnsupportedType       = "unsupported_type"
	KindNotFound              = "not_found"
	KindStoreFailure          = "store_failure"
)

type Message struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Message{Message: message})
}

func Error(w http.ResponseWriter, status int, kind, message string) {
	JSON(w, status, Message{Message: message, Kind: kind})
}
