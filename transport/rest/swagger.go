package rest

import (
	_ "embed"
	"net/http"
)

//go:embed swagger.json
var swaggerDocument []byte

func swaggerHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(swaggerDocument)
}
