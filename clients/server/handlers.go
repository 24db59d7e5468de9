// handlers.go — Multipart hide/reveal endpoints.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mgeist/pixelveil/pkg/imgio"
	"github.com/mgeist/pixelveil/pkg/prep"
	"github.com/mgeist/pixelveil/pkg/steg"
)

// maxUploadBytes caps the parsed multipart form (per file part).
const maxUploadBytes = 64 << 20

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

// respondWithError sends a JSON error message.
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("error: %s", message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// decodeFormImage decodes the named multipart file field into a pixel buffer.
func decodeFormImage(r *http.Request, field string) (*steg.Buffer, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return imgio.Decode(file)
}

// writePNGResponse encodes buf as PNG, tagged with a request ID for log
// correlation.
func writePNGResponse(w http.ResponseWriter, buf *steg.Buffer) {
	id := uuid.New().String()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Request-Id", id)
	if err := imgio.Encode(w, "png", buf); err != nil {
		log.Printf("request %s: write response: %v", id, err)
	}
}

// handleHide embeds the "hidden" upload into the "carrier" upload and
// responds with the encoded PNG. Optional form values: "fit" scales the
// hidden image to the carrier first, "gray" pre-reduces it to grayscale.
func handleHide(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	carrier, err := decodeFormImage(r, "carrier")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "carrier: "+err.Error())
		return
	}
	hidden, err := decodeFormImage(r, "hidden")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "hidden: "+err.Error())
		return
	}

	if r.FormValue("gray") == "true" {
		hidden = prep.Grayscale(hidden)
	}
	if r.FormValue("fit") == "true" {
		hidden = prep.FitTo(hidden, carrier.Width(), carrier.Height())
	}

	writePNGResponse(w, steg.Embed(carrier, hidden))
}

// handleReveal extracts the hidden grayscale image from the "encoded" upload.
// Optional form value "legacy_order" selects the original tool's swapped
// green/blue channel pairing.
func handleReveal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	encoded, err := decodeFormImage(r, "encoded")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "encoded: "+err.Error())
		return
	}

	opts := steg.ExtractOptions{LegacyChannelOrder: r.FormValue("legacy_order") == "true"}
	writePNGResponse(w, steg.Extract(encoded, opts))
}
