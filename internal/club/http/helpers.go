package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/malliaquatic/clubd/pkg/clubsdk"
)

const maxJSONBody = 256 << 10

// decodeJSONBody decodes the request body into dst, writing a 400 and
// returning an error when it is malformed.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		clubsdk.ErrInvalidRequest.WriteError(w)
		return errors.New("malformed body")
	}
	return nil
}
