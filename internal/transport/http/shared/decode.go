package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"hrcalc/internal/transport/http/api"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// DecodeJSON reads exactly one JSON value from the request body into dst
// and writes the failure response itself. Only malformed JSON (syntax
// errors, wrong container types, trailing data) and oversize bodies fail;
// numeric fields coerce during decoding.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeOne(r.Body, dst)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		api.Fail(w, r, http.StatusRequestEntityTooLarge, api.CodePayloadTooLarge, "request body too large")
	case errors.Is(err, io.EOF):
		api.Fail(w, r, http.StatusBadRequest, api.CodeInvalidJSON, "request body is empty")
	default:
		api.Logger(r.Context()).Debug("rejected request body", zap.Error(err))
		api.Fail(w, r, http.StatusBadRequest, api.CodeInvalidJSON, "invalid request body")
	}
	return false
}

func decodeOne(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return errTrailingData
	default:
		return errTrailingData
	}
}
