package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/k4rimDev/catalog-api/pkg/errs"
	"github.com/valyala/fasthttp"
)

// decodeBody unmarshals a JSON request body. An empty body is treated as
// an empty object so required-field validation reports every missing
// field instead of a generic parse failure. Type mismatches on a known
// field are reported against that field.
func decodeBody(body []byte, dst any) error {
	if len(body) == 0 {
		body = []byte("{}")
	}

	err := json.Unmarshal(body, dst)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			fieldErrors := errs.FieldErrors{}
			fieldErrors.Add(typeErr.Field, fmt.Sprintf("invalid value, expected %s", typeErr.Type))
			return fieldErrors
		}

		return errs.New("invalid request body")
	}

	return nil
}

// parseID extracts the integer path parameter. Identity columns start at
// one, so anything below that can never match a record.
func parseID(ctx *fasthttp.RequestCtx) (int64, bool) {
	raw, _ := ctx.UserValue("id").(string)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
