package api

import (
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/sopchat/internal/errors"
)

// ExtractErrorMessage selects the human-readable message for a failed
// exchange. Precedence: the `detail` field of the error payload, then the
// transport error message, then a fixed fallback. A `detail` sequence joins
// each element's `msg` field (or the element itself) with single spaces;
// anything else is stringified directly.
//
// This is a pure function of its inputs so the branching can be tested
// without a network.
func ExtractErrorMessage(body []byte, transportErr error) string {
	if len(body) > 0 && gjson.ValidBytes(body) {
		detail := gjson.GetBytes(body, "detail")
		if detail.Exists() && detail.Type != gjson.Null {
			return stringifyDetail(detail)
		}
	}

	if transportErr != nil {
		if msg := transportErr.Error(); msg != "" {
			return msg
		}
	}

	return apierrors.FallbackMessage
}

// stringifyDetail flattens a detail value into one line of text.
func stringifyDetail(detail gjson.Result) string {
	if detail.IsArray() {
		items := detail.Array()
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if msg := item.Get("msg"); msg.Exists() && msg.Type != gjson.Null {
				parts = append(parts, msg.String())
			} else {
				parts = append(parts, item.String())
			}
		}
		return strings.Join(parts, " ")
	}
	return detail.String()
}
