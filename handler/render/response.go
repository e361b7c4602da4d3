package render

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// ResponseErrorMessageAsHint copy internal error messages to the hint field
var ResponseErrorMessageAsHint bool

func init() {
	v := os.Getenv("RESPONSE_ERROR_MESSAGE_AS_HINT")
	ResponseErrorMessageAsHint, _ = strconv.ParseBool(v)
}

type wrapResponse struct {
	status int
	header http.Header
	buf    *bytes.Buffer
}

func (w *wrapResponse) Header() http.Header {
	return w.header
}

func (w *wrapResponse) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *wrapResponse) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *wrapResponse) isJSONContent() bool {
	typ := w.header.Get("Content-Type")
	return strings.HasPrefix(typ, "application/json")
}

type dataResponse struct {
	Data json.RawMessage `json:"data,omitempty"`
}

type errorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Hint string `json:"hint,omitempty"`
}

// WrapResponse wraps successful json bodies as {"data": ...}; error bodies are
// written as they are, internal messages are hidden unless hint is set
func WrapResponse(hint bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := &wrapResponse{
				status: http.StatusOK,
				header: http.Header{},
				buf:    &bytes.Buffer{},
			}

			next.ServeHTTP(ww, r)

			for k, v := range ww.header {
				w.Header()[k] = v
			}

			body := ww.buf.Bytes()
			if ww.isJSONContent() {
				body = wrapBody(ww.status, body, hint || ResponseErrorMessageAsHint)
				w.Header().Del("Content-Length")
			}

			w.WriteHeader(ww.status)
			_, _ = w.Write(body)
		}

		return http.HandlerFunc(fn)
	}
}

func wrapBody(status int, body []byte, hint bool) []byte {
	if status >= http.StatusBadRequest {
		var resp errorResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return body
		}

		if status >= http.StatusInternalServerError {
			if hint {
				resp.Hint = resp.Msg
			}
			resp.Msg = http.StatusText(status)
		}

		data, _ := json.Marshal(resp)
		return append(data, '\n')
	}

	data, err := json.Marshal(dataResponse{Data: bytes.TrimSpace(body)})
	if err != nil {
		return body
	}

	return append(data, '\n')
}
