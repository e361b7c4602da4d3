package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// HeaderKeyRequestID request id header key
	HeaderKeyRequestID = "X-Request-Id"

	defaultTimeout = 10 * time.Second
)

// New resty client for an endpoint
func New(endpoint string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return resty.New().
		SetBaseURL(strings.TrimSuffix(endpoint, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Charset", "utf-8").
		SetTimeout(timeout)
}

// Request new resty request, the request id is forwarded when set
func Request(ctx context.Context, client *resty.Client, requestID string) *resty.Request {
	r := client.R().SetContext(ctx)
	if requestID != "" {
		r = r.SetHeader(HeaderKeyRequestID, requestID)
	}

	return r
}

// Execute do network request
func Execute(request *resty.Request, method, url string, body interface{}, resp interface{}) (int, error) {
	logrus.WithField("url", url).Debugln("resthttp: execute")

	if body != nil {
		request = request.SetBody(body)
	}

	r, err := request.Execute(strings.ToUpper(method), url)
	if err != nil {
		return 0, err
	}

	return r.StatusCode(), ParseResponse(r, resp)
}

// Error non 2xx response
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("resthttp: status %d: %s", e.StatusCode, e.Body)
}

// ParseResponse parse response
func ParseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		return &Error{
			StatusCode: r.StatusCode(),
			Body:       strings.TrimSpace(string(r.Body())),
		}
	}

	if obj == nil {
		return nil
	}

	return json.Unmarshal(r.Body(), obj)
}
