package param

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
}

// Binding decodes the query string, and the json body for requests that carry
// one, into v, then runs the `valid` struct tags
func Binding(r *http.Request, v interface{}) error {
	if err := decoder.Decode(v, r.URL.Query()); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	if r.Body != nil && r.ContentLength != 0 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return fmt.Errorf("invalid body: %w", err)
		}
	}

	if _, err := govalidator.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

// Decimal parse a decimal argument, empty is an error
func Decimal(name, v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, fmt.Errorf("%s is required", name)
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", name, v)
	}

	return d, nil
}

// Time parse a unix seconds or RFC3339 argument, empty yields def
func Time(v string, def time.Time) (time.Time, error) {
	if v == "" {
		return def, nil
	}

	if sec, err := cast.ToInt64E(v); err == nil {
		if sec <= 0 {
			return time.Time{}, errors.New("time must be positive")
		}

		return time.Unix(sec, 0).UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", v)
	}

	return t, nil
}
