package hc

import (
	"blend/core"
	"blend/store/ratemodifier"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pools struct {
	list []*core.PoolSnapshot
	err  error
}

func (p pools) Find(ctx context.Context, poolID string) (*core.PoolSnapshot, error) {
	return nil, core.ErrPoolNotFound
}

func (p pools) All(ctx context.Context) ([]*core.PoolSnapshot, error) {
	return p.list, p.err
}

func check(t *testing.T, h http.Handler) map[string]interface{} {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	modifiers := ratemodifier.New(func() time.Time { return now })
	modifiers.GetOrCreate(context.Background(), "pool/usdc", &core.InterestRateConfig{
		InterestRateModifier: big.NewInt(10_000_000),
	})

	t.Run("ok", func(t *testing.T) {
		body := check(t, Handle("v1", pools{list: []*core.PoolSnapshot{{PoolID: "a"}, {PoolID: "b"}}}, modifiers))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "v1", body["version"])
		assert.EqualValues(t, 2, body["pools"])
		assert.EqualValues(t, 1, body["modifiers"])
	})

	t.Run("degraded", func(t *testing.T) {
		body := check(t, Handle("v1", pools{err: errors.New("disk gone")}, modifiers))
		assert.Equal(t, "degraded", body["status"])
		assert.NotContains(t, body, "pools")
	})
}
