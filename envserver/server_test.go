package envserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefarrington/or-gym/knapsack"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env, err := knapsack.NewBounded(map[string]any{"N": 10, "seed": 1})
	require.NoError(t, err)
	srv := httptest.NewServer(NewServer(env).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	bs, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(bs))
	require.NoError(t, err)
	return resp
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerResetAndStep(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/reset", map[string]any{})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reset struct {
		Observation struct {
			ActionMask   []int   `json:"action_mask"`
			AvailActions []int   `json:"avail_actions"`
			State        [][]int `json:"state"`
		} `json:"observation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reset))
	assert.Len(t, reset.Observation.ActionMask, 10)
	assert.Len(t, reset.Observation.State, 3)
	assert.Len(t, reset.Observation.State[0], 11)

	stepResp := postJSON(t, srv.URL+"/step", map[string]any{"action": 0})
	defer stepResp.Body.Close()
	require.Equal(t, http.StatusOK, stepResp.StatusCode)

	var step struct {
		Reward int            `json:"reward"`
		Done   bool           `json:"done"`
		Info   map[string]any `json:"info"`
	}
	require.NoError(t, json.NewDecoder(stepResp.Body).Decode(&step))
	assert.GreaterOrEqual(t, step.Reward, 0)
	assert.Empty(t, step.Info)
}

func TestServerRejectsOutOfRangeAction(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/step", map[string]any{"action": 99})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServerRejectsMalformedStep(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/step", map[string]any{"item": 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServerSampleAndSeed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/sample")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sample struct {
		Action int `json:"action"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sample))
	assert.GreaterOrEqual(t, sample.Action, 0)
	assert.Less(t, sample.Action, 10)

	seedResp := postJSON(t, srv.URL+"/seed", map[string]any{"seed": 42})
	defer seedResp.Body.Close()
	require.Equal(t, http.StatusOK, seedResp.StatusCode)

	var seed struct {
		Seed []uint64 `json:"seed"`
	}
	require.NoError(t, json.NewDecoder(seedResp.Body).Decode(&seed))
	assert.Equal(t, []uint64{42}, seed.Seed)
}
