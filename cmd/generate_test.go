package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCapture executes a subcommand against a stub endpoint returning data and
// returns the params object of the request the command sent.
func runCapture(t *testing.T, data string, args ...string) map[string]any {
	t.Helper()
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","result":{"random":{"data":` + data +
			`,"completionTime":"2013-02-11 14:51:57Z"},"bitsUsed":16,"bitsLeft":199984,"requestsLeft":9999,"advisoryDelay":1000},"id":1}`))
	}))
	defer srv.Close()

	rootCmd.SetArgs(append(args, "--api-key", "00000000-0000-0000-0000-000000000000", "--endpoint", srv.URL))
	require.NoError(t, rootCmd.Execute())

	var req struct {
		Params map[string]any `json:"params"`
	}
	require.NoError(t, json.Unmarshal(body, &req))
	return req.Params
}

// Each subcommand owns its flag variables, so defaults that differ between
// commands (sequences length 10, strings length 8) must not clobber each other.
func TestSequencesDefaultLength(t *testing.T) {
	params := runCapture(t, `[[1,2,3,4,5,6,7,8,9,10]]`, "sequences")
	assert.Equal(t, float64(10), params["length"])
}

func TestStringsDefaultLength(t *testing.T) {
	params := runCapture(t, `["grvhglva"]`, "strings")
	assert.Equal(t, float64(8), params["length"])
}
