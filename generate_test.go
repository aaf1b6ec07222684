package randomorg_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/randomorg"
)

func TestGenerateIntegers(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`[1,5,4,3,2]`)}
	client := newTestClient(t, stub)

	data, info, err := client.GenerateIntegers(5, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 4, 3, 2}, data)
	assert.Len(t, data, 5)
	for _, n := range data {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}

	require.NotNil(t, info)
	assert.Equal(t, int64(16), info.BitsUsed)
	assert.Equal(t, int64(199984), info.BitsLeft)
	assert.Equal(t, int64(9999), info.RequestsLeft)
	assert.Equal(t, int64(1000), info.AdvisoryDelay)
	assert.Equal(t, "2013-02-11 14:51:57Z", info.CompletionTime)
}

func TestGenerateIntegersOptions(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`[7,7,7]`)}
	client := newTestClient(t, stub)

	_, _, err := client.GenerateIntegers(3, 0, 255,
		randomorg.IntegerOptions{Replacement: randomorg.Bool(false), Base: 10})
	require.NoError(t, err)

	req := sentRequest(t, stub)
	assert.Contains(t, string(req.Params), `"replacement":false`)
	assert.Contains(t, string(req.Params), `"base":10`)
}

func TestGenerateIntegerSequences(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`[[1,2,3],[4,5,6]]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateIntegerSequences(2, 3, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, data)

	req := sentRequest(t, stub)
	assert.Equal(t, "generateIntegerSequences", req.Method)

	var params struct {
		N      int `json:"n"`
		Length int `json:"length"`
		Min    int `json:"min"`
		Max    int `json:"max"`
	}
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, 2, params.N)
	assert.Equal(t, 3, params.Length)
}

func TestGenerateIntegerSequencesPerSequence(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`[[1,2],[3,4,5]]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateIntegerSequences(2, 0, 1, 10, randomorg.SequenceOptions{
		Lengths:      []int{2, 3},
		Replacements: []bool{true, false},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4, 5}}, data)

	req := sentRequest(t, stub)
	var params struct {
		Length      []int  `json:"length"`
		Replacement []bool `json:"replacement"`
	}
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, []int{2, 3}, params.Length)
	assert.Equal(t, []bool{true, false}, params.Replacement)
}

func TestGenerateDecimalFractions(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`[0.0753,0.59823,0.46109]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateDecimalFractions(3, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0753, 0.59823, 0.46109}, data)
	for _, f := range data {
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}

	req := sentRequest(t, stub)
	assert.Equal(t, "generateDecimalFractions", req.Method)
	assert.Contains(t, string(req.Params), `"decimalPlaces":5`)
}

func TestGenerateGaussians(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`[0.4025,-1.4843,0.2627]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateGaussians(3, 0, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.4025, -1.4843, 0.2627}, data)

	req := sentRequest(t, stub)
	assert.Equal(t, "generateGaussians", req.Method)

	var params struct {
		Mean              float64 `json:"mean"`
		StdDev            float64 `json:"stdDev"`
		SignificantDigits int     `json:"significantDigits"`
	}
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, 0.0, params.Mean)
	assert.Equal(t, 1.0, params.StdDev)
	assert.Equal(t, 4, params.SignificantDigits)
}

func TestGenerateStrings(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`["grvhglvahj","hjrmosjwed"]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateStrings(2, 10, "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	assert.Equal(t, []string{"grvhglvahj", "hjrmosjwed"}, data)

	req := sentRequest(t, stub)
	assert.Equal(t, "generateStrings", req.Method)
	assert.Contains(t, string(req.Params), `"characters":"abcdefghijklmnopqrstuvwxyz"`)
}

func TestGenerateStringsPregeneratedRandomization(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`["grvhglvahj"]`)}
	client := newTestClient(t, stub)

	_, _, err := client.GenerateStrings(1, 10, "abcdefghij", randomorg.StringOptions{
		PregeneratedRandomization: &randomorg.PregeneratedRandomization{Date: "2010-12-31"},
	})
	require.NoError(t, err)

	req := sentRequest(t, stub)
	assert.Contains(t, string(req.Params), `"pregeneratedRandomization":{"date":"2010-12-31"}`)
}

func TestGenerateUUIDs(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`["47849fd4-b790-492e-8b93-c601a91b662d","f93ade88-6f31-4e0b-9b91-33b26ed27acb"]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateUUIDs(2)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{
		uuid.MustParse("47849fd4-b790-492e-8b93-c601a91b662d"),
		uuid.MustParse("f93ade88-6f31-4e0b-9b91-33b26ed27acb"),
	}, data)

	// The service spells the method with all-caps UUID.
	req := sentRequest(t, stub)
	assert.Equal(t, "generateUUIDs", req.Method)
}

func TestGenerateBlobs(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`["aNB8L3hY3kWYXgTUQxGVWA=="]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateBlobs(1, 128)
	require.NoError(t, err)
	assert.Equal(t, []string{"aNB8L3hY3kWYXgTUQxGVWA=="}, data)

	req := sentRequest(t, stub)
	assert.Equal(t, "generateBlobs", req.Method)
	assert.Contains(t, string(req.Params), `"size":128`)
}

func TestGenerateBlobsHex(t *testing.T) {
	stub := &stubHTTP{body: generationBody(`["68d07c2f"]`)}
	client := newTestClient(t, stub)

	data, _, err := client.GenerateBlobs(1, 32, randomorg.BlobOptions{Format: randomorg.BlobFormatHex})
	require.NoError(t, err)
	assert.Equal(t, []string{"68d07c2f"}, data)

	req := sentRequest(t, stub)
	assert.Contains(t, string(req.Params), `"format":"hex"`)
}
