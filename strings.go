package randomorg

import "github.com/google/uuid"

// PregeneratedRandomization names a pregenerated randomization to draw from
// instead of a fresh one: either the Date (YYYY-MM-DD) of a historical one or
// a persistent ID. Leave both empty for true fresh randomness.
type PregeneratedRandomization struct {
	Date string `json:"date,omitempty"`
	ID   string `json:"id,omitempty"`
}

// StringOptions are the optional parameters of GenerateStrings.
type StringOptions struct {
	// Replacement selects whether the strings may repeat. Service default true.
	Replacement *bool
	// PregeneratedRandomization replays a historical or named randomization.
	PregeneratedRandomization *PregeneratedRandomization
}

type stringsParams struct {
	APIKey                    string                     `json:"apiKey"`
	N                         int                        `json:"n"`
	Length                    int                        `json:"length"`
	Characters                string                     `json:"characters"`
	Replacement               *bool                      `json:"replacement,omitempty"`
	PregeneratedRandomization *PregeneratedRandomization `json:"pregeneratedRandomization,omitempty"`
}

// GenerateStrings generates n true random strings of the given length, drawn
// from the characters alphabet.
// Result matches the docs https://api.random.org/json-rpc/4/basic#generateStrings
func (c *Client) GenerateStrings(n, length int, characters string, opts ...StringOptions) ([]string, *GenerationInfo, error) {
	p := stringsParams{APIKey: c.apiKey, N: n, Length: length, Characters: characters}
	if len(opts) > 0 {
		p.Replacement = opts[0].Replacement
		p.PregeneratedRandomization = opts[0].PregeneratedRandomization
	}
	var data []string
	info, err := c.generate(GenerateStrings, p, &data)
	if err != nil {
		return nil, nil, err
	}
	return data, info, nil
}

type uuidsParams struct {
	APIKey string `json:"apiKey"`
	N      int    `json:"n"`
}

// GenerateUUIDs generates n true random version-4 UUIDs.
// Result matches the docs https://api.random.org/json-rpc/4/basic#generateUUIDs
func (c *Client) GenerateUUIDs(n int) ([]uuid.UUID, *GenerationInfo, error) {
	var data []uuid.UUID
	info, err := c.generate(GenerateUUIDs, uuidsParams{APIKey: c.apiKey, N: n}, &data)
	if err != nil {
		return nil, nil, err
	}
	return data, info, nil
}

// Blob formats accepted by GenerateBlobs.
const (
	BlobFormatBase64 = "base64"
	BlobFormatHex    = "hex"
)

// BlobOptions are the optional parameters of GenerateBlobs.
type BlobOptions struct {
	// Format of the blobs: BlobFormatBase64 or BlobFormatHex. Service
	// default base64.
	Format string
}

type blobsParams struct {
	APIKey string `json:"apiKey"`
	N      int    `json:"n"`
	Size   int    `json:"size"`
	Format string `json:"format,omitempty"`
}

// GenerateBlobs generates n true random blobs of size bits each; size must
// be a multiple of 8.
// Result matches the docs https://api.random.org/json-rpc/4/basic#generateBlobs
func (c *Client) GenerateBlobs(n, size int, opts ...BlobOptions) ([]string, *GenerationInfo, error) {
	p := blobsParams{APIKey: c.apiKey, N: n, Size: size}
	if len(opts) > 0 {
		p.Format = opts[0].Format
	}
	var data []string
	info, err := c.generate(GenerateBlobs, p, &data)
	if err != nil {
		return nil, nil, err
	}
	return data, info, nil
}
