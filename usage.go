package randomorg

import "encoding/json"

// Usage describes the quota of the client's API key as reported by getUsage.
type Usage struct {
	Status        string `json:"status"`
	CreationTime  string `json:"creationTime"`
	BitsLeft      int64  `json:"bitsLeft"`
	RequestsLeft  int64  `json:"requestsLeft"`
	TotalBits     int64  `json:"totalBits"`
	TotalRequests int64  `json:"totalRequests"`
}

type usageParams struct {
	APIKey string `json:"apiKey"`
}

// GetUsage returns the usage of the client's API key. Unlike the generation
// methods it has no random.data payload, so the whole result is returned.
// Result matches the docs https://api.random.org/json-rpc/4/basic#getUsage
func (c *Client) GetUsage() (*Usage, error) {
	result, err := c.call(GetUsage, usageParams{APIKey: c.apiKey})
	if err != nil {
		return nil, err
	}
	var usage Usage
	if err := json.Unmarshal(result, &usage); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &usage, nil
}
