package randomorg

// IntegerOptions are the optional parameters of GenerateIntegers.
type IntegerOptions struct {
	// Replacement selects whether the numbers may repeat. Service default true.
	Replacement *bool
	// Base of the numbers: 2, 8, 10 or 16. Service default 10. With any base
	// other than 10 the service encodes the data as strings; use Client.Call
	// to decode those.
	Base int
}

type integersParams struct {
	APIKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Replacement *bool  `json:"replacement,omitempty"`
	Base        int    `json:"base,omitempty"`
}

// GenerateIntegers generates n true random integers in [min, max].
// Result matches the docs https://api.random.org/json-rpc/4/basic#generateIntegers
func (c *Client) GenerateIntegers(n, min, max int, opts ...IntegerOptions) ([]int, *GenerationInfo, error) {
	p := integersParams{APIKey: c.apiKey, N: n, Min: min, Max: max}
	if len(opts) > 0 {
		p.Replacement = opts[0].Replacement
		p.Base = opts[0].Base
	}
	var data []int
	info, err := c.generate(GenerateIntegers, p, &data)
	if err != nil {
		return nil, nil, err
	}
	return data, info, nil
}

// SequenceOptions are the optional parameters of GenerateIntegerSequences.
type SequenceOptions struct {
	// Per-sequence overrides. Each slice, when set, must have n entries and
	// replaces its uniform counterpart.
	Lengths []int
	Mins    []int
	Maxs    []int
	// Replacement selects whether numbers may repeat within a sequence,
	// either for all sequences or per sequence. Service default true.
	Replacement  *bool
	Replacements []bool
	// Base of the numbers, for all sequences or per sequence. Service
	// default 10; bases other than 10 make the service return strings.
	Base  int
	Bases []int
}

type sequencesParams struct {
	APIKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Length      any    `json:"length"`
	Min         any    `json:"min"`
	Max         any    `json:"max"`
	Replacement any    `json:"replacement,omitempty"`
	Base        any    `json:"base,omitempty"`
}

// GenerateIntegerSequences generates n sequences of true random integers,
// each of the given length with values in [min, max]. SequenceOptions can
// vary length, range, replacement and base per sequence, matching the
// int-or-array parameters of the service.
// Result matches the docs https://api.random.org/json-rpc/4/basic#generateIntegerSequences
func (c *Client) GenerateIntegerSequences(n, length, min, max int, opts ...SequenceOptions) ([][]int, *GenerationInfo, error) {
	p := sequencesParams{APIKey: c.apiKey, N: n, Length: length, Min: min, Max: max}
	if len(opts) > 0 {
		o := opts[0]
		if o.Lengths != nil {
			p.Length = o.Lengths
		}
		if o.Mins != nil {
			p.Min = o.Mins
		}
		if o.Maxs != nil {
			p.Max = o.Maxs
		}
		switch {
		case o.Replacements != nil:
			p.Replacement = o.Replacements
		case o.Replacement != nil:
			p.Replacement = *o.Replacement
		}
		switch {
		case o.Bases != nil:
			p.Base = o.Bases
		case o.Base != 0:
			p.Base = o.Base
		}
	}
	var data [][]int
	info, err := c.generate(GenerateIntegerSequences, p, &data)
	if err != nil {
		return nil, nil, err
	}
	return data, info, nil
}
