package randomorg

// DecimalFractionOptions are the optional parameters of GenerateDecimalFractions.
type DecimalFractionOptions struct {
	// Replacement selects whether the fractions may repeat. Service default true.
	Replacement *bool
}

type decimalFractionsParams struct {
	APIKey        string `json:"apiKey"`
	N             int    `json:"n"`
	DecimalPlaces int    `json:"decimalPlaces"`
	Replacement   *bool  `json:"replacement,omitempty"`
}

// GenerateDecimalFractions generates n true random decimal fractions in
// [0, 1) with decimalPlaces decimal places.
// Result matches the docs https://api.random.org/json-rpc/4/basic#generateDecimalFractions
func (c *Client) GenerateDecimalFractions(n, decimalPlaces int, opts ...DecimalFractionOptions) ([]float64, *GenerationInfo, error) {
	p := decimalFractionsParams{APIKey: c.apiKey, N: n, DecimalPlaces: decimalPlaces}
	if len(opts) > 0 {
		p.Replacement = opts[0].Replacement
	}
	var data []float64
	info, err := c.generate(GenerateDecimalFractions, p, &data)
	if err != nil {
		return nil, nil, err
	}
	return data, info, nil
}

type gaussiansParams struct {
	APIKey            string  `json:"apiKey"`
	N                 int     `json:"n"`
	Mean              float64 `json:"mean"`
	StandardDeviation float64 `json:"stdDev"`
	SignificantDigits int     `json:"significantDigits"`
}

// GenerateGaussians generates n true random numbers from a Gaussian
// distribution with the given mean and standard deviation, rounded to
// significantDigits significant digits.
// Result matches the docs https://api.random.org/json-rpc/4/basic#generateGaussians
func (c *Client) GenerateGaussians(n int, mean, stdDev float64, significantDigits int) ([]float64, *GenerationInfo, error) {
	p := gaussiansParams{APIKey: c.apiKey, N: n, Mean: mean, StandardDeviation: stdDev, SignificantDigits: significantDigits}
	var data []float64
	info, err := c.generate(GenerateGaussians, p, &data)
	if err != nil {
		return nil, nil, err
	}
	return data, info, nil
}
