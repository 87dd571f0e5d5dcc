package yadict

import (
	"context"
	"encoding/json"
	"net/url"
)

// Languages returns the language pairs the service can translate between,
// e.g. "en-ru", in the order the service lists them. Non-string elements of
// the response array are skipped, not treated as errors.
func (c *Client) Languages(ctx context.Context) ([]string, error) {
	q := url.Values{}
	q.Set("key", c.token)

	body, err := c.fetchJSON(ctx, c.endpoint("getLangs")+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var elements []any
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, classifyDecodeError(err)
	}

	pairs := make([]string, 0, len(elements))
	for _, element := range elements {
		if pair, ok := element.(string); ok {
			pairs = append(pairs, pair)
		}
	}

	return pairs, nil
}
