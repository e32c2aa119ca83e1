package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pokedex/internal/domain/common"
	"pokedex/internal/httpclient"
	"pokedex/internal/logging"
)

const serviceName = "pokeapi"

// Client fetches species records. It deliberately carries no retry policy:
// a 404 is not retriable and the upstream is treated as authoritative for
// everything else.
type Client struct {
	http   *httpclient.Client
	logger logging.Logger
}

func New(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	httpCli, err := httpclient.New(baseURL, timeout, logger.With("component", "pokeapi_http"))
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   httpCli,
		logger: logger,
	}, nil
}

// GetSpecies fetches the raw species record for name. The name is lowercased
// before hitting the upstream, which only knows lowercase identifiers.
// A 404 maps to NotFoundError; every other failure to UpstreamUnavailableError.
func (c *Client) GetSpecies(ctx context.Context, name string) (Species, error) {
	path := strings.ToLower(strings.TrimSpace(name))

	var res Species
	if err := c.http.GetJSON(ctx, path, nil, &res); err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusNotFound {
				return Species{}, common.NewNotFound(fmt.Sprintf("pokemon '%s'", name))
			}
			return Species{}, common.UpstreamUnavailableError{
				Service: serviceName,
				Status:  httpErr.StatusCode,
				Detail:  httpErr.Message,
			}
		}
		return Species{}, common.UpstreamUnavailableError{
			Service: serviceName,
			Detail:  err.Error(),
		}
	}

	return res, nil
}
