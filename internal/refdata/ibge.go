package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	apperrors "github.com/vmachado/escritorio-api/pkg/errors"

	"github.com/vmachado/escritorio-api/internal/models"
)

var ufPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// IBGEClient fetches the state and municipality catalogs from the IBGE
// localidades API.
type IBGEClient struct {
	baseURL string
	client  *http.Client
}

// NewIBGEClient creates a client bound to baseURL with the given request
// timeout.
func NewIBGEClient(baseURL string, timeout time.Duration) *IBGEClient {
	return &IBGEClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Estados returns all states sorted by name.
func (c *IBGEClient) Estados(ctx context.Context) ([]models.Estado, error) {
	url := c.baseURL + "/estados"
	var estados []models.Estado
	if err := c.getJSON(ctx, url, "ibge estados", &estados); err != nil {
		return nil, err
	}
	sort.Slice(estados, func(i, j int) bool {
		return estados[i].Nome < estados[j].Nome
	})
	return estados, nil
}

// Municipios returns the municipalities of a state, identified by its
// two-letter abbreviation.
func (c *IBGEClient) Municipios(ctx context.Context, uf string) ([]models.Municipio, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if !ufPattern.MatchString(uf) {
		return nil, apperrors.Clone(apperrors.ErrValidation, "uf must be a 2-letter state code")
	}

	url := fmt.Sprintf("%s/estados/%s/municipios", c.baseURL, uf)
	var municipios []models.Municipio
	if err := c.getJSON(ctx, url, "ibge municipios", &municipios); err != nil {
		return nil, err
	}
	return municipios, nil
}

func (c *IBGEClient) getJSON(ctx context.Context, url, op string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "build "+op+" request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return classifyTransportError(err, op)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Clone(apperrors.ErrUpstream, fmt.Sprintf("%s returned status %d", op, resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrUpstream.Code, apperrors.ErrUpstream.Status, "decode "+op+" response")
	}
	return nil
}
