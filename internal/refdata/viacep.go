package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	apperrors "github.com/vmachado/escritorio-api/pkg/errors"

	"github.com/vmachado/escritorio-api/internal/models"
)

var cepPattern = regexp.MustCompile(`^\d{8}$`)

var nonDigits = regexp.MustCompile(`\D`)

// ViaCEPClient looks up Brazilian postal codes against the ViaCEP API.
type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

// NewViaCEPClient creates a client bound to baseURL with the given request
// timeout. Lookups never hang longer than the timeout regardless of the
// upstream service.
func NewViaCEPClient(baseURL string, timeout time.Duration) *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// viaCEPPayload mirrors the upstream response. The service signals an
// unknown postal code with {"erro": true} and HTTP 200.
type viaCEPPayload struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        bool   `json:"erro"`
}

// Lookup resolves a postal code to an address. The cep argument accepts
// punctuation ("01310-100") and is normalised to eight digits before the
// call.
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*models.Endereco, error) {
	normalized := nonDigits.ReplaceAllString(cep, "")
	if !cepPattern.MatchString(normalized) {
		return nil, apperrors.Clone(apperrors.ErrValidation, "cep must have 8 digits")
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, normalized)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "build cep request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, "cep lookup")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Clone(apperrors.ErrUpstream, fmt.Sprintf("cep service returned status %d", resp.StatusCode))
	}

	var payload viaCEPPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrUpstream.Code, apperrors.ErrUpstream.Status, "decode cep response")
	}
	if payload.Erro {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "cep not found")
	}

	return &models.Endereco{
		Cep:         payload.Cep,
		Logradouro:  payload.Logradouro,
		Complemento: payload.Complemento,
		Bairro:      payload.Bairro,
		Localidade:  payload.Localidade,
		UF:          payload.UF,
	}, nil
}

// classifyTransportError keeps timeouts distinct from other upstream
// failures so callers can surface 504 instead of a generic 502.
func classifyTransportError(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.ErrUpstreamTimeout.Code, apperrors.ErrUpstreamTimeout.Status, op+" timed out")
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.Wrap(err, apperrors.ErrUpstreamTimeout.Code, apperrors.ErrUpstreamTimeout.Status, op+" timed out")
	}
	return apperrors.Wrap(err, apperrors.ErrUpstream.Code, apperrors.ErrUpstream.Status, op+" failed")
}
