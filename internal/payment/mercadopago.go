// Package payment wraps the MercadoPago checkout-preference API. The gateway
// is a black box to the rest of the system: one call in, a preference id and
// redirect URL out.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Item prices are in major currency units (MXN), unlike the rest of the
// system which uses centavos.
type PreferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Payer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PreferenceRequest struct {
	OrderID int64
	Items   []PreferenceItem
	Payer   Payer
}

type Preference struct {
	PreferenceID     string
	InitPoint        string
	SandboxInitPoint string
}

// RedirectURL prefers the sandbox URL when both are present.
func (p Preference) RedirectURL() string {
	if p.SandboxInitPoint != "" {
		return p.SandboxInitPoint
	}
	return p.InitPoint
}

type PreferenceCreator interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (Preference, error)
}

type MercadoPagoClient struct {
	baseURL     string
	accessToken string
	http        *http.Client
}

func NewMercadoPagoClient(baseURL, accessToken string) *MercadoPagoClient {
	return &MercadoPagoClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

type wirePhone struct {
	Number string `json:"number"`
}

type wirePayer struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone wirePhone `json:"phone"`
}

type wirePreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	Payer             wirePayer        `json:"payer"`
	ExternalReference string           `json:"external_reference"`
}

type wirePreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
	Message          string `json:"message"`
}

func (c *MercadoPagoClient) CreatePreference(ctx context.Context, req PreferenceRequest) (Preference, error) {
	payload := wirePreferenceRequest{
		Items: req.Items,
		Payer: wirePayer{
			Name:  req.Payer.Name,
			Email: req.Payer.Email,
			Phone: wirePhone{Number: req.Payer.Phone},
		},
		ExternalReference: fmt.Sprintf("%d", req.OrderID),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Preference{}, fmt.Errorf("marshal preference request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return Preference{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Preference{}, fmt.Errorf("mercadopago unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Preference{}, fmt.Errorf("read mercadopago response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Preference{}, fmt.Errorf("mercadopago error (%d): %s", resp.StatusCode, string(respBody))
	}

	var wire wirePreferenceResponse
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return Preference{}, fmt.Errorf("parse mercadopago response: %w", err)
	}
	if wire.ID == "" {
		return Preference{}, fmt.Errorf("mercadopago returned empty preference id")
	}

	return Preference{
		PreferenceID:     wire.ID,
		InitPoint:        wire.InitPoint,
		SandboxInitPoint: wire.SandboxInitPoint,
	}, nil
}
