package customers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"crm_pipeline/internal/usecase/interfaces"
)

// CustomerHTTPClient calls the external customer service. Only create is
// needed: the conversion engine uses it to register a prospect customer for
// leads without one.
//
// Configured by CUSTOMER_SERVICE_URL.

type CustomerHTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.ICustomerService = (*CustomerHTTPClient)(nil)

func NewCustomerHTTPClient() (*CustomerHTTPClient, error) {
	baseURL := strings.TrimRight(os.Getenv("CUSTOMER_SERVICE_URL"), "/")
	if baseURL == "" {
		return nil, errors.New("CUSTOMER_SERVICE_URL is not set")
	}
	return &CustomerHTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type createCustomerRequest struct {
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	IsProspect  bool   `json:"isProspect"`
}

type createCustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
}

func (c *CustomerHTTPClient) Create(ctx context.Context, draft interfaces.CustomerDraft) (interfaces.CustomerRef, error) {
	body, err := json.Marshal(createCustomerRequest{
		Name:        draft.Name,
		CompanyName: draft.CompanyName,
		Phone:       draft.Phone,
		Email:       draft.Email,
		IsProspect:  draft.IsProspect,
	})
	if err != nil {
		return interfaces.CustomerRef{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/customers", bytes.NewReader(body))
	if err != nil {
		return interfaces.CustomerRef{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return interfaces.CustomerRef{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return interfaces.CustomerRef{}, fmt.Errorf("customer service returned status %d", resp.StatusCode)
	}

	var out createCustomerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return interfaces.CustomerRef{}, err
	}
	if out.ID == "" {
		return interfaces.CustomerRef{}, errors.New("customer service returned no id")
	}
	return interfaces.CustomerRef{ID: out.ID, Name: out.Name, CompanyName: out.CompanyName}, nil
}
