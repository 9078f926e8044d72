package hostapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxResponseSize is the maximum allowed response size from the host (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Host endpoint paths, relative to the configured base address. The host is
// an ASMX-era service: everything except list is a POST.
const (
	loginPath   = "/api/service.asmx/login"
	createPath  = "/api/service.asmx/create"
	updatePath  = "/api/service.asmx/update"
	deletePath  = "/api/service.asmx/delete"
	getByIDPath = "/api/service.asmx/getproductbyid"
	listPath    = "/api/service.asmx/list"
)

// tokenHeader is the host's custom session header. The raw token goes in as
// is, no bearer scheme.
const tokenHeader = "token"

// defaultContentType is assumed when the host omits a Content-Type header
const defaultContentType = "application/json"

// noSessionBody is the fixed body returned without any network call when no
// host session has been stored yet.
const noSessionBody = `{"error":"No external token saved. Call /external/login first."}`

// ErrNoSession indicates no host session token has been stored yet
var ErrNoSession = errors.New("hostapi: no host session available")

// ErrHostUnreachable indicates the request never produced an HTTP response
var ErrHostUnreachable = errors.New("hostapi: host unreachable")

// TokenSource resolves the session token attached to outbound host calls.
// Implementations return ErrNoSession when nothing has been stored.
type TokenSource interface {
	CurrentToken(ctx context.Context) (string, error)
}

// Config holds settings for the host gateway
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// Validate checks required fields and applies defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("hostapi: base URL is required")
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}

// RawResponse is the untranslated result of a host call: the transport
// status (200 whenever the HTTP exchange itself succeeded, the literal
// status otherwise), the body text, and the content type. Interpretation of
// the body is deferred entirely to the caller.
type RawResponse struct {
	Code        int
	Body        string
	ContentType string
}

// Gateway performs the host's product operations over a shared HTTP client
// bound to one base address.
type Gateway struct {
	config     *Config
	httpClient *http.Client
	tokens     TokenSource
}

// NewGateway creates a gateway with the given configuration and token source
func NewGateway(config *Config, tokens TokenSource) (*Gateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if tokens == nil {
		return nil, errors.New("hostapi: token source is required")
	}

	return &Gateway{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		tokens: tokens,
	}, nil
}

// CreateProductInput carries the fields of an outbound create call
type CreateProductInput struct {
	SKU         string
	Name        string
	Description *string
	BrandID     *uuid.UUID
	Brand       *string
	CategoryID  *uuid.UUID
	Category    *string
	Status      bool
	CreatedBy   *string
}

// UpdateProductInput carries the fields of an outbound update call
type UpdateProductInput struct {
	ID          uuid.UUID
	SKU         string
	Name        string
	Description *string
	BrandID     *uuid.UUID
	Brand       *string
	CategoryID  *uuid.UUID
	Category    *string
	Status      bool
}

// createBody is the host's field naming for create requests
type createBody struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	BrandID     *string `json:"brandId"`
	Brand       *string `json:"brand"`
	CategoryID  *string `json:"categoryId"`
	Category    *string `json:"category"`
	Status      bool    `json:"status"`
	CreatedBy   *string `json:"createdBy"`
}

// updateBody is createBody plus the target product id, minus the creator
type updateBody struct {
	ProductID   string  `json:"productId"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	BrandID     *string `json:"brandId"`
	Brand       *string `json:"brand"`
	CategoryID  *string `json:"categoryId"`
	Category    *string `json:"category"`
	Status      bool    `json:"status"`
}

// idBody targets a single product by host id
type idBody struct {
	ProductID string `json:"productId"`
}

// loginRequestBody carries host login credentials
type loginRequestBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// hostIDPtr renders an optional identifier for the host
func hostIDPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := HostID(*id)
	return &s
}

// Login calls the host's login endpoint. No session token is attached; this
// is the call that produces one.
func (g *Gateway) Login(ctx context.Context, username, password string) (*RawResponse, error) {
	return g.do(ctx, http.MethodPost, loginPath, "", loginRequestBody{
		Username: username,
		Password: password,
	})
}

// CreateProduct sends a product creation to the host
func (g *Gateway) CreateProduct(ctx context.Context, in CreateProductInput) (*RawResponse, error) {
	return g.withToken(ctx, func(token string) (*RawResponse, error) {
		return g.do(ctx, http.MethodPost, createPath, token, createBody{
			SKU:         in.SKU,
			Name:        in.Name,
			Description: in.Description,
			BrandID:     hostIDPtr(in.BrandID),
			Brand:       in.Brand,
			CategoryID:  hostIDPtr(in.CategoryID),
			Category:    in.Category,
			Status:      in.Status,
			CreatedBy:   in.CreatedBy,
		})
	})
}

// UpdateProduct sends a product update to the host
func (g *Gateway) UpdateProduct(ctx context.Context, in UpdateProductInput) (*RawResponse, error) {
	return g.withToken(ctx, func(token string) (*RawResponse, error) {
		return g.do(ctx, http.MethodPost, updatePath, token, updateBody{
			ProductID:   HostID(in.ID),
			SKU:         in.SKU,
			Name:        in.Name,
			Description: in.Description,
			BrandID:     hostIDPtr(in.BrandID),
			Brand:       in.Brand,
			CategoryID:  hostIDPtr(in.CategoryID),
			Category:    in.Category,
			Status:      in.Status,
		})
	})
}

// DeleteProduct asks the host to delete a product
func (g *Gateway) DeleteProduct(ctx context.Context, id uuid.UUID) (*RawResponse, error) {
	return g.withToken(ctx, func(token string) (*RawResponse, error) {
		return g.do(ctx, http.MethodPost, deletePath, token, idBody{ProductID: HostID(id)})
	})
}

// GetProductByID fetches a single product from the host
func (g *Gateway) GetProductByID(ctx context.Context, id uuid.UUID) (*RawResponse, error) {
	return g.withToken(ctx, func(token string) (*RawResponse, error) {
		return g.do(ctx, http.MethodPost, getByIDPath, token, idBody{ProductID: HostID(id)})
	})
}

// ListProducts fetches the host's full product list. The response is
// returned verbatim for passthrough; nothing here inspects it.
func (g *Gateway) ListProducts(ctx context.Context) (*RawResponse, error) {
	return g.withToken(ctx, func(token string) (*RawResponse, error) {
		return g.do(ctx, http.MethodGet, listPath, token, nil)
	})
}

// withToken resolves the current session token and short-circuits to the
// fixed 400 result, without touching the network, when none exists. Any
// other token-store failure propagates as a fault.
func (g *Gateway) withToken(ctx context.Context, call func(token string) (*RawResponse, error)) (*RawResponse, error) {
	token, err := g.tokens.CurrentToken(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return &RawResponse{
				Code:        http.StatusBadRequest,
				Body:        noSessionBody,
				ContentType: defaultContentType,
			}, nil
		}
		return nil, fmt.Errorf("hostapi: failed to resolve session token: %w", err)
	}
	return call(token)
}

// do performs one HTTP exchange with the host
func (g *Gateway) do(ctx context.Context, method, path, token string, body any) (*RawResponse, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("hostapi: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(g.config.BaseURL, "/")+path, reader)
	if err != nil {
		return nil, fmt.Errorf("hostapi: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", defaultContentType)
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHostUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("hostapi: failed to read response: %w", err)
	}

	code := resp.StatusCode
	if code >= 200 && code < 300 {
		code = http.StatusOK
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return &RawResponse{
		Code:        code,
		Body:        string(data),
		ContentType: contentType,
	}, nil
}
