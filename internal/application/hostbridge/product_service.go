package hostbridge

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/infrastructure/hostapi"
)

// Fixed error messages used when the host's body cannot be interpreted.
// The raw body still travels in the result for diagnostics.
const (
	parseErrorMutation = "Failed to parse host response"
	parseErrorDelete   = "Failed to parse host delete response"
	parseErrorDetail   = "Failed to parse host get-by-id response"
	fallbackHostError  = "Host error"
)

// ProductGateway is the slice of the host gateway that product bridging needs
type ProductGateway interface {
	CreateProduct(ctx context.Context, in hostapi.CreateProductInput) (*hostapi.RawResponse, error)
	UpdateProduct(ctx context.Context, in hostapi.UpdateProductInput) (*hostapi.RawResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (*hostapi.RawResponse, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*hostapi.RawResponse, error)
	ListProducts(ctx context.Context) (*hostapi.RawResponse, error)
}

// ProductService bridges product operations to the external host and
// normalizes what comes back. Single-item operations are translated into a
// uniform BridgeResult; the list passes through completely untouched.
type ProductService struct {
	gateway ProductGateway
}

// NewProductService creates a new host-facing ProductService
func NewProductService(gateway ProductGateway) *ProductService {
	return &ProductService{gateway: gateway}
}

// CreateProduct sends a create to the host and normalizes the response
func (s *ProductService) CreateProduct(ctx context.Context, input hostapi.CreateProductInput) (*BridgeResult, error) {
	raw, err := s.gateway.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	return normalizeMutation(raw), nil
}

// UpdateProduct sends an update to the host and normalizes the response
func (s *ProductService) UpdateProduct(ctx context.Context, input hostapi.UpdateProductInput) (*BridgeResult, error) {
	raw, err := s.gateway.UpdateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	return normalizeMutation(raw), nil
}

// DeleteProduct asks the host to delete a product and normalizes the response
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) (*BridgeResult, error) {
	raw, err := s.gateway.DeleteProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return normalizeDelete(raw, id), nil
}

// GetProductByID fetches a product from the host and normalizes the response
func (s *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*BridgeResult, error) {
	raw, err := s.gateway.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return normalizeDetail(raw), nil
}

// ListProducts relays the host's list response verbatim: body, content type,
// and status code are exactly what the host sent.
func (s *ProductService) ListProducts(ctx context.Context) (*hostapi.RawResponse, error) {
	return s.gateway.ListProducts(ctx)
}

// normalizeMutation interprets a create/update body. The whole parsed
// envelope becomes the result payload so callers see the host's code,
// status, message, and product together.
func normalizeMutation(raw *hostapi.RawResponse) *BridgeResult {
	response, status := hostapi.Unwrap[hostapi.MutationResponse](raw.Body)
	if status != hostapi.DecodeOK {
		return parseFailure(raw, parseErrorMutation)
	}

	if !response.IsSuccess() {
		return &BridgeResult{
			Code:    raw.Code,
			Success: false,
			Data:    response,
			Errors:  []string{messageOr(response.Message, fallbackHostError)},
		}
	}

	return &BridgeResult{
		Code:    raw.Code,
		Success: true,
		Data:    response,
	}
}

// normalizeDelete interprets a delete body. The payload is reduced to the
// target id plus the host's message.
func normalizeDelete(raw *hostapi.RawResponse, id uuid.UUID) *BridgeResult {
	response, status := hostapi.Unwrap[hostapi.SimpleResponse](raw.Body)
	if status != hostapi.DecodeOK {
		return parseFailure(raw, parseErrorDelete)
	}

	if !response.IsSuccess() {
		return &BridgeResult{
			Code:    raw.Code,
			Success: false,
			Data:    deleteData{ID: hostapi.HostID(id), Message: messageOr(response.Message, "Failed")},
			Errors:  []string{messageOr(response.Message, fallbackHostError)},
		}
	}

	return &BridgeResult{
		Code:    raw.Code,
		Success: true,
		Data:    deleteData{ID: hostapi.HostID(id), Message: messageOr(response.Message, "Deleted")},
	}
}

// normalizeDetail interprets a get-by-id body. A body without the nested
// response object counts as unparseable even when it is valid JSON.
func normalizeDetail(raw *hostapi.RawResponse) *BridgeResult {
	envelope, status := hostapi.Unwrap[hostapi.DetailEnvelope](raw.Body)
	if status != hostapi.DecodeOK || envelope.Response == nil {
		return parseFailure(raw, parseErrorDetail)
	}

	if !envelope.Response.IsSuccess() {
		message := fallbackHostError
		if envelope.MessageEn != nil && *envelope.MessageEn != "" {
			message = *envelope.MessageEn
		}
		return &BridgeResult{
			Code:    raw.Code,
			Success: false,
			Errors:  []string{message},
		}
	}

	return &BridgeResult{
		Code:    raw.Code,
		Success: true,
		Data:    envelope.Response.Data,
	}
}

// parseFailure builds the fixed result for unparseable bodies, carrying the
// raw text for diagnostics
func parseFailure(raw *hostapi.RawResponse, message string) *BridgeResult {
	return &BridgeResult{
		Code:    raw.Code,
		Success: false,
		Data:    raw.Body,
		Errors:  []string{message},
	}
}

func messageOr(message *string, fallback string) string {
	if message != nil && *message != "" {
		return *message
	}
	return fallback
}
