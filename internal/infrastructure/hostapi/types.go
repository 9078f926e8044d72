package hostapi

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// successCode is the host's business-level "all good" code
const successCode = "00"

// IsHostSuccess implements the host's loosely-typed success rule: an
// operation succeeded iff the code equals "00" or the status equals
// "success" ignoring case. Missing fields simply evaluate to failure.
func IsHostSuccess(code, status string) bool {
	return code == successCode || strings.EqualFold(status, "success")
}

// HostID renders an identifier the way the host expects: uppercase
// hexadecimal text, dash-separated, no surrounding braces.
func HostID(id uuid.UUID) string {
	return strings.ToUpper(id.String())
}

// Product is the host's external representation of a product. Field names
// and casing are the host's, not ours.
type Product struct {
	ProductID   uuid.UUID  `json:"ProductID"`
	SKU         string     `json:"SKU"`
	Name        string     `json:"Name"`
	Description *string    `json:"Description"`
	BrandID     *uuid.UUID `json:"BrandID"`
	Brand       *string    `json:"Brand"`
	CategoryID  *uuid.UUID `json:"CategoryID"`
	Category    *string    `json:"Category"`
	Status      bool       `json:"Status"`
	CreatedAt   time.Time  `json:"Created_At"`
	CreatedBy   *string    `json:"Created_By"`
}

// MutationResponse is the envelope the host returns for create and update
// operations (possibly wrapped in the legacy d-envelope).
type MutationResponse struct {
	Code    string   `json:"code"`
	Status  string   `json:"status"`
	Message *string  `json:"message"`
	Data    *Product `json:"data"`
}

// IsSuccess evaluates the mutation envelope's business outcome
func (r *MutationResponse) IsSuccess() bool {
	return IsHostSuccess(r.Code, r.Status)
}

// SimpleResponse is the envelope the host returns for delete operations
type SimpleResponse struct {
	Code    string  `json:"code"`
	Status  string  `json:"status"`
	Message *string `json:"message"`
}

// IsSuccess evaluates the simple envelope's business outcome
func (r *SimpleResponse) IsSuccess() bool {
	return IsHostSuccess(r.Code, r.Status)
}

// DetailEnvelope is the outer envelope of get-by-id responses; the
// substantive payload lives in the nested response object. Response is a
// pointer so that a body missing the key entirely is distinguishable from
// an empty one.
type DetailEnvelope struct {
	AppName   *string         `json:"app_name"`
	Version   *string         `json:"version"`
	Build     *string         `json:"build"`
	Response  *DetailResponse `json:"response"`
	MessageEn *string         `json:"message_en"`
	MessageID *string         `json:"message_id"`
}

// DetailResponse is the inner payload of a get-by-id envelope
type DetailResponse struct {
	Code   string   `json:"code"`
	Status string   `json:"status"`
	Data   *Product `json:"data"`
}

// IsSuccess evaluates the detail envelope's business outcome
func (r *DetailResponse) IsSuccess() bool {
	return IsHostSuccess(r.Code, r.Status)
}

// LoginEnvelope mirrors the relevant slice of the host's login response
type LoginEnvelope struct {
	Response *LoginResponse `json:"response"`
}

// LoginResponse is the inner payload of a login envelope
type LoginResponse struct {
	Data *LoginData `json:"data"`
}

// LoginData carries the session token and its optional expiry
type LoginData struct {
	Token        *string `json:"token"`
	TokenExpired *string `json:"token_expired"`
}
