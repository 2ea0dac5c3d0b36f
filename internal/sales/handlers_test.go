package sales_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sales-report/internal/report"
	"github.com/noah-isme/sales-report/internal/sales"
	"github.com/noah-isme/sales-report/internal/strategy"
)

func newTestHandler() *sales.Handler {
	return &sales.Handler{
		Svc: &sales.Service{
			Policies: map[string]report.Strategies{
				"default": {Revenue: strategy.DiscountRevenue{}, Bonus: strategy.RankBonus{}},
			},
			Default: "default",
		},
		Validate: validator.New(),
	}
}

const validBody = `{
	"data": {
		"sellers": [{"id": "s1", "first_name": "Ada", "last_name": "Jones"}],
		"products": [{"sku": "p1", "name": "Widget", "purchase_price": 50}],
		"purchase_records": [
			{"seller_id": "s1", "items": [{"sku": "p1", "quantity": 2, "sale_price": 100, "discount": 10}]}
		]
	}
}`

func postReport(t *testing.T, h *sales.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/sellers", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Compute(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Code
}

func TestComputeEndpoint(t *testing.T) {
	rr := postReport(t, newTestHandler(), validBody)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data []report.SellerReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "s1", body.Data[0].SellerID)
	require.Equal(t, 180.00, body.Data[0].Revenue)
	require.Equal(t, 80.00, body.Data[0].Profit)
	require.Equal(t, 12.00, body.Data[0].Bonus)
}

func TestComputeEndpointMissingData(t *testing.T) {
	rr := postReport(t, newTestHandler(), `{"policy": "default"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "CONFIGURATION_ERROR", decodeError(t, rr))
}

func TestComputeEndpointMalformedPayload(t *testing.T) {
	// A string where a number belongs must be rejected at the boundary.
	body := strings.Replace(validBody, `"quantity": 2`, `"quantity": "two"`, 1)
	rr := postReport(t, newTestHandler(), body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "VALIDATION_ERROR", decodeError(t, rr))
}

func TestComputeEndpointUnknownSeller(t *testing.T) {
	body := strings.Replace(validBody, `"seller_id": "s1"`, `"seller_id": "ghost"`, 1)
	rr := postReport(t, newTestHandler(), body)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.Equal(t, "NOT_FOUND", decodeError(t, rr))
	require.Contains(t, rr.Body.String(), "ghost")
}

func TestComputeEndpointOutOfRangeDiscount(t *testing.T) {
	body := strings.Replace(validBody, `"discount": 10`, `"discount": 150`, 1)
	rr := postReport(t, newTestHandler(), body)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.Equal(t, "VALIDATION_ERROR", decodeError(t, rr))
}

func TestComputeEndpointOverlongPolicy(t *testing.T) {
	long := strings.Repeat("x", 65)
	body := strings.Replace(validBody, `"data"`, `"policy": "`+long+`", "data"`, 1)
	rr := postReport(t, newTestHandler(), body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "VALIDATION_ERROR", decodeError(t, rr))
	require.Contains(t, rr.Body.String(), "64")
}

func TestComputeEndpointIgnoresJunkTopParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/sellers?top=abc", strings.NewReader(validBody))
	rr := httptest.NewRecorder()
	newTestHandler().Compute(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestComputeEndpointUnknownPolicy(t *testing.T) {
	body := strings.Replace(validBody, `"data"`, `"policy": "aggressive", "data"`, 1)
	rr := postReport(t, newTestHandler(), body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "UNKNOWN_POLICY", decodeError(t, rr))
}

func TestComputeEndpointTopQueryParam(t *testing.T) {
	body := `{
		"data": {
			"sellers": [{"id": "s1", "first_name": "Ada", "last_name": "Jones"}],
			"products": [
				{"sku": "a", "name": "A", "purchase_price": 1},
				{"sku": "b", "name": "B", "purchase_price": 1}
			],
			"purchase_records": [
				{"seller_id": "s1", "items": [
					{"sku": "a", "quantity": 1, "sale_price": 5},
					{"sku": "b", "quantity": 4, "sale_price": 5}
				]}
			]
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/sellers?top=1", strings.NewReader(body))
	rr := httptest.NewRecorder()
	newTestHandler().Compute(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []report.SellerReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data[0].TopProducts, 1)
	require.Equal(t, "b", resp.Data[0].TopProducts[0].SKU)
}

func TestPoliciesEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/sellers/policies", nil)
	rr := httptest.NewRecorder()
	newTestHandler().Policies(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "default")
}
