package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testWorkbook = `
scenarios:
  - name: cafe
    type: bep
    bep:
      fixed_cost: 5200000
      variable_rate_percent: 38
      open_days_per_month: 26
      hours_per_day: 10
      target_sales: 12000000
  - name: staff
    type: labor_cost
    labor_cost:
      hourly_wage: 10030
      monthly_hours: 209
      weekly_work_days: 5
      worker_count: 2
      include_holiday_allowance: true
      include_social_insurance: true
      include_severance: true
      industry: cafe
      variable_rate_percent: 35
      open_days: 26
      hours_per_day: 10
      target_sales: 30000000
`

type decodedResponse struct {
	Type      string                 `json:"type"`
	Display   map[string]string      `json:"display"`
	Notes     []string               `json:"notes"`
	BEP       map[string]interface{} `json:"bep"`
	LaborCost map[string]interface{} `json:"labor_cost"`
	LinkedBEP map[string]interface{} `json:"linked_bep"`
	Error     string                 `json:"error"`
	RequestID string                 `json:"requestId"`
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return NewHandler(calculation.NewEngine(), zap.NewNop(), config.ServerSettings{}, "1.2.3")
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, decodedResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp decodedResponse
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	}
	return rr, resp
}

func TestHealthAndVersion(t *testing.T) {
	h := newTestHandler(t)

	rr, _ := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr, _ = do(t, h, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var v versionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	assert.Equal(t, "1.2.3", v.Version)
}

func TestVersionDefaultsToDev(t *testing.T) {
	h := NewHandler(nil, nil, config.ServerSettings{}, "  ")
	rr, _ := do(t, h, http.MethodGet, "/api/version", "")
	assert.Contains(t, rr.Body.String(), `"dev"`)
}

func TestPostBEP(t *testing.T) {
	h := newTestHandler(t)
	body := `{"fixed_cost":5200000,"variable_rate_percent":38,"open_days_per_month":26,"hours_per_day":10,"target_sales":12000000}`

	rr, resp := do(t, h, http.MethodPost, "/api/bep", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "bep", resp.Type)
	assert.Equal(t, "8,387,097원", resp.Display["summary.break_even_sales"])
	assert.NotNil(t, resp.BEP["break_even_sales"])
}

func TestPostBEPWithoutMarginIsNotComputable(t *testing.T) {
	h := newTestHandler(t)
	body := `{"fixed_cost":5200000,"variable_rate_percent":100,"open_days_per_month":26,"hours_per_day":10,"target_sales":12000000}`

	rr, resp := do(t, h, http.MethodPost, "/api/bep", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "계산 불가", resp.Display["summary.break_even_sales"])
	assert.Nil(t, resp.BEP["break_even_sales"])
	assert.NotEmpty(t, resp.Notes)
}

func TestPostBEPRejectsInvalidInput(t *testing.T) {
	h := newTestHandler(t)

	rr, resp := do(t, h, http.MethodPost, "/api/bep", `{"fixed_cost":-1}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "fixed_cost cannot be negative")
	assert.NotEmpty(t, resp.RequestID)

	rr, resp = do(t, h, http.MethodPost, "/api/bep", `{not json`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestGetBEPFromQuery(t *testing.T) {
	h := newTestHandler(t)

	// malformed values fall back to the defaults
	rr, resp := do(t, h, http.MethodGet, "/api/bep?fixedCost=abc", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "8,387,097원", resp.Display["summary.break_even_sales"])

	rr, resp = do(t, h, http.MethodGet, "/api/bep?fixedCost=6200000", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "10,000,000원", resp.Display["summary.break_even_sales"])
}

// doWithin is do with a deadline on serving the request.
func doWithin(t *testing.T, h http.Handler, d time.Duration, method, target, body string) (*httptest.ResponseRecorder, decodedResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(rr, req)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("%s %s did not finish within %s", method, target, d)
	}

	var resp decodedResponse
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	}
	return rr, resp
}

func TestBEPExtremeExponents(t *testing.T) {
	h := newTestHandler(t)
	const limit = 5 * time.Second

	rr, resp := doWithin(t, h, limit, http.MethodGet, "/api/bep?variableRate=1e-20000000", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "5,200,000원", resp.Display["summary.break_even_sales"], "a vanishing rate counts as zero")

	rr, resp = doWithin(t, h, limit, http.MethodGet, "/api/bep?variableRate=1e20000000", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "8,387,097원", resp.Display["summary.break_even_sales"], "an unrepresentable rate keeps the default")

	rr, resp = doWithin(t, h, limit, http.MethodGet, "/api/bep?fixedCost=-1e-30000000", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "0원", resp.Display["summary.break_even_sales"])

	rr, resp = doWithin(t, h, limit, http.MethodPost, "/api/bep",
		`{"fixed_cost":5200000,"variable_rate_percent":1e-20000000,"open_days_per_month":26,"hours_per_day":10,"target_sales":12000000}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "5,200,000원", resp.Display["summary.break_even_sales"])

	rr, resp = doWithin(t, h, limit, http.MethodPost, "/api/bep", `{"fixed_cost":5200000,"variable_rate_percent":1e20000000}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "variable_rate_percent is out of range")
}

func TestExtremeExponentsOnEveryEndpoint(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name, method, target, body string
	}{
		{"labor query", http.MethodGet, "/api/labor-cost?hourly=1e-20000000&hours=9e20000000&industrialRate=1e-20000000&levyRate=-1e20000000&targetSales=1e-99999999", ""},
		{"hourly", http.MethodPost, "/api/hourly", `{"hourly_wage":1e-20000000,"hours_per_day":8,"days_per_week":5e-20000000,"break_minutes_per_day":1e-20000000}`},
		{"salary", http.MethodPost, "/api/salary", `{"gross_monthly_pay":3e-20000000}`},
		{"labor", http.MethodPost, "/api/labor-cost", `{"hourly_wage":10030,"monthly_hours":209,"worker_count":1,"industrial_rate":{"value":1e-20000000},"variable_rate_percent":1e-20000000}`},
		{"price", http.MethodPost, "/api/price-decision", `{"current_price":5000,"new_price":5500,"variable_cost_per_unit":2e-20000000,"current_quantity":1000,"quantity_change_percent":-1e-20000000}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := doWithin(t, h, 5*time.Second, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		})
	}
}

func TestReportRejectsOversizedRates(t *testing.T) {
	h := newTestHandler(t)
	body := testWorkbook + "rates:\n  weeks_per_month: 1e20000000\n"

	rr, resp := doWithin(t, h, 5*time.Second, http.MethodPost, "/api/report", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "weeks_per_month is out of range")
}

func TestPostHourly(t *testing.T) {
	h := newTestHandler(t)
	body := `{"hourly_wage":10030,"hours_per_day":8,"days_per_week":5,"include_holiday_allowance":true}`

	rr, resp := do(t, h, http.MethodPost, "/api/hourly", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "481,440원", resp.Display["summary.weekly_pay"])

	rr, resp = do(t, h, http.MethodPost, "/api/hourly", `{"hourly_wage":10030,"days_per_week":8}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "days_per_week")
}

func TestPostSalary(t *testing.T) {
	h := newTestHandler(t)

	rr, resp := do(t, h, http.MethodPost, "/api/salary", `{"gross_monthly_pay":3000000,"dependent_count":1,"include_income_tax":true}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, resp.Display, "summary.net_pay")
	assert.Contains(t, resp.Display, "income_tax.determined_tax")

	rr, resp = do(t, h, http.MethodPost, "/api/salary", `{"gross_monthly_pay":3000000,"method":"flat"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "unknown method")
}

func TestLaborCostIncludesLinkedBEP(t *testing.T) {
	h := newTestHandler(t)

	rr, resp := do(t, h, http.MethodGet, "/api/labor-cost?count=2&industry=restaurant", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "labor_cost", resp.Type)
	assert.Contains(t, resp.Display, "summary.employer_total_cost")
	assert.Contains(t, resp.Display, "linked_bep.break_even_sales")
	assert.NotNil(t, resp.LinkedBEP)

	body := `{"hourly_wage":10030,"monthly_hours":209,"weekly_work_days":5,"worker_count":1,"industry":"cafe","industrial_rate":{"value":1.2,"user_edited":true},"variable_rate_percent":35,"open_days":26,"hours_per_day":10}`
	rr, resp = do(t, h, http.MethodPost, "/api/labor-cost", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "1.20%", resp.Display["summary.industrial_rate"])
	assert.NotEmpty(t, resp.Notes)
}

func TestLaborCostRejectsUnknownIndustry(t *testing.T) {
	h := newTestHandler(t)
	rr, resp := do(t, h, http.MethodPost, "/api/labor-cost", `{"hourly_wage":10030,"industry":"bakery"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "unknown industry")
}

func TestPostPriceDecision(t *testing.T) {
	h := newTestHandler(t)
	body := `{"current_price":5000,"new_price":5500,"variable_cost_per_unit":2000,"current_quantity":1000,"quantity_change_percent":-10,"fixed_cost":1000000}`

	rr, resp := do(t, h, http.MethodPost, "/api/price-decision", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "-14.29%", resp.Display["summary.break_even_quantity_change_percent"])
}

func TestReportFormats(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		format      string
		contentType string
		prefix      string
	}{
		{"", "application/json", "{"},
		{"csv", "text/csv; charset=utf-8", ""},
		{"html", "text/html; charset=utf-8", ""},
		{"pdf", "application/pdf", "%PDF"},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "PK"},
	}
	for _, tt := range tests {
		t.Run("format="+tt.format, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/report?format="+tt.format, strings.NewReader(testWorkbook))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, tt.contentType, rr.Header().Get("Content-Type"))
			assert.NotZero(t, rr.Body.Len())
			assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte(tt.prefix)))
		})
	}
}

func TestReportErrors(t *testing.T) {
	h := newTestHandler(t)

	rr, resp := do(t, h, http.MethodPost, "/api/report?format=docx", testWorkbook)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "unknown format")

	rr, resp = do(t, h, http.MethodPost, "/api/report", "scenarios: []")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, resp.Error, "no scenarios")
}

func TestBodyLimit(t *testing.T) {
	h := NewHandler(nil, zap.NewNop(), config.ServerSettings{MaxBodyBytes: 32}, "test")
	body := `{"fixed_cost":5200000,"variable_rate_percent":38,"open_days_per_month":26}`

	rr, resp := do(t, h, http.MethodPost, "/api/bep", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, resp.Error, "32 bytes")
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rr, resp := do(t, h, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not found", resp.Error)

	rr, _ = do(t, h, http.MethodDelete, "/api/bep", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewHandler(nil, zap.New(core), config.ServerSettings{}, "test")

	rr, _ := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rr.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "http.request", fields["op"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/healthz", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
