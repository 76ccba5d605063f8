package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/output"
	"go.uber.org/zap"
)

// calcResponse is a single calculator result plus its formatted display strings,
// keyed "section.key".
type calcResponse struct {
	domain.ScenarioResult
	Display map[string]string `json:"display"`
	Notes   []string          `json:"notes,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type versionResponse struct {
	Version string `json:"version"`
}

// Request bodies satisfy [render.Binder] and reuse workbook validation.

type bepRequest struct{ domain.BEPInput }

func (req *bepRequest) Bind(r *http.Request) error {
	return validate(domain.Scenario{Type: domain.ScenarioBEP, BEP: &req.BEPInput})
}

type hourlyRequest struct{ domain.HourlyInput }

func (req *hourlyRequest) Bind(r *http.Request) error {
	return validate(domain.Scenario{Type: domain.ScenarioHourly, Hourly: &req.HourlyInput})
}

type salaryRequest struct{ domain.SalaryNetInput }

func (req *salaryRequest) Bind(r *http.Request) error {
	return validate(domain.Scenario{Type: domain.ScenarioSalary, Salary: &req.SalaryNetInput})
}

type laborCostRequest struct{ domain.LaborCostInput }

func (req *laborCostRequest) Bind(r *http.Request) error {
	return validate(domain.Scenario{Type: domain.ScenarioLaborCost, LaborCost: &req.LaborCostInput})
}

type priceDecisionRequest struct{ domain.PriceDecisionInput }

func (req *priceDecisionRequest) Bind(r *http.Request) error {
	return validate(domain.Scenario{Type: domain.ScenarioPriceDecision, PriceDecision: &req.PriceDecisionInput})
}

func validate(sc domain.Scenario) error {
	return config.NewInputParser().ValidateScenario(&sc)
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "ok")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, versionResponse{Version: h.version})
}

func (h *handler) handleBEP(w http.ResponseWriter, r *http.Request) {
	req := &bepRequest{}
	if err := render.Bind(r, req); err != nil {
		h.badRequest(w, r, "api.bep", err)
		return
	}
	h.respondBEP(w, r, req.BEPInput)
}

func (h *handler) handleBEPQuery(w http.ResponseWriter, r *http.Request) {
	h.respondBEP(w, r, config.BEPFromQuery(r.URL.Query()))
}

func (h *handler) respondBEP(w http.ResponseWriter, r *http.Request, in domain.BEPInput) {
	res := h.engine.ComputeBEP(in)
	h.respond(w, r, domain.ScenarioResult{Type: domain.ScenarioBEP, BEP: &res})
}

func (h *handler) handleHourly(w http.ResponseWriter, r *http.Request) {
	req := &hourlyRequest{}
	if err := render.Bind(r, req); err != nil {
		h.badRequest(w, r, "api.hourly", err)
		return
	}
	res := h.engine.ComputeHourly(req.HourlyInput)
	h.respond(w, r, domain.ScenarioResult{Type: domain.ScenarioHourly, Hourly: &res})
}

func (h *handler) handleSalary(w http.ResponseWriter, r *http.Request) {
	req := &salaryRequest{}
	if err := render.Bind(r, req); err != nil {
		h.badRequest(w, r, "api.salary", err)
		return
	}
	res := h.engine.ComputeSalaryNet(req.SalaryNetInput)
	h.respond(w, r, domain.ScenarioResult{Type: domain.ScenarioSalary, Salary: &res})
}

func (h *handler) handleLaborCost(w http.ResponseWriter, r *http.Request) {
	req := &laborCostRequest{}
	if err := render.Bind(r, req); err != nil {
		h.badRequest(w, r, "api.labor_cost", err)
		return
	}
	h.respondLaborCost(w, r, req.LaborCostInput)
}

func (h *handler) handleLaborCostQuery(w http.ResponseWriter, r *http.Request) {
	h.respondLaborCost(w, r, config.LaborCostFromQuery(r.URL.Query()))
}

func (h *handler) respondLaborCost(w http.ResponseWriter, r *http.Request, in domain.LaborCostInput) {
	res := h.engine.ComputeLaborCost(in)
	linked := h.engine.ComputeBEP(res.BEPLink)
	h.respond(w, r, domain.ScenarioResult{Type: domain.ScenarioLaborCost, LaborCost: &res, LinkedBEP: &linked})
}

func (h *handler) handlePriceDecision(w http.ResponseWriter, r *http.Request) {
	req := &priceDecisionRequest{}
	if err := render.Bind(r, req); err != nil {
		h.badRequest(w, r, "api.price_decision", err)
		return
	}
	res := h.engine.ComputePriceDecision(req.PriceDecisionInput)
	h.respond(w, r, domain.ScenarioResult{Type: domain.ScenarioPriceDecision, PriceDecision: &res})
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, res domain.ScenarioResult) {
	view := output.View(res)
	render.JSON(w, r, calcResponse{ScenarioResult: res, Display: view.DisplayMap(), Notes: view.Notes})
}

// handleReport runs a YAML or JSON workbook and returns the report in the
// format named by the format query parameter (json by default).
func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.report"
	name := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if name == "" {
		name = "json"
	}
	formatter := output.GetFormatterByName(name)
	if formatter == nil {
		h.badRequest(w, r, op, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(output.FormatterNames(), ", ")))
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.badRequest(w, r, op, fmt.Errorf("failed to read request body: %w", err))
		return
	}
	cfg, err := config.NewInputParser().Parse(data)
	if err != nil {
		h.badRequest(w, r, op, err)
		return
	}
	report, err := h.engine.RunScenarios(cfg)
	if err != nil {
		h.badRequest(w, r, op, err)
		return
	}
	body, err := formatter.Format(report)
	if err != nil {
		h.logger.Error("failed to format report", zap.String("op", op), zap.String("format", name), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, errors.New("failed to format report"))
		return
	}

	w.Header().Set("Content-Type", output.ContentType(name))
	switch name {
	case "xlsx", "pdf", "csv":
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="wonpay_report.%s"`, output.Extension(name)))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("failed to write report", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) badRequest(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
		err = fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
	}
	h.logger.Debug("rejected request", zap.String("op", op), zap.Error(err))
	writeError(w, r, status, err)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error(), RequestID: middleware.GetReqID(r.Context())})
}
