package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/config"
	"github.com/rpgo/investment-projector/internal/domain"
)

// ProjectionRequest carries the calculator inputs. Absent fields take the front-end
// defaults; Clamp forces the values into the front-end slider limits first.
type ProjectionRequest struct {
	MonthlyContribution *float64 `form:"monthlyContribution" json:"monthlyContribution"`
	AnnualReturnRate    *float64 `form:"annualReturnRate" json:"annualReturnRate"`
	InflationRate       *float64 `form:"inflationRate" json:"inflationRate"`
	InvestmentPeriod    *int     `form:"investmentPeriod" json:"investmentPeriod"`
	Granularity         string   `form:"granularity" json:"granularity"`
	Clamp               bool     `form:"clamp" json:"clamp"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DefaultsResponse describes the initial inputs and their allowed ranges.
type DefaultsResponse struct {
	Input  domain.ProjectionInput `json:"input"`
	Limits domain.InputLimits     `json:"limits"`
}

// ProjectionHandler serves projections. Every request is an independent recomputation.
type ProjectionHandler struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
}

func NewProjectionHandler(engine *calculation.CalculationEngine) *ProjectionHandler {
	return &ProjectionHandler{
		engine: engine,
		parser: config.NewInputParser(),
	}
}

func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.respond(c, req)
}

func (h *ProjectionHandler) PostProjection(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.respond(c, req)
}

func (h *ProjectionHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, DefaultsResponse{Input: domain.DefaultInput(), Limits: domain.DefaultLimits()})
}

func (h *ProjectionHandler) respond(c *gin.Context, req ProjectionRequest) {
	in := req.toInput()
	if req.Clamp {
		in = domain.DefaultLimits().Clamp(in)
	}
	if err := h.parser.ValidateInput(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.engine.RunProjection("", in))
}

func (r ProjectionRequest) toInput() domain.ProjectionInput {
	in := domain.DefaultInput()
	if r.MonthlyContribution != nil {
		in.MonthlyContribution = *r.MonthlyContribution
	}
	if r.AnnualReturnRate != nil {
		in.AnnualReturnRate = *r.AnnualReturnRate
	}
	if r.InflationRate != nil {
		in.InflationRate = *r.InflationRate
	}
	if r.InvestmentPeriod != nil {
		in.InvestmentPeriod = *r.InvestmentPeriod
	}
	if r.Granularity != "" {
		in.Granularity = domain.Granularity(r.Granularity)
	}
	return in
}
