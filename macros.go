package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/macro-calc/calc"
)

// healthz reports that the server is up.
// GET /healthz.
func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listPolicies returns the distribution policies in menu order.
// GET /api/policies.
func (h *Handler) listPolicies(c *gin.Context) {
	out := make([]policyInfo, 0, len(calc.Policies))
	for _, p := range calc.Policies {
		out = append(out, policyInfo{ID: p, Name: p.String()})
	}
	c.JSON(http.StatusOK, out)
}

// computeMacros computes a macro plan from a profile and energy targets.
// POST /api/macros. Invalid input is a 400; a calorie target too low to cover
// the protein and fat minimums is a 422.
func (h *Handler) computeMacros(c *gin.Context) {
	var body computeMacrosRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := calc.Compute(h.cfg, body.Profile, body.Targets)
	if err != nil {
		h.calcError(c, "computeMacros", err)
		return
	}

	plan := planResponse{
		PlanID: uuid.NewString(),
		Policy: body.Targets.Policy.String(),
		Result: result,
	}
	log.Printf("[computeMacros] request %s: plan %s, %d kcal", c.GetString("request_id"), plan.PlanID, result.TotalCalories)
	c.JSON(http.StatusOK, plan)
}

// estimateTDEE estimates BMR and TDEE for users who don't know their TDEE.
// POST /api/tdee.
func (h *Handler) estimateTDEE(c *gin.Context) {
	var body estimateTDEERequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	est, err := h.cfg.EstimateTDEE(body.Profile, body.ActivityLevel)
	if err != nil {
		h.calcError(c, "estimateTDEE", err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// calcError maps calculator errors to HTTP status codes.
func (h *Handler) calcError(c *gin.Context, tag string, err error) {
	switch {
	case errors.Is(err, calc.ErrInvalidInput):
		apiError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, calc.ErrInsufficientCalories):
		apiError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("[%s] request %s: %v", tag, c.GetString("request_id"), err)
		apiError(c, http.StatusInternalServerError, "calculation failed")
	}
}
