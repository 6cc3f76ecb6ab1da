package main

import "lg/macro-calc/calc"

// computeMacrosRequest is the request body for POST /api/macros.
type computeMacrosRequest struct {
	Profile calc.UserProfile   `json:"profile"`
	Targets calc.EnergyTargets `json:"targets"`
}

// planResponse is the response for POST /api/macros. Each computed plan gets
// a fresh PlanID so clients can tell results apart.
type planResponse struct {
	PlanID string           `json:"plan_id"`
	Policy string           `json:"policy"`
	Result calc.MacroResult `json:"result"`
}

// estimateTDEERequest is the request body for POST /api/tdee.
type estimateTDEERequest struct {
	Profile       calc.UserProfile   `json:"profile"`
	ActivityLevel calc.ActivityLevel `json:"activity_level"`
}

// policyInfo is one entry of GET /api/policies.
type policyInfo struct {
	ID   calc.Policy `json:"id"`
	Name string      `json:"name"`
}
