package server

import (
	"github.com/rezonia/orderx/internal/orderxml"
)

// ProfileInfo describes one supported profile
type ProfileInfo struct {
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	GuidelineID    string `json:"guideline_id"`
	XSDFile        string `json:"xsd_file"`
	SchematronFile string `json:"schematron_file"`
}

// ProfilesResponse is the response for the profiles endpoint
type ProfilesResponse struct {
	Profiles []ProfileInfo `json:"profiles"`
}

// InfoResponse is the response for info endpoint
type InfoResponse struct {
	orderxml.Summary
	Size int `json:"size"`
}

// ValidationIssue is one failed check
type ValidationIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationResponse is the response for validate endpoint
type ValidationResponse struct {
	Valid    bool              `json:"valid"`
	Profile  string            `json:"profile,omitempty"`
	Errors   []ValidationIssue `json:"errors,omitempty"`
	Warnings []ValidationIssue `json:"warnings,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
