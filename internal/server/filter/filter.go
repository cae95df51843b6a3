// Package filter turns the inventory listing query parameters into a
// predicate that every store driver can evaluate.
package filter

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/invtrack/internal/server/models"
)

// Document fields the listing endpoint knows how to narrow on.
const (
	FieldApplicationName = "applicationName"
	FieldSeverity        = "severity"
	FieldStage           = "stage"
	FieldApplicationType = "applicationType"
	FieldDeployment      = "deployment"
)

// Query parameter names.
const (
	ParamSearch          = "search"
	ParamSeverity        = "severity"
	ParamStage           = "stage"
	ParamApplicationType = "applicationType"
	ParamDeployment      = "deployment"
)

// Params are the raw listing parameters. Empty means "not given".
type Params struct {
	Search          string
	Severity        string
	Stage           string
	ApplicationType string
	Deployment      string
}

// ParamsFromQuery reads Params from a request query string. Only the first
// value of a repeated parameter is used.
func ParamsFromQuery(q url.Values) Params {
	return Params{
		Search:          q.Get(ParamSearch),
		Severity:        q.Get(ParamSeverity),
		Stage:           q.Get(ParamStage),
		ApplicationType: q.Get(ParamApplicationType),
		Deployment:      q.Get(ParamDeployment),
	}
}

// Condition is an exact string equality on one document field.
type Condition struct {
	Field string
	Value string
}

// Predicate is the AND of an optional case-insensitive substring match on
// applicationName and zero or more equality conditions. The zero Predicate
// matches every document.
type Predicate struct {
	Search string
	Equals []Condition
}

// Build converts Params into a Predicate. Empty parameters add no
// constraint.
func Build(p Params) Predicate {
	var pred Predicate
	pred.Search = p.Search

	for _, c := range []Condition{
		{Field: FieldSeverity, Value: p.Severity},
		{Field: FieldStage, Value: p.Stage},
		{Field: FieldApplicationType, Value: p.ApplicationType},
		{Field: FieldDeployment, Value: p.Deployment},
	} {
		if c.Value != "" {
			pred.Equals = append(pred.Equals, c)
		}
	}
	return pred
}

// IsEmpty reports whether the predicate matches everything.
func (p Predicate) IsEmpty() bool {
	return p.Search == "" && len(p.Equals) == 0
}

// Match evaluates the predicate against an in-memory document. Only string
// fields can satisfy a condition.
func (p Predicate) Match(f models.Fields) bool {
	if p.Search != "" {
		name, ok := f[FieldApplicationName].Str()
		if !ok || !strings.Contains(strings.ToLower(name), strings.ToLower(p.Search)) {
			return false
		}
	}

	for _, c := range p.Equals {
		v, ok := f[c.Field].Str()
		if !ok || v != c.Value {
			return false
		}
	}
	return true
}
