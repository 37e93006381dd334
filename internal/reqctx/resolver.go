// Package reqctx derives an authenticated request context from the many
// places a credential or a target project id may arrive in.
//
// Resolution is a pure function over an explicit, ordered list of sources:
// the transport boundary decides what the sources are (headers, path, body,
// query, process-wide fallback) and in what order; this package only picks
// the first present value. It performs no I/O and no environment access.
package reqctx

import (
	"errors"
	"strings"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
)

// ErrMissingCredential is returned when no source yields a credential.
var ErrMissingCredential = errors.New("missing credential")

// RequestContext carries the resolved upstream credential and target project
// for one inbound request. It is immutable once resolved, owned exclusively
// by the request, and never cached or shared across requests.
type RequestContext struct {
	Token     string
	ProjectID string
}

// Source is one possible origin of a resolved value, in precedence order.
// Name identifies the input location for error reporting.
type Source struct {
	Name  string
	Value string
}

// FirstPresent returns the first source whose value is non-blank.
func FirstPresent(sources ...Source) (Source, bool) {
	for _, s := range sources {
		if strings.TrimSpace(s.Value) != "" {
			return s, true
		}
	}
	return Source{}, false
}

// ResolveCredential picks the credential from the given ordered sources.
func ResolveCredential(sources ...Source) (string, error) {
	s, ok := FirstPresent(sources...)
	if !ok {
		return "", ErrMissingCredential
	}
	return strings.TrimSpace(s.Value), nil
}

// ResolveScope picks the target project id from the given ordered sources.
// On failure the error reports every accepted input location so the caller
// knows where a scope may be supplied.
func ResolveScope(sources ...Source) (string, error) {
	s, ok := FirstPresent(sources...)
	if !ok {
		names := make([]string, 0, len(sources))
		for _, src := range sources {
			names = append(names, src.Name)
		}
		return "", &dto.ValidationError{
			Field:   "project_id",
			Message: "missing scope",
			Details: map[string]string{"sources": strings.Join(names, ", ")},
		}
	}
	return strings.TrimSpace(s.Value), nil
}

// Resolve builds a RequestContext from ordered credential and scope sources.
// Credential resolution is checked first so an unauthenticated request never
// reports a scope problem.
func Resolve(credentials, scopes []Source) (RequestContext, error) {
	token, err := ResolveCredential(credentials...)
	if err != nil {
		return RequestContext{}, err
	}
	projectID, err := ResolveScope(scopes...)
	if err != nil {
		return RequestContext{}, err
	}
	return RequestContext{Token: token, ProjectID: projectID}, nil
}
