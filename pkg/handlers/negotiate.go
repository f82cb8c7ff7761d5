package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/munnerz/goautoneg"

	"github.com/JaimeStill/controller-examples/pkg/openapi"
)

// ErrNotAcceptable is returned when the Accept header excludes every offered media type.
var ErrNotAcceptable = errors.New("no acceptable representation")

// StructuredOffers are the media types RespondNegotiated can produce, in order of preference.
var StructuredOffers = []string{openapi.MediaJSON, openapi.MediaXML, openapi.MediaTextXML}

// Negotiate selects one of offers for the request Accept header.
// A missing or blank Accept header selects the first offer.
//
// Each offer takes the quality of the most specific clause matching it, so
// "text/plain;q=0, */*" refuses text/plain. Offers with quality 0 are never
// chosen. Ties go to the more specific match, then to the earlier offer.
func Negotiate(r *http.Request, offers ...string) (string, error) {
	if len(offers) == 0 {
		return "", ErrNotAcceptable
	}

	accept := strings.TrimSpace(r.Header.Get("Accept"))
	if accept == "" {
		return offers[0], nil
	}

	clauses := goautoneg.ParseAccept(accept)

	best, bestQ, bestSpec := "", 0.0, -1
	for _, offer := range offers {
		q, spec := quality(clauses, offer)
		if q <= 0 {
			continue
		}
		if q > bestQ || (q == bestQ && spec > bestSpec) {
			best, bestQ, bestSpec = offer, q, spec
		}
	}

	if best == "" {
		return "", ErrNotAcceptable
	}
	return best, nil
}

// quality returns the q value of the most specific clause matching offer and
// that clause's specificity: 2 for type/subtype, 1 for type/*, 0 for */*.
// A specificity of -1 means no clause matched.
func quality(clauses []goautoneg.Accept, offer string) (float64, int) {
	typ, sub, _ := strings.Cut(offer, "/")

	q, spec := 0.0, -1
	for _, c := range clauses {
		s := -1
		switch {
		case c.Type == typ && c.SubType == sub:
			s = 2
		case c.Type == typ && c.SubType == "*":
			s = 1
		case c.Type == "*" && c.SubType == "*":
			s = 0
		}
		if s > spec {
			q, spec = c.Q, s
		}
	}
	return q, spec
}

// RespondNegotiated writes data as JSON or XML depending on the Accept header,
// or a 406 error when neither is acceptable.
func RespondNegotiated(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, data any) {
	w.Header().Add("Vary", "Accept")

	ct, err := Negotiate(r, StructuredOffers...)
	if err != nil {
		RespondError(w, logger, http.StatusNotAcceptable, err)
		return
	}

	switch ct {
	case openapi.MediaXML, openapi.MediaTextXML:
		RespondXML(w, status, ct, data)
	default:
		RespondJSON(w, status, data)
	}
}
