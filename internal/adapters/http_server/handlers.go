package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"housing_finder/internal/app"
	"housing_finder/internal/assistant"
	"housing_finder/internal/contact"
	"housing_finder/internal/dataset"
	"housing_finder/internal/domain"
)

type Handlers struct {
	Q       *app.QueryService
	Session *assistant.Session
	Contact *contact.Service
	DS      *dataset.Dataset
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/search", h.search)
	s.mux.Post("/v1/chat", h.chat)
	s.mux.Post("/v1/contact", h.contact)
	s.mux.Get("/v1/listings/{id}", h.getListing)
	s.mux.Get("/v1/meta", h.meta)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// paramsFromQuery maps the structured search query string onto SearchParams.
// Unparsable values are ignored rather than rejected; a search never fails on
// bad parameter combinations.
func paramsFromQuery(q map[string][]string) domain.SearchParams {
	get := func(k string) string {
		if vs := q[k]; len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}
	var p domain.SearchParams
	if v := get("max_rent"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.MaxRent = &f
		}
	}
	if v := get("min_bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.MinBedrooms = n
		}
	}
	p.City = get("city")
	p.State = get("state")
	p.ZipCode = get("zip_code")
	p.Language = get("language")
	p.Section8 = dataset.ParseBool(get("section8"))
	p.HUDApproved = dataset.ParseBool(get("hud_approved"))
	p.LowIncomeOnly = dataset.ParseBool(get("low_income_only"))
	p.NeedsTransit = dataset.ParseBool(get("needs_transit"))
	p.PetsAllowed = dataset.ParseBool(get("pets_allowed"))
	p.Accessibility = dataset.ParseBool(get("accessibility"))
	if v := get("ami_percent"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.AMIPercent = &n
		}
	}
	if v := get("top_n"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.TopN = n
		}
	}
	return p
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	params := paramsFromQuery(r.URL.Query())
	results := h.Q.Search(r.Context(), params)
	if results == nil {
		results = []domain.ScoredListing{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(results),
		"listings": results,
	})
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.Message) == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "no message provided")
		return
	}

	reply := h.Session.ProcessTurn(in.Message)
	listings := h.Session.LastResults()
	if listings == nil {
		listings = []domain.ScoredListing{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reply":    reply,
		"listings": listings,
	})
}

func (h *Handlers) contact(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ListingID *int64 `json:"listing_id"`
		domain.ContactRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	var missing []string
	if in.ListingID == nil {
		missing = append(missing, "listing_id")
	}
	if in.UserName == "" {
		missing = append(missing, "user_name")
	}
	if in.UserPhone == "" {
		missing = append(missing, "user_phone")
	}
	if len(missing) > 0 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "missing fields: "+strings.Join(missing, ", "))
		return
	}

	l, err := h.Q.GetListing(*in.ListingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "listing not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "listing lookup failed")
		return
	}

	result := h.Contact.ContactAgent(r.Context(), l, in.ContactRequest)
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) getListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	l, err := h.Q.GetListing(id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "listing not found")
		return
	}

	etag, body := calcETagAndBody(l)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getListing body")
	}
}

func (h *Handlers) meta(w http.ResponseWriter, r *http.Request) {
	lo, hi := h.DS.PriceRange()
	writeJSON(w, http.StatusOK, map[string]any{
		"cities":    h.DS.Cities(),
		"languages": h.DS.Languages(),
		"min_rent":  lo,
		"max_rent":  hi,
	})
}
