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

	"hotelsearch/internal/app"
	"hotelsearch/internal/domain"
)

type Handlers struct {
	Search *app.SearchService
	Detail *app.DetailService
	Geo    domain.Geocoder
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// searchError is the failure envelope of the search endpoint: same shape as
// a success page so callers branch on status, not payload shape.
type searchError struct {
	Error    string            `json:"error"`
	Results  []domain.Hotel    `json:"results"`
	NextPage *domain.PageToken `json:"nextPage"`
	Total    int               `json:"total"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels", h.searchHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/geocode", h.geocode)
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

func parseSearchRequest(r *http.Request) app.SearchRequest {
	q := r.URL.Query()

	req := app.SearchRequest{
		Page:   atoiDefault(q.Get("page"), 1),
		Limit:  atoiDefault(q.Get("limit"), 10),
		Cursor: q.Get("next_page_token"),
		Query: domain.SearchQuery{
			Text:     strings.TrimSpace(q.Get("q")),
			CheckIn:  q.Get("check_in_date"),
			CheckOut: q.Get("check_out_date"),
			Adults:   atoiDefault(q.Get("adults"), 0),
		},
	}

	// viewport arrives as four separate coordinate params; all four are
	// required for it to count
	swLat, e1 := strconv.ParseFloat(q.Get("sw_lat"), 64)
	swLng, e2 := strconv.ParseFloat(q.Get("sw_lng"), 64)
	neLat, e3 := strconv.ParseFloat(q.Get("ne_lat"), 64)
	neLng, e4 := strconv.ParseFloat(q.Get("ne_lng"), 64)
	if e1 == nil && e2 == nil && e3 == nil && e4 == nil {
		req.Bounds = &domain.Bounds{
			SW: domain.GeoPoint{Lat: swLat, Lng: swLng},
			NE: domain.GeoPoint{Lat: neLat, Lng: neLng},
		}
	}
	return req
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	page, err := h.Search.Search(r.Context(), parseSearchRequest(r))
	if err != nil {
		log.Warn().Err(err).Msg("hotel search failed")
		writeJSON(w, http.StatusServiceUnavailable, searchError{
			Error:   err.Error(),
			Results: []domain.Hotel{},
			Total:   0,
		})
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()
	checkIn := firstNonEmpty(q.Get("check_in"), q.Get("check_in_date"))
	checkOut := firstNonEmpty(q.Get("check_out"), q.Get("check_out_date"))

	resp, err := h.Detail.Get(r.Context(), id, checkIn, checkOut)
	switch {
	case errors.Is(err, domain.ErrBadInput):
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "missing hotel id")
		return
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	case errors.Is(err, domain.ErrUpstream):
		writeProblem(w, http.StatusBadGateway, "Upstream Failure", "hotel lookup failed")
		return
	case err != nil:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	etag, body := calcETagAndBody(resp)
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
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

func (h *Handlers) geocode(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "missing q (location query)")
		return
	}

	res, err := h.Geo.Resolve(r.Context(), q)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "location not found")
		return
	case errors.Is(err, domain.ErrBadInput):
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "missing q (location query)")
		return
	case err != nil:
		writeProblem(w, http.StatusBadGateway, "Upstream Failure", "geocoding failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
