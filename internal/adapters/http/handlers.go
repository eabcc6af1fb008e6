package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/daytile/internal/domain"
	"svw.info/daytile/internal/puzzle"
	"svw.info/daytile/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/board", h.handleBoard)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/sweep", h.handleSweep)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func parseDate(s string) (*domain.Puzzle, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return puzzle.ForDate(t)
}

// ---- Board ----

type boardResp struct {
	Board  domain.Board   `json:"board"`
	Pieces []domain.Piece `json:"pieces"`
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	_ = json.NewEncoder(w).Encode(boardResp{Board: puzzle.Board(), Pieces: puzzle.Pieces()})
}

// ---- Solve ----

type solveReq struct {
	Date string `json:"date"` // "YYYY-MM-DD", default today
	All  bool   `json:"all,omitempty"`
}

type solveResp struct {
	Date       string            `json:"date,omitempty"`
	Solution   *domain.Solution  `json:"solution,omitempty"`
	Solutions  []domain.Solution `json:"solutions,omitempty"`
	Count      int               `json:"count,omitempty"`
	DurationMs int64             `json:"durationMs,omitempty"`
	Nodes      int               `json:"nodes,omitempty"`
	Unsolvable bool              `json:"unsolvable,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	pz, err := parseDate(req.Date)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	if req.All {
		sols, st, err := h.UC.SolveAll(r.Context(), pz)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(solveResp{
			Date:       req.Date,
			Solutions:  sols,
			Count:      len(sols),
			Unsolvable: len(sols) == 0,
			DurationMs: st.Duration.Milliseconds(),
			Nodes:      st.Nodes,
		})
		return
	}
	sol, st, err := h.UC.Solve(r.Context(), pz)
	if err != nil {
		if errors.Is(err, domain.ErrUnsolvable) {
			_ = json.NewEncoder(w).Encode(solveResp{
				Date:       req.Date,
				Unsolvable: true,
				DurationMs: st.Duration.Milliseconds(),
				Nodes:      st.Nodes,
			})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Date:       req.Date,
		Solution:   sol,
		Count:      1,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Date     string          `json:"date"`
	Solution domain.Solution `json:"solution"`
}
type validateResp struct {
	OK        bool          `json:"ok"`
	Conflicts []domain.Cell `json:"conflicts,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	pz, err := parseDate(req.Date)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), pz, &req.Solution)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Date string `json:"date"`
}
type hintResp struct {
	Found     bool              `json:"found"`
	Placement *domain.Placement `json:"placement,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	pz, err := parseDate(req.Date)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	pl, ok, err := h.UC.Hint(r.Context(), pz)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: ok}
	if ok {
		resp.Placement = &pl
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Sweep ----

type sweepReq struct {
	Year int `json:"year"`
}
type sweepResp struct {
	Days       []domain.DayResult `json:"days,omitempty"`
	DurationMs int64              `json:"durationMs,omitempty"`
	Nodes      int                `json:"nodes,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req sweepReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Year == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(sweepResp{Error: "invalid JSON or missing year"})
		return
	}
	days, st, err := h.UC.Sweep(r.Context(), req.Year)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(sweepResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(sweepResp{
		Days:       days,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var d domain.SolvedDay
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if d.ID == "" {
		d.ID = time.Now().Format("2006-01-02")
	}
	if d.CreatedAt == 0 {
		d.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &d); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: d.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Day   *domain.SolvedDay `json:"day,omitempty"`
	Error string            `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	d, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Day: d})
}

type listResp struct {
	Days  []domain.SolvedDayMeta `json:"days"`
	Error string                 `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	days, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Days: days})
}
