package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/score", h.handleScore)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// ---- Generate ----

type generateReq struct {
	domain.GenerationParams
}

type generateResp struct {
	Route           *domain.Route `json:"route,omitempty"`
	Difficulty      string        `json:"difficulty,omitempty"`
	DifficultyScore float64       `json:"difficultyScore,omitempty"`
	FlowScore       float64       `json:"flowScore,omitempty"`
	GoodFlow        bool          `json:"goodFlow,omitempty"`
	DurationMs      int64         `json:"durationMs,omitempty"`
	Attempts        int           `json:"attempts,omitempty"`
	Phase           string        `json:"phase,omitempty"`
	Error           string        `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	req := generateReq{GenerationParams: domain.DefaultParams()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	route, st, err := h.UC.Generate(r.Context(), req.GenerationParams)
	if err != nil {
		resp := generateResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Attempts: st.Attempts}
		switch {
		case errors.Is(err, usecase.ErrInvalidParams):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, domain.ErrNoRoute):
			var genErr *domain.GenerationError
			if errors.As(err, &genErr) {
				resp.Phase = string(genErr.Phase)
			}
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		_ = json.NewEncoder(w).Encode(resp)
		return
	}
	score, err := h.UC.Score(r.Context(), route)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Route:           route,
		Difficulty:      score.DifficultyLabel,
		DifficultyScore: score.DifficultyScore,
		FlowScore:       score.FlowScore,
		GoodFlow:        score.GoodFlow,
		DurationMs:      st.Duration.Milliseconds(),
		Attempts:        st.Attempts,
	})
}

// ---- Score ----

type scoreReq struct {
	Route domain.Route `json:"route"`
}
type scoreResp struct {
	domain.ScoreResult
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(scoreResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	res, err := h.UC.Score(r.Context(), &req.Route)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(scoreResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(scoreResp{ScoreResult: res})
}

// ---- Validate ----

type validateReq struct {
	Route  domain.Route            `json:"route"`
	Params domain.GenerationParams `json:"params"`
}
type validateResp struct {
	OK        bool                `json:"ok"`
	Conflicts []domain.PlacedHold `json:"conflicts,omitempty"`
	Error     string              `json:"error,omitempty"`
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
	ok, conflicts, err := h.UC.Validate(r.Context(), &req.Route, req.Params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Route domain.Route `json:"route"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
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
	hh, found, err := h.UC.Hint(r.Context(), &req.Route)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveReq struct {
	Route domain.Route `json:"route"`
	Name  string       `json:"name,omitempty"`
}
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
	var req saveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	score, err := h.UC.Score(r.Context(), &req.Route)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	saved := &domain.SavedRoute{
		Name:       req.Name,
		Difficulty: score.Difficulty,
		Score:      score.DifficultyScore,
		Holds:      req.Route.Holds,
	}
	if err := h.UC.Save(r.Context(), saved); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: saved.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Route *domain.SavedRoute `json:"route,omitempty"`
	Error string             `json:"error,omitempty"`
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
	saved, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Route: saved})
}

type listResp struct {
	Routes []domain.RouteMeta `json:"routes"`
	Error  string             `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	rs, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Routes: rs})
}
