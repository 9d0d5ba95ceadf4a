package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ivanosipov/wordvault/internal/common"
	"github.com/ivanosipov/wordvault/internal/server/words"
)

// Boundary payload types. These are deliberately distinct from the
// persistence models; handlers map between the two.

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type wordRequest struct {
	Word     string `json:"word"`
	Position int64  `json:"position"`
}

type wordResponse struct {
	ID       int64  `json:"id"`
	Word     string `json:"word"`
	Position int64  `json:"position"`
}

type reorderEntry struct {
	ID       int64 `json:"id"`
	Position int64 `json:"position"`
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /token", s.handleToken)
	mux.HandleFunc("POST /words", s.requireUser(s.handleAddWord))
	mux.HandleFunc("GET /words", s.requireUser(s.handleListWords))
	mux.HandleFunc("PUT /words/reorder", s.requireUser(s.handleReorderWords))
	mux.HandleFunc("DELETE /words/{position}", s.requireUser(s.handleDeleteWord))

	return withCORS(s.withRequestLog(mux))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, []byte(req.Password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusBadRequest, "already_registered", "username already registered")
		case errors.Is(err, common.ErrorEmptyUsername), errors.Is(err, common.ErrorEmptyPassword):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal", "internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", user.UserName)
	writeJSON(w, http.StatusCreated, messageResponse{Message: "user created successfully"})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, []byte(req.Password))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "incorrect username or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: common.TokenTypeBearer})
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "could not validate credentials")
		return
	}

	var req wordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	if _, err := s.words.Append(r.Context(), user.ID, req.Word, req.Position); err != nil {
		s.logger.Error(r.Context(), "append failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "word added successfully"})
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "could not validate credentials")
		return
	}

	list, err := s.words.List(r.Context(), user.ID)
	if err != nil {
		s.logger.Error(r.Context(), "list failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	resp := make([]wordResponse, 0, len(list))
	for _, word := range list {
		resp = append(resp, wordResponse{ID: word.ID, Word: word.Text, Position: word.Position})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReorderWords(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "could not validate credentials")
		return
	}

	var req []reorderEntry
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	updates := make([]words.PositionUpdate, 0, len(req))
	for _, e := range req {
		updates = append(updates, words.PositionUpdate{ID: e.ID, Position: e.Position})
	}

	if err := s.words.Reorder(r.Context(), user.ID, updates); err != nil {
		s.logger.Error(r.Context(), "reorder failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "words reordered successfully"})
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {

	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated", "could not validate credentials")
		return
	}

	position, err := strconv.ParseInt(r.PathValue("position"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "position must be an integer")
		return
	}

	if err := s.words.Delete(r.Context(), user.ID, position); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "word not found")
			return
		}
		s.logger.Error(r.Context(), "delete failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "word deleted successfully"})
}
