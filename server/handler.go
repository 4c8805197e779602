package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jotterhq/jotter/schema"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 100
)

// Handler builds the HTTP routing for the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Group(func(r chi.Router) {
		r.Post(schema.PathRegister, s.handleRegister)
		r.Post(schema.PathLogin, s.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get(schema.PathNotes, s.handleListNotes)
		r.Post(schema.PathNotes, s.handleCreateNote)
		r.Put(schema.PathNotes+"/{id}", s.handleUpdateNote)
		r.Delete(schema.PathNotes+"/{id}", s.handleDeleteNote)
	})
	return r
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var credentials schema.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if detail := validateCredentials(&credentials); detail != "" {
		writeDetail(w, http.StatusBadRequest, detail)
		return
	}
	passwordHash, err := hashPassword(credentials.Password)
	if err != nil {
		s.internalError(w, "register", err)
		return
	}
	if _, err = s.store.AddUser(r.Context(), credentials.Email, passwordHash); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			writeDetail(w, http.StatusConflict, "Email already registered")
			return
		}
		s.internalError(w, "register", err)
		return
	}
	writeJSON(w, http.StatusCreated, schema.Message{Message: "registered"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var credentials schema.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := s.store.LookupUser(r.Context(), credentials.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
		} else {
			s.internalError(w, "login", err)
		}
		return
	}
	if !checkPassword(user.PasswordHash, credentials.Password) {
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	token, err := s.IssueToken(user.Email)
	if err != nil {
		s.internalError(w, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, schema.TokenResponse{AccessToken: token, TokenType: schema.TokenTypeBearer})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.store.ListNotes(r.Context(), userFrom(r.Context()))
	if err != nil {
		s.internalError(w, "list notes", err)
		return
	}
	if notes == nil {
		notes = []schema.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var request schema.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	note, err := s.store.AddNote(r.Context(), userFrom(r.Context()), &request, s.clock())
	if err != nil {
		s.internalError(w, "create note", err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	var request schema.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	note, err := s.store.UpdateNote(r.Context(), userFrom(r.Context()), id, &request)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Note not found")
			return
		}
		s.internalError(w, "update note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteNote(r.Context(), userFrom(r.Context()), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Note not found")
			return
		}
		s.internalError(w, "delete note", err)
		return
	}
	writeJSON(w, http.StatusOK, schema.Message{Message: "deleted"})
}

func (s *Server) internalError(w http.ResponseWriter, operation string, err error) {
	s.logger.Error(operation, "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal error")
}

func validateCredentials(credentials *schema.Credentials) string {
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return "Invalid email address"
	}
	if len(credentials.Password) < minPasswordLength || len(credentials.Password) > maxPasswordLength {
		return "Password must be between 6 and 100 characters"
	}
	return ""
}

func noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Note not found")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, schema.Detail{Detail: detail})
}
