package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"CoffeeCloud/internal/auth"
	"CoffeeCloud/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Log    *zap.Logger
	Users  *Repo
	Hasher *auth.Hasher
	JWT    *auth.TokenMaker
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Missing username or password.")
		return
	}
	if req.Username == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Missing username or password.")
		return
	}

	err := s.Users.Create(r.Context(), req.Username, s.Hasher.Hash(req.Password))
	if errors.Is(err, ErrExists) {
		kit.WriteError(w, r, http.StatusConflict, "User already exists.")
		return
	}
	if err != nil {
		s.Log.Error("signup failed", zap.String("username", req.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to create user.")
		return
	}

	tok, err := s.JWT.Issue(map[string]any{"username": req.Username})
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to create user.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, tokenResp{Token: tok})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Missing username or password.")
		return
	}
	if req.Username == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Missing username or password.")
		return
	}

	rec, err := s.Users.Get(r.Context(), req.Username)
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		s.Log.Error("login read failed", zap.String("username", req.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to retrieve user.")
		return
	}

	if !s.Hasher.Verify(req.Password, rec.PasswordHash()) {
		kit.WriteError(w, r, http.StatusUnauthorized, "Incorrect username or password.")
		return
	}

	// The token snapshot is the full profile minus the password, frozen at
	// login time.
	tok, err := s.JWT.Issue(rec.Sanitized())
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to retrieve user.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, tokenResp{Token: tok})
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req struct {
		Password string `json:"password"`
	}
	// No validation on this route: an absent password hashes as the empty
	// string, matching the documented contract.
	_ = json.NewDecoder(r.Body).Decode(&req)

	err := s.Users.ChangePassword(r.Context(), sess.Username, s.Hasher.Hash(req.Password))
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		s.Log.Error("change password failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to update password.")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	rec, err := s.Users.Get(r.Context(), sess.Username)
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		s.Log.Error("get profile failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to get user.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, rec.Sanitized())
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := s.Users.UpdateProfile(r.Context(), sess.Username, patch)
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		s.Log.Error("update profile failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to save user.")
		return
	}

	kit.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "Invalid session.")
		return
	}

	err := s.Users.Delete(r.Context(), sess.Username)
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		s.Log.Error("delete account failed", zap.String("username", sess.Username), zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "Unable to delete user.")
		return
	}

	w.WriteHeader(http.StatusOK)
}
