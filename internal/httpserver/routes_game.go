// internal/httpserver/routes_game.go
//
// Game endpoints:
//   - POST /game/new   → start a fresh session (the previous one, if named, is discarded)
//   - POST /game/guess → submit one letter
//   - GET  /game/{id}  → current view, no side effects

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

type newGameReq struct {
	Language       string `json:"language"`       // "0"/"1", "en"/"fi"
	PreviousGameID string `json:"previousGameId"` // session being replaced
	Word           string `json:"word"`           // fixed word, honored only with ALLOW_FIXED_WORD
}

type newGameRes struct {
	GameID string    `json:"gameId"`
	View   game.View `json:"view"`
}

// handleNewGame picks a word for the requested language and starts a session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	lang, err := words.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_language")
		return
	}

	var word words.SecretWord
	if fixed := strings.TrimSpace(req.Word); fixed != "" && s.cfg.AllowFixedWord {
		word = words.SecretWord(strings.ToUpper(fixed))
	} else if word, err = s.catalog.Pick(lang, s.rng); err != nil {
		log.Error().Err(err).Str("language", lang.String()).Msg("pick word")
		writeError(w, http.StatusServiceUnavailable, "empty_word_list")
		return
	}

	sess, err := game.StartNew(word, lang, s.cfg.LifeBudget)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	view := sess.CurrentView()
	if prev := req.PreviousGameID; prev != "" && !s.isDaily(prev) {
		_ = s.store.Delete(r.Context(), prev)
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordStart(w, r, sess, view, false)

	writeJSON(w, http.StatusOK, newGameRes{GameID: sess.ID, View: view})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}

// handleGuess applies one letter to a stored session and persists progress.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letter := strings.TrimSpace(req.Letter)
	if utf8.RuneCountInString(letter) != 1 {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}
	ch, _ := utf8.DecodeRuneInString(letter)

	var (
		sess *game.Session
		turn game.Turn
	)
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Session) error {
		sess = g
		var err error
		turn, err = g.SubmitGuess(ch)
		return err
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrSessionTerminated):
		writeError(w, http.StatusConflict, "session_terminated")
		return
	case errors.Is(err, game.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("submit guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	if turn.Result.Kind != game.AlreadyGuessed {
		s.recordTurn(w, r, sess, turn)
	}
	writeJSON(w, http.StatusOK, turn)
}

// handleView returns the current view of a session.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var v game.View
	err := s.store.Update(r.Context(), id, func(g *game.Session) error {
		v = g.CurrentView()
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"gameId": id, "view": v})
}
