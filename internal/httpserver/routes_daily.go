// internal/httpserver/routes_daily.go
//
// HTTP routes for the "word of the day" mode:
//   - POST /daily/new         → start (or resume) today's game for a language
//   - GET  /daily/leaderboard → top 20 results for today (or ?date=) and ?language=
//
// Guesses go through POST /game/guess like any other session. Each player
// can finish the daily word once per date and language; the result is
// persisted when the session ends.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

// dailyEntry ties a running session to its daily slot.
type dailyEntry struct {
	Key       string
	UserID    string
	Date      string
	Language  words.Language
	WordIndex int
}

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// playerID returns the account ID, or the anonymous cookie ID for guests.
func (s *Server) playerID(w http.ResponseWriter, r *http.Request) string {
	if me := currentUser(r); me != nil {
		return me.ID
	}
	return s.ensureAnonID(w, r)
}

func (s *Server) isDaily(gameID string) bool {
	s.dailyMu.Lock()
	defer s.dailyMu.Unlock()
	_, ok := s.dailyGames[gameID]
	return ok
}

func dailyKey(uid, date string, lang words.Language) string {
	return uid + "|" + date + "|" + lang.String()
}

// claimDaily hands a guest's daily results and running daily sessions to
// the account, so the account cannot start the same daily word again.
func (s *Server) claimDaily(ctx context.Context, anonID, userID string) {
	if err := s.daily.Reassign(ctx, anonID, userID); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("claim daily results")
	}

	s.dailyMu.Lock()
	defer s.dailyMu.Unlock()
	for id, e := range s.dailyGames {
		if e.UserID != anonID {
			continue
		}
		if s.dailyKeys[e.Key] == id {
			delete(s.dailyKeys, e.Key)
		}
		e.UserID = userID
		e.Key = dailyKey(userID, e.Date, e.Language)
		// an account session already running for the slot stays the resumable one
		if _, taken := s.dailyKeys[e.Key]; !taken {
			s.dailyKeys[e.Key] = id
		}
	}
}

type dailyNewReq struct {
	Language string `json:"language"`
}

type dailyNewRes struct {
	GameID string     `json:"gameId,omitempty"`
	Date   string     `json:"date"`
	Played bool       `json:"played"`
	View   *game.View `json:"view,omitempty"`
}

// handleDailyNew creates or resumes the player's daily session.
//   - A stored result for today → Played=true, no session.
//   - A running daily session → same game ID and its current view.
//   - Otherwise a new session on the word of the day.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req dailyNewReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	lang, err := words.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_language")
		return
	}

	uid := s.playerID(w, r)
	now := time.Now().UTC()
	date := daily.DateKey(now)

	played, err := s.daily.AlreadyPlayed(r.Context(), uid, date, int(lang))
	if err != nil {
		log.Warn().Err(err).Str("user", uid).Msg("daily already played")
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
		return
	}

	key := dailyKey(uid, date, lang)
	s.dailyMu.Lock()
	existing, ok := s.dailyKeys[key]
	s.dailyMu.Unlock()
	if ok {
		var v game.View
		err := s.store.Update(r.Context(), existing, func(g *game.Session) error {
			v = g.CurrentView()
			return nil
		})
		if err == nil {
			writeJSON(w, http.StatusOK, dailyNewRes{GameID: existing, Date: date, View: &v})
			return
		}
	}

	list := s.catalog.List(lang)
	word, err := words.PickWord(list, daily.Source{Date: now, Salt: s.cfg.DailySalt})
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "empty_word_list")
		return
	}
	sess, err := game.StartNew(word, lang, s.cfg.LifeBudget)
	if err != nil {
		log.Error().Err(err).Str("language", lang.String()).Msg("start daily session")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	view := sess.CurrentView()
	if err := s.store.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	s.dailyMu.Lock()
	s.dailyKeys[key] = sess.ID
	s.dailyGames[sess.ID] = &dailyEntry{
		Key:       key,
		UserID:    uid,
		Date:      date,
		Language:  lang,
		WordIndex: daily.WordIndex(now, s.cfg.DailySalt, len(list)),
	}
	s.dailyMu.Unlock()

	s.recordStart(w, r, sess, view, true)
	writeJSON(w, http.StatusOK, dailyNewRes{GameID: sess.ID, Date: date, View: &view})
}

// finishDaily stores the result of a finished daily session and forgets it.
func (s *Server) finishDaily(r *http.Request, sess *game.Session, turn game.Turn) {
	s.dailyMu.Lock()
	entry, ok := s.dailyGames[sess.ID]
	if ok {
		s.forgetDailyLocked(sess.ID, entry)
	}
	s.dailyMu.Unlock()
	if !ok {
		return
	}

	err := s.daily.InsertResult(r.Context(), daily.Result{
		UserID:       entry.UserID,
		Date:         entry.Date,
		Language:     int(entry.Language),
		WordIndex:    entry.WordIndex,
		WrongGuesses: turn.View.WrongCount,
		Won:          turn.Outcome == game.Won,
		ElapsedMs:    int(time.Since(sess.StartedAt).Milliseconds()),
	})
	if err != nil {
		log.Warn().Err(err).Str("user", entry.UserID).Msg("insert daily result")
	}
}

// forgetDailyLocked drops a daily session's bookkeeping. Callers hold dailyMu.
func (s *Server) forgetDailyLocked(id string, e *dailyEntry) {
	delete(s.dailyGames, id)
	if s.dailyKeys[e.Key] == id {
		delete(s.dailyKeys, e.Key)
	}
}

type lbRes struct {
	Date     string        `json:"date"`
	Language int           `json:"language"`
	Top      []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	lang, err := words.ParseLanguage(q.Get("language"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_language")
		return
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, int(lang), limit)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Language: int(lang), Top: rows})
}
