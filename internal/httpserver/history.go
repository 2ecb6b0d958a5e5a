// internal/httpserver/history.go
//
// Best-effort game history in SQLite. The session store is the authority
// for play; a failed history write is logged and never fails the request.

package httpserver

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

// owner returns the SQL owner clause and argument for the request:
// the account when logged in, else the anonymous cookie.
func (s *Server) owner(w http.ResponseWriter, r *http.Request) (clause string, arg any, userID string) {
	if me := currentUser(r); me != nil {
		return `user_id=?`, me.ID, me.ID
	}
	return `anonymous_id=?`, s.ensureAnonID(w, r), ""
}

// recordStart inserts the history row of a new session. The word itself is not stored.
func (s *Server) recordStart(w http.ResponseWriter, r *http.Request, sess *game.Session, v game.View, isDaily bool) {
	var userID, anonID sql.NullString
	if me := currentUser(r); me != nil {
		userID = sql.NullString{String: me.ID, Valid: true}
	} else {
		anonID = sql.NullString{String: s.ensureAnonID(w, r), Valid: true}
	}
	_, err := s.db.ExecContext(r.Context(), `
		INSERT INTO games (id, user_id, anonymous_id, language, daily, status, wrong_guesses, word_length, started_at)
		VALUES (?,?,?,?,?,?,0,?,?)`,
		sess.ID, userID, anonID, int(sess.Language), isDaily, string(v.Outcome), v.Length,
		sess.StartedAt.Format(time.RFC3339))
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert game row")
	}
}

// recordTurn persists the wrong count and, once the game is over, its
// status, the player's stats and any daily result.
func (s *Server) recordTurn(w http.ResponseWriter, r *http.Request, sess *game.Session, turn game.Turn) {
	ownerClause, ownerArg, userID := s.owner(w, r)

	tx, err := s.db.BeginTx(r.Context(), nil)
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("begin history tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	// overlapping requests can commit out of order; the count never goes back
	if _, err := tx.Exec(`UPDATE games SET wrong_guesses=MAX(wrong_guesses, ?) WHERE id=? AND `+ownerClause,
		turn.View.WrongCount, sess.ID, ownerArg); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("update wrong guesses")
	}

	if turn.Outcome.Terminal() {
		res, err := tx.Exec(`UPDATE games SET status=?, finished_at=? WHERE id=? AND status=? AND `+ownerClause,
			string(turn.Outcome), time.Now().UTC().Format(time.RFC3339), sess.ID, string(game.InProgress), ownerArg)
		if err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID).Msg("finish game")
		}
		// stats belong to the owner of the row, not to whoever sent the last letter
		if n := rowsAffected(res); userID != "" && n == 1 {
			if err := bumpStats(tx, userID, turn.Outcome == game.Won); err != nil {
				log.Warn().Err(err).Str("user", userID).Msg("bump stats")
			}
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("commit history")
	}

	if turn.Outcome.Terminal() {
		s.finishDaily(r, sess, turn)
		log.Info().Str("gameId", sess.ID).Str("outcome", string(turn.Outcome)).
			Int("wrong", turn.View.WrongCount).Msg("game over")
	}
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}

// bumpStats increments games played; updates wins and streak based on result (within tx).
func bumpStats(tx *sql.Tx, userID string, won bool) error {
	var gp, wins, streak int
	row := tx.QueryRow(`SELECT games_played, wins, streak FROM users WHERE id=?`, userID)
	if err := row.Scan(&gp, &wins, &streak); err != nil {
		return err
	}
	gp++
	if won {
		wins++
		streak++
	} else {
		streak = 0
	}
	_, err := tx.Exec(`UPDATE users SET games_played=?, wins=?, streak=? WHERE id=?`, gp, wins, streak, userID)
	return err
}
