// internal/daily/store.go
//
// SQLite persistence for daily results. One row per user, date and
// language (UNIQUE constraint in the migration); later inserts are ignored.

package daily

import (
	"context"
	"database/sql"
)

// Result is one finished daily game.
type Result struct {
	UserID       string `json:"userId"`
	Date         string `json:"date"`
	Language     int    `json:"language"`
	WordIndex    int    `json:"wordIndex"`
	WrongGuesses int    `json:"wrongGuesses"`
	Won          bool   `json:"won"`
	ElapsedMs    int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether userID has a result for date and language.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string, lang int) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=? AND language=?`,
		userID, date, lang,
	).Scan(&cnt)
	return cnt > 0, err
}

func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_results
			(user_id, date, language, word_index, wrong_guesses, won, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.Date, r.Language, r.WordIndex, r.WrongGuesses, r.Won, r.ElapsedMs,
	)
	return err
}

// Reassign moves the results of one player ID to another, e.g. a guest
// cookie to the account it signed up as. Slots the target already holds
// keep the target's result.
func (s *Store) Reassign(ctx context.Context, fromID, toID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE OR IGNORE daily_results SET user_id=? WHERE user_id=?`, toID, fromID)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID       string `json:"userId"`
	Won          bool   `json:"won"`
	WrongGuesses int    `json:"wrongGuesses"`
	ElapsedMs    int    `json:"elapsedMs"`
}

// Leaderboard returns the best results of a day: wins first, then fewer
// wrong guesses, then faster.
func (s *Store) Leaderboard(ctx context.Context, date string, lang, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, won, wrong_guesses, elapsed_ms
		FROM daily_results
		WHERE date=? AND language=?
		ORDER BY won DESC, wrong_guesses ASC, elapsed_ms ASC, created_at ASC
		LIMIT ?`, date, lang, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Won, &r.WrongGuesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
