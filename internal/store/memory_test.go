package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.StartNew(words.SecretWord("HANGMAN"), words.English, game.DefaultLifeBudget)
	require.NoError(t, err)
	return s
}

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	require.NoError(t, st.Delete(ctx, s.ID))
	_, err = st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, "missing"))
}

func TestUpdateUnknownID(t *testing.T) {
	called := false
	err := NewMemoryStore().Update(context.Background(), "nope", func(*game.Session) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestUpdatePropagatesError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	boom := errors.New("boom")
	err := st.Update(ctx, s.ID, func(*game.Session) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestUpdateSerializesGuesses(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstHit int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, s.ID, func(sess *game.Session) error {
				turn, err := sess.SubmitGuess('Z')
				if err != nil {
					return err
				}
				if turn.Result.Kind == game.Incorrect {
					mu.Lock()
					firstHit++
					mu.Unlock()
				}
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, firstHit)
	assert.Equal(t, 1, s.WrongCount())
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	running, done := newSession(t), newSession(t)
	require.NoError(t, st.Save(ctx, running))
	require.NoError(t, st.Save(ctx, done))
	for _, l := range "HANGM" {
		_, err := done.SubmitGuess(l)
		require.NoError(t, err)
	}
	require.Equal(t, game.Won, done.Outcome())

	// nothing is idle before a cutoff in the past
	assert.Empty(t, st.Sweep(ctx, time.Now().Add(-time.Hour), nil))
	assert.Equal(t, 2, st.Len())

	keepRunning := func(s *game.Session) bool { return !s.Outcome().Terminal() }
	removed := st.Sweep(ctx, time.Now().Add(time.Hour), keepRunning)
	assert.Equal(t, []string{done.ID}, removed)

	_, err := st.Get(ctx, running.ID)
	assert.NoError(t, err)

	removed = st.Sweep(ctx, time.Now().Add(time.Hour), nil)
	assert.Equal(t, []string{running.ID}, removed)
	assert.Zero(t, st.Len())
}
