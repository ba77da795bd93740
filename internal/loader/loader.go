// Package loader fills the store from the snapshot cache and the remote API.
package loader

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/termllo/internal/models"
	"github.com/thenoetrevino/termllo/internal/snapshot"
	"github.com/thenoetrevino/termllo/internal/store"
	"github.com/thenoetrevino/termllo/internal/trello"
)

// ErrNoBoards is returned when the member has no starred boards
var ErrNoBoards = errors.New("no starred boards")

// Loader populates a Store
type Loader struct {
	remote trello.API
	cache  snapshot.Store
	store  *store.Store
	logger *slog.Logger

	// beforeReload runs ahead of every fresh board download
	beforeReload func(context.Context) error
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger sets the logger, slog.Default() otherwise
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithBeforeReload sets a hook run before SelectBoard downloads a board.
// The app uses it to send pending moves, so the download already carries them
// and no debounced move lands after the store was replaced.
func WithBeforeReload(fn func(context.Context) error) Option {
	return func(l *Loader) { l.beforeReload = fn }
}

// New creates a loader writing into st
func New(remote trello.API, cache snapshot.Store, st *store.Store, opts ...Option) *Loader {
	l := &Loader{
		remote: remote,
		cache:  cache,
		store:  st,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadBoards returns the starred boards, most recently viewed first.
// The snapshot is used when present; otherwise the boards are downloaded and
// the snapshot written before returning.
func (l *Loader) LoadBoards(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	if l.readCache(ctx, snapshot.BoardsKey, &boards, time.Time{}) {
		return boards, nil
	}

	all, err := l.remote.GetBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load boards: %w", err)
	}
	boards = starredByLastView(all)
	l.writeCache(ctx, snapshot.BoardsKey, boards)
	return boards, nil
}

// LoadLists returns the lists of boardID, cache-first
func (l *Loader) LoadLists(ctx context.Context, boardID string) ([]models.List, error) {
	return l.loadLists(ctx, boardID, cachePolicy{use: true})
}

// LoadCards returns the cards of boardID grouped by list id, cache-first
func (l *Loader) LoadCards(ctx context.Context, boardID string) (map[string][]models.Card, error) {
	return l.loadCards(ctx, boardID, cachePolicy{use: true})
}

// Fill performs the initial load: boards, then the lists and cards of the
// board at boardIdx. Lists and cards come from the snapshot unless it is older
// than the board's last activity.
func (l *Loader) Fill(ctx context.Context, boardIdx int) error {
	boards, err := l.LoadBoards(ctx)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		return ErrNoBoards
	}
	if boardIdx < 0 || boardIdx >= len(boards) {
		return &models.NotFoundError{Kind: "board", ID: strconv.Itoa(boardIdx)}
	}

	board := boards[boardIdx]
	policy := cachePolicy{use: true, notBefore: board.LastModified}

	lists, err := l.loadLists(ctx, board.ID, policy)
	if err != nil {
		return err
	}
	cards, err := l.loadCards(ctx, board.ID, policy)
	if err != nil {
		return err
	}

	l.store.SetBoards(boards)
	return l.store.ReplaceBoard(boardIdx, lists, cards)
}

// SelectBoard makes the board at idx active and downloads its lists and cards.
// The snapshot is bypassed because local mutations may have changed the
// remote ordering. On failure the store keeps the previous board.
func (l *Loader) SelectBoard(ctx context.Context, idx int) error {
	boards := l.store.Boards()
	if idx < 0 || idx >= len(boards) {
		return &models.NotFoundError{Kind: "board", ID: strconv.Itoa(idx)}
	}
	boardID := boards[idx].ID

	if l.beforeReload != nil {
		if err := l.beforeReload(ctx); err != nil {
			return fmt.Errorf("failed to send pending changes before reload: %w", err)
		}
	}
	l.cache.Invalidate(snapshot.ListsKey(boardID), snapshot.CardsKey(boardID))

	var (
		lists []models.List
		cards map[string][]models.Card
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lists, err = l.loadLists(gctx, boardID, cachePolicy{})
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = l.loadCards(gctx, boardID, cachePolicy{})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	l.logger.Debug("board selected", "board", boardID, "lists", len(lists))
	return l.store.ReplaceBoard(idx, lists, cards)
}

// Refresh reloads the active board from the remote API
func (l *Loader) Refresh(ctx context.Context) error {
	return l.SelectBoard(ctx, l.store.ActiveBoardIndex())
}

// cachePolicy says whether a load may use the snapshot, and how old it may be
type cachePolicy struct {
	use       bool
	notBefore time.Time
}

func (l *Loader) loadLists(ctx context.Context, boardID string, policy cachePolicy) ([]models.List, error) {
	key := snapshot.ListsKey(boardID)

	var lists []models.List
	if policy.use && l.readCache(ctx, key, &lists, policy.notBefore) {
		return lists, nil
	}

	lists, err := l.remote.GetLists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}
	l.writeCache(ctx, key, lists)
	return lists, nil
}

func (l *Loader) loadCards(ctx context.Context, boardID string, policy cachePolicy) (map[string][]models.Card, error) {
	key := snapshot.CardsKey(boardID)

	var cards []models.Card
	if policy.use && l.readCache(ctx, key, &cards, policy.notBefore) {
		return GroupByList(cards), nil
	}

	cards, err := l.remote.GetCards(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	l.writeCache(ctx, key, cards)
	return GroupByList(cards), nil
}

// readCache reports whether out was filled from a usable snapshot. Every
// failure is a miss; only unexpected ones are logged as warnings.
func (l *Loader) readCache(ctx context.Context, key string, out any, notBefore time.Time) bool {
	savedAt, err := l.cache.Read(ctx, key, out)
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		l.logger.Debug("snapshot miss", "key", key)
		return false
	case err != nil:
		l.logger.Warn("snapshot unreadable, downloading instead", "key", key, "error", err)
		return false
	case savedAt.Before(notBefore):
		l.logger.Debug("snapshot older than board activity", "key", key, "saved_at", savedAt, "board_modified", notBefore)
		return false
	}
	return true
}

// writeCache persists records. Failures are logged; the snapshot is optional.
func (l *Loader) writeCache(ctx context.Context, key string, records any) {
	if err := l.cache.Write(ctx, key, records); err != nil {
		l.logger.Warn("failed to write snapshot", "key", key, "error", err)
	}
}

// GroupByList groups a flat card sequence by list id, each group sorted by pos
func GroupByList(cards []models.Card) map[string][]models.Card {
	grouped := make(map[string][]models.Card)
	for _, c := range cards {
		grouped[c.ListID] = append(grouped[c.ListID], c)
	}
	for _, seq := range grouped {
		slices.SortStableFunc(seq, func(a, b models.Card) int { return cmp.Compare(a.Pos, b.Pos) })
	}
	return grouped
}

// starredByLastView keeps starred boards, most recently viewed first
func starredByLastView(boards []models.Board) []models.Board {
	starred := make([]models.Board, 0, len(boards))
	for _, b := range boards {
		if b.Starred {
			starred = append(starred, b)
		}
	}
	slices.SortStableFunc(starred, func(a, b models.Board) int {
		return b.LastViewed.Compare(a.LastViewed)
	})
	return starred
}
