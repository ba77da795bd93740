// Package card is the mutation engine: it applies card changes to the store
// and propagates them to the remote service.
package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/termllo/internal/debounce"
	"github.com/thenoetrevino/termllo/internal/models"
	"github.com/thenoetrevino/termllo/internal/store"
	"github.com/thenoetrevino/termllo/internal/trello"
)

const (
	// DefaultMoveDebounce is the idle window before a move is sent
	DefaultMoveDebounce = 400 * time.Millisecond

	// DefaultRequestTimeout bounds each background remote call
	DefaultRequestTimeout = 10 * time.Second

	resultBuffer = 64
)

// Service defines all card mutations
type Service interface {
	// MoveCard updates the store immediately and sends the remote update after
	// the debounce window. Remote failures arrive on Results.
	MoveCard(req MoveRequest) (MoveOutcome, error)
	CreateCard(ctx context.Context, req CreateRequest) (models.Card, error)
	EditCard(ctx context.Context, req EditRequest) (models.Card, error)

	// Card movements relative to the current position
	MoveToNextList(listIdx, cardIdx int) (MoveOutcome, error)
	MoveToPrevList(listIdx, cardIdx int) (MoveOutcome, error)
	MoveUp(listIdx, cardIdx int) (MoveOutcome, error)
	MoveDown(listIdx, cardIdx int) (MoveOutcome, error)

	// Focus makes the list at listIdx the active list
	Focus(listIdx int) error

	// Results delivers the outcome of every remote move call
	Results() <-chan MoveResult
	// Flush sends every pending move now and waits for in-flight calls
	Flush(ctx context.Context) error
	// Pending returns the number of moves waiting for their window
	Pending() int
}

// MoveRequest addresses a card by list id and index
type MoveRequest struct {
	FromList string
	FromPos  int
	ToList   string
	ToPos    int
}

// MoveOutcome is returned synchronously by MoveCard
type MoveOutcome struct {
	Card      models.Card
	Placement models.Position
	ToIndex   int      // index of the card in the destination list
	From      []string // source list names after the move
	To        []string // destination list names after the move
	RequestID string   // correlates the later MoveResult
}

// MoveResult reports what the service did with a debounced move
type MoveResult struct {
	RequestID string
	CardID    string
	CardName  string
	ListID    string
	Pos       float64 // service-assigned pos, zero on failure
	Stale     bool    // a newer move superseded this one before it returned
	Err       error
}

// CreateRequest holds the fields of a new card
type CreateRequest struct {
	Name   string
	Desc   string
	ListID string
}

// EditRequest holds the new name and description of an existing card
type EditRequest struct {
	ID     string
	ListID string
	Name   string
	Desc   string
}

// service implements Service
type service struct {
	remote  trello.API
	store   *store.Store
	logger  *slog.Logger
	timeout time.Duration

	debouncer *debounce.Scheduler
	results   chan MoveResult

	mu  sync.Mutex
	seq map[string]uint64 // latest requested move per card id
}

// Option configures the service
type Option func(*options)

type options struct {
	logger   *slog.Logger
	debounce time.Duration
	timeout  time.Duration
}

// WithLogger sets the logger, slog.Default() otherwise
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMoveDebounce sets the idle window for coalescing moves
func WithMoveDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithRequestTimeout bounds each background remote call
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// NewService creates a new card service
func NewService(remote trello.API, st *store.Store, opts ...Option) Service {
	o := options{
		logger:   slog.Default(),
		debounce: DefaultMoveDebounce,
		timeout:  DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &service{
		remote:    remote,
		store:     st,
		logger:    o.logger,
		timeout:   o.timeout,
		debouncer: debounce.New(o.debounce),
		results:   make(chan MoveResult, resultBuffer),
		seq:       make(map[string]uint64),
	}
}

// MoveCard relocates a card locally right away and schedules the remote update
func (s *service) MoveCard(req MoveRequest) (MoveOutcome, error) {
	if req.ToPos < 0 {
		return MoveOutcome{}, ErrNegativePos
	}

	res, err := s.store.MoveCard(req.FromList, req.FromPos, req.ToList, req.ToPos)
	if err != nil {
		return MoveOutcome{}, err
	}

	moved := res.Card
	requestID := uuid.NewString()
	seq := s.bumpSeq(moved.ID)

	s.debouncer.Schedule(moved.ID, func() {
		s.sendMove(moved, res.Placement, seq, requestID)
	})

	s.logger.Debug("card moved locally",
		"card", moved.ID, "to_list", req.ToList, "placement", res.Placement.String(), "request_id", requestID)

	return MoveOutcome{
		Card:      moved,
		Placement: res.Placement,
		ToIndex:   res.Index,
		From:      res.From,
		To:        res.To,
		RequestID: requestID,
	}, nil
}

// sendMove issues the remote update for the last requested move of a card
func (s *service) sendMove(moved models.Card, placement models.Position, seq uint64, requestID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result := MoveResult{
		RequestID: requestID,
		CardID:    moved.ID,
		CardName:  moved.Name,
		ListID:    moved.ListID,
	}

	pos, err := s.remote.UpdateCardPosition(ctx, moved.ID, moved.ListID, placement)
	if err != nil {
		// The local move stays in place; the user sees a notification
		s.logger.Error("remote move failed, local order kept",
			"card", moved.ID, "list", moved.ListID, "placement", placement.String(),
			"request_id", requestID, "error", err)
		result.Err = fmt.Errorf("failed to move card %q: %w", moved.Name, err)
		s.publish(result)
		return
	}

	result.Pos = pos
	if s.isLatest(moved.ID, seq) {
		s.store.SetCardPos(moved.ID, pos)
	} else {
		result.Stale = true
		s.logger.Debug("ignoring superseded move result", "card", moved.ID, "request_id", requestID)
	}
	s.publish(result)
}

func (s *service) publish(result MoveResult) {
	select {
	case s.results <- result:
	default:
		if result.Err != nil {
			s.logger.Error("move failure dropped, result buffer is full",
				"card", result.CardID, "list", result.ListID, "request_id", result.RequestID, "error", result.Err)
			return
		}
		s.logger.Warn("move result dropped, nobody is listening", "card", result.CardID, "request_id", result.RequestID)
	}
}

func (s *service) bumpSeq(cardID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[cardID]++
	return s.seq[cardID]
}

func (s *service) isLatest(cardID string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[cardID] == seq
}

// CreateCard creates the card remotely first and only then inserts it at the
// top of its list. A remote failure leaves the store untouched.
func (s *service) CreateCard(ctx context.Context, req CreateRequest) (models.Card, error) {
	if err := validateFields(req.Name, req.Desc); err != nil {
		return models.Card{}, err
	}
	if req.ListID == "" {
		return models.Card{}, ErrMissingList
	}
	if !s.store.HasList(req.ListID) {
		return models.Card{}, &models.NotFoundError{Kind: "list", ID: req.ListID}
	}

	created, err := s.remote.CreateCard(ctx, trello.NewCard{
		Name:   req.Name,
		Desc:   req.Desc,
		ListID: req.ListID,
		Pos:    models.Top(),
	})
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to create card: %w", err)
	}
	if created.ListID == "" {
		created.ListID = req.ListID
	}

	if err := s.store.InsertFront(created); err != nil {
		return models.Card{}, err
	}
	s.logger.Info("card created", "card", created.ID, "list", created.ListID)
	return created, nil
}

// EditCard updates name and description locally, then remotely. A remote
// failure is returned but the local edit is kept.
func (s *service) EditCard(ctx context.Context, req EditRequest) (models.Card, error) {
	if req.ID == "" {
		return models.Card{}, ErrMissingCard
	}
	if err := validateFields(req.Name, req.Desc); err != nil {
		return models.Card{}, err
	}

	edited, err := s.store.ApplyEdit(req.ListID, req.ID, req.Name, req.Desc)
	if err != nil {
		return models.Card{}, err
	}

	if err := s.remote.UpdateCardFields(ctx, req.ID, req.Name, req.Desc); err != nil {
		s.logger.Error("remote edit failed, local edit kept", "card", req.ID, "error", err)
		return edited, fmt.Errorf("failed to update card: %w", err)
	}
	return edited, nil
}

// MoveToNextList moves a card to the same index of the list to its right
func (s *service) MoveToNextList(listIdx, cardIdx int) (MoveOutcome, error) {
	lists := s.store.Lists()
	if listIdx < 0 || listIdx >= len(lists) {
		return MoveOutcome{}, &models.NotFoundError{Kind: "list", ID: fmt.Sprint(listIdx)}
	}
	if listIdx == len(lists)-1 {
		return MoveOutcome{}, models.ErrNoNextList
	}
	return s.MoveCard(MoveRequest{
		FromList: lists[listIdx].ID,
		FromPos:  cardIdx,
		ToList:   lists[listIdx+1].ID,
		ToPos:    cardIdx,
	})
}

// MoveToPrevList moves a card to the same index of the list to its left
func (s *service) MoveToPrevList(listIdx, cardIdx int) (MoveOutcome, error) {
	lists := s.store.Lists()
	if listIdx < 0 || listIdx >= len(lists) {
		return MoveOutcome{}, &models.NotFoundError{Kind: "list", ID: fmt.Sprint(listIdx)}
	}
	if listIdx == 0 {
		return MoveOutcome{}, models.ErrNoPrevList
	}
	return s.MoveCard(MoveRequest{
		FromList: lists[listIdx].ID,
		FromPos:  cardIdx,
		ToList:   lists[listIdx-1].ID,
		ToPos:    cardIdx,
	})
}

// MoveUp swaps a card with the one above it
func (s *service) MoveUp(listIdx, cardIdx int) (MoveOutcome, error) {
	lists := s.store.Lists()
	if listIdx < 0 || listIdx >= len(lists) {
		return MoveOutcome{}, &models.NotFoundError{Kind: "list", ID: fmt.Sprint(listIdx)}
	}
	if cardIdx <= 0 {
		return MoveOutcome{}, models.ErrAlreadyFirstCard
	}
	listID := lists[listIdx].ID
	return s.MoveCard(MoveRequest{FromList: listID, FromPos: cardIdx, ToList: listID, ToPos: cardIdx - 1})
}

// MoveDown swaps a card with the one below it
func (s *service) MoveDown(listIdx, cardIdx int) (MoveOutcome, error) {
	lists := s.store.Lists()
	if listIdx < 0 || listIdx >= len(lists) {
		return MoveOutcome{}, &models.NotFoundError{Kind: "list", ID: fmt.Sprint(listIdx)}
	}
	listID := lists[listIdx].ID
	if cardIdx >= len(s.store.Cards(listID))-1 {
		return MoveOutcome{}, models.ErrAlreadyLastCard
	}
	return s.MoveCard(MoveRequest{FromList: listID, FromPos: cardIdx, ToList: listID, ToPos: cardIdx + 1})
}

// Focus implements Service
func (s *service) Focus(listIdx int) error {
	return s.store.SetActiveList(listIdx)
}

// Results implements Service
func (s *service) Results() <-chan MoveResult {
	return s.results
}

// Flush implements Service
func (s *service) Flush(ctx context.Context) error {
	return s.debouncer.Flush(ctx)
}

// Pending implements Service
func (s *service) Pending() int {
	return s.debouncer.Pending()
}

// validateFields checks the editable text of a card
func validateFields(name, desc string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(name) > models.MaxCardNameLength {
		return ErrNameTooLong
	}
	if len(desc) > models.MaxCardDescLength {
		return ErrDescTooLong
	}
	return nil
}
