package trello

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/termllo/internal/models"
)

// newTestClient starts a server with handler and returns a client pointed at it
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("k", "tok", WithBaseURL(srv.URL), WithTimeout(5*time.Second))
}

func TestGetBoards(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/members/me/boards", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		assert.Equal(t, "tok", r.URL.Query().Get("token"))
		_, _ = io.WriteString(w, `[
			{"id":"b1","name":"Work","starred":true,"dateLastView":"2024-05-01T10:00:00.000Z","dateLastActivity":"2024-05-02T10:00:00.000Z"},
			{"id":"b2","name":"Home","starred":false,"dateLastView":null}
		]`)
	})

	boards, err := client.GetBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)

	assert.Equal(t, "b1", boards[0].ID)
	assert.True(t, boards[0].Starred)
	assert.Equal(t, 2024, boards[0].LastViewed.Year())
	assert.Equal(t, 2, boards[0].LastModified.Day())
	assert.True(t, boards[1].LastViewed.IsZero())
}

func TestGetListsSkipsClosed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boards/b1/lists", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"l1","name":"Todo"},{"id":"l2","name":"Old","closed":true},{"id":"l3","name":"Done"}]`)
	})

	lists, err := client.GetLists(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "l1", lists[0].ID)
	assert.Equal(t, "l3", lists[1].ID)
}

func TestGetCards(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boards/b1/cards", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"c1","name":"x","desc":"d","idList":"l1","pos":16384.5}]`)
	})

	cards, err := client.GetCards(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, models.Card{ID: "c1", Name: "x", Desc: "d", ListID: "l1", Pos: 16384.5}, cards[0])
}

func TestUpdateCardPositionSendsWireValue(t *testing.T) {
	tests := []struct {
		name string
		pos  models.Position
		want string
	}{
		{"top", models.Top(), "top"},
		{"bottom", models.Bottom(), "bottom"},
		{"between", models.Between(2, 3), "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/cards/c1", r.URL.Path)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "l2", r.PostForm.Get("idList"))
				assert.Equal(t, tt.want, r.PostForm.Get("pos"))
				_, _ = io.WriteString(w, `{"id":"c1","idList":"l2","pos":1234}`)
			})

			got, err := client.UpdateCardPosition(context.Background(), "c1", "l2", tt.pos)
			require.NoError(t, err)
			assert.Equal(t, 1234.0, got)
		})
	}
}

func TestCreateCard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cards", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, url.Values{
			"name":   {"New"},
			"desc":   {"body"},
			"idList": {"l1"},
			"pos":    {"top"},
		}, r.PostForm)
		_, _ = io.WriteString(w, `{"id":"c9","name":"New","desc":"body","idList":"l1","pos":8192}`)
	})

	card, err := client.CreateCard(context.Background(), NewCard{Name: "New", Desc: "body", ListID: "l1", Pos: models.Top()})
	require.NoError(t, err)
	assert.Equal(t, "c9", card.ID)
	assert.Equal(t, 8192.0, card.Pos)
}

func TestUpdateCardFields(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "renamed", r.PostForm.Get("name"))
		assert.Equal(t, "", r.PostForm.Get("desc"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.UpdateCardFields(context.Background(), "c1", "renamed", ""))
	assert.True(t, called)
}

func TestErrorStatusBecomesTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	})

	_, err := client.GetBoards(context.Background())
	require.Error(t, err)

	var te *models.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusUnauthorized, te.StatusCode)
	assert.Equal(t, "GET /members/me/boards", te.Op)
	assert.Contains(t, te.Error(), "invalid token")
}

func TestNetworkFailureBecomesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient("k", "tok", WithBaseURL(srv.URL))
	srv.Close()

	err := client.UpdateCardFields(context.Background(), "c1", "n", "d")
	require.Error(t, err)
	assert.True(t, models.IsTransport(err))
}

func TestMalformedBodyBecomesTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{not json`)
	})

	_, err := client.GetLists(context.Background(), "b1")
	require.Error(t, err)
	assert.True(t, models.IsTransport(err))
}
