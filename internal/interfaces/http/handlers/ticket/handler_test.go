package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "revu/internal/application/ticket/dto"
	"revu/internal/application/ticket/usecases"
	"revu/internal/interfaces/http/handlers/testutil"
	"revu/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, _ usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	return m.result, m.err
}

type mockCreateTicketWithReviewUC struct {
	result *usecases.CreateTicketWithReviewResult
	err    error
}

func (m *mockCreateTicketWithReviewUC) Execute(_ context.Context, _ usecases.CreateTicketWithReviewCommand) (*usecases.CreateTicketWithReviewResult, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *usecases.UpdateTicketResult
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, _ usecases.UpdateTicketCommand) (*usecases.UpdateTicketResult, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	result *usecases.DeleteTicketResult
	err    error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, _ usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type testDeps struct {
	createTicketUC           usecases.CreateTicketExecutor
	createTicketWithReviewUC usecases.CreateTicketWithReviewExecutor
	updateTicketUC           usecases.UpdateTicketExecutor
	deleteTicketUC           usecases.DeleteTicketExecutor
	getTicketUC              usecases.GetTicketExecutor
	listTicketsUC            usecases.ListTicketsExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.createTicketWithReviewUC,
		deps.updateTicketUC,
		deps.deleteTicketUC,
		deps.getTicketUC,
		deps.listTicketsUC,
	)
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{TicketID: 1, CreatedAt: now},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		Title:       "Review my portfolio",
		Description: "Looking for honest feedback",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	// Missing required title
	reqBody := map[string]string{"description": "no title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestTicketHandler_CreateTicket_UseCaseError(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		err: errors.NewForbiddenError("user is not allowed to create tickets"),
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{Title: "Review my portfolio"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestTicketHandler_CreateTicketWithReview_Success(t *testing.T) {
	mockUC := &mockCreateTicketWithReviewUC{
		result: &usecases.CreateTicketWithReviewResult{TicketID: 5, ReviewID: 9},
	}
	handler := newTestTicketHandler(testDeps{createTicketWithReviewUC: mockUC})

	reqBody := CreateTicketWithReviewRequest{
		Title: "Rate this recipe",
	}
	reqBody.Review.Rating = 4
	reqBody.Review.Headline = "Tried it"
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/with-review", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTicketWithReview(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTicketHandler_GetTicket(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUC := &mockGetTicketUC{result: &ticketdto.TicketDTO{ID: 3}}
		handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/3", nil)
		testutil.SetURLParam(c, "id", "3")

		handler.GetTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		handler := newTestTicketHandler(testDeps{})

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/abc", nil)
		testutil.SetURLParam(c, "id", "abc")

		handler.GetTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockUC := &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")}
		handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/99", nil)
		testutil.SetURLParam(c, "id", "99")

		handler.GetTicket(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandler_UpdateTicket_Forbidden(t *testing.T) {
	mockUC := &mockUpdateTicketUC{err: errors.NewForbiddenError("only the ticket owner can update it")}
	handler := newTestTicketHandler(testDeps{updateTicketUC: mockUC})

	title := "new title"
	c, w := testutil.NewTestContext(http.MethodPut, "/tickets/3", UpdateTicketRequest{Title: &title})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 2)

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTicketHandler_DeleteTicket_Success(t *testing.T) {
	mockUC := &mockDeleteTicketUC{result: &usecases.DeleteTicketResult{TicketID: 3}}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/3", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 1)

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_ListTickets(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{Total: 0}}
		handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)

		handler.ListTickets(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid owner filter", func(t *testing.T) {
		handler := newTestTicketHandler(testDeps{})

		c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
		testutil.SetQueryParams(c, map[string]string{"owner_id": "abc"})

		handler.ListTickets(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
