package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WanderingWalnut/HomeRun/internal/contracts"
	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
)

// GetProgress computes this week's savings progress from fresh provider
// data and persists the snapshot for the authenticated user.
func (h *Handler) GetProgress(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	accessToken, err := h.accessToken(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	report, err := h.ProgressService.ComputeProgress(ctx, userID, accessToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ProgressResponse{Progress: report})
}

// GetProgressSnapshot returns the last stored report without touching the
// provider.
func (h *Handler) GetProgressSnapshot(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	snapshot, err := h.ProgressService.GetSnapshot(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SnapshotResponse{Snapshot: snapshot})
}

func (h *Handler) GetBalances(c *gin.Context) {
	if _, err := h.GetUserIDFromContext(c); err != nil {
		h.respondError(c, err)
		return
	}

	accessToken, err := h.accessToken(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	balances, err := h.PlaidClient.GetBalances(ctx, accessToken)
	if err != nil {
		h.respondError(c, appErrors.NewProviderError(err))
		return
	}

	c.JSON(http.StatusOK, contracts.BalancesResponse{Balances: balances})
}

// GetTransactions returns the raw 30-day transaction list, unfiltered.
func (h *Handler) GetTransactions(c *gin.Context) {
	if _, err := h.GetUserIDFromContext(c); err != nil {
		h.respondError(c, err)
		return
	}

	accessToken, err := h.accessToken(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	today := progress.DateOf(time.Now())
	ctx := c.Request.Context()
	transactions, err := h.PlaidClient.GetTransactions(ctx, accessToken, today.AddDays(-progress.LookbackDays), today)
	if err != nil {
		h.respondError(c, appErrors.NewProviderError(err))
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionsResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}
