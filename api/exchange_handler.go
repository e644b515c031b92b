package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/pranav244872/skillswap/db/sqlc"
)

type exchangeResponse struct {
	ID          int64             `json:"id"`
	User1ID     int64             `json:"user1_id"`
	User2ID     int64             `json:"user2_id"`
	MatchID     *int64            `json:"match_id"`
	Status      db.ExchangeStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at"`
}

func newExchangeResponse(exchange db.Exchange) exchangeResponse {
	rsp := exchangeResponse{
		ID:        exchange.ID,
		User1ID:   exchange.User1ID,
		User2ID:   exchange.User2ID,
		MatchID:   nullableID(exchange.MatchID),
		Status:    exchange.Status,
		CreatedAt: exchange.CreatedAt.Time,
	}
	if exchange.CompletedAt.Valid {
		rsp.CompletedAt = &exchange.CompletedAt.Time
	}
	return rsp
}

////////////////////////////////////////////////////////////////////////
// POST /exchanges
////////////////////////////////////////////////////////////////////////

type createExchangeRequest struct {
	PartnerID int64  `json:"partner_id" binding:"required,min=1"`
	MatchID   *int64 `json:"match_id" binding:"omitempty,min=1"`
}

func (server *Server) createExchange(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req createExchangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	exchange, err := server.store.StartExchangeTx(ctx, db.StartExchangeTxParams{
		CallerID:  userID,
		PartnerID: req.PartnerID,
		MatchID:   optionalID(req.MatchID),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newExchangeResponse(exchange))
}

////////////////////////////////////////////////////////////////////////
// GET /exchanges
////////////////////////////////////////////////////////////////////////

func (server *Server) listExchanges(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	exchanges, err := server.store.ListExchangesForUser(ctx, userID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	rsp := make([]exchangeResponse, 0, len(exchanges))
	for _, e := range exchanges {
		rsp = append(rsp, newExchangeResponse(e))
	}
	ctx.JSON(http.StatusOK, rsp)
}

////////////////////////////////////////////////////////////////////////
// PATCH /exchanges/:id
////////////////////////////////////////////////////////////////////////

type updateExchangeStatusRequest struct {
	Status db.ExchangeStatus `json:"status" binding:"required,oneof=active cancelled"`
}

func (server *Server) updateExchangeStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateExchangeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	exchange, err := server.store.UpdateExchangeStatusTx(ctx, db.UpdateExchangeStatusTxParams{
		ExchangeID: uri.ID,
		CallerID:   userID,
		Status:     req.Status,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newExchangeResponse(exchange))
}

////////////////////////////////////////////////////////////////////////
// POST /exchanges/:id/complete
////////////////////////////////////////////////////////////////////////

type xpAwardResponse struct {
	UserID    int64 `json:"user_id"`
	Xp        int64 `json:"xp"`
	Level     int32 `json:"level"`
	LeveledUp bool  `json:"leveled_up"`
}

type completeExchangeResponse struct {
	Exchange  exchangeResponse  `json:"exchange"`
	XPAwarded int64             `json:"xp_awarded"`
	Awards    []xpAwardResponse `json:"awards"`
}

func newXPAwardResponse(award db.XPAward) xpAwardResponse {
	return xpAwardResponse{
		UserID:    award.User.ID,
		Xp:        award.User.Xp,
		Level:     award.User.Level,
		LeveledUp: award.LeveledUp,
	}
}

// completeExchange closes an exchange and rewards both participants.
func (server *Server) completeExchange(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.CompleteExchangeTx(ctx, db.CompleteExchangeTxParams{
		ExchangeID: uri.ID,
		CallerID:   userID,
		XPReward:   server.config.ExchangeXPReward,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, completeExchangeResponse{
		Exchange:  newExchangeResponse(result.Exchange),
		XPAwarded: result.XPAwarded,
		Awards: []xpAwardResponse{
			newXPAwardResponse(result.User1Award),
			newXPAwardResponse(result.User2Award),
		},
	})
}
