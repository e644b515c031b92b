package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/pranav244872/skillswap/skillz"
)

////////////////////////////////////////////////////////////////////////
// POST /match/score (public)
////////////////////////////////////////////////////////////////////////

// looseProfile accepts whatever the client sends for each list; the
// matcher coerces or drops elements it cannot use.
type looseProfile struct {
	Teaches any `json:"teaches"`
	Wants   any `json:"wants"`
}

type scoreMatchRequest struct {
	A looseProfile `json:"a"`
	B looseProfile `json:"b"`
}

// scoreMatch evaluates two ad-hoc profiles without touching the database.
func (server *Server) scoreMatch(ctx *gin.Context) {
	var req scoreMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result := skillz.EvaluateRaw(req.A.Teaches, req.A.Wants, req.B.Teaches, req.B.Wants)
	ctx.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////////////////////
// Match records
////////////////////////////////////////////////////////////////////////

type matchResponse struct {
	ID        int64          `json:"id"`
	UserAID   int64          `json:"user_a_id"`
	UserBID   int64          `json:"user_b_id"`
	ATeachesB []string       `json:"a_teaches_b"`
	BTeachesA []string       `json:"b_teaches_a"`
	PostID    *int64         `json:"post_id"`
	Score     int32          `json:"score"`
	IsMutual  bool           `json:"is_mutual"`
	Status    db.MatchStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func newMatchResponse(match db.Match) matchResponse {
	return matchResponse{
		ID:        match.ID,
		UserAID:   match.UserAID,
		UserBID:   match.UserBID,
		ATeachesB: match.ATeachesB,
		BTeachesA: match.BTeachesA,
		PostID:    nullableID(match.PostID),
		Score:     match.Score,
		IsMutual:  match.IsMutual,
		Status:    match.Status,
		CreatedAt: match.CreatedAt.Time,
	}
}

func nullableID(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func optionalID(id *int64) pgtype.Int8 {
	if id == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *id, Valid: true}
}

////////////////////////////////////////////////////////////////////////
// POST /matches
////////////////////////////////////////////////////////////////////////

type createMatchRequest struct {
	UserID int64  `json:"user_id" binding:"required,min=1"`
	PostID *int64 `json:"post_id" binding:"omitempty,min=1"`
}

// createMatch sends a match request to another user. The exchanged skills
// are computed server side from both profiles.
func (server *Server) createMatch(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req createMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.CreateMatchTx(ctx, db.CreateMatchTxParams{
		RequesterID: userID,
		PartnerID:   req.UserID,
		PostID:      optionalID(req.PostID),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMatchResponse(result.Match))
}

////////////////////////////////////////////////////////////////////////
// GET /matches
////////////////////////////////////////////////////////////////////////

type listMatchesRequest struct {
	PageID   int32 `form:"page_id" binding:"omitempty,min=1"`
	PageSize int32 `form:"page_size" binding:"omitempty,min=1,max=50"`
}

// listMatches returns matches the caller sent or received, newest first.
func (server *Server) listMatches(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req listMatchesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.PageID == 0 {
		req.PageID = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	matches, err := server.store.ListMatchesForUser(ctx, db.ListMatchesForUserParams{
		UserAID: userID,
		Limit:   req.PageSize,
		Offset:  (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	rsp := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		rsp = append(rsp, newMatchResponse(m))
	}
	ctx.JSON(http.StatusOK, rsp)
}

////////////////////////////////////////////////////////////////////////
// PATCH /matches/:id
////////////////////////////////////////////////////////////////////////

type respondToMatchRequest struct {
	Status db.MatchStatus `json:"status" binding:"required,oneof=accepted declined"`
}

// respondToMatch lets the requested user accept or decline.
func (server *Server) respondToMatch(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req respondToMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	match, err := server.store.RespondToMatchTx(ctx, db.RespondToMatchTxParams{
		MatchID:  uri.ID,
		CallerID: userID,
		Status:   req.Status,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMatchResponse(match))
}
