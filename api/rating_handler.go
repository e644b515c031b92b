package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/pranav244872/skillswap/db/sqlc"
)

// recentRatingsLimit caps GET /users/:id/ratings.
const recentRatingsLimit = 20

type ratingResponse struct {
	ID          int64     `json:"id"`
	RatedUserID int64     `json:"rated_user_id"`
	RaterUserID int64     `json:"rater_user_id"`
	Rating      int32     `json:"rating"`
	ExchangeID  *int64    `json:"exchange_id"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func newRatingResponse(rating db.Rating) ratingResponse {
	return ratingResponse{
		ID:          rating.ID,
		RatedUserID: rating.RatedUserID,
		RaterUserID: rating.RaterUserID,
		Rating:      rating.Rating,
		ExchangeID:  nullableID(rating.ExchangeID),
		Comment:     rating.Comment,
		CreatedAt:   rating.CreatedAt.Time,
	}
}

////////////////////////////////////////////////////////////////////////
// POST /users/:id/ratings
////////////////////////////////////////////////////////////////////////

type createRatingRequest struct {
	Rating     int32  `json:"rating" binding:"required"`
	ExchangeID *int64 `json:"exchange_id" binding:"omitempty,min=1"`
	Comment    string `json:"comment"`
}

type createRatingResponse struct {
	Rating        ratingResponse `json:"rating"`
	AverageRating float64        `json:"average_rating"`
	TotalRatings  int32          `json:"total_ratings"`
}

// createRating lets the caller rate another user. Range and self-rating
// checks live in the store so every entry point shares them.
func (server *Server) createRating(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req createRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.AddRatingTx(ctx, db.AddRatingTxParams{
		RatedUserID: uri.ID,
		RaterUserID: userID,
		Rating:      req.Rating,
		ExchangeID:  optionalID(req.ExchangeID),
		Comment:     req.Comment,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, createRatingResponse{
		Rating:        newRatingResponse(result.Rating),
		AverageRating: result.User.AverageRating,
		TotalRatings:  result.User.TotalRatings,
	})
}

////////////////////////////////////////////////////////////////////////
// GET /users/:id/ratings
////////////////////////////////////////////////////////////////////////

func (server *Server) listRatings(ctx *gin.Context) {
	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ratings, err := server.store.ListRatingsForUser(ctx, db.ListRatingsForUserParams{
		RatedUserID: uri.ID,
		Limit:       recentRatingsLimit,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	rsp := make([]ratingResponse, 0, len(ratings))
	for _, r := range ratings {
		rsp = append(rsp, newRatingResponse(r))
	}
	ctx.JSON(http.StatusOK, rsp)
}
