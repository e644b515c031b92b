package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	db "github.com/pranav244872/skillswap/db/sqlc"
)

const uniqueViolation = "23505"

// storeErrorStatus maps errors coming out of the store to HTTP statuses.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, pgx.ErrNoRows),
		errors.Is(err, db.ErrExchangeNotFound),
		errors.Is(err, db.ErrRatedUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, db.ErrSelfMatch),
		errors.Is(err, db.ErrSelfExchange),
		errors.Is(err, db.ErrSelfRating),
		errors.Is(err, db.ErrInvalidRating),
		errors.Is(err, db.ErrInvalidXPAmount),
		errors.Is(err, db.ErrPostOwnerMismatch):
		return http.StatusBadRequest

	case errors.Is(err, db.ErrNotExchangeParticipant),
		errors.Is(err, db.ErrNotMatchRecipient):
		return http.StatusForbidden

	case errors.Is(err, db.ErrDuplicateMatch),
		errors.Is(err, db.ErrPostClosed),
		errors.Is(err, db.ErrMatchNotPending),
		errors.Is(err, db.ErrMatchNotAccepted),
		errors.Is(err, db.ErrExchangeNotCompletable),
		errors.Is(err, db.ErrInvalidStatusTransition):
		return http.StatusConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondStoreError writes err with the status storeErrorStatus picks.
// Unexpected failures are logged; expected ones are just returned.
func respondStoreError(ctx *gin.Context, err error) {
	status := storeErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
	}
	ctx.JSON(status, errorResponse(err))
}
