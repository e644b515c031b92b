package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/pranav244872/skillswap/skillz"
	"golang.org/x/sync/errgroup"
)

// userResponse is a user without credentials. Email is only filled in
// for the account owner.
type userResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Bio           string    `json:"bio"`
	Location      string    `json:"location"`
	SkillsToTeach []string  `json:"skills_to_teach"`
	SkillsToLearn []string  `json:"skills_to_learn"`
	Xp            int64     `json:"xp"`
	Level         int32     `json:"level"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int32     `json:"total_ratings"`
	CreatedAt     time.Time `json:"created_at"`
}

func newUserResponse(user db.User) userResponse {
	rsp := newPublicUserResponse(user)
	rsp.Email = user.Email
	return rsp
}

func newPublicUserResponse(user db.User) userResponse {
	return userResponse{
		ID:            user.ID,
		Name:          user.Name,
		Bio:           user.Bio,
		Location:      user.Location,
		SkillsToTeach: user.SkillsToTeach,
		SkillsToLearn: user.SkillsToLearn,
		Xp:            user.Xp,
		Level:         user.Level,
		AverageRating: user.AverageRating,
		TotalRatings:  user.TotalRatings,
		CreatedAt:     user.CreatedAt.Time,
	}
}

type userIDURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

////////////////////////////////////////////////////////////////////////
// GET /users/me
////////////////////////////////////////////////////////////////////////

func (server *Server) getCurrentUser(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := server.store.GetUser(ctx, userID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

////////////////////////////////////////////////////////////////////////
// PUT /users/me
////////////////////////////////////////////////////////////////////////

// updateUserRequest holds optional fields; omitted ones are left unchanged.
type updateUserRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1"`
	Bio           *string  `json:"bio"`
	Location      *string  `json:"location"`
	SkillsToTeach []string `json:"skills_to_teach"`
	SkillsToLearn []string `json:"skills_to_learn"`
}

func (server *Server) updateCurrentUser(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.UpdateUserProfileParams{
		ID:       userID,
		Name:     optionalText(req.Name),
		Bio:      optionalText(req.Bio),
		Location: optionalText(req.Location),
	}
	// A nil slice is sent as NULL and keeps the stored list.
	if req.SkillsToTeach != nil {
		arg.SkillsToTeach = skillz.NormalizeSkills(req.SkillsToTeach).Values()
	}
	if req.SkillsToLearn != nil {
		arg.SkillsToLearn = skillz.NormalizeSkills(req.SkillsToLearn).Values()
	}

	user, err := server.store.UpdateUserProfile(ctx, arg)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

func optionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

////////////////////////////////////////////////////////////////////////
// GET /users/:id
////////////////////////////////////////////////////////////////////////

func (server *Server) getUser(ctx *gin.Context) {
	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.GetUser(ctx, uri.ID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPublicUserResponse(user))
}

////////////////////////////////////////////////////////////////////////
// GET /users/:id/stats
////////////////////////////////////////////////////////////////////////

type userStatsResponse struct {
	UserID             int64    `json:"user_id"`
	Xp                 int64    `json:"xp"`
	Level              int32    `json:"level"`
	XPToNextLevel      int64    `json:"xp_to_next_level"`
	AverageRating      float64  `json:"average_rating"`
	TotalRatings       int32    `json:"total_ratings"`
	TotalExchanges     int64    `json:"total_exchanges"`
	ActiveExchanges    int64    `json:"active_exchanges"`
	CompletedExchanges int64    `json:"completed_exchanges"`
	SkillsTeaching     []string `json:"skills_teaching"`
	SkillsLearning     []string `json:"skills_learning"`
}

// getUserStats loads the profile and the exchange counters concurrently.
func (server *Server) getUserStats(ctx *gin.Context) {
	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var (
		user   db.User
		counts db.CountExchangesForUserRow
	)

	g, gctx := errgroup.WithContext(ctx.Request.Context())
	g.Go(func() error {
		var err error
		user, err = server.store.GetUser(gctx, uri.ID)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = server.store.CountExchangesForUser(gctx, uri.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, userStatsResponse{
		UserID:             user.ID,
		Xp:                 user.Xp,
		Level:              user.Level,
		XPToNextLevel:      int64(user.Level)*db.XPPerLevel - user.Xp,
		AverageRating:      user.AverageRating,
		TotalRatings:       user.TotalRatings,
		TotalExchanges:     counts.Total,
		ActiveExchanges:    counts.Active,
		CompletedExchanges: counts.Completed,
		SkillsTeaching:     user.SkillsToTeach,
		SkillsLearning:     user.SkillsToLearn,
	})
}

////////////////////////////////////////////////////////////////////////
// GET /users?skill=&q=&page_id=&page_size=
////////////////////////////////////////////////////////////////////////

type listUsersRequest struct {
	Skill    string `form:"skill"`
	Query    string `form:"q"`
	PageID   int32  `form:"page_id" binding:"omitempty,min=1"`
	PageSize int32  `form:"page_size" binding:"omitempty,min=1,max=50"`
}

// listUsers finds users who teach a skill, or whose name matches q.
func (server *Server) listUsers(ctx *gin.Context) {
	var req listUsersRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if req.PageID == 0 {
		req.PageID = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}
	offset := (req.PageID - 1) * req.PageSize

	var (
		users []db.User
		err   error
	)
	switch {
	case skillz.NormalizeTag(req.Skill) != "":
		users, err = server.store.ListUsersBySkill(ctx, db.ListUsersBySkillParams{
			Skill:     skillz.NormalizeTag(req.Skill),
			RowLimit:  req.PageSize,
			RowOffset: offset,
		})
	case req.Query != "":
		users, err = server.store.SearchUsersByName(ctx, db.SearchUsersByNameParams{
			Query:     req.Query,
			RowLimit:  req.PageSize,
			RowOffset: offset,
		})
	default:
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("either skill or q is required")))
		return
	}
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	rsp := make([]userResponse, 0, len(users))
	for _, u := range users {
		rsp = append(rsp, newPublicUserResponse(u))
	}
	ctx.JSON(http.StatusOK, rsp)
}
