package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/pranav244872/skillswap/skillz"
)

type postResponse struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	Offering    []string      `json:"offering"`
	Requesting  []string      `json:"requesting"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Status      db.PostStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

func newPostResponse(post db.SkillPost) postResponse {
	return postResponse{
		ID:          post.ID,
		UserID:      post.UserID,
		Offering:    post.Offering,
		Requesting:  post.Requesting,
		Description: post.Description,
		Category:    post.Category,
		Status:      post.Status,
		CreatedAt:   post.CreatedAt.Time,
	}
}

////////////////////////////////////////////////////////////////////////
// POST /posts
////////////////////////////////////////////////////////////////////////

type createPostRequest struct {
	Offering    []string `json:"offering" binding:"required,min=1"`
	Requesting  []string `json:"requesting" binding:"required,min=1"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
}

func (server *Server) createPost(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req createPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	offering := skillz.NormalizeSkills(req.Offering)
	requesting := skillz.NormalizeSkills(req.Requesting)
	if offering.Len() == 0 || requesting.Len() == 0 {
		err := errors.New("offering and requesting need at least one non-blank skill")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	post, err := server.store.CreateSkillPost(ctx, db.CreateSkillPostParams{
		UserID:      userID,
		Offering:    offering.Values(),
		Requesting:  requesting.Values(),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newPostResponse(post))
}

////////////////////////////////////////////////////////////////////////
// GET /posts?category=&skill=
////////////////////////////////////////////////////////////////////////

type listPostsRequest struct {
	Category string `form:"category"`
	Skill    string `form:"skill"`
}

// listPosts returns open posts, newest first.
func (server *Server) listPosts(ctx *gin.Context) {
	var req listPostsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListSkillPostsParams{RowLimit: server.config.ExploreLimit}
	if category := strings.TrimSpace(req.Category); category != "" {
		arg.Category = pgtype.Text{String: category, Valid: true}
	}
	if skill := skillz.NormalizeTag(req.Skill); skill != "" {
		arg.Skill = pgtype.Text{String: skill, Valid: true}
	}

	posts, err := server.store.ListSkillPosts(ctx, arg)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	rsp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		rsp = append(rsp, newPostResponse(p))
	}
	ctx.JSON(http.StatusOK, rsp)
}

////////////////////////////////////////////////////////////////////////
// GET /posts/explore?q=&category=&mutual_only=
////////////////////////////////////////////////////////////////////////

type explorePostsRequest struct {
	Query      string `form:"q"`
	Category   string `form:"category"`
	MutualOnly bool   `form:"mutual_only"`
}

type postAuthor struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Level         int32   `json:"level"`
	AverageRating float64 `json:"average_rating"`
}

type explorePostResponse struct {
	Post   postResponse       `json:"post"`
	Author postAuthor         `json:"author"`
	Match  skillz.MatchResult `json:"match"`
}

// explorePosts scores other users' open posts against the caller's
// profile and returns them best match first.
func (server *Server) explorePosts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req explorePostsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 1: The caller's profile is the reference for scoring.
	me, err := server.store.GetUser(ctx, userID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	// Step 2: Candidate posts, excluding the caller's own.
	posts, err := server.store.ListSkillPosts(ctx, db.ListSkillPostsParams{
		ExcludeUserID: pgtype.Int8{Int64: userID, Valid: true},
		RowLimit:      server.config.ExploreLimit,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	posts = filterPosts(posts, req.Query, req.Category)
	log.Printf("DEBUG: explore for user %d: %d candidate posts", userID, len(posts))

	// Step 3: Rank.
	profile := skillz.Profile{Teaches: me.SkillsToTeach, Wants: me.SkillsToLearn}
	ranked := skillz.Rank(profile, posts, func(p db.SkillPost) skillz.Profile {
		return skillz.Profile{Teaches: p.Offering, Wants: p.Requesting}
	}, req.MutualOnly)

	// Step 4: Attach authors in one query.
	authorIDs := make([]int64, 0, len(ranked))
	for _, r := range ranked {
		authorIDs = append(authorIDs, r.Item.UserID)
	}
	authors := make(map[int64]db.User, len(authorIDs))
	if len(authorIDs) > 0 {
		users, err := server.store.ListUsersByIDs(ctx, authorIDs)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		for _, u := range users {
			authors[u.ID] = u
		}
	}

	rsp := make([]explorePostResponse, 0, len(ranked))
	for _, r := range ranked {
		author := authors[r.Item.UserID]
		rsp = append(rsp, explorePostResponse{
			Post: newPostResponse(r.Item),
			Author: postAuthor{
				ID:            r.Item.UserID,
				Name:          author.Name,
				Level:         author.Level,
				AverageRating: author.AverageRating,
			},
			Match: r.Match,
		})
	}
	ctx.JSON(http.StatusOK, rsp)
}

// filterPosts keeps posts whose skills or description contain query and
// whose category contains category. Both are folded with
// skillz.NormalizeTag so they compare against stored tags, and skipped
// when blank.
func filterPosts(posts []db.SkillPost, query, category string) []db.SkillPost {
	query = skillz.NormalizeTag(query)
	category = skillz.NormalizeTag(category)
	if query == "" && category == "" {
		return posts
	}

	out := make([]db.SkillPost, 0, len(posts))
	for _, p := range posts {
		if category != "" && !strings.Contains(skillz.NormalizeTag(p.Category), category) {
			continue
		}
		if query != "" && !postMentions(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func postMentions(p db.SkillPost, query string) bool {
	if strings.Contains(skillz.NormalizeTag(p.Description), query) {
		return true
	}
	for _, list := range [][]string{p.Offering, p.Requesting} {
		for _, skill := range list {
			if strings.Contains(skill, query) {
				return true
			}
		}
	}
	return false
}

////////////////////////////////////////////////////////////////////////
// PATCH /posts/:id
////////////////////////////////////////////////////////////////////////

type updatePostStatusRequest struct {
	Status db.PostStatus `json:"status" binding:"required,oneof=open closed"`
}

// updatePostStatus lets the author close a post (or reopen it). Closed
// posts drop out of explore and cannot back a new match request.
func (server *Server) updatePostStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var uri userIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updatePostStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 1: Only the author may change a post.
	post, err := server.store.GetSkillPost(ctx, uri.ID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	if post.UserID != userID {
		err := errors.New("only the author can change this post")
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	// Step 2: Update.
	post, err = server.store.UpdateSkillPostStatus(ctx, db.UpdateSkillPostStatusParams{
		ID:     post.ID,
		Status: req.Status,
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPostResponse(post))
}

////////////////////////////////////////////////////////////////////////
// POST /posts/suggest-skills
////////////////////////////////////////////////////////////////////////

type suggestSkillsRequest struct {
	Text string `json:"text" binding:"required"`
}

type suggestSkillsResponse struct {
	Skills []string `json:"skills"`
}

// suggestSkills extracts skill tags from free text, e.g. a post description.
func (server *Server) suggestSkills(ctx *gin.Context) {
	var req suggestSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	skills, err := server.processor.SuggestSkills(ctx, req.Text)
	if err != nil {
		log.Printf("ERROR: skill suggestion failed: %v", err)
		ctx.JSON(http.StatusBadGateway, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, suggestSkillsResponse{Skills: skills})
}
