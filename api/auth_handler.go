package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	db "github.com/pranav244872/skillswap/db/sqlc"
	"github.com/pranav244872/skillswap/skillz"
	"github.com/pranav244872/skillswap/util"
)

var errInvalidCredentials = errors.New("invalid email or password")

////////////////////////////////////////////////////////////////////////
// Register Endpoint (Public): /auth/register
////////////////////////////////////////////////////////////////////////

type registerUserRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	Bio           string   `json:"bio"`
	Location      string   `json:"location"`
	SkillsToTeach []string `json:"skills_to_teach"`
	SkillsToLearn []string `json:"skills_to_learn"`
}

// registerUser creates an account. Skill lists are stored normalized.
func (server *Server) registerUser(ctx *gin.Context) {
	var req registerUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	user, err := server.store.CreateUser(ctx, db.CreateUserParams{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		Bio:           req.Bio,
		Location:      req.Location,
		SkillsToTeach: skillz.NormalizeSkills(req.SkillsToTeach).Values(),
		SkillsToLearn: skillz.NormalizeSkills(req.SkillsToLearn).Values(),
	})
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

////////////////////////////////////////////////////////////////////////
// Login Endpoint (Public): /auth/login
////////////////////////////////////////////////////////////////////////

type loginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginUserResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// loginUser authenticates with email and password and returns a signed JWT.
func (server *Server) loginUser(ctx *gin.Context) {
	var req loginUserRequest

	// Step 1: Bind and validate the request body
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 2: Retrieve user by email. Unknown emails and wrong passwords
	// get the same answer.
	user, err := server.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusUnauthorized, errorResponse(errInvalidCredentials))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 3: Check the password
	if err := util.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errInvalidCredentials))
		return
	}

	// Step 4: Issue the token
	token, err := server.tokenMaker.CreateToken(user.ID, server.config.AccessTokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, loginUserResponse{
		Token: token,
		User:  newUserResponse(user),
	})
}
