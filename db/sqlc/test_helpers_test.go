package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pranav244872/skillswap/util"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////

// createRandomUser creates a user with a few random skills on each side.
// It returns both the User object and its plaintext password.
func createRandomUser(t *testing.T) (User, string) {
	return createUserWithSkills(t, util.RandomSkills(2), util.RandomSkills(2))
}

// createUserWithSkills creates a user with exactly the given skill lists.
func createUserWithSkills(t *testing.T, teaches, learns []string) (User, string) {
	password := util.RandomString(10)
	hashedPassword, err := util.HashPassword(password)
	require.NoError(t, err)

	arg := CreateUserParams{
		Name:          util.RandomName(),
		Email:         util.RandomEmail(),
		PasswordHash:  hashedPassword,
		Bio:           util.RandomDescription(),
		Location:      util.RandomName(),
		SkillsToTeach: teaches,
		SkillsToLearn: learns,
	}

	user, err := testQueries.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Name, user.Name)
	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, arg.SkillsToTeach, user.SkillsToTeach)
	require.Equal(t, arg.SkillsToLearn, user.SkillsToLearn)
	require.Equal(t, int64(0), user.Xp)
	require.Equal(t, int32(1), user.Level)
	require.Zero(t, user.TotalRatings)
	require.NotZero(t, user.ID)
	require.NotZero(t, user.CreatedAt)

	return user, password
}

////////////////////////////////////////////////////////////////////////

// createRandomSkillPost creates an open post owned by a fresh user.
func createRandomSkillPost(t *testing.T) SkillPost {
	owner, _ := createRandomUser(t)
	return createSkillPostFor(t, owner.ID, util.RandomSkills(2), util.RandomSkills(1))
}

func createSkillPostFor(t *testing.T, userID int64, offering, requesting []string) SkillPost {
	arg := CreateSkillPostParams{
		UserID:      userID,
		Offering:    offering,
		Requesting:  requesting,
		Description: util.RandomDescription(),
		Category:    util.RandomCategory(),
	}

	post, err := testQueries.CreateSkillPost(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, post)

	require.Equal(t, arg.UserID, post.UserID)
	require.Equal(t, arg.Offering, post.Offering)
	require.Equal(t, arg.Requesting, post.Requesting)
	require.Equal(t, arg.Category, post.Category)
	require.Equal(t, PostStatusOpen, post.Status)

	return post
}

////////////////////////////////////////////////////////////////////////

// createRandomMatch creates a pending match between two fresh users.
func createRandomMatch(t *testing.T) (Match, User, User) {
	userA, _ := createRandomUser(t)
	userB, _ := createRandomUser(t)

	arg := CreateMatchParams{
		UserAID:   userA.ID,
		UserBID:   userB.ID,
		ATeachesB: []string{},
		BTeachesA: []string{},
		PostID:    pgtype.Int8{Valid: false},
		Score:     0,
		IsMutual:  false,
	}

	match, err := testQueries.CreateMatch(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, match)
	require.Equal(t, MatchStatusPending, match.Status)
	require.Equal(t, userA.ID, match.UserAID)
	require.Equal(t, userB.ID, match.UserBID)

	return match, userA, userB
}

////////////////////////////////////////////////////////////////////////

// createRandomExchange creates an exchange in the given status between two fresh users.
func createRandomExchange(t *testing.T, status ExchangeStatus) (Exchange, User, User) {
	user1, _ := createRandomUser(t)
	user2, _ := createRandomUser(t)

	arg := CreateExchangeParams{
		User1ID: user1.ID,
		User2ID: user2.ID,
		MatchID: pgtype.Int8{Valid: false},
		Status:  status,
	}

	exchange, err := testQueries.CreateExchange(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, exchange)
	require.Equal(t, status, exchange.Status)
	require.False(t, exchange.CompletedAt.Valid)

	return exchange, user1, user2
}

////////////////////////////////////////////////////////////////////////
