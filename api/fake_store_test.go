package api

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/pranav244872/skillswap/db/sqlc"
)

// fakeStore keeps users and posts in memory. Transactions are delegated to
// the optional func fields so each test can script their outcome. Methods
// a test does not need fall through to the nil embedded Store and panic.
type fakeStore struct {
	db.Store

	mu     sync.Mutex
	nextID int64
	users  map[int64]db.User
	posts  []db.SkillPost

	exchangeCounts db.CountExchangesForUserRow

	createMatchTx          func(db.CreateMatchTxParams) (db.CreateMatchTxResult, error)
	respondToMatchTx       func(db.RespondToMatchTxParams) (db.Match, error)
	startExchangeTx        func(db.StartExchangeTxParams) (db.Exchange, error)
	updateExchangeStatusTx func(db.UpdateExchangeStatusTxParams) (db.Exchange, error)
	completeExchangeTx     func(db.CompleteExchangeTxParams) (db.CompleteExchangeTxResult, error)
	addRatingTx            func(db.AddRatingTxParams) (db.AddRatingTxResult, error)
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[int64]db.User)}
}

func now() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now(), Valid: true}
}

func (s *fakeStore) addUser(name string, teaches, learns []string) db.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	user := db.User{
		ID:            s.nextID,
		Name:          name,
		Email:         name + "@example.com",
		SkillsToTeach: teaches,
		SkillsToLearn: learns,
		Level:         1,
		CreatedAt:     now(),
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeStore) addPost(userID int64, offering, requesting []string, category, description string) db.SkillPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	post := db.SkillPost{
		ID:          s.nextID,
		UserID:      userID,
		Offering:    offering,
		Requesting:  requesting,
		Category:    category,
		Description: description,
		Status:      db.PostStatusOpen,
		CreatedAt:   now(),
	}
	// Newest first, like the real query.
	s.posts = append([]db.SkillPost{post}, s.posts...)
	return post
}

////////////////////////////////////////////////////////////////////////
// Users
////////////////////////////////////////////////////////////////////////

func (s *fakeStore) CreateUser(_ context.Context, arg db.CreateUserParams) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == arg.Email {
			return db.User{}, &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		}
	}
	s.nextID++
	user := db.User{
		ID:            s.nextID,
		Name:          arg.Name,
		Email:         arg.Email,
		PasswordHash:  arg.PasswordHash,
		Bio:           arg.Bio,
		Location:      arg.Location,
		SkillsToTeach: arg.SkillsToTeach,
		SkillsToLearn: arg.SkillsToLearn,
		Level:         1,
		CreatedAt:     now(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeStore) GetUser(_ context.Context, id int64) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return db.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (s *fakeStore) GetUserByEmail(_ context.Context, email string) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return db.User{}, pgx.ErrNoRows
}

func (s *fakeStore) ListUsersByIDs(_ context.Context, ids []int64) ([]db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []db.User{}
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeStore) ListUsersBySkill(_ context.Context, arg db.ListUsersBySkillParams) ([]db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []db.User{}
	for id := int64(1); id <= s.nextID; id++ {
		if u, ok := s.users[id]; ok && slices.Contains(u.SkillsToTeach, arg.Skill) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeStore) UpdateUserProfile(_ context.Context, arg db.UpdateUserProfileParams) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[arg.ID]
	if !ok {
		return db.User{}, pgx.ErrNoRows
	}
	if arg.Name.Valid {
		user.Name = arg.Name.String
	}
	if arg.Bio.Valid {
		user.Bio = arg.Bio.String
	}
	if arg.Location.Valid {
		user.Location = arg.Location.String
	}
	if arg.SkillsToTeach != nil {
		user.SkillsToTeach = arg.SkillsToTeach
	}
	if arg.SkillsToLearn != nil {
		user.SkillsToLearn = arg.SkillsToLearn
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeStore) CountExchangesForUser(_ context.Context, _ int64) (db.CountExchangesForUserRow, error) {
	return s.exchangeCounts, nil
}

////////////////////////////////////////////////////////////////////////
// Posts
////////////////////////////////////////////////////////////////////////

func (s *fakeStore) CreateSkillPost(_ context.Context, arg db.CreateSkillPostParams) (db.SkillPost, error) {
	return s.addPost(arg.UserID, arg.Offering, arg.Requesting, arg.Category, arg.Description), nil
}

func (s *fakeStore) GetSkillPost(_ context.Context, id int64) (db.SkillPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return db.SkillPost{}, pgx.ErrNoRows
}

func (s *fakeStore) UpdateSkillPostStatus(_ context.Context, arg db.UpdateSkillPostStatusParams) (db.SkillPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == arg.ID {
			s.posts[i].Status = arg.Status
			return s.posts[i], nil
		}
	}
	return db.SkillPost{}, pgx.ErrNoRows
}

func (s *fakeStore) ListSkillPosts(_ context.Context, arg db.ListSkillPostsParams) ([]db.SkillPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []db.SkillPost{}
	for _, p := range s.posts {
		if p.Status != db.PostStatusOpen {
			continue
		}
		if arg.ExcludeUserID.Valid && p.UserID == arg.ExcludeUserID.Int64 {
			continue
		}
		if arg.Category.Valid && !strings.EqualFold(p.Category, arg.Category.String) {
			continue
		}
		if arg.Skill.Valid && !slices.Contains(p.Offering, arg.Skill.String) {
			continue
		}
		out = append(out, p)
		if int32(len(out)) == arg.RowLimit {
			break
		}
	}
	return out, nil
}

////////////////////////////////////////////////////////////////////////
// Transactions
////////////////////////////////////////////////////////////////////////

func (s *fakeStore) CreateMatchTx(_ context.Context, arg db.CreateMatchTxParams) (db.CreateMatchTxResult, error) {
	return s.createMatchTx(arg)
}

func (s *fakeStore) RespondToMatchTx(_ context.Context, arg db.RespondToMatchTxParams) (db.Match, error) {
	return s.respondToMatchTx(arg)
}

func (s *fakeStore) StartExchangeTx(_ context.Context, arg db.StartExchangeTxParams) (db.Exchange, error) {
	return s.startExchangeTx(arg)
}

func (s *fakeStore) UpdateExchangeStatusTx(_ context.Context, arg db.UpdateExchangeStatusTxParams) (db.Exchange, error) {
	return s.updateExchangeStatusTx(arg)
}

func (s *fakeStore) CompleteExchangeTx(_ context.Context, arg db.CompleteExchangeTxParams) (db.CompleteExchangeTxResult, error) {
	return s.completeExchangeTx(arg)
}

func (s *fakeStore) AddRatingTx(_ context.Context, arg db.AddRatingTxParams) (db.AddRatingTxResult, error) {
	return s.addRatingTx(arg)
}

////////////////////////////////////////////////////////////////////////
// Processor
////////////////////////////////////////////////////////////////////////

type fakeProcessor struct {
	skills []string
	err    error
	got    string
}

func (p *fakeProcessor) SuggestSkills(_ context.Context, text string) ([]string, error) {
	p.got = text
	return p.skills, p.err
}
