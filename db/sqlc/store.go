// db/store.go

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pranav244872/skillswap/skillz"
)

////////////////////////////////////////////////////////////////////////
// Store Definition
////////////////////////////////////////////////////////////////////////

// Store provides all functions to execute db queries and transactions.
type Store interface {
	Querier
	CreateMatchTx(ctx context.Context, arg CreateMatchTxParams) (CreateMatchTxResult, error)
	RespondToMatchTx(ctx context.Context, arg RespondToMatchTxParams) (Match, error)
	StartExchangeTx(ctx context.Context, arg StartExchangeTxParams) (Exchange, error)
	UpdateExchangeStatusTx(ctx context.Context, arg UpdateExchangeStatusTxParams) (Exchange, error)
	CompleteExchangeTx(ctx context.Context, arg CompleteExchangeTxParams) (CompleteExchangeTxResult, error)
	AddXPTx(ctx context.Context, arg AddXPTxParams) (XPAward, error)
	AddRatingTx(ctx context.Context, arg AddRatingTxParams) (AddRatingTxResult, error)
}

// SQLStore is the Postgres-backed Store.
type SQLStore struct {
	*Queries
	dbpool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(dbpool *pgxpool.Pool) Store {
	return &SQLStore{
		dbpool:  dbpool,
		Queries: New(dbpool),
	}
}

// execTx executes a function within a database transaction.
func (s *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction has been committed.

	q := New(tx)
	err = fn(q)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Error definitions shared by the transactions below.
var (
	ErrSelfMatch               = errors.New("cannot request a match with yourself")
	ErrDuplicateMatch          = errors.New("a pending match request to this user already exists")
	ErrPostOwnerMismatch       = errors.New("the skill post does not belong to the requested user")
	ErrPostClosed              = errors.New("the skill post is closed")
	ErrNotMatchRecipient       = errors.New("only the requested user can respond to a match")
	ErrMatchNotPending         = errors.New("match is not pending")
	ErrMatchNotAccepted        = errors.New("match has not been accepted")
	ErrSelfExchange            = errors.New("cannot start an exchange with yourself")
	ErrExchangeNotFound        = errors.New("exchange not found")
	ErrNotExchangeParticipant  = errors.New("user is not a participant of this exchange")
	ErrExchangeNotCompletable  = errors.New("only pending or active exchanges can be completed")
	ErrInvalidStatusTransition = errors.New("invalid exchange status transition")
	ErrInvalidRating           = errors.New("rating must be between 1 and 5 stars")
	ErrSelfRating              = errors.New("users cannot rate themselves")
	ErrRatedUserNotFound       = errors.New("user to be rated does not exist")
	ErrInvalidXPAmount         = errors.New("xp amount must be positive")
)

// XPPerLevel is how much XP separates two levels.
const XPPerLevel = 1000

// LevelForXP maps total XP to a level: 0..999 is level 1, 1000..1999 level 2, ...
func LevelForXP(xp int64) int32 {
	if xp < 0 {
		xp = 0
	}
	return int32(xp/XPPerLevel) + 1
}

////////////////////////////////////////////////////////////////////////
// Transaction: CreateMatchTx
////////////////////////////////////////////////////////////////////////

// CreateMatchTxParams identifies who asks whom, optionally through a post.
type CreateMatchTxParams struct {
	RequesterID int64
	PartnerID   int64
	PostID      pgtype.Int8 // when set, the partner's side comes from this post
}

// CreateMatchTxResult contains the stored match and the live evaluation behind it.
type CreateMatchTxResult struct {
	Match  Match
	Result skillz.MatchResult
}

// CreateMatchTx records a match request. The skills each side would teach
// are computed here from the requester's profile and the partner's post
// (or profile), so clients cannot submit their own.
func (s *SQLStore) CreateMatchTx(ctx context.Context, arg CreateMatchTxParams) (CreateMatchTxResult, error) {
	var result CreateMatchTxResult

	if arg.RequesterID == arg.PartnerID {
		return result, ErrSelfMatch
	}

	err := s.execTx(ctx, func(q *Queries) error {
		// Step 1: Load both sides.
		requester, err := q.GetUser(ctx, arg.RequesterID)
		if err != nil {
			return fmt.Errorf("failed to get requester: %w", err)
		}
		partner, err := q.GetUser(ctx, arg.PartnerID)
		if err != nil {
			return fmt.Errorf("failed to get partner: %w", err)
		}

		them := skillz.Profile{Teaches: partner.SkillsToTeach, Wants: partner.SkillsToLearn}

		// Step 2: A post, when given, is what the partner is offering right now.
		if arg.PostID.Valid {
			post, err := q.GetSkillPost(ctx, arg.PostID.Int64)
			if err != nil {
				return fmt.Errorf("failed to get skill post: %w", err)
			}
			if post.UserID != partner.ID {
				return ErrPostOwnerMismatch
			}
			if post.Status != PostStatusOpen {
				return ErrPostClosed
			}
			them = skillz.Profile{Teaches: post.Offering, Wants: post.Requesting}
		}

		// Step 3: One pending request per direction.
		_, err = q.GetPendingMatchBetween(ctx, GetPendingMatchBetweenParams{
			UserAID: requester.ID,
			UserBID: partner.ID,
		})
		if err == nil {
			return ErrDuplicateMatch
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check for existing match: %w", err)
		}

		// Step 4: Evaluate and store.
		me := skillz.Profile{Teaches: requester.SkillsToTeach, Wants: requester.SkillsToLearn}
		result.Result = skillz.Evaluate(me, them)

		result.Match, err = q.CreateMatch(ctx, CreateMatchParams{
			UserAID:   requester.ID,
			UserBID:   partner.ID,
			ATeachesB: result.Result.ATeachesB,
			BTeachesA: result.Result.BTeachesA,
			PostID:    arg.PostID,
			Score:     int32(result.Result.Score),
			IsMutual:  result.Result.Mutual,
		})
		if isUniqueViolation(err) {
			// A concurrent request for the same pair got there first.
			return ErrDuplicateMatch
		}
		if err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}
		return nil
	})

	return result, err
}

////////////////////////////////////////////////////////////////////////
// Transaction: RespondToMatchTx
////////////////////////////////////////////////////////////////////////

// RespondToMatchTxParams carries the recipient's answer to a match request.
type RespondToMatchTxParams struct {
	MatchID  int64
	CallerID int64
	Status   MatchStatus // accepted or declined
}

// RespondToMatchTx lets the requested user accept or decline a pending match.
func (s *SQLStore) RespondToMatchTx(ctx context.Context, arg RespondToMatchTxParams) (Match, error) {
	var result Match

	err := s.execTx(ctx, func(q *Queries) error {
		match, err := q.GetMatchForUpdate(ctx, arg.MatchID)
		if err != nil {
			return fmt.Errorf("failed to get match: %w", err)
		}
		if match.UserBID != arg.CallerID {
			return ErrNotMatchRecipient
		}
		if match.Status != MatchStatusPending {
			return ErrMatchNotPending
		}
		if arg.Status != MatchStatusAccepted && arg.Status != MatchStatusDeclined {
			return fmt.Errorf("%w: cannot move a match to %q", ErrInvalidStatusTransition, arg.Status)
		}

		result, err = q.UpdateMatchStatus(ctx, UpdateMatchStatusParams{ID: match.ID, Status: arg.Status})
		if err != nil {
			return fmt.Errorf("failed to update match status: %w", err)
		}
		return nil
	})

	return result, err
}

////////////////////////////////////////////////////////////////////////
// Transaction: StartExchangeTx
////////////////////////////////////////////////////////////////////////

// StartExchangeTxParams contains the parameters for opening an exchange.
type StartExchangeTxParams struct {
	CallerID  int64
	PartnerID int64
	MatchID   pgtype.Int8 // optional; must be an accepted match between both users
}

// StartExchangeTx opens a pending exchange between the caller and a partner.
func (s *SQLStore) StartExchangeTx(ctx context.Context, arg StartExchangeTxParams) (Exchange, error) {
	var result Exchange

	if arg.CallerID == arg.PartnerID {
		return result, ErrSelfExchange
	}

	err := s.execTx(ctx, func(q *Queries) error {
		if _, err := q.GetUser(ctx, arg.PartnerID); err != nil {
			return fmt.Errorf("failed to get partner: %w", err)
		}

		if arg.MatchID.Valid {
			match, err := q.GetMatch(ctx, arg.MatchID.Int64)
			if err != nil {
				return fmt.Errorf("failed to get match: %w", err)
			}
			pair := (match.UserAID == arg.CallerID && match.UserBID == arg.PartnerID) ||
				(match.UserAID == arg.PartnerID && match.UserBID == arg.CallerID)
			if !pair {
				return ErrNotExchangeParticipant
			}
			if match.Status != MatchStatusAccepted {
				return ErrMatchNotAccepted
			}
		}

		var err error
		result, err = q.CreateExchange(ctx, CreateExchangeParams{
			User1ID: arg.CallerID,
			User2ID: arg.PartnerID,
			MatchID: arg.MatchID,
			Status:  ExchangeStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create exchange: %w", err)
		}
		return nil
	})

	return result, err
}

////////////////////////////////////////////////////////////////////////
// Transaction: UpdateExchangeStatusTx
////////////////////////////////////////////////////////////////////////

// UpdateExchangeStatusTxParams contains the parameters for a status change.
type UpdateExchangeStatusTxParams struct {
	ExchangeID int64
	CallerID   int64
	Status     ExchangeStatus
}

// exchangeTransitions lists the moves allowed outside of completion.
// Completion only happens through CompleteExchangeTx so XP is always awarded.
var exchangeTransitions = map[ExchangeStatus][]ExchangeStatus{
	ExchangeStatusPending: {ExchangeStatusActive, ExchangeStatusCancelled},
	ExchangeStatusActive:  {ExchangeStatusCancelled},
}

// CanTransitionExchange reports whether an exchange may move from one status to another.
func CanTransitionExchange(from, to ExchangeStatus) bool {
	for _, allowed := range exchangeTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// UpdateExchangeStatusTx moves an exchange along its lifecycle.
func (s *SQLStore) UpdateExchangeStatusTx(ctx context.Context, arg UpdateExchangeStatusTxParams) (Exchange, error) {
	var result Exchange

	err := s.execTx(ctx, func(q *Queries) error {
		exchange, err := getExchangeForParticipant(ctx, q, arg.ExchangeID, arg.CallerID)
		if err != nil {
			return err
		}

		if !CanTransitionExchange(exchange.Status, arg.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, exchange.Status, arg.Status)
		}

		result, err = q.UpdateExchangeStatus(ctx, UpdateExchangeStatusParams{
			ID:     exchange.ID,
			Status: arg.Status,
		})
		if err != nil {
			return fmt.Errorf("failed to update exchange status: %w", err)
		}
		return nil
	})

	return result, err
}

////////////////////////////////////////////////////////////////////////
// Transaction: CompleteExchangeTx
////////////////////////////////////////////////////////////////////////

// CompleteExchangeTxParams contains the parameters for completing an exchange.
type CompleteExchangeTxParams struct {
	ExchangeID int64
	CallerID   int64
	XPReward   int64 // awarded to each participant
}

// CompleteExchangeTxResult contains the completed exchange and both XP awards.
type CompleteExchangeTxResult struct {
	Exchange   Exchange
	User1Award XPAward
	User2Award XPAward
	XPAwarded  int64
}

// CompleteExchangeTx marks an exchange completed and awards XP to both users.
func (s *SQLStore) CompleteExchangeTx(ctx context.Context, arg CompleteExchangeTxParams) (CompleteExchangeTxResult, error) {
	var result CompleteExchangeTxResult

	if arg.XPReward <= 0 {
		return result, ErrInvalidXPAmount
	}

	err := s.execTx(ctx, func(q *Queries) error {
		// Step 1: Lock the exchange and validate it.
		exchange, err := getExchangeForParticipant(ctx, q, arg.ExchangeID, arg.CallerID)
		if err != nil {
			return err
		}
		if exchange.Status != ExchangeStatusPending && exchange.Status != ExchangeStatusActive {
			return ErrExchangeNotCompletable
		}

		// Step 2: Mark completed.
		result.Exchange, err = q.CompleteExchange(ctx, exchange.ID)
		if err != nil {
			return fmt.Errorf("failed to complete exchange: %w", err)
		}

		// Step 3: Award XP. Rows are always locked lowest id first so two
		// concurrent completions touching the same users cannot deadlock.
		reason := fmt.Sprintf("Completed exchange %d", exchange.ID)
		first, second := exchange.User1ID, exchange.User2ID
		if second < first {
			first, second = second, first
		}

		firstAward, err := addXP(ctx, q, first, arg.XPReward, reason)
		if err != nil {
			return err
		}
		secondAward, err := addXP(ctx, q, second, arg.XPReward, reason)
		if err != nil {
			return err
		}

		if first == exchange.User1ID {
			result.User1Award, result.User2Award = firstAward, secondAward
		} else {
			result.User1Award, result.User2Award = secondAward, firstAward
		}
		result.XPAwarded = arg.XPReward
		return nil
	})

	return result, err
}

// getExchangeForParticipant locks an exchange and checks the caller takes part in it.
func getExchangeForParticipant(ctx context.Context, q *Queries, exchangeID, callerID int64) (Exchange, error) {
	exchange, err := q.GetExchangeForUpdate(ctx, exchangeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exchange, fmt.Errorf("%w: id %d", ErrExchangeNotFound, exchangeID)
		}
		return exchange, fmt.Errorf("failed to get exchange: %w", err)
	}
	if exchange.User1ID != callerID && exchange.User2ID != callerID {
		return exchange, ErrNotExchangeParticipant
	}
	return exchange, nil
}

////////////////////////////////////////////////////////////////////////
// Transaction: AddXPTx
////////////////////////////////////////////////////////////////////////

// AddXPTxParams contains the parameters for awarding XP.
type AddXPTxParams struct {
	UserID int64
	Amount int64
	Reason string
}

// XPAward describes one XP grant and its effect on the user's level.
type XPAward struct {
	User          User
	Log           XpLog
	PreviousLevel int32
	LeveledUp     bool
}

// AddXPTx awards XP to a single user, recomputes their level and logs it.
func (s *SQLStore) AddXPTx(ctx context.Context, arg AddXPTxParams) (XPAward, error) {
	var result XPAward

	if arg.Amount <= 0 {
		return result, ErrInvalidXPAmount
	}

	err := s.execTx(ctx, func(q *Queries) error {
		var err error
		result, err = addXP(ctx, q, arg.UserID, arg.Amount, arg.Reason)
		return err
	})

	return result, err
}

func addXP(ctx context.Context, q *Queries, userID, amount int64, reason string) (XPAward, error) {
	var award XPAward

	user, err := q.GetUserForUpdate(ctx, userID)
	if err != nil {
		return award, fmt.Errorf("failed to get user %d for xp: %w", userID, err)
	}

	newXP := user.Xp + amount
	newLevel := LevelForXP(newXP)

	award.User, err = q.UpdateUserXP(ctx, UpdateUserXPParams{
		ID:    userID,
		Xp:    newXP,
		Level: newLevel,
	})
	if err != nil {
		return award, fmt.Errorf("failed to update xp for user %d: %w", userID, err)
	}

	award.Log, err = q.CreateXPLog(ctx, CreateXPLogParams{
		UserID: userID,
		Amount: amount,
		Reason: reason,
	})
	if err != nil {
		return award, fmt.Errorf("failed to log xp for user %d: %w", userID, err)
	}

	award.PreviousLevel = user.Level
	award.LeveledUp = newLevel > user.Level
	return award, nil
}

////////////////////////////////////////////////////////////////////////
// Transaction: AddRatingTx
////////////////////////////////////////////////////////////////////////

// AddRatingTxParams contains the parameters for rating a user.
type AddRatingTxParams struct {
	RatedUserID int64
	RaterUserID int64
	Rating      int32
	ExchangeID  pgtype.Int8
	Comment     string
}

// AddRatingTxResult contains the stored rating and the rated user's new stats.
type AddRatingTxResult struct {
	Rating Rating
	User   User
}

// AddRatingTx stores a rating and recomputes the rated user's average.
func (s *SQLStore) AddRatingTx(ctx context.Context, arg AddRatingTxParams) (AddRatingTxResult, error) {
	var result AddRatingTxResult

	if arg.Rating < 1 || arg.Rating > 5 {
		return result, ErrInvalidRating
	}
	if arg.RatedUserID == arg.RaterUserID {
		return result, ErrSelfRating
	}

	err := s.execTx(ctx, func(q *Queries) error {
		// Step 1: The rated user must exist; lock the row for the stats update.
		_, err := q.GetUserForUpdate(ctx, arg.RatedUserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrRatedUserNotFound
			}
			return fmt.Errorf("failed to get rated user: %w", err)
		}

		// Step 2: A referenced exchange must be between these two users.
		if arg.ExchangeID.Valid {
			exchange, err := q.GetExchange(ctx, arg.ExchangeID.Int64)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("%w: id %d", ErrExchangeNotFound, arg.ExchangeID.Int64)
				}
				return fmt.Errorf("failed to get exchange: %w", err)
			}
			pair := (exchange.User1ID == arg.RatedUserID && exchange.User2ID == arg.RaterUserID) ||
				(exchange.User1ID == arg.RaterUserID && exchange.User2ID == arg.RatedUserID)
			if !pair {
				return ErrNotExchangeParticipant
			}
		}

		// Step 3: Store the rating.
		result.Rating, err = q.CreateRating(ctx, CreateRatingParams{
			RatedUserID: arg.RatedUserID,
			RaterUserID: arg.RaterUserID,
			Rating:      arg.Rating,
			ExchangeID:  arg.ExchangeID,
			Comment:     arg.Comment,
		})
		if err != nil {
			return fmt.Errorf("failed to create rating: %w", err)
		}

		// Step 4: Recompute the average over every rating received.
		stats, err := q.GetRatingStatsForUser(ctx, arg.RatedUserID)
		if err != nil {
			return fmt.Errorf("failed to compute rating stats: %w", err)
		}

		result.User, err = q.UpdateUserRatingStats(ctx, UpdateUserRatingStatsParams{
			ID:            arg.RatedUserID,
			AverageRating: stats.AverageRating,
			TotalRatings:  stats.TotalRatings,
		})
		if err != nil {
			return fmt.Errorf("failed to update rating stats: %w", err)
		}
		return nil
	})

	return result, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
