package game

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() Repository
	cleanup func()
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.testNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s.repo = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RepositoryTestSuite) testGame() *models.Game {
	return &models.Game{
		ID:     "test-game-id",
		Status: models.GameStatusActive,
		Rules:  models.DefaultRules(),
		Players: []*models.Player{
			{ID: "player-1", Name: "Player 1", Seat: 0, Score: 1200, Entered: true, TurnsPlayed: 2},
			{ID: "player-2", Name: "Player 2", Seat: 1},
		},
		ActiveIndex: 1,
		TurnCount:   3,
		CreatedAt:   s.testNow,
		UpdatedAt:   s.testNow,
	}
}

func (s *RepositoryTestSuite) TestSaveAndGetGame() {
	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.testGame()})
	s.Require().NoError(err)

	got, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal("test-game-id", got.ID)
	s.Equal(models.GameStatusActive, got.Status)
	s.Equal(models.DefaultRules(), got.Rules)
	s.Require().Len(got.Players, 2)
	s.Equal(1200, got.Players[0].Score)
	s.True(got.Players[0].Entered)
	s.Equal(2, got.Players[0].TurnsPlayed)
	s.Equal(1, got.ActiveIndex)
	s.Equal(3, got.TurnCount)
	s.Equal(s.testNow.Unix(), got.CreatedAt.Unix())
}

func (s *RepositoryTestSuite) TestGetGameReturnsCopy() {
	game := s.testGame()
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))

	game.Players[0].Score = 9999

	got, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Equal(1200, got.Players[0].Score)
}

func (s *RepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.SaveGame(s.ctx, nil))
	s.Error(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: &models.Game{}}))
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{})
	s.Error(err)
	s.Error(s.repo.AppendTurn(s.ctx, &AppendTurnInput{Turn: &models.Turn{}}))
	_, err = s.repo.GetTurns(s.ctx, nil)
	s.Error(err)
}

func (s *RepositoryTestSuite) TestAppendAndGetTurns() {
	first := &models.Turn{
		GameID:       "test-game-id",
		PlayerID:     "player-1",
		Sequence:     1,
		State:        models.TurnStateBanked,
		RunningScore: 1050,
		Rolls: []*models.Roll{
			{Dice: []int{1, 1, 1, 5, 2, 3}, Score: 1050, Consumed: []int{1, 1, 1, 5}},
		},
		TotalAfter: 1050,
		EndedAt:    s.testNow,
	}
	second := &models.Turn{
		GameID:    "test-game-id",
		PlayerID:  "player-2",
		Sequence:  2,
		State:     models.TurnStateFarkled,
		Forfeited: 300,
		Rolls: []*models.Roll{
			{Dice: []int{2, 3, 4, 6, 2, 3}, Farkle: true},
		},
	}

	s.Require().NoError(s.repo.AppendTurn(s.ctx, &AppendTurnInput{Turn: first}))
	s.Require().NoError(s.repo.AppendTurn(s.ctx, &AppendTurnInput{Turn: second}))

	out, err := s.repo.GetTurns(s.ctx, &GetTurnsInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().Len(out.Turns, 2)

	s.Equal("player-1", out.Turns[0].PlayerID)
	s.Equal(1050, out.Turns[0].Points())
	s.Equal([]int{1, 1, 1, 5}, out.Turns[0].Rolls[0].Consumed)
	s.Equal(models.TurnStateFarkled, out.Turns[1].State)
	s.Equal(300, out.Turns[1].Forfeited)
	s.True(out.Turns[1].LastRoll().Farkle)
}

func (s *RepositoryTestSuite) TestGetTurnsEmpty() {
	out, err := s.repo.GetTurns(s.ctx, &GetTurnsInput{GameID: "no-turns"})
	s.Require().NoError(err)
	s.Empty(out.Turns)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() Repository { return NewMemory() },
	})
}

func TestRedisRepositoryContractTestSuite(t *testing.T) {
	var (
		mr     *miniredis.Miniredis
		client *redis.Client
	)
	s := &RepositoryTestSuite{}
	s.newRepo = func() Repository {
		var err error
		mr, err = miniredis.Run()
		if err != nil {
			t.Fatalf("failed to start miniredis: %v", err)
		}
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		repo, err := NewRedis(&Config{RedisClient: client})
		if err != nil {
			t.Fatalf("failed to create repository: %v", err)
		}
		return repo
	}
	s.cleanup = func() {
		client.Close()
		mr.Close()
	}
	suite.Run(t, s)
}

// RedisRepositoryTestSuite covers behaviour specific to the Redis backend
type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestEveryKeyExpires() {
	game := &models.Game{ID: "game-1", Status: models.GameStatusActive}
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))
	s.Require().NoError(s.repo.AppendTurn(s.ctx, &AppendTurnInput{Turn: &models.Turn{GameID: "game-1", Sequence: 1}}))

	game.Status = models.GameStatusCompleted
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))

	keys := s.mr.Keys()
	s.ElementsMatch([]string{gameKey("game-1"), turnsKey("game-1")}, keys)
	for _, key := range keys {
		s.Equal(time.Hour, s.mr.TTL(key), key)
	}

	s.mr.FastForward(2 * time.Hour)
	s.Empty(s.mr.Keys())
}

func (s *RedisRepositoryTestSuite) TestKeysExpire() {
	game := &models.Game{ID: "game-1", Status: models.GameStatusActive}
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))
	s.Require().NoError(s.repo.AppendTurn(s.ctx, &AppendTurnInput{Turn: &models.Turn{GameID: "game-1", Sequence: 1}}))

	s.Equal(time.Hour, s.mr.TTL(gameKey("game-1")))
	s.Equal(time.Hour, s.mr.TTL(turnsKey("game-1")))

	s.mr.FastForward(2 * time.Hour)

	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.ErrorIs(err, ErrGameNotFound)
}
