package contestants

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/kokoro-battle/internal/clock/mocks"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
	mockUUID "github.com/KirkDiggler/kokoro-battle/internal/uuid/mocks"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client        *redis.Client
	mock          redismock.ClientMock
	repo          Repository
	mockCtrl      *gomock.Controller
	timeProvider  *mocks.MockTimeProvider
	uuidGenerator *mockUUID.MockGenerator
	now           time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.uuidGenerator = mockUUID.NewMockGenerator(s.mockCtrl)
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        s.client,
		UUIDGenerator: s.uuidGenerator,
		TimeProvider:  s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) newContestant(id, owner string) *contestant.Contestant {
	return &contestant.Contestant{
		ID:      id,
		OwnerID: owner,
		Name:    "Sakura",
		Element: "Fire",
		Level:   3,
		Skills: []*contestant.Skill{
			{Name: "Blaze", Rarity: contestant.RarityRare, EffectText: "Increases damage by 25%", Effect: contestant.DamageBoost(0.25)},
		},
	}
}

func (s *RedisRepoTestSuite) encode(data *Data) string {
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	c := s.newContestant("", "owner-1")

	s.uuidGenerator.EXPECT().New().Return("c-1")
	s.timeProvider.EXPECT().Now().Return(s.now)

	expected := s.newContestant("c-1", "owner-1")
	s.mock.ExpectExists("contestant:c-1").SetVal(0)
	s.mock.ExpectSet("contestant:c-1", s.encode(&Data{Contestant: expected, CreatedAt: s.now, UpdatedAt: s.now}), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:contestants", "c-1").SetVal(1)

	err := s.repo.Create(ctx, c)
	s.Require().NoError(err)
	s.Equal("c-1", c.ID)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()

	s.mock.ExpectExists("contestant:c-1").SetVal(1)

	err := s.repo.Create(ctx, s.newContestant("c-1", "owner-1"))
	s.Require().Error(err)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_Invalid() {
	err := s.repo.Create(context.Background(), &contestant.Contestant{ID: "c-1"})
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))

	err = s.repo.Create(context.Background(), nil)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestCreate_RedisError() {
	s.mock.ExpectExists("contestant:c-1").SetErr(errors.New("connection refused"))

	err := s.repo.Create(context.Background(), s.newContestant("c-1", "owner-1"))
	s.Require().Error(err)
	s.Contains(err.Error(), "connection refused")
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	stored := s.newContestant("c-1", "owner-1")
	stored.Skills = append(stored.Skills, &contestant.Skill{Name: "Mend", Rarity: contestant.RarityCommon, EffectText: "Heal 150 HP"})

	s.mock.ExpectGet("contestant:c-1").SetVal(s.encode(&Data{Contestant: stored, CreatedAt: s.now, UpdatedAt: s.now}))

	got, err := s.repo.Get(ctx, "c-1")
	s.Require().NoError(err)
	s.Equal("Sakura", got.Name)
	s.Equal("owner-1", got.OwnerID)
	s.Require().Len(got.Skills, 2)
	s.Equal(contestant.DamageBoost(0.25), got.Skills[0].Effect)
	s.Equal(contestant.Heal(150), got.Skills[1].Effect)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("contestant:missing").RedisNil()

	got, err := s.repo.Get(context.Background(), "missing")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
	s.Nil(got)
}

func (s *RedisRepoTestSuite) TestGet_Corrupt() {
	s.mock.ExpectGet("contestant:c-1").SetVal("{not json")

	_, err := s.repo.Get(context.Background(), "c-1")
	s.Require().Error(err)
}

func (s *RedisRepoTestSuite) TestUpdate_MovesOwnerIndex() {
	ctx := context.Background()
	created := s.now.Add(-time.Hour)
	existing := s.newContestant("c-1", "owner-1")
	updated := s.newContestant("c-1", "owner-2")
	updated.Level = 4

	s.mock.ExpectGet("contestant:c-1").SetVal(s.encode(&Data{Contestant: existing, CreatedAt: created, UpdatedAt: created}))
	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectSet("contestant:c-1", s.encode(&Data{Contestant: updated, CreatedAt: created, UpdatedAt: s.now}), 0).SetVal("OK")
	s.mock.ExpectSRem("owner:owner-1:contestants", "c-1").SetVal(1)
	s.mock.ExpectSAdd("owner:owner-2:contestants", "c-1").SetVal(1)

	s.Require().NoError(s.repo.Update(ctx, updated))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	s.mock.ExpectGet("contestant:c-1").RedisNil()

	err := s.repo.Update(context.Background(), s.newContestant("c-1", "owner-1"))
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectGet("contestant:c-1").SetVal(s.encode(&Data{Contestant: s.newContestant("c-1", "owner-1"), CreatedAt: s.now, UpdatedAt: s.now}))
	s.mock.ExpectDel("contestant:c-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:contestants", "c-1").SetVal(1)

	s.Require().NoError(s.repo.Delete(ctx, "c-1"))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	ctx := context.Background()
	first := s.newContestant("c-1", "owner-1")
	second := s.newContestant("c-2", "owner-1")
	second.Name = "Mizu"

	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("owner:owner-1:contestants").SetVal([]string{"c-1", "c-2"})
	s.mock.ExpectGet("contestant:c-1").SetVal(s.encode(&Data{Contestant: first, CreatedAt: s.now, UpdatedAt: s.now}))
	s.mock.ExpectGet("contestant:c-2").SetVal(s.encode(&Data{Contestant: second, CreatedAt: s.now, UpdatedAt: s.now}))

	list, err := s.repo.ListByOwner(ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Sakura", list[0].Name)
	s.Equal("Mizu", list[1].Name)
}

func (s *RedisRepoTestSuite) TestListByOwner_Empty() {
	s.mock.ExpectSMembers("owner:nobody:contestants").SetVal([]string{})

	list, err := s.repo.ListByOwner(context.Background(), "nobody")
	s.Require().NoError(err)
	s.Empty(list)
}
