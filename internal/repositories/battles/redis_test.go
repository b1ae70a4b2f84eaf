package battles

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	repo   Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.client, Limit: 3})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func testRecord(id string) *combat.Record {
	return &combat.Record{
		ID:            id,
		ContestantIDs: [2]string{"c-1", "c-2"},
		Names:         [2]string{"Sakura", "Mizu"},
		Outcome:       combat.OutcomeSideA,
		Winner:        "Sakura",
		Rounds:        4,
		FinalHP:       [2]int{120, 0},
		FoughtAt:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RedisRepoTestSuite) encode(rec *combat.Record) string {
	raw, err := json.Marshal(rec)
	s.Require().NoError(err)
	return string(raw)
}

func (s *RedisRepoTestSuite) TestRecord() {
	rec := testRecord("b-1")
	data := s.encode(rec)

	s.mock.ExpectLPush("contestant:c-1:battles", data).SetVal(1)
	s.mock.ExpectLTrim("contestant:c-1:battles", 0, 2).SetVal("OK")
	s.mock.ExpectLPush("contestant:c-2:battles", data).SetVal(1)
	s.mock.ExpectLTrim("contestant:c-2:battles", 0, 2).SetVal("OK")

	s.Require().NoError(s.repo.Record(context.Background(), rec))
}

func (s *RedisRepoTestSuite) TestRecord_SelfMatchStoredOnce() {
	rec := testRecord("b-1")
	rec.ContestantIDs = [2]string{"c-1", "c-1"}
	data := s.encode(rec)

	s.mock.ExpectLPush("contestant:c-1:battles", data).SetVal(1)
	s.mock.ExpectLTrim("contestant:c-1:battles", 0, 2).SetVal("OK")

	s.Require().NoError(s.repo.Record(context.Background(), rec))
}

func (s *RedisRepoTestSuite) TestRecord_Invalid() {
	err := s.repo.Record(context.Background(), nil)
	s.True(apperr.IsInvalidArgument(err))

	err = s.repo.Record(context.Background(), &combat.Record{})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestRecord_RedisError() {
	rec := testRecord("b-1")
	data := s.encode(rec)

	s.mock.ExpectLPush("contestant:c-1:battles", data).SetErr(errors.New("boom"))

	err := s.repo.Record(context.Background(), rec)
	s.Require().Error(err)
}

func (s *RedisRepoTestSuite) TestListByContestant() {
	newer := testRecord("b-2")
	older := testRecord("b-1")

	s.mock.ExpectLRange("contestant:c-1:battles", 0, 2).SetVal([]string{s.encode(newer), "garbage", s.encode(older)})

	list, err := s.repo.ListByContestant(context.Background(), "c-1", 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("b-2", list[0].ID)
	s.Equal("b-1", list[1].ID)
	s.True(list[0].WonBy("c-1"))
}

func (s *RedisRepoTestSuite) TestListByContestant_Limit() {
	s.mock.ExpectLRange("contestant:c-1:battles", 0, 0).SetVal([]string{s.encode(testRecord("b-2"))})

	list, err := s.repo.ListByContestant(context.Background(), "c-1", 1)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RedisRepoTestSuite) TestListByContestant_RedisError() {
	s.mock.ExpectLRange("contestant:c-1:battles", 0, 2).SetErr(errors.New("boom"))

	_, err := s.repo.ListByContestant(context.Background(), "c-1", 5)
	s.Require().Error(err)
}
