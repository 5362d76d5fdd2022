package actoreffects

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
	"github.com/KirkDiggler/pf-bonus-bot/internal/uuid"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	now        time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        s.mockClient,
		UUIDGenerator: uuid.NewSequenceGenerator("effect"),
		Now:           func() time.Time { return s.now },
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) blessData(id string) string {
	data, err := json.Marshal(Data{
		ID:      id,
		ActorID: "actor-1",
		Name:    "Bless",
		Source:  "spell",
		Enabled: true,
		Changes: []ChangeData{
			{Formula: "1", Type: "morale", Target: "attack"},
		},
		CreatedAt: s.now,
	})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	effect := effects.BuildBless()

	s.mock.ExpectSet("effect:actor-1:effect-1", s.blessData("effect-1"), 0).SetVal("OK")
	s.mock.ExpectSAdd("actor:actor-1:effects", "effect-1").SetVal(1)

	err := s.repo.Save(ctx, "actor-1", effect)
	s.Require().NoError(err)
	s.Equal("effect-1", effect.ID)
	s.True(s.now.Equal(effect.CreatedAt))
}

func (s *RedisRepoTestSuite) TestSave_KeepsExistingID() {
	ctx := context.Background()
	effect := effects.BuildBless()
	effect.ID = "bless"

	s.mock.ExpectSet("effect:actor-1:bless", s.blessData("bless"), 0).SetVal("OK")
	s.mock.ExpectSAdd("actor:actor-1:effects", "bless").SetVal(0)

	s.NoError(s.repo.Save(ctx, "actor-1", effect))
}

func (s *RedisRepoTestSuite) TestSave_RedisError() {
	ctx := context.Background()
	effect := effects.BuildBless()
	effect.ID = "bless"

	s.mock.ExpectSet("effect:actor-1:bless", s.blessData("bless"), 0).SetErr(errors.New("redis error"))

	err := s.repo.Save(ctx, "actor-1", effect)
	s.Error(err)
	s.True(bonuserr.IsInternal(err))
}

func (s *RedisRepoTestSuite) TestSave_Invalid() {
	ctx := context.Background()

	s.True(bonuserr.IsInvalidArgument(s.repo.Save(ctx, "", effects.BuildBless())))
	s.True(bonuserr.IsInvalidArgument(s.repo.Save(ctx, "actor-1", nil)))

	empty := effects.NewBuilder("Nothing").WithID("nothing").Build()
	s.True(bonuserr.IsInvalidArgument(s.repo.Save(ctx, "actor-1", empty)))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.mock.ExpectGet("effect:actor-1:bless").SetVal(s.blessData("bless"))

	effect, err := s.repo.Get(ctx, "actor-1", "bless")
	s.Require().NoError(err)
	s.Equal("bless", effect.ID)
	s.Equal("Bless", effect.Name)
	s.Equal(effects.SourceSpell, effect.Source)
	s.True(effect.Enabled)
	s.Require().Len(effect.Changes, 1)
	s.Equal(modifiers.TypeMorale, effect.Changes[0].Type)
	s.Equal(effects.TargetAttack, effect.Changes[0].Target)
	s.True(s.now.Equal(effect.CreatedAt))
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("effect:actor-1:missing").RedisNil()

	_, err := s.repo.Get(ctx, "actor-1", "missing")
	s.True(bonuserr.IsNotFound(err))
	s.Equal("missing", bonuserr.GetMeta(err)[bonuserr.MetaEffectID])
}

func (s *RedisRepoTestSuite) TestGet_BadJSON() {
	ctx := context.Background()

	s.mock.ExpectGet("effect:actor-1:bad").SetVal("{not json")

	_, err := s.repo.Get(ctx, "actor-1", "bad")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestListByActor() {
	ctx := context.Background()

	s.mock.ExpectSMembers("actor:actor-1:effects").SetVal([]string{"a", "stale", "b"})
	s.mock.ExpectMGet("effect:actor-1:a", "effect:actor-1:stale", "effect:actor-1:b").
		SetVal([]interface{}{s.blessData("a"), nil, s.blessData("b")})

	list, err := s.repo.ListByActor(ctx, "actor-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("a", list[0].ID)
	s.Equal("b", list[1].ID)
}

func (s *RedisRepoTestSuite) TestListByActor_Empty() {
	ctx := context.Background()

	s.mock.ExpectSMembers("actor:actor-2:effects").SetVal([]string{})

	list, err := s.repo.ListByActor(ctx, "actor-2")
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *RedisRepoTestSuite) TestListByActor_Error() {
	ctx := context.Background()

	s.mock.ExpectSMembers("actor:actor-1:effects").SetErr(errors.New("redis down"))

	_, err := s.repo.ListByActor(ctx, "actor-1")
	s.True(bonuserr.IsInternal(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("effect:actor-1:bless").SetVal(1)
	s.mock.ExpectSRem("actor:actor-1:effects", "bless").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "actor-1", "bless"))
}

func (s *RedisRepoTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mock.ExpectDel("effect:actor-1:ghost").SetVal(0)
	s.mock.ExpectSRem("actor:actor-1:effects", "ghost").SetVal(0)

	err := s.repo.Delete(ctx, "actor-1", "ghost")
	s.True(bonuserr.IsNotFound(err))
}
