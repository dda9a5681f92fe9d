package techniquedraft_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock"
	techniquedraft "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils"
	"github.com/KirkDiggler/rpg-technique-api/internal/testutils/builders"
)

// contractSuite runs the same behaviour checks against every backend
type contractSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Manual
	repo    techniquedraft.Repository
	newRepo func() techniquedraft.Repository
	cleanup func()
}

func (s *contractSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(testutils.TestNow)
	s.repo = s.newRepo()
}

func (s *contractSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *contractSuite) draft() *technique.Technique {
	return builders.NewTechniqueBuilder().
		WithName(testutils.TestTechniqueName).
		WithLevel(technique.PowerLevel1).
		Build()
}

func (s *contractSuite) TestCreateAndGet() {
	draft := s.draft()

	created, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)
	s.Equal(draft, created.Technique)

	got, err := s.repo.Get(s.ctx, techniquedraft.GetInput{ID: draft.ID})
	s.Require().NoError(err)
	s.Equal(draft, got.Technique)
}

func (s *contractSuite) TestCreateDuplicate() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.True(errors.IsAlreadyExists(err))
}

func (s *contractSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: technique.New("")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, techniquedraft.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, techniquedraft.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, techniquedraft.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *contractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, techniquedraft.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *contractSuite) TestUpdate() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	draft.Name = "Escudo de Ceniza"
	draft.ResistanceCost = 9
	_, err = s.repo.Update(s.ctx, techniquedraft.UpdateInput{Technique: draft})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, techniquedraft.GetInput{ID: draft.ID})
	s.Require().NoError(err)
	s.Equal("Escudo de Ceniza", got.Technique.Name)
	s.Equal(9, got.Technique.ResistanceCost)
}

func (s *contractSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, techniquedraft.UpdateInput{Technique: s.draft()})
	s.True(errors.IsNotFound(err))
}

func (s *contractSuite) TestDelete() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, techniquedraft.DeleteInput{ID: draft.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, techniquedraft.GetInput{ID: draft.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, techniquedraft.DeleteInput{ID: draft.ID})
	s.True(errors.IsNotFound(err))
}

func (s *contractSuite) TestExpiredDraftCannotBeStored() {
	draft := s.draft()
	draft.ExpiresAt = testutils.TestNow.Add(-time.Minute).Unix()

	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.True(errors.IsNotFound(err))
}

type InMemoryRepositoryTestSuite struct {
	contractSuite
}

func TestInMemoryRepositorySuite(t *testing.T) {
	s := &InMemoryRepositoryTestSuite{}
	s.newRepo = func() techniquedraft.Repository {
		return techniquedraft.NewInMemory(s.clock)
	}
	suite.Run(t, s)
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	s.clock.Advance(24 * time.Hour)

	_, err = s.repo.Get(s.ctx, techniquedraft.GetInput{ID: draft.ID})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestReturnsCopies() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, techniquedraft.GetInput{ID: draft.ID})
	s.Require().NoError(err)
	got.Technique.Name = "changed"

	again, err := s.repo.Get(s.ctx, techniquedraft.GetInput{ID: draft.ID})
	s.Require().NoError(err)
	s.Equal(testutils.TestTechniqueName, again.Technique.Name)
}

type RedisRepositoryTestSuite struct {
	contractSuite
	mr *miniredis.Miniredis
}

func TestRedisRepositorySuite(t *testing.T) {
	s := &RedisRepositoryTestSuite{}
	s.newRepo = func() techniquedraft.Repository {
		client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
		s.mr = mr
		s.cleanup = cleanup

		repo, err := techniquedraft.NewRedisRepository(&techniquedraft.RedisConfig{
			Client: client,
			Clock:  s.clock,
		})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepositoryValidatesConfig() {
	_, err := techniquedraft.NewRedisRepository(&techniquedraft.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = techniquedraft.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestStoresJSONWithTTL() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	key := "technique_draft:" + draft.ID
	s.True(s.mr.Exists(key))
	s.Equal(24*time.Hour, s.mr.TTL(key))

	raw, err := s.mr.Get(key)
	s.Require().NoError(err)

	var stored technique.Technique
	s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
	s.Equal(draft.ID, stored.ID)
	s.Equal(technique.PowerLevel1, stored.Level)
}

func (s *RedisRepositoryTestSuite) TestUpdateTTLFollowsExpiresAt() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	_, err = s.repo.Update(s.ctx, techniquedraft.UpdateInput{Technique: draft})
	s.Require().NoError(err)

	s.Equal(23*time.Hour, s.mr.TTL("technique_draft:"+draft.ID))
}

func (s *RedisRepositoryTestSuite) TestExpiry() {
	draft := s.draft()
	_, err := s.repo.Create(s.ctx, techniquedraft.CreateInput{Technique: draft})
	s.Require().NoError(err)

	s.mr.FastForward(25 * time.Hour)

	_, err = s.repo.Get(s.ctx, techniquedraft.GetInput{ID: draft.ID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptValueIsInternal() {
	s.Require().NoError(s.mr.Set("technique_draft:broken", "{not json"))

	_, err := s.repo.Get(s.ctx, techniquedraft.GetInput{ID: "broken"})
	s.True(errors.IsInternal(err))
}
