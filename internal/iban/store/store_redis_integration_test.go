//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ibanguard/pkg/platform/sentinel"
	"ibanguard/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = NewRedisCache(s.redis.Client, time.Second)
}

func (s *RedisCacheSuite) TearDownSuite() {
	s.redis.Terminate(context.Background())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()

	_, err := s.cache.Find(ctx, "DE89370400440532013000")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.cache.Save(ctx, "DE89370400440532013000", germanDetails()))

	got, err := s.cache.Find(ctx, "DE89370400440532013000")
	s.Require().NoError(err)
	s.Equal(*germanDetails(), *got)
}

func (s *RedisCacheSuite) TestExpiry() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Save(ctx, "DE89370400440532013000", germanDetails()))

	s.Eventually(func() bool {
		_, err := s.cache.Find(ctx, "DE89370400440532013000")
		return err != nil
	}, 5*time.Second, 100*time.Millisecond)
}
