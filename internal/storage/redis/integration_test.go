//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	rdb       *goredis.Client
}

func (s *RedisIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	addr, err := container.Endpoint(s.ctx, "")
	s.Require().NoError(err)

	rdb, err := NewClient(Config{Addr: addr})
	s.Require().NoError(err)
	s.rdb = rdb
}

func (s *RedisIntegrationSuite) TearDownSuite() {
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisIntegrationSuite) SetupTest() {
	s.Require().NoError(s.rdb.FlushDB(s.ctx).Err())
}

func TestRedisIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationSuite))
}

func (s *RedisIntegrationSuite) TestTryLock_Exclusive() {
	first := NewLocker(s.rdb, time.Minute)
	second := NewLocker(s.rdb, time.Minute)

	ok, err := first.TryLock(s.ctx, "campaign-sync:c-1")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = second.TryLock(s.ctx, "campaign-sync:c-1")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = second.TryLock(s.ctx, "campaign-sync:c-2")
	s.Require().NoError(err)
	s.True(ok)

	s.NoError(first.Unlock(s.ctx, "campaign-sync:c-1"))

	ok, err = second.TryLock(s.ctx, "campaign-sync:c-1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisIntegrationSuite) TestUnlock_DoesNotReleaseForeignLock() {
	first := NewLocker(s.rdb, 100*time.Millisecond)
	second := NewLocker(s.rdb, time.Minute)

	ok, err := first.TryLock(s.ctx, "k")
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Eventually(func() bool {
		ok, err := second.TryLock(s.ctx, "k")
		return err == nil && ok
	}, 2*time.Second, 20*time.Millisecond)

	s.ErrorIs(first.Unlock(s.ctx, "k"), ErrLockLost)

	ok, err = first.TryLock(s.ctx, "k")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisIntegrationSuite) TestUnlock_NotHeld() {
	s.Error(NewLocker(s.rdb, time.Minute).Unlock(s.ctx, "never-locked"))
}
