//go:build integration

// Package containers starts throwaway Redis and MongoDB servers for
// integration tests. Run them with `go test -tags integration ./...`.
package containers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce sync.Once
	redisAddr string
	redisErr  error

	mongoOnce sync.Once
	mongoURI  string
	mongoErr  error
)

func start(image, port string, strategy wait.Strategy) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{port},
			WaitingFor:   strategy,
		},
		Started: true,
	})
	if err != nil {
		return "", "", fmt.Errorf("start %s: %w", image, err)
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", "", err
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return "", "", err
	}
	return host, mapped.Port(), nil
}

// RedisAddr returns host:port of a Redis container shared by the test binary.
func RedisAddr(t *testing.T) string {
	t.Helper()
	redisOnce.Do(func() {
		host, port, err := start("redis:7-alpine", "6379/tcp", wait.ForListeningPort("6379/tcp"))
		redisAddr, redisErr = host+":"+port, err
	})
	require.NoError(t, redisErr, "redis container")
	return redisAddr
}

// MongoURI returns a connection string for a MongoDB container shared by the
// test binary.
func MongoURI(t *testing.T) string {
	t.Helper()
	mongoOnce.Do(func() {
		host, port, err := start("mongo:7", "27017/tcp", wait.ForListeningPort("27017/tcp"))
		mongoURI, mongoErr = fmt.Sprintf("mongodb://%s:%s", host, port), err
	})
	require.NoError(t, mongoErr, "mongo container")
	return mongoURI
}
