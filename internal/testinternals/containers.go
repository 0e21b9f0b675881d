package testinternals

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/2beens/gymsphere/internal/db"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	TestDBName     = "gymsphere"
	testDBPassword = "postgres"
)

// Containers holds a throwaway postgres and redis pair for end-to-end tests.
type Containers struct {
	PostgresPort string
	RedisPort    string
	DBPassword   string

	dockerPool *dockertest.Pool
	teardown   []func()
}

func StartContainers() (*Containers, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("new dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}

	c := &Containers{
		DBPassword: testDBPassword,
		dockerPool: dockerPool,
	}

	if c.RedisPort, err = c.redisSetup(); err != nil {
		c.Close()
		return nil, fmt.Errorf("redis setup: %w", err)
	}
	if c.PostgresPort, err = c.postgresSetup(); err != nil {
		c.Close()
		return nil, fmt.Errorf("postgres setup: %w", err)
	}

	return c, nil
}

func (c *Containers) Close() {
	for _, teardown := range c.teardown {
		teardown()
	}
	c.teardown = nil
}

func (c *Containers) redisSetup() (string, error) {
	redisResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	c.teardown = append(c.teardown, func() {
		if err := redisResource.Close(); err != nil {
			log.Printf("redis teardown: %s", err)
		}
	})

	return redisResource.GetPort("6379/tcp"), nil
}

func (c *Containers) postgresSetup() (string, error) {
	pgResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + TestDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}

	c.teardown = append(c.teardown, func() {
		if err := pgResource.Close(); err != nil {
			log.Printf("postgres teardown: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres:%s@localhost:%s/%s?sslmode=disable", testDBPassword, pgPort, TestDBName)
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("close setup db conn: %s", err)
		}
	}()

	if err := c.dockerPool.Retry(sqlDB.Ping); err != nil {
		return "", fmt.Errorf("connect to db: %w", err)
	}

	if _, err := sqlDB.Exec(db.Schema); err != nil {
		return "", fmt.Errorf("run schema: %w", err)
	}

	return pgPort, nil
}
