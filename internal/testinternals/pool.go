package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/gymsphere/internal/db"
	"github.com/2beens/gymsphere/internal/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// NewDBPool connects to the postgres given by POSTGRES_HOST / POSTGRES_PORT
// (localhost:5432 by default) and makes sure the schema is there.
func NewDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	t.Logf("using postgres host: %s:%s", host, port)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         port,
		DBName:         TestDBName,
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		TracingEnabled: false,
	})
	require.NoError(t, err)
	require.NoError(t, db.ApplySchema(timeoutCtx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// CreateUser stores a user with a random email and a complete profile.
func CreateUser(t *testing.T, dbPool *pgxpool.Pool) *users.User {
	t.Helper()
	ctx := context.Background()
	repo := users.NewRepo(dbPool)

	u, err := repo.Create(ctx, &users.User{
		Email:        gofakeit.Email(),
		Fullname:     gofakeit.Name(),
		PasswordHash: gofakeit.Password(true, true, true, false, false, 20),
	})
	require.NoError(t, err)

	goal := "fat_loss"
	level := "beginner"
	weight := float64(gofakeit.Number(60, 110))
	freq := 4
	require.NoError(t, repo.UpdateProfile(ctx, u.ID, users.ProfileUpdate{
		Goal:         &goal,
		FitnessLevel: &level,
		WeightKg:     &weight,
		FreqPerWeek:  &freq,
	}))

	stored, err := repo.Get(ctx, u.ID)
	require.NoError(t, err)
	return stored
}
