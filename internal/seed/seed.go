package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursedesk/internal/app/models"
	appRepos "github.com/yigit/coursedesk/internal/app/repositories"
	"github.com/yigit/coursedesk/internal/db"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/auth"
)

// Options describes the demo account created on an empty database
type Options struct {
	Name       string
	Email      string
	Password   string
	BcryptCost int // zero means auth.BcryptCost
}

// CreateDefaultData creates a demo user with one sample course unless a user
// with the same email already exists. Both rows are written in one transaction.
func CreateDefaultData(ctx context.Context, beginner db.TxBeginner, opts Options, lgr zerolog.Logger) error {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = auth.BcryptCost
	}

	lgr.Info().Str("email", opts.Email).Msg("Checking/Creating demo data...")

	return db.RunInTx(ctx, beginner, func(ctx context.Context, tx pgx.Tx) error {
		userRepo := appRepos.NewUserRepository(tx)
		courseRepo := appRepos.NewCourseRepository(tx)

		_, err := userRepo.GetByEmail(ctx, opts.Email)
		if err == nil {
			lgr.Info().Str("email", opts.Email).Msg("Demo user already present, skipping seed")
			return nil
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return fmt.Errorf("error looking up demo user: %w", err)
		}

		hashed, err := auth.HashPasswordWithCost(opts.Password, cost)
		if err != nil {
			return fmt.Errorf("error hashing demo password: %w", err)
		}

		user := &appModels.User{
			ID:       uuid.NewString(),
			Name:     opts.Name,
			Email:    opts.Email,
			Password: hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("error creating demo user: %w", err)
		}

		course := &appModels.Course{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Title:     "Algebra",
			Teachers:  []string{"A. Turing"},
			Classes:   []string{"101"},
			StartTime: "09:00",
			EndTime:   "10:00",
		}
		if err := courseRepo.Create(ctx, course); err != nil {
			return fmt.Errorf("error creating demo course: %w", err)
		}

		lgr.Info().Str("userID", user.ID).Str("courseID", course.ID).Msg("Demo data created")
		return nil
	})
}
