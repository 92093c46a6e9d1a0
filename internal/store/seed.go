package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

func seedTime(s string) Timestamp {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return NewTimestamp(t)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// Seed loads the sample dataset. It does nothing when categories already exist.
func Seed(ctx context.Context, db *sql.DB) error {
	uow, err := Begin(ctx, db)
	if err != nil {
		return err
	}
	defer func() { _ = uow.Rollback() }()

	n, err := uow.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if n > 0 {
		slog.Info("database already has data, skipping seed", "categories", n)
		return nil
	}

	users := []User{
		{Username: "test1", Password: "password"},
		{Username: "test2", Password: "anotherpassword"},
	}
	for _, u := range users {
		if err := uow.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("creating user %s: %w", u.Username, err)
		}
	}

	categories := []CreateCategoryParams{
		{Name: "Work", Description: nullString("Work-related activities")},
		{Name: "Exercise", Description: nullString("Exercising activities")},
	}
	for _, c := range categories {
		if err := uow.CreateCategory(ctx, c); err != nil {
			return fmt.Errorf("creating category %s: %w", c.Name, err)
		}
	}

	activities := []CreateActivityParams{
		{Name: "Coding", CategoryName: "Work", Description: nullString("Software development")},
		{Name: "Gym", CategoryName: "Exercise", Description: nullString("Going to the gym")},
	}
	for _, a := range activities {
		if err := uow.CreateActivity(ctx, a); err != nil {
			return fmt.Errorf("creating activity %s/%s: %w", a.CategoryName, a.Name, err)
		}
	}

	logs := []CreateLogParams{
		{
			UserID:           "test1",
			ActivityName:     nullString("Coding"),
			ActivityCategory: nullString("Work"),
			StartTime:        seedTime("2024-02-07 10:00:00"),
			EndTime:          seedTime("2024-02-07 12:00:00"),
			Comments:         nullString("Worked on project X"),
		},
		{
			UserID:           "test2",
			ActivityName:     nullString("Gym"),
			ActivityCategory: nullString("Exercise"),
			StartTime:        seedTime("2024-02-07 15:00:00"),
			EndTime:          seedTime("2024-02-07 16:00:00"),
			Comments:         nullString("Went to the gym"),
		},
	}
	for _, l := range logs {
		if _, err := uow.CreateLog(ctx, l); err != nil {
			return fmt.Errorf("creating log for %s: %w", l.UserID, err)
		}
	}

	reports := []CreateReportParams{
		{UserID: "test1", StartTime: seedTime("2024-02-07 09:00:00"), EndTime: seedTime("2024-02-07 17:00:00")},
		{UserID: "test2", StartTime: seedTime("2024-02-07 14:00:00"), EndTime: seedTime("2024-02-07 18:00:00")},
	}
	for _, r := range reports {
		if _, err := uow.CreateReport(ctx, r); err != nil {
			return fmt.Errorf("creating time report for %s: %w", r.UserID, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}

	slog.Info("seeded sample data",
		"users", len(users),
		"categories", len(categories),
		"activities", len(activities),
		"logs", len(logs),
		"reports", len(reports),
	)

	return nil
}
