// Package dashboard aggregates platform statistics for the admin console.
// Pure projection: nothing here writes.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tixara/internal/models"
	"tixara/internal/repositories"

	"gorm.io/gorm"
)

const recentFeedLimit = 5

type Service interface {
	Admin(ctx context.Context) (*models.AdminDashboard, error)
}

type service struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	kycRepo  repositories.KycRepository
}

// NewService creates a new dashboard Service.
func NewService(db *gorm.DB, userRepo repositories.UserRepository, kycRepo repositories.KycRepository) Service {
	return &service{db: db, userRepo: userRepo, kycRepo: kycRepo}
}

func (s *service) Admin(ctx context.Context) (*models.AdminDashboard, error) {
	var stats models.DashboardStats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.db.Model(&models.User{})},
		{&stats.TotalOrganizers, s.db.Model(&models.User{}).Where("account_type = ?", models.AccountTypeOrganizer)},
		{&stats.TotalAttendees, s.db.Model(&models.User{}).Where("account_type = ?", models.AccountTypeAttendee)},
		{&stats.TotalAdmins, s.db.Model(&models.User{}).Where("is_admin = ?", true)},
		{&stats.TotalEvents, s.db.Model(&models.Event{})},
		{&stats.PendingKyc, s.db.Model(&models.User{}).Where("kyc_status = ?", models.KycStatusPending)},
		{&stats.ApprovedKyc, s.db.Model(&models.User{}).Where("kyc_status = ?", models.KycStatusApproved)},
		{&stats.RejectedKyc, s.db.Model(&models.User{}).Where("kyc_status = ?", models.KycStatusRejected)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	activity, err := s.recentActivity()
	if err != nil {
		return nil, err
	}

	return &models.AdminDashboard{Stats: stats, RecentActivity: activity}, nil
}

// recentActivity merges the latest registrations and KYC submissions into one
// feed, newest first, capped at twice the per-source limit.
func (s *service) recentActivity() ([]models.ActivityEntry, error) {
	users, err := s.userRepo.Recent(recentFeedLimit)
	if err != nil {
		return nil, err
	}
	requests, err := s.kycRepo.Recent(recentFeedLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ActivityEntry, 0, len(users)+len(requests))
	for _, u := range users {
		entries = append(entries, models.ActivityEntry{
			ID:          fmt.Sprintf("user-%d", u.ID),
			Type:        "user",
			Description: fmt.Sprintf("New %s registered: %s", u.AccountType, u.FullName()),
			Timestamp:   u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, k := range requests {
		name := "unknown user"
		if k.User != nil {
			name = k.User.FullName()
		}
		entries = append(entries, models.ActivityEntry{
			ID:          fmt.Sprintf("kyc-%d", k.ID),
			Type:        "kyc",
			Description: fmt.Sprintf("KYC %s request from %s", k.KycType, name),
			Timestamp:   k.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	if len(entries) > 2*recentFeedLimit {
		entries = entries[:2*recentFeedLimit]
	}
	return entries, nil
}
