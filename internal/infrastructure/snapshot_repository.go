package infrastructure

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
	appErrors "github.com/WanderingWalnut/HomeRun/internal/errors"
	"github.com/WanderingWalnut/HomeRun/internal/pkg"
)

type SnapshotRepository struct {
	DB *gorm.DB
}

// snapshotDB is the persistence shape of a progress snapshot. One row per
// user; report fields flattened into columns.
type snapshotDB struct {
	Id                       string `gorm:"type:varchar(26);primaryKey"`
	UserId                   string `gorm:"type:varchar(128);uniqueIndex:idx_progress_snapshots_user;not null"`
	WeeklyProgress           float64
	DailySavings             float64
	SavingsTransfers         float64
	WeeklyHomeRuns           float64
	WeeklyProgressPercentage float64
	WeeklyTarget             float64
	DownPaymentTarget        float64
	HomeRunsNeeded           float64
	AccessToken              string `gorm:"type:varchar(255)"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (snapshotDB) TableName() string {
	return "progress_snapshots"
}

func toDomainSnapshot(sdb *snapshotDB) (*progress.Snapshot, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &progress.Snapshot{
		Id:     id,
		UserID: sdb.UserId,
		Report: progress.Report{
			WeeklyProgress:           sdb.WeeklyProgress,
			DailySavings:             sdb.DailySavings,
			SavingsTransfers:         sdb.SavingsTransfers,
			WeeklyHomeRuns:           sdb.WeeklyHomeRuns,
			WeeklyProgressPercentage: sdb.WeeklyProgressPercentage,
			WeeklyTarget:             sdb.WeeklyTarget,
			DownPaymentTarget:        sdb.DownPaymentTarget,
			HomeRunsNeeded:           sdb.HomeRunsNeeded,
		},
		AccessToken: sdb.AccessToken,
		CreatedAt:   sdb.CreatedAt,
		UpdatedAt:   sdb.UpdatedAt,
	}, nil
}

func toDBSnapshot(s *progress.Snapshot) *snapshotDB {
	return &snapshotDB{
		Id:                       s.Id.String(),
		UserId:                   s.UserID,
		WeeklyProgress:           s.Report.WeeklyProgress,
		DailySavings:             s.Report.DailySavings,
		SavingsTransfers:         s.Report.SavingsTransfers,
		WeeklyHomeRuns:           s.Report.WeeklyHomeRuns,
		WeeklyProgressPercentage: s.Report.WeeklyProgressPercentage,
		WeeklyTarget:             s.Report.WeeklyTarget,
		DownPaymentTarget:        s.Report.DownPaymentTarget,
		HomeRunsNeeded:           s.Report.HomeRunsNeeded,
		AccessToken:              s.AccessToken,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
	}
}

// Upsert writes the snapshot, overlaying the report fields when a row for
// the user already exists. CreatedAt and the row id survive rewrites.
func (r *SnapshotRepository) Upsert(ctx context.Context, s *progress.Snapshot) error {
	sdb := toDBSnapshot(s)
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weekly_progress",
			"daily_savings",
			"savings_transfers",
			"weekly_home_runs",
			"weekly_progress_percentage",
			"weekly_target",
			"down_payment_target",
			"home_runs_needed",
			"access_token",
			"updated_at",
		}),
	}).Create(sdb).Error
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// GetByUserID returns the stored snapshot for the user, or (nil, nil)
// when none exists.
func (r *SnapshotRepository) GetByUserID(ctx context.Context, userID string) (*progress.Snapshot, error) {
	var sdb snapshotDB
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&sdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainSnapshot(&sdb)
}
