// Package storage persists engine snapshots to the database.
//
// The engine treats persistence as fire-and-forget: Save never blocks and
// only the newest pending snapshot is kept when saves arrive faster than
// they are written. All writes go through a single background writer so that
// partial snapshots can never interleave.
package storage

import (
	"errors"

	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/models"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store implements engine.Store on top of the models package.
type Store struct {
	queue chan engine.Snapshot
	done  chan struct{}

	// currentPeriodID is only touched by the writer goroutine after New.
	currentPeriodID uuid.UUID
}

// New returns a store and starts its writer. Call Close on shutdown to flush
// pending snapshots.
func New() *Store {
	s := &Store{
		queue: make(chan engine.Snapshot, 1),
		done:  make(chan struct{}),
	}

	go s.writer()
	return s
}

// Load reads the newest persisted snapshot. It returns nil when no period
// has ever been persisted.
func (s *Store) Load() (*engine.Snapshot, error) {
	var period models.Period
	err := models.DB.Order("created_at DESC").First(&period).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, nil
		}

		return nil, err
	}

	s.currentPeriodID = period.ID

	var spends []models.Spend
	err = models.DB.
		Where(&models.Spend{PeriodID: period.ID}).
		Order("datetime(spends.created_at) ASC, spends.date ASC").
		Find(&spends).Error
	if err != nil {
		return nil, err
	}

	snapshot := &engine.Snapshot{
		Period: &engine.Period{
			StartDate:   period.StartDate,
			FinishDate:  period.FinishDate,
			TotalBudget: period.TotalBudget,
		},
		LastKnownDay: period.LastKnownDay,
		Records:      make([]ledger.SpendRecord, 0, len(spends)),
	}

	for _, spend := range spends {
		snapshot.Records = append(snapshot.Records, ledger.SpendRecord{
			ID:      spend.ID,
			Amount:  spend.Amount,
			Date:    spend.Date,
			Comment: spend.Comment,
		})
	}

	return snapshot, nil
}

// Save enqueues a snapshot without blocking. A newer snapshot replaces an
// unwritten older one.
func (s *Store) Save(snapshot engine.Snapshot) {
	for {
		select {
		case s.queue <- snapshot:
			return
		default:
		}

		// Queue full: discard the stale pending snapshot and retry
		select {
		case <-s.queue:
		default:
		}
	}
}

// Close flushes pending snapshots and stops the writer.
func (s *Store) Close() {
	close(s.queue)
	<-s.done
}

func (s *Store) writer() {
	defer close(s.done)

	for snapshot := range s.queue {
		if err := s.write(snapshot); err != nil {
			log.Error().Err(err).Msg("snapshot write failed")
		}
	}
}

func (s *Store) write(snapshot engine.Snapshot) error {
	if snapshot.Period == nil {
		s.currentPeriodID = uuid.Nil
		return models.DB.Where("true").Delete(&models.Period{}).Error
	}

	period, err := s.reconcilePeriod(*snapshot.Period, snapshot.LastKnownDay)
	if err != nil {
		return err
	}

	return s.reconcileSpends(period.ID, snapshot.Records)
}

// reconcilePeriod updates the current period row or replaces it when the
// snapshot describes a newly configured period.
func (s *Store) reconcilePeriod(period engine.Period, lastKnownDay types.Day) (models.Period, error) {
	row := models.Period{
		StartDate:    period.StartDate,
		FinishDate:   period.FinishDate,
		TotalBudget:  period.TotalBudget,
		LastKnownDay: lastKnownDay,
	}

	if s.currentPeriodID != uuid.Nil {
		var current models.Period
		err := models.DB.First(&current, s.currentPeriodID).Error
		if err != nil {
			return models.Period{}, err
		}

		if samePeriod(current, row) {
			current.LastKnownDay = lastKnownDay
			return current, models.DB.Model(&current).Update("last_known_day", lastKnownDay).Error
		}

		// A different period means a reconfiguration: retire the old row
		err = models.DB.Delete(&current).Error
		if err != nil {
			return models.Period{}, err
		}
	}

	err := models.DB.Create(&row).Error
	if err != nil {
		return models.Period{}, err
	}

	s.currentPeriodID = row.ID
	return row, nil
}

// reconcileSpends creates snapshot records missing from the database and
// retires rows missing from the snapshot.
func (s *Store) reconcileSpends(periodID uuid.UUID, records []ledger.SpendRecord) error {
	var existing []models.Spend
	err := models.DB.Where(&models.Spend{PeriodID: periodID}).Find(&existing).Error
	if err != nil {
		return err
	}

	existingIDs := make(map[uuid.UUID]models.Spend, len(existing))
	for _, spend := range existing {
		existingIDs[spend.ID] = spend
	}

	wanted := make(map[uuid.UUID]bool, len(records))
	for _, record := range records {
		wanted[record.ID] = true

		if _, ok := existingIDs[record.ID]; ok {
			continue
		}

		spend := models.Spend{
			DefaultModel: models.DefaultModel{ID: record.ID},
			PeriodID:     periodID,
			Date:         record.Date,
			Amount:       record.Amount,
			Comment:      record.Comment,
		}
		if err := models.DB.Create(&spend).Error; err != nil {
			return err
		}
	}

	for id, spend := range existingIDs {
		if wanted[id] {
			continue
		}

		if err := models.DB.Delete(&spend).Error; err != nil {
			return err
		}
	}

	return nil
}

func samePeriod(current models.Period, next models.Period) bool {
	if !current.StartDate.Equal(next.StartDate) {
		return false
	}

	if !current.TotalBudget.Equal(next.TotalBudget) {
		return false
	}

	if (current.FinishDate == nil) != (next.FinishDate == nil) {
		return false
	}

	return current.FinishDate == nil || current.FinishDate.Equal(*next.FinishDate)
}
