package storage_test

import (
	"testing"

	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/models"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/buckwheat-app/backend/internal/storage"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/buckwheat-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))
}

func snapshot(records ...ledger.SpendRecord) engine.Snapshot {
	finish := types.NewDay(2022, 3, 10)
	return engine.Snapshot{
		Period: &engine.Period{
			StartDate:   types.NewDay(2022, 3, 7),
			FinishDate:  &finish,
			TotalBudget: money.FromFloat(300),
		},
		LastKnownDay: types.NewDay(2022, 3, 7),
		Records:      records,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	connect(t)

	record := ledger.SpendRecord{
		ID:      uuid.New(),
		Amount:  money.FromFloat(50),
		Date:    types.NewDay(2022, 3, 7),
		Comment: "groceries",
	}

	store := storage.New()
	store.Save(snapshot(record))
	store.Close()

	loaded, err := storage.New().Load()
	require.Nil(t, err)
	require.NotNil(t, loaded)

	require.NotNil(t, loaded.Period)
	assert.True(t, loaded.Period.StartDate.Equal(types.NewDay(2022, 3, 7)))
	assert.True(t, loaded.Period.TotalBudget.Equal(money.FromFloat(300)))
	assert.True(t, loaded.LastKnownDay.Equal(types.NewDay(2022, 3, 7)))

	require.Len(t, loaded.Records, 1)
	assert.Equal(t, record.ID, loaded.Records[0].ID)
	assert.True(t, loaded.Records[0].Amount.Equal(money.FromFloat(50)))
	assert.Equal(t, "groceries", loaded.Records[0].Comment)
}

func TestLoadWithoutPeriod(t *testing.T) {
	connect(t)

	loaded, err := storage.New().Load()
	require.Nil(t, err)
	assert.Nil(t, loaded)
}

func TestSaveRemovesRetiredSpends(t *testing.T) {
	connect(t)

	keep := ledger.SpendRecord{ID: uuid.New(), Amount: money.FromFloat(10), Date: types.NewDay(2022, 3, 7)}
	gone := ledger.SpendRecord{ID: uuid.New(), Amount: money.FromFloat(20), Date: types.NewDay(2022, 3, 7)}

	store := storage.New()
	store.Save(snapshot(keep, gone))
	store.Close()

	// The second snapshot no longer contains the removed spend
	store = storage.New()
	_, err := store.Load()
	require.Nil(t, err)
	store.Save(snapshot(keep))
	store.Close()

	loaded, err := storage.New().Load()
	require.Nil(t, err)
	require.Len(t, loaded.Records, 1)
	assert.Equal(t, keep.ID, loaded.Records[0].ID)
}

func TestSaveReplacesPeriodOnReconfiguration(t *testing.T) {
	connect(t)

	store := storage.New()
	store.Save(snapshot())
	store.Close()

	// A reconfigured period has a different budget
	store = storage.New()
	_, err := store.Load()
	require.Nil(t, err)

	next := snapshot()
	next.Period.TotalBudget = money.FromFloat(500)
	next.Records = nil
	store.Save(next)
	store.Close()

	loaded, err := storage.New().Load()
	require.Nil(t, err)
	require.NotNil(t, loaded.Period)
	assert.True(t, loaded.Period.TotalBudget.Equal(money.FromFloat(500)))

	// The retired period is kept for history
	var count int64
	require.Nil(t, models.DB.Unscoped().Model(&models.Period{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
