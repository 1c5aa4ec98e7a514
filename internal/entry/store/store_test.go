//go:build integration

// Integration coverage for the Postgres entry store. Point TEST_DATABASE_URL
// at a scratch database (the schema is dropped and re-applied per test) and
// run with -tags integration; without the variable the tests skip.
package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountstore "github.com/lwhitworth8/ngi-ledger/internal/account/store"
	"github.com/lwhitworth8/ngi-ledger/internal/entry"
	"github.com/lwhitworth8/ngi-ledger/internal/entry/store"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	resetSchema(t, db)

	return db
}

func resetSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`
		DROP TABLE IF EXISTS journal_entry_lines, journal_entries, entity_relationships, accounts, entities CASCADE
	`)
	require.NoError(t, err)

	schema, err := os.ReadFile("../../../migrations/0001_init.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)
}

func seedEntity(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()

	var id uuid.UUID

	err := db.QueryRow(`
		INSERT INTO entities (legal_name, entity_type) VALUES ('NGI Capital LLC', 'llc') RETURNING id
	`).Scan(&id)
	require.NoError(t, err)

	return id
}

func seedAccount(t *testing.T, db *sql.DB, entityID uuid.UUID, code, accountType, normal string) uuid.UUID {
	t.Helper()

	var id uuid.UUID

	err := db.QueryRow(`
		INSERT INTO accounts (entity_id, code, name, account_type, normal_balance)
		VALUES ($1, $2, $2, $3, $4)
		RETURNING id
	`, entityID, code, accountType, normal).Scan(&id)
	require.NoError(t, err)

	return id
}

func TestStore_CreateEntry_RoundTripLineOrder(t *testing.T) {
	db := testDB(t)
	s := store.New(db)
	ctx := context.Background()

	entityID := seedEntity(t, db)
	cash := seedAccount(t, db, entityID, "11000", "asset", "debit")
	fees := seedAccount(t, db, entityID, "53000", "expense", "debit")
	revenue := seedAccount(t, db, entityID, "41000", "revenue", "credit")

	e := &entry.Entry{
		EntityID:    entityID,
		Date:        time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Description: "June invoice, net of processor fees",
		TotalDebit:  dec("1000.00"),
		TotalCredit: dec("1000.00"),
		Status:      entry.StatusPending,
		CreatedBy:   uuid.New(),
		Lines: []entry.Line{
			{AccountID: cash, LineNumber: 1, Debit: dec("970.00"), Credit: decimal.Zero},
			{AccountID: fees, LineNumber: 2, Debit: dec("30.00"), Credit: decimal.Zero},
			{AccountID: revenue, LineNumber: 3, Debit: decimal.Zero, Credit: dec("1000.00")},
		},
	}

	require.NoError(t, s.CreateEntry(ctx, e))
	assert.EqualValues(t, 1, e.EntryNumber)

	got, err := s.GetEntry(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 3)

	// Lines come back exactly as written, in line-number order.
	for i, l := range got.Lines {
		assert.Equal(t, i+1, l.LineNumber)
		assert.Equal(t, e.Lines[i].AccountID, l.AccountID)
		assert.True(t, l.Debit.Equal(e.Lines[i].Debit))
		assert.True(t, l.Credit.Equal(e.Lines[i].Credit))
	}

	second := &entry.Entry{
		EntityID:    entityID,
		Date:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Description: "July accrual",
		TotalDebit:  dec("50.00"),
		TotalCredit: dec("50.00"),
		Status:      entry.StatusPending,
		CreatedBy:   uuid.New(),
		Lines: []entry.Line{
			{AccountID: cash, LineNumber: 1, Debit: dec("50.00"), Credit: decimal.Zero},
			{AccountID: revenue, LineNumber: 2, Debit: decimal.Zero, Credit: dec("50.00")},
		},
	}

	require.NoError(t, s.CreateEntry(ctx, second))
	assert.EqualValues(t, 2, second.EntryNumber)
}

// Entry creation share-locks the entity's accounts, so a concurrent
// deactivation (FOR UPDATE plus in-transaction pending-line recheck) must
// serialize against it: whichever transaction commits first, the loser sees
// its precondition gone and fails with a typed error. A pending line can
// therefore never reference an inactive account.
func TestStore_CreateEntry_SerializesWithDeactivation(t *testing.T) {
	db := testDB(t)
	entries := store.New(db)
	accounts := accountstore.New(db)
	ctx := context.Background()

	entityID := seedEntity(t, db)
	creator := uuid.New()

	for i := 0; i < 20; i++ {
		cash := seedAccount(t, db, entityID, fmt.Sprintf("1%04d", i), "asset", "debit")
		revenue := seedAccount(t, db, entityID, fmt.Sprintf("4%04d", i), "revenue", "credit")

		e := &entry.Entry{
			EntityID:    entityID,
			Date:        time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			Description: "deposit",
			TotalDebit:  dec("100.00"),
			TotalCredit: dec("100.00"),
			Status:      entry.StatusPending,
			CreatedBy:   creator,
			Lines: []entry.Line{
				{AccountID: cash, LineNumber: 1, Debit: dec("100.00"), Credit: decimal.Zero},
				{AccountID: revenue, LineNumber: 2, Debit: decimal.Zero, Credit: dec("100.00")},
			},
		}

		var createErr, deactivateErr error

		var wg sync.WaitGroup

		wg.Add(2)

		go func() {
			defer wg.Done()
			createErr = entries.CreateEntry(ctx, e)
		}()
		go func() {
			defer wg.Done()
			deactivateErr = accounts.DeactivateAccount(ctx, cash)
		}()

		wg.Wait()

		assert.False(t, createErr == nil && deactivateErr == nil,
			"iteration %d: entry landed on a deactivated account", i)

		if createErr != nil {
			var accountErr *ledger.InvalidAccountError
			assert.ErrorAs(t, createErr, &accountErr)
		}

		if deactivateErr != nil {
			var validationErr *ledger.ValidationError
			assert.ErrorAs(t, deactivateErr, &validationErr)
		}
	}

	var orphaned int

	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		JOIN accounts a ON a.id = l.account_id
		WHERE e.status = 'pending' AND NOT a.is_active
	`).Scan(&orphaned)
	require.NoError(t, err)
	assert.Zero(t, orphaned)
}
