package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
	"github.com/bburrets/mdf-contract-management/internal/testutil/pgtest"
)

const (
	testStyle  = "ST-1001"
	otherStyle = "ST-2002"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

// buildTestContract creates a channel scope contract input
func buildTestContract(style string, total string, createdBy string) *schema.Contract {
	return &schema.Contract{
		StyleNumber:          style,
		Scope:                domain.ScopeChannel,
		Customer:             ptr("Acme Retail"),
		TotalCommittedAmount: d(total),
		ContractDate:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy:            createdBy,
	}
}

// createTestContract inserts a contract with the given allocations
func createTestContract(t *testing.T, store Store, style, total, inline, ecomm string) *schema.Contract {
	t.Helper()
	ctx := context.Background()

	contract := buildTestContract(style, total, "alice")
	require.NoError(t, store.CreateContract(ctx, contract))

	for channel, amount := range map[domain.Channel]string{domain.ChannelInline: inline, domain.ChannelEcomm: ecomm} {
		if amount == "" {
			continue
		}
		require.NoError(t, store.CreateAllocation(ctx, &schema.Allocation{
			ContractID:      contract.ID,
			Channel:         channel,
			AllocatedAmount: d(amount),
		}))
	}
	return contract
}

func txDB(store Store) *pgStore {
	return store.(*pgStore)
}

// =============================================================================
// Styles
// =============================================================================

func testStyles(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("existing style", func(t *testing.T) {
		exists, err := store.StyleExists(ctx, testStyle)
		require.NoError(t, err)
		assert.True(t, exists)

		style, err := store.GetStyle(ctx, testStyle)
		require.NoError(t, err)
		require.NotNil(t, style)
		assert.Equal(t, "SS25", style.Season)
		assert.Equal(t, "Footwear", style.BusinessLine)
	})

	t.Run("unknown style", func(t *testing.T) {
		exists, err := store.StyleExists(ctx, "NOPE")
		require.NoError(t, err)
		assert.False(t, exists)

		style, err := store.GetStyle(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, style)
	})
}

// =============================================================================
// Contracts
// =============================================================================

func testContracts(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get contract with allocations", func(t *testing.T) {
		contract := createTestContract(t, store, testStyle, "1000", "600", "400")
		assert.NotZero(t, contract.ID)
		assert.False(t, contract.CreatedAt.IsZero())

		got, err := store.GetContractByID(ctx, contract.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, testStyle, got.StyleNumber)
		assert.Equal(t, domain.ScopeChannel, got.Scope)
		assertDecimal(t, "1000", got.TotalCommittedAmount)
		require.Len(t, got.Allocations, 2)
		assert.Equal(t, domain.ChannelEcomm, got.Allocations[0].Channel)
		assertDecimal(t, "400", got.Allocations[0].AllocatedAmount)
		assert.Equal(t, domain.ChannelInline, got.Allocations[1].Channel)
		assertDecimal(t, "600", got.Allocations[1].AllocatedAmount)
	})

	t.Run("get missing contract returns nil", func(t *testing.T) {
		got, err := store.GetContractByID(ctx, 987654321)
		require.NoError(t, err)
		assert.Nil(t, got)

		locked, err := store.GetContractForUpdate(ctx, 987654321)
		require.NoError(t, err)
		assert.Nil(t, locked)
	})

	t.Run("create with unknown style fails", func(t *testing.T) {
		err := store.RunAtomic(ctx, func(tx Store) error {
			return tx.CreateContract(ctx, buildTestContract("NOPE", "10", "alice"))
		})
		assert.Error(t, err)
	})

	t.Run("get contract for update", func(t *testing.T) {
		contract := createTestContract(t, store, testStyle, "500", "500", "")

		locked, err := store.GetContractForUpdate(ctx, contract.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)
		require.Len(t, locked.Allocations, 1)
		assert.Equal(t, domain.ChannelInline, locked.Allocations[0].Channel)
	})

	t.Run("get contract with style", func(t *testing.T) {
		contract := createTestContract(t, store, otherStyle, "200", "100", "100")

		got, err := store.GetContractWithStyle(ctx, contract.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, contract.ID, got.ID)
		require.NotNil(t, got.Season)
		assert.Equal(t, "FW25", *got.Season)
		require.NotNil(t, got.ItemDescription)
		assert.Equal(t, "Description of "+otherStyle, *got.ItemDescription)
		assert.Len(t, got.Allocations, 2)

		missing, err := store.GetContractWithStyle(ctx, 987654321)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update contract writes mutable columns", func(t *testing.T) {
		contract := createTestContract(t, store, testStyle, "1000", "1000", "")

		start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
		contract.Customer = ptr("Globex")
		contract.TotalCommittedAmount = d("1500.50")
		contract.CampaignStartDate = &start
		contract.CampaignEndDate = &end
		require.NoError(t, store.UpdateContract(ctx, contract))

		got, err := store.GetContractByID(ctx, contract.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Customer)
		assert.Equal(t, "Globex", *got.Customer)
		assertDecimal(t, "1500.50", got.TotalCommittedAmount)
		require.NotNil(t, got.CampaignStartDate)
		assert.True(t, start.Equal(got.CampaignStartDate.UTC()))
		require.NotNil(t, got.CampaignEndDate)
		assert.True(t, end.Equal(got.CampaignEndDate.UTC()))
	})

	t.Run("update missing contract", func(t *testing.T) {
		missing := buildTestContract(testStyle, "10", "alice")
		missing.ID = 987654321
		err := store.UpdateContract(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
	})

	t.Run("campaign range is enforced by the table", func(t *testing.T) {
		contract := buildTestContract(testStyle, "10", "alice")
		contract.CampaignStartDate = ptr(time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))
		contract.CampaignEndDate = ptr(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
		err := store.RunAtomic(ctx, func(tx Store) error {
			return tx.CreateContract(ctx, contract)
		})
		assert.Error(t, err)
	})

	t.Run("delete contract requires owned allocations to be removed first", func(t *testing.T) {
		contract := createTestContract(t, store, testStyle, "1000", "600", "400")

		err := store.RunAtomic(ctx, func(tx Store) error {
			_, err := tx.DeleteContract(ctx, contract.ID)
			return err
		})
		assert.Error(t, err, "the foreign key has no cascading action")

		deleted, err := store.DeleteAllocationsByContractID(ctx, contract.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		ok, err := store.DeleteContract(ctx, contract.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.DeleteContract(ctx, contract.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.GetContractByID(ctx, contract.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testListContracts(t *testing.T, store Store) {
	ctx := context.Background()

	first := createTestContract(t, store, testStyle, "1000", "600", "400")
	second := createTestContract(t, store, otherStyle, "2000", "", "2000")

	third := buildTestContract(testStyle, "300", "bob")
	third.Scope = domain.ScopeAllStyle
	third.Customer = ptr("Initech")
	require.NoError(t, store.CreateContract(ctx, third))

	t.Run("no filter returns newest first with allocations", func(t *testing.T) {
		rows, total, err := store.ListContracts(ctx, ContractQueryFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, rows, 3)
		assert.Equal(t, third.ID, rows[0].ID)
		assert.Equal(t, second.ID, rows[1].ID)
		assert.Equal(t, first.ID, rows[2].ID)
		assert.Empty(t, rows[0].Allocations)
		assert.Len(t, rows[1].Allocations, 1)
		assert.Len(t, rows[2].Allocations, 2)
		require.NotNil(t, rows[1].Season)
		assert.Equal(t, "FW25", *rows[1].Season)
	})

	t.Run("filter by creator", func(t *testing.T) {
		rows, total, err := store.ListContracts(ctx, ContractQueryFilter{CreatedBy: ptr("bob")})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, third.ID, rows[0].ID)
	})

	t.Run("filter by style matches description case insensitively", func(t *testing.T) {
		rows, total, err := store.ListContracts(ctx, ContractQueryFilter{Style: ptr("description of st-2002")})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, second.ID, rows[0].ID)
	})

	t.Run("filter by customer substring", func(t *testing.T) {
		rows, total, err := store.ListContracts(ctx, ContractQueryFilter{Customer: ptr("acme")})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, rows, 2)
	})

	t.Run("filter by season and business line", func(t *testing.T) {
		_, total, err := store.ListContracts(ctx, ContractQueryFilter{Season: ptr("SS25")})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)

		_, total, err = store.ListContracts(ctx, ContractQueryFilter{BusinessLine: ptr("Apparel")})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
	})

	t.Run("filter by scope with keyset paging", func(t *testing.T) {
		scope := domain.ScopeChannel
		rows, total, err := store.ListContracts(ctx, ContractQueryFilter{Scope: &scope, AfterID: ptr(first.ID - 1), Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 1)
		assert.Equal(t, first.ID, rows[0].ID)

		rows, _, err = store.ListContracts(ctx, ContractQueryFilter{Scope: &scope, AfterID: &first.ID, Limit: 1})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, second.ID, rows[0].ID)
	})

	t.Run("limit and offset", func(t *testing.T) {
		rows, total, err := store.ListContracts(ctx, ContractQueryFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, rows, 1)
		assert.Equal(t, second.ID, rows[0].ID)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		rows, total, err := store.ListContracts(ctx, ContractQueryFilter{CreatedBy: ptr("nobody")})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("export flattens allocations", func(t *testing.T) {
		rows, err := store.ExportContracts(ctx, []int64{first.ID, third.ID})
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, first.ID, rows[0].ContractID)
		require.NotNil(t, rows[0].Channel)
		assert.Equal(t, domain.ChannelEcomm, *rows[0].Channel)
		assertDecimal(t, "400", *rows[0].AllocatedAmount)
		assert.Equal(t, domain.ChannelInline, *rows[1].Channel)

		assert.Equal(t, third.ID, rows[2].ContractID)
		assert.Nil(t, rows[2].Channel)
		assert.Nil(t, rows[2].AllocatedAmount)
		require.NotNil(t, rows[2].Season)
		assert.Equal(t, "SS25", *rows[2].Season)

		empty, err := store.ExportContracts(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

// =============================================================================
// Allocations
// =============================================================================

func testAllocations(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("duplicate channel is rejected", func(t *testing.T) {
		contract := createTestContract(t, store, testStyle, "1000", "600", "")

		err := store.RunAtomic(ctx, func(tx Store) error {
			return tx.CreateAllocation(ctx, &schema.Allocation{
				ContractID:      contract.ID,
				Channel:         domain.ChannelInline,
				AllocatedAmount: d("100"),
			})
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateAllocation)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("get, lock, update and delete", func(t *testing.T) {
		contract := createTestContract(t, store, testStyle, "1000", "600", "400")
		got, err := store.GetContractByID(ctx, contract.ID)
		require.NoError(t, err)
		allocationID := got.Allocations[0].ID

		allocation, err := store.GetAllocationByID(ctx, allocationID)
		require.NoError(t, err)
		require.NotNil(t, allocation)
		assert.Equal(t, contract.ID, allocation.ContractID)

		locked, err := store.GetAllocationForUpdate(ctx, allocationID)
		require.NoError(t, err)
		require.NotNil(t, locked)

		updated, err := store.UpdateAllocationAmount(ctx, allocationID, d("450.25"))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assertDecimal(t, "450.25", updated.AllocatedAmount)
		assert.Equal(t, contract.ID, updated.ContractID)
		assert.Equal(t, allocation.Channel, updated.Channel)

		ok, err := store.DeleteAllocation(ctx, allocationID)
		require.NoError(t, err)
		assert.True(t, ok)

		missing, err := store.GetAllocationByID(ctx, allocationID)
		require.NoError(t, err)
		assert.Nil(t, missing)

		ok, err = store.DeleteAllocation(ctx, allocationID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("update missing allocation returns nil", func(t *testing.T) {
		updated, err := store.UpdateAllocationAmount(ctx, 987654321, d("1"))
		require.NoError(t, err)
		assert.Nil(t, updated)

		locked, err := store.GetAllocationForUpdate(ctx, 987654321)
		require.NoError(t, err)
		assert.Nil(t, locked)
	})

	t.Run("totals", func(t *testing.T) {
		contract := createTestContract(t, store, testStyle, "10000", "7000", "5000")

		totals, err := store.GetAllocationTotals(ctx, contract.ID)
		require.NoError(t, err)
		require.NotNil(t, totals)
		assert.Equal(t, contract.ID, totals.ContractID)
		assertDecimal(t, "10000", totals.TotalCommittedAmount)
		assertDecimal(t, "12000", totals.TotalAllocated)

		bare := createTestContract(t, store, testStyle, "50", "", "")
		totals, err = store.GetAllocationTotals(ctx, bare.ID)
		require.NoError(t, err)
		require.NotNil(t, totals)
		assertDecimal(t, "0", totals.TotalAllocated)

		missing, err := store.GetAllocationTotals(ctx, 987654321)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func testAllocationBalances(t *testing.T, store Store) {
	ctx := context.Background()

	first := createTestContract(t, store, testStyle, "10000", "5000", "5000")
	second := createTestContract(t, store, otherStyle, "3000", "3000", "")

	firstFull, err := store.GetContractByID(ctx, first.ID)
	require.NoError(t, err)
	ecomm, inline := firstFull.Allocations[0], firstFull.Allocations[1]
	pgtest.SeedSpend(t, txDB(store).db, inline.ID, "4750")
	pgtest.SeedSpend(t, txDB(store).db, ecomm.ID, "1000")

	t.Run("balance joins spend and style", func(t *testing.T) {
		balance, err := store.GetAllocationBalance(ctx, inline.ID)
		require.NoError(t, err)
		require.NotNil(t, balance)
		assertDecimal(t, "5000", balance.AllocatedAmount)
		assertDecimal(t, "4750", balance.SpentAmount)
		assertDecimal(t, "250", balance.RemainingBalance)
		assert.Equal(t, testStyle, balance.StyleNumber)
		assert.Equal(t, domain.ScopeChannel, balance.Scope)
	})

	t.Run("no spend means zero spent", func(t *testing.T) {
		secondFull, err := store.GetContractByID(ctx, second.ID)
		require.NoError(t, err)

		balance, err := store.GetAllocationBalance(ctx, secondFull.Allocations[0].ID)
		require.NoError(t, err)
		require.NotNil(t, balance)
		assertDecimal(t, "0", balance.SpentAmount)
		assertDecimal(t, "3000", balance.RemainingBalance)
	})

	t.Run("missing balance", func(t *testing.T) {
		balance, err := store.GetAllocationBalance(ctx, 987654321)
		require.NoError(t, err)
		assert.Nil(t, balance)
	})

	t.Run("list by contract and channel", func(t *testing.T) {
		rows, total, err := store.ListAllocationBalances(ctx, AllocationQueryFilter{ContractID: &first.ID})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, rows, 2)

		channel := domain.ChannelInline
		rows, total, err = store.ListAllocationBalances(ctx, AllocationQueryFilter{Channel: &channel})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		for _, row := range rows {
			assert.Equal(t, domain.ChannelInline, row.Channel)
		}

		rows, total, err = store.ListAllocationBalances(ctx, AllocationQueryFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, rows, 1)
	})
}

// =============================================================================
// Audit log
// =============================================================================

func testAuditEntries(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	contractA, contractB := int64(1), int64(2)

	entries := []*schema.AuditEntry{
		{EventID: "01JA0000000000000000000001", ContractID: &contractA, ActionType: domain.ActionContractCreate, ActorID: "alice", Payload: datatypes.JSON(`{"contract":{"id":1}}`), Timestamp: base},
		{EventID: "01JA0000000000000000000002", ContractID: &contractA, ActionType: domain.ActionContractUpdate, ActorID: "bob", Payload: datatypes.JSON(`{}`), Timestamp: base.Add(time.Minute)},
		{EventID: "01JA0000000000000000000003", ContractID: &contractB, ActionType: domain.ActionContractCreate, ActorID: "alice", Payload: datatypes.JSON(`{}`), Timestamp: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, store.CreateAuditEntry(ctx, e))
		assert.NotZero(t, e.ID)
	}

	t.Run("filter by contract newest first", func(t *testing.T) {
		rows, total, err := store.GetAuditEntries(ctx, AuditQueryFilter{ContractID: &contractA})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 2)
		assert.Equal(t, domain.ActionContractUpdate, rows[0].ActionType)
		assert.Equal(t, domain.ActionContractCreate, rows[1].ActionType)
		assert.JSONEq(t, `{"contract":{"id":1}}`, string(rows[1].Payload))
	})

	t.Run("filter by actor and action", func(t *testing.T) {
		actor := "alice"
		action := domain.ActionContractCreate
		rows, total, err := store.GetAuditEntries(ctx, AuditQueryFilter{ActorID: &actor, ActionType: &action, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, rows, 1)
		assert.Equal(t, &contractB, rows[0].ContractID)
	})

	t.Run("unknown action type violates the check constraint", func(t *testing.T) {
		err := store.RunAtomic(ctx, func(tx Store) error {
			return tx.CreateAuditEntry(ctx, &schema.AuditEntry{
				EventID:    "01JA0000000000000000000009",
				ActionType: domain.ActionType("bogus"),
				ActorID:    "alice",
				Timestamp:  base,
			})
		})
		assert.Error(t, err)

		_, total, err := store.GetAuditEntries(ctx, AuditQueryFilter{})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total, "the outer transaction survives the failed savepoint")
	})
}

// =============================================================================
// Drafts
// =============================================================================

func testDrafts(t *testing.T, store Store) {
	ctx := context.Background()

	older := &schema.ContractDraft{ActorID: "alice", FormData: datatypes.JSON(`{"style_number":"ST-1"}`)}
	require.NoError(t, store.CreateDraft(ctx, older))
	newer := &schema.ContractDraft{ActorID: "alice", FormData: datatypes.JSON(`{"style_number":"ST-2"}`)}
	require.NoError(t, store.CreateDraft(ctx, newer))
	other := &schema.ContractDraft{ActorID: "bob", FormData: datatypes.JSON(`{}`)}
	require.NoError(t, store.CreateDraft(ctx, other))

	t.Run("latest draft by actor", func(t *testing.T) {
		latest, err := store.GetLatestDraftByActor(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, newer.ID, latest.ID)

		none, err := store.GetLatestDraftByActor(ctx, "carol")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("update draft", func(t *testing.T) {
		older.FormData = datatypes.JSON(`{"style_number":"ST-1","customer":"Acme"}`)
		older.ValidationErrors = datatypes.JSONMap{"customer": "too long"}
		require.NoError(t, store.UpdateDraft(ctx, older))

		got, err := store.GetDraftByID(ctx, older.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.JSONEq(t, `{"style_number":"ST-1","customer":"Acme"}`, string(got.FormData))
		assert.Equal(t, "too long", got.ValidationErrors["customer"])

		missing := &schema.ContractDraft{ID: 987654321, FormData: datatypes.JSON(`{}`)}
		assert.ErrorIs(t, store.UpdateDraft(ctx, missing), domain.ErrDraftNotFound)
	})

	t.Run("delete drafts by actor keeps the given draft", func(t *testing.T) {
		deleted, err := store.DeleteDraftsByActor(ctx, "alice", &newer.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		gone, err := store.GetDraftByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		kept, err := store.GetDraftByID(ctx, newer.ID)
		require.NoError(t, err)
		assert.NotNil(t, kept)

		stillThere, err := store.GetDraftByID(ctx, other.ID)
		require.NoError(t, err)
		assert.NotNil(t, stillThere)
	})

	t.Run("delete draft", func(t *testing.T) {
		ok, err := store.DeleteDraft(ctx, other.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.DeleteDraft(ctx, other.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

// =============================================================================
// Atomic blocks
// =============================================================================

func testRunAtomic(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("error rolls back every write", func(t *testing.T) {
		var contractID int64
		boom := errors.New("boom")

		err := store.RunAtomic(ctx, func(tx Store) error {
			contract := buildTestContract(testStyle, "1000", "alice")
			if err := tx.CreateContract(ctx, contract); err != nil {
				return err
			}
			contractID = contract.ID
			if err := tx.CreateAllocation(ctx, &schema.Allocation{
				ContractID: contract.ID, Channel: domain.ChannelInline, AllocatedAmount: d("1000"),
			}); err != nil {
				return err
			}
			return boom
		})

		var txErr *domain.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.ErrorIs(t, err, boom)
		require.NotZero(t, contractID)

		got, err := store.GetContractByID(ctx, contractID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("success commits", func(t *testing.T) {
		var contractID int64
		err := store.RunAtomic(ctx, func(tx Store) error {
			contract := buildTestContract(testStyle, "10", "alice")
			if err := tx.CreateContract(ctx, contract); err != nil {
				return err
			}
			contractID = contract.ID
			return nil
		})
		require.NoError(t, err)

		got, err := store.GetContractByID(ctx, contractID)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("failed inner block keeps outer work", func(t *testing.T) {
		var outerID, innerID int64
		err := store.RunAtomic(ctx, func(tx Store) error {
			outer := buildTestContract(testStyle, "10", "alice")
			if err := tx.CreateContract(ctx, outer); err != nil {
				return err
			}
			outerID = outer.ID

			innerErr := tx.RunAtomic(ctx, func(inner Store) error {
				contract := buildTestContract(testStyle, "20", "alice")
				if err := inner.CreateContract(ctx, contract); err != nil {
					return err
				}
				innerID = contract.ID
				return domain.ErrContractNotFound
			})
			assert.ErrorIs(t, innerErr, domain.ErrContractNotFound)
			return nil
		})
		require.NoError(t, err)

		outer, err := store.GetContractByID(ctx, outerID)
		require.NoError(t, err)
		assert.NotNil(t, outer)

		inner, err := store.GetContractByID(ctx, innerID)
		require.NoError(t, err)
		assert.Nil(t, inner)
	})

	t.Run("validation errors pass through", func(t *testing.T) {
		verrs := domain.ValidationErrors{"allocations": "must equal total committed amount"}
		err := store.RunAtomic(ctx, func(tx Store) error {
			return verrs
		})
		got, ok := domain.AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, verrs, got)
	})
}

// =============================================================================
// Migrations bookkeeping
// =============================================================================

func testMigrationBookkeeping(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.EnsureMigrationsTable(ctx))
	require.NoError(t, store.EnsureMigrationsTable(ctx), "creating the table is idempotent")

	require.NoError(t, store.ExecMigration(ctx, `
		CREATE TABLE bookkeeping_probe (id INT);
		INSERT INTO bookkeeping_probe VALUES (1), (2);
	`))
	require.NoError(t, store.RecordMigration(ctx, "010_probe.sql", 10))
	require.NoError(t, store.RecordMigration(ctx, "002_second.sql", 2))

	executed, err := store.GetExecutedMigrations(ctx)
	require.NoError(t, err)
	require.Len(t, executed, 2)
	assert.Equal(t, "002_second.sql", executed[0].Filename)
	assert.Equal(t, 2, executed[0].Version)
	assert.Equal(t, "010_probe.sql", executed[1].Filename)
	assert.False(t, executed[1].ExecutedAt.IsZero())

	err = store.RunAtomic(ctx, func(tx Store) error {
		return tx.RecordMigration(ctx, "010_probe.sql", 10)
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	var count int64
	require.NoError(t, txDB(store).db.Raw("SELECT COUNT(*) FROM bookkeeping_probe").Scan(&count).Error)
	assert.Equal(t, int64(2), count)
}

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Styles", testStyles},
		{"Contracts", testContracts},
		{"ListContracts", testListContracts},
		{"Allocations", testAllocations},
		{"AllocationBalances", testAllocationBalances},
		{"AuditEntries", testAuditEntries},
		{"Drafts", testDrafts},
		{"RunAtomic", testRunAtomic},
		{"MigrationBookkeeping", testMigrationBookkeeping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
