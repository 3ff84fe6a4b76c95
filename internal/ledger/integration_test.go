package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bburrets/mdf-contract-management/internal/adapter"
	"github.com/bburrets/mdf-contract-management/internal/allocation"
	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
	"github.com/bburrets/mdf-contract-management/internal/testutil/pgtest"
)

const integrationActor = "planner@example.com"

var (
	testDB      *pgtest.Database
	testDBErr   error
	testDBStart sync.Once
)

// TestMain terminates the test database when an integration test started it
func TestMain(m *testing.M) {
	code := m.Run()

	if testDB != nil {
		testDB.Terminate(context.Background())
	}

	os.Exit(code)
}

// database starts the shared test database on first use so the mock based tests run without it
func database(t *testing.T) *pgtest.Database {
	t.Helper()

	testDBStart.Do(func() {
		testDB, testDBErr = pgtest.Start(context.Background())
	})
	if testDBErr != nil {
		t.Fatalf("Failed to set up test database: %v", testDBErr)
	}
	return testDB
}

type integrationLedger struct {
	db      *gorm.DB
	store   store.Store
	service ledger.Service
}

// setupIntegration builds the ledger over a transaction that is rolled back after the test
func setupIntegration(t *testing.T) *integrationLedger {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	tx := database(t).Tx(t)
	pgtest.SeedStyle(t, tx, "ST-1001", "SS25", "Footwear")

	return newIntegrationLedger(tx, store.NewPGStore(tx))
}

func newIntegrationLedger(db *gorm.DB, st store.Store) *integrationLedger {
	clock := adapter.NewClock()
	recorder := audit.NewRecorder(st, clock, adapter.NewJSON())
	return &integrationLedger{
		db:      db,
		store:   st,
		service: ledger.New(st, recorder, clock, adapter.NewJSON()),
	}
}

func countWhere(t *testing.T, db *gorm.DB, query string, args ...any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Raw(query, args...).Scan(&count).Error)
	return count
}

func auditRecords(t *testing.T, svc ledger.Service, contractID int64, action domain.ActionType) []audit.Record {
	t.Helper()
	page, err := svc.QueryAudit(context.Background(), audit.Filter{ContractID: &contractID, ActionType: &action}, 0, 0)
	require.NoError(t, err)
	return page.Records
}

func TestLedger_Integration_ExactSplitIsFullyAllocated(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()

	id, err := il.service.CreateContract(ctx, channelInput("1000", "600", "400"), integrationActor)
	require.NoError(t, err)

	validation, err := il.service.ValidateAllocationAmounts(ctx, id)
	require.NoError(t, err)
	assertDecimal(t, "1000", validation.TotalAllocated)
	assertDecimal(t, "0", validation.RemainingToAllocate)
	assert.True(t, validation.IsFullyAllocated)
	assert.False(t, validation.IsOverAllocated)

	contract, err := il.service.GetContract(ctx, id, integrationActor)
	require.NoError(t, err)
	require.Len(t, contract.Allocations, 2)
	assert.Equal(t, "SS25", *contract.Season)

	created := auditRecords(t, il.service, id, domain.ActionContractCreate)
	require.Len(t, created, 1)
	payload, ok := created[0].Payload.(*audit.ContractCreated)
	require.True(t, ok)
	assert.Equal(t, "ST-1001", payload.Contract.StyleNumber)
	assert.Len(t, payload.Contract.Allocations, 2)

	assert.Len(t, auditRecords(t, il.service, id, domain.ActionContractView), 1)
}

func TestLedger_Integration_MismatchedSplitPersistsNothing(t *testing.T) {
	il := setupIntegration(t)

	_, err := il.service.CreateContract(context.Background(), channelInput("1000", "600", "500"), integrationActor)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["allocations"], "must equal total committed amount")
	assert.Zero(t, countWhere(t, il.db, "SELECT COUNT(*) FROM contracts WHERE style_number = ?", "ST-1001"))
	assert.Zero(t, countWhere(t, il.db, "SELECT COUNT(*) FROM audit_log WHERE action_type = ?", domain.ActionContractCreate))
}

func TestLedger_Integration_PresetSplit(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()

	preset, err := allocation.ParsePreset("60/40")
	require.NoError(t, err)
	split := preset.Apply(d("1000"))

	in := channelInput("1000", split.InlineAmount.String(), split.EcommAmount.String())
	in.Allocations.InlinePercentage = &split.InlinePercentage
	in.Allocations.EcommPercentage = &split.EcommPercentage

	id, err := il.service.CreateContract(ctx, in, integrationActor)
	require.NoError(t, err)

	page, err := il.service.ListAllocations(ctx, store.AllocationQueryFilter{ContractID: &id})
	require.NoError(t, err)
	require.Len(t, page.Allocations, 2)
	amounts := map[domain.Channel]decimal.Decimal{}
	for _, a := range page.Allocations {
		amounts[a.Channel] = a.AllocatedAmount
	}
	assertDecimal(t, "600", amounts[domain.ChannelInline])
	assertDecimal(t, "400", amounts[domain.ChannelEcomm])
}

func TestLedger_Integration_AcceptedSplitsStayWithinTolerance(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(20250601))

	for i := 0; i < 25; i++ {
		total := decimal.New(rng.Int63n(10_000_000)+100, -2)
		inlinePct := decimal.New(rng.Int63n(100_001), -3)
		split := allocation.FromPercentage(total, inlinePct)

		in := channelInput(total.String(), split.InlineAmount.String(), split.EcommAmount.String())
		in.Allocations.InlinePercentage = &split.InlinePercentage
		in.Allocations.EcommPercentage = &split.EcommPercentage

		id, err := il.service.CreateContract(ctx, in, integrationActor)
		if err != nil {
			var verrs domain.ValidationErrors
			require.ErrorAs(t, err, &verrs, "total %s at %s%%", total, inlinePct)
			continue
		}

		validation, err := il.service.ValidateAllocationAmounts(ctx, id)
		require.NoError(t, err)
		assert.True(t, validation.RemainingToAllocate.Abs().LessThanOrEqual(domain.Tolerance),
			"total %s at %s%% left %s unallocated", total, inlinePct, validation.RemainingToAllocate)
	}
}

func TestLedger_Integration_NearingLimit(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()

	id, err := il.service.CreateContract(ctx, channelInput("10000", "5000", "5000"), integrationActor)
	require.NoError(t, err)

	page, err := il.service.ListAllocations(ctx, store.AllocationQueryFilter{ContractID: &id})
	require.NoError(t, err)
	require.Len(t, page.Allocations, 2)

	var inlineID, ecommID int64
	for _, a := range page.Allocations {
		if a.Channel == domain.ChannelInline {
			inlineID = a.ID
		} else {
			ecommID = a.ID
		}
	}
	pgtest.SeedSpend(t, il.db, inlineID, "4750")
	pgtest.SeedSpend(t, il.db, ecommID, "1000")

	nearing, err := il.service.GetNearingLimit(ctx, d("90"))
	require.NoError(t, err)

	var ids []int64
	for _, u := range nearing {
		if u.ContractID == id {
			ids = append(ids, u.ID)
			assertDecimal(t, "95", u.UtilizationPercentage)
			assertDecimal(t, "250", u.RemainingBalance)
		}
	}
	assert.Equal(t, []int64{inlineID}, ids)

	balance, err := il.service.GetAllocation(ctx, ecommID)
	require.NoError(t, err)
	assertDecimal(t, "4000", balance.RemainingBalance)
	assert.Equal(t, "ST-1001", balance.StyleNumber)
}

func TestLedger_Integration_OverAllocation(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()

	id, err := il.service.CreateContract(ctx, channelInput("10000", "7000", "3000"), integrationActor)
	require.NoError(t, err)

	page, err := il.service.ListAllocations(ctx, store.AllocationQueryFilter{
		ContractID: &id,
		Channel:    ptr(domain.ChannelEcomm),
	})
	require.NoError(t, err)
	require.Len(t, page.Allocations, 1)

	updated, err := il.service.UpdateAllocation(ctx, page.Allocations[0].ID, d("5000"), integrationActor)
	require.NoError(t, err)
	assertDecimal(t, "5000", updated.AllocatedAmount)

	validation, err := il.service.ValidateAllocationAmounts(ctx, id)
	require.NoError(t, err)
	assertDecimal(t, "12000", validation.TotalAllocated)
	assertDecimal(t, "-2000", validation.RemainingToAllocate)
	assert.True(t, validation.IsOverAllocated)
	assert.False(t, validation.IsFullyAllocated)

	updates := auditRecords(t, il.service, id, domain.ActionAllocationUpdate)
	require.Len(t, updates, 1)
	payload, ok := updates[0].Payload.(*audit.AllocationUpdated)
	require.True(t, ok)
	assertDecimal(t, "3000", payload.Before)
	assertDecimal(t, "5000", payload.After)
}

func TestLedger_Integration_DuplicateChannel(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()

	id, err := il.service.CreateContract(ctx, channelInput("1000", "1000", "0"), integrationActor)
	require.NoError(t, err)

	_, err = il.service.CreateAllocation(ctx, id, domain.ChannelInline, d("10"), integrationActor)
	assert.ErrorIs(t, err, domain.ErrDuplicateAllocation)

	created, err := il.service.CreateAllocation(ctx, id, domain.ChannelEcomm, d("0"), integrationActor)
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelEcomm, created.Channel)
	assert.Len(t, auditRecords(t, il.service, id, domain.ActionAllocationCreate), 1)
}

var errInjected = errors.New("injected fault")

// faultingStore fails the n-th CreateAllocation made through it or any transaction it opens
type faultingStore struct {
	store.Store
	failAt int
	calls  *int
}

func (f *faultingStore) RunAtomic(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.RunAtomic(ctx, func(tx store.Store) error {
		return fn(&faultingStore{Store: tx, failAt: f.failAt, calls: f.calls})
	})
}

func (f *faultingStore) CreateAllocation(ctx context.Context, a *schema.Allocation) error {
	*f.calls++
	if *f.calls == f.failAt {
		return errInjected
	}
	return f.Store.CreateAllocation(ctx, a)
}

func TestLedger_Integration_CreateIsAtomic(t *testing.T) {
	il := setupIntegration(t)
	calls := 0
	faulty := newIntegrationLedger(il.db, &faultingStore{Store: il.store, failAt: 2, calls: &calls})

	_, err := faulty.service.CreateContract(context.Background(), channelInput("1000", "600", "400"), integrationActor)
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, 2, calls)

	assert.Zero(t, countWhere(t, il.db, "SELECT COUNT(*) FROM contracts WHERE style_number = ?", "ST-1001"))
	assert.Zero(t, countWhere(t, il.db,
		"SELECT COUNT(*) FROM allocations a JOIN contracts c ON c.id = a.contract_id WHERE c.style_number = ?", "ST-1001"))
	assert.Zero(t, countWhere(t, il.db, "SELECT COUNT(*) FROM audit_log WHERE action_type = ? AND actor_id = ?",
		domain.ActionContractCreate, integrationActor))
}

func TestLedger_Integration_UpdateAndDelete(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()

	id, err := il.service.CreateContract(ctx, channelInput("10000", "6000", "4000"), integrationActor)
	require.NoError(t, err)

	updated, err := il.service.UpdateContract(ctx, id, ledger.UpdateContractInput{
		Customer:             ptr("Northwind"),
		TotalCommittedAmount: ptr(d("12000")),
	}, integrationActor)
	require.NoError(t, err)
	assert.Equal(t, "Northwind", *updated.Customer)
	assertDecimal(t, "12000", updated.TotalCommittedAmount)

	// Raising the total leaves the existing allocations as they were
	validation, err := il.service.ValidateAllocationAmounts(ctx, id)
	require.NoError(t, err)
	assertDecimal(t, "2000", validation.RemainingToAllocate)
	assert.False(t, validation.IsFullyAllocated)

	require.NoError(t, il.service.DeleteContract(ctx, id, integrationActor))

	_, err = il.service.GetContract(ctx, id, "")
	assert.ErrorIs(t, err, domain.ErrContractNotFound)
	assert.Zero(t, countWhere(t, il.db, "SELECT COUNT(*) FROM allocations WHERE contract_id = ?", id))

	deleted := auditRecords(t, il.service, id, domain.ActionContractDelete)
	require.Len(t, deleted, 1)
	payload, ok := deleted[0].Payload.(*audit.ContractDeleted)
	require.True(t, ok)
	assert.Equal(t, id, payload.Contract.ID)
	assert.Len(t, payload.Contract.Allocations, 2)
	assertDecimal(t, "12000", payload.Contract.TotalCommittedAmount)

	// History outlives the contract
	assert.Len(t, auditRecords(t, il.service, id, domain.ActionContractUpdate), 1)
	assert.Len(t, auditRecords(t, il.service, id, domain.ActionContractCreate), 1)
}

func TestLedger_Integration_Drafts(t *testing.T) {
	il := setupIntegration(t)
	ctx := context.Background()

	first, err := il.service.SaveDraft(ctx, integrationActor, ledger.SaveDraftInput{FormData: []byte(partialForm)})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.NotEmpty(t, first.ValidationErrors)

	second, err := il.service.SaveDraft(ctx, integrationActor, ledger.SaveDraftInput{FormData: []byte(completeForm)})
	require.NoError(t, err)
	assert.True(t, second.Created)
	assert.Empty(t, second.ValidationErrors)
	assert.Equal(t, int64(1), countWhere(t, il.db, "SELECT COUNT(*) FROM contract_drafts WHERE actor_id = ?", integrationActor))

	_, err = il.service.SaveDraft(ctx, "someone-else", ledger.SaveDraftInput{
		DraftID:  &second.Draft.ID,
		FormData: []byte(completeForm),
	})
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	resumed, err := il.service.ResumeDraft(ctx, integrationActor)
	require.NoError(t, err)
	assert.Equal(t, second.Draft.ID, resumed.ID)
	assert.JSONEq(t, completeForm, string(resumed.FormData))

	removed, err := il.service.CleanupDrafts(ctx, integrationActor)
	require.NoError(t, err)
	assert.Zero(t, removed)

	require.NoError(t, il.service.DeleteDraft(ctx, second.Draft.ID, integrationActor))
	_, err = il.service.ResumeDraft(ctx, integrationActor)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	page, err := il.service.QueryAudit(ctx, audit.Filter{ActorID: ptr(integrationActor)}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), page.Total)
}

// Concurrent updates commit for real, so this test works outside the per-test transaction
func TestLedger_Integration_ConcurrentUpdatesKeepAuditChain(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	db := database(t).DB
	ctx := context.Background()

	style := "ST-CONCURRENT"
	pgtest.SeedStyle(t, db, style, "FW25", "Apparel")
	il := newIntegrationLedger(db, store.NewPGStore(db))

	in := channelInput("1000", "500", "500")
	in.StyleNumber = style
	id, err := il.service.CreateContract(ctx, in, integrationActor)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Exec("DELETE FROM audit_log WHERE contract_id = ?", id)
		db.Exec("DELETE FROM allocations WHERE contract_id = ?", id)
		db.Exec("DELETE FROM contracts WHERE id = ?", id)
		db.Exec("DELETE FROM styles WHERE style_number = ?", style)
	})

	const writers = 4
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = il.service.UpdateContract(ctx, id, ledger.UpdateContractInput{
				Customer:             ptr(fmt.Sprintf("Customer %d", i)),
				TotalCommittedAmount: ptr(decimal.NewFromInt(int64(1100 + i*100))),
			}, fmt.Sprintf("writer-%d", i))
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	records := auditRecords(t, il.service, id, domain.ActionContractUpdate)
	require.Len(t, records, writers)

	// Records come newest first; each update must start from what the previous one wrote
	var previous *audit.ContractUpdated
	for i := len(records) - 1; i >= 0; i-- {
		payload, ok := records[i].Payload.(*audit.ContractUpdated)
		require.True(t, ok)

		if previous == nil {
			assertDecimal(t, "1000", payload.Before.TotalCommittedAmount)
		} else {
			assertDecimal(t, previous.After.TotalCommittedAmount.String(), payload.Before.TotalCommittedAmount)
			assert.Equal(t, *previous.After.Customer, *payload.Before.Customer)
		}
		previous = payload
	}

	final, err := il.service.GetContract(ctx, id, "")
	require.NoError(t, err)
	assertDecimal(t, previous.After.TotalCommittedAmount.String(), final.TotalCommittedAmount)
	assert.Equal(t, *previous.After.Customer, *final.Customer)
}
