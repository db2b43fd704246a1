package commands_test

import (
	"errors"
	"testing"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var assignTestNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func pendingParcel(t *testing.T, kind parcel.Kind) *parcel.Parcel {
	t.Helper()
	instructions := ""
	if kind == parcel.KindFragile {
		instructions = "keep upright"
	}
	p, err := parcel.NewParcel(kernel.NewUUID(), kind, 3, "7 Dock Road", instructions, nil, nil, assignTestNow)
	require.NoError(t, err)
	return p
}

func availableTransporter(t *testing.T, login string, specialty account.Specialty) *account.Account {
	t.Helper()
	a, err := account.NewAccount(kernel.NewUUID(), login, "hash", account.RoleTransporter, &specialty, assignTestNow)
	require.NoError(t, err)
	return a
}

func TestAssignParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignParcelCommand()

	testParcel := pendingParcel(t, parcel.KindStandard)
	transporter := availableTransporter(t, "std1", account.SpecialtyStandard)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetFirstPending", ctx).Return(testParcel, nil).Once(),
		accountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyStandard).
			Return([]*account.Account{transporter}, nil).
			Once(),
		accountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery).
			Return(nil).
			Once(),
		parcelRepo.On("UpdateIfStatus", ctx, testParcel, parcel.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.StatusInTransit, testParcel.Status())
	require.NotNil(t, testParcel.Transporter())
	assert.True(t, testParcel.Transporter().IsEqual(transporter.ID()))

	accountRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignParcelCommandHandler_Handle_ExplicitParcel(t *testing.T) {
	ctx := t.Context()

	testParcel := pendingParcel(t, parcel.KindFragile)
	transporter := availableTransporter(t, "frg1", account.SpecialtyFragile)

	cmd, err := commands.NewAssignParcelCommandForParcel(testParcel.ID())
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		accountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyFragile).
			Return([]*account.Account{transporter}, nil).
			Once(),
		accountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery).
			Return(nil).
			Once(),
		parcelRepo.On("UpdateIfStatus", ctx, testParcel, parcel.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	parcelRepo.AssertNotCalled(t, "GetFirstPending", mock.Anything)
}

func TestAssignParcelCommandHandler_Handle_ExplicitParcelNotFound(t *testing.T) {
	ctx := t.Context()

	missingID := kernel.NewUUID()
	cmd, err := commands.NewAssignParcelCommandForParcel(missingID)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, missingID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Explicit mode keeps the not-found error so callers can answer 404.
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NotErrorIs(t, err, commands.ErrNoParcelFound)
}

func TestAssignParcelCommandHandler_Handle_NoPendingParcel(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignParcelCommand()

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetFirstPending", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoParcelFound)
}

func TestAssignParcelCommandHandler_Handle_NoEligibleTransporter(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignParcelCommand()

	testParcel := pendingParcel(t, parcel.KindStandard)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetFirstPending", ctx).Return(testParcel, nil).Once(),
		accountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyStandard).
			Return([]*account.Account{}, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoEligibleTransporter)
	assert.Equal(t, parcel.StatusPending, testParcel.Status())
}

func TestAssignParcelCommandHandler_Handle_RetriesOnLostClaim(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignParcelCommand()

	transporter := availableTransporter(t, "std1", account.SpecialtyStandard)
	conflict := errs.NewConcurrencyConflictError("transporter", transporter.ID().String())

	factory := new(MockUoWFactory)

	// First attempt loses the claim race; the second succeeds against fresh
	// state. Each attempt runs on its own unit of work.
	lostParcel := pendingParcel(t, parcel.KindStandard)
	lostAccountRepo := new(MockAccountRepository)
	lostParcelRepo := new(MockParcelRepository)
	lostUow := new(MockUoW)
	mock.InOrder(
		lostUow.On("Begin", ctx).Return(nil).Once(),
		lostUow.On("AccountRepository").Return(lostAccountRepo).Once(),
		lostUow.On("ParcelRepository").Return(lostParcelRepo).Once(),
		lostParcelRepo.On("GetFirstPending", ctx).Return(lostParcel, nil).Once(),
		lostAccountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyStandard).
			Return([]*account.Account{transporter}, nil).
			Once(),
		lostAccountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery).
			Return(conflict).
			Once(),
		lostUow.On("Rollback", ctx).Return(nil).Once(),
	)

	wonParcel := pendingParcel(t, parcel.KindStandard)
	wonAccountRepo := new(MockAccountRepository)
	wonParcelRepo := new(MockParcelRepository)
	wonUow := new(MockUoW)
	mock.InOrder(
		wonUow.On("Begin", ctx).Return(nil).Once(),
		wonUow.On("AccountRepository").Return(wonAccountRepo).Once(),
		wonUow.On("ParcelRepository").Return(wonParcelRepo).Once(),
		wonParcelRepo.On("GetFirstPending", ctx).Return(wonParcel, nil).Once(),
		wonAccountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyStandard).
			Return([]*account.Account{transporter}, nil).
			Once(),
		wonAccountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery).
			Return(nil).
			Once(),
		wonParcelRepo.On("UpdateIfStatus", ctx, wonParcel, parcel.StatusPending).Return(nil).Once(),
		wonUow.On("Commit", ctx).Return(nil).Once(),
		wonUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory.On("Create").Return(lostUow).Once()
	factory.On("Create").Return(wonUow).Once()

	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertNumberOfCalls(t, "Create", 2)
}

func TestAssignParcelCommandHandler_Handle_GivesUpAfterThreeConflicts(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignParcelCommand()

	transporter := availableTransporter(t, "std1", account.SpecialtyStandard)
	conflict := errs.NewConcurrencyConflictError("transporter", transporter.ID().String())

	factory := new(MockUoWFactory)

	for range 3 {
		testParcel := pendingParcel(t, parcel.KindStandard)
		accountRepo := new(MockAccountRepository)
		parcelRepo := new(MockParcelRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AccountRepository").Return(accountRepo).Once(),
			uow.On("ParcelRepository").Return(parcelRepo).Once(),
			parcelRepo.On("GetFirstPending", ctx).Return(testParcel, nil).Once(),
			accountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyStandard).
				Return([]*account.Account{transporter}, nil).
				Once(),
			accountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery).
				Return(conflict).
				Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory.On("Create").Return(uow).Once()
	}

	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	factory.AssertNumberOfCalls(t, "Create", 3)
}

func TestAssignParcelCommandHandler_Handle_ReleasesClaimWhenParcelCommitLoses(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignParcelCommand()

	transporter := availableTransporter(t, "std1", account.SpecialtyStandard)

	factory := new(MockUoWFactory)

	for range 3 {
		testParcel := pendingParcel(t, parcel.KindStandard)
		parcelConflict := errs.NewConcurrencyConflictError("parcel", testParcel.ID().String())
		accountRepo := new(MockAccountRepository)
		parcelRepo := new(MockParcelRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("AccountRepository").Return(accountRepo).Once(),
			uow.On("ParcelRepository").Return(parcelRepo).Once(),
			parcelRepo.On("GetFirstPending", ctx).Return(testParcel, nil).Once(),
			accountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyStandard).
				Return([]*account.Account{transporter}, nil).
				Once(),
			accountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery).
				Return(nil).
				Once(),
			parcelRepo.On("UpdateIfStatus", ctx, testParcel, parcel.StatusPending).Return(parcelConflict).Once(),
			accountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusOnDelivery, account.StatusAvailable).
				Return(nil).
				Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory.On("Create").Return(uow).Once()
	}

	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	factory.AssertNumberOfCalls(t, "Create", 3)
}

func TestAssignParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignParcelCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignParcelCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignParcelCommand()

	testParcel := pendingParcel(t, parcel.KindStandard)
	transporter := availableTransporter(t, "std1", account.SpecialtyStandard)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetFirstPending", ctx).Return(testParcel, nil).Once(),
		accountRepo.On("GetAvailableTransporters", ctx, account.SpecialtyStandard).
			Return([]*account.Account{transporter}, nil).
			Once(),
		accountRepo.On("UpdateStatusIf", ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery).
			Return(nil).
			Once(),
		parcelRepo.On("UpdateIfStatus", ctx, testParcel, parcel.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignParcelCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
