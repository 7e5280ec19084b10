package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/adapter/repository/memory"
	"github.com/srgjo27/campus_event/internal/adapter/storage/local"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports/mocks"
	"github.com/srgjo27/campus_event/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngProof = domain.Upload{
	Filename: "transfer.png",
	Data:     append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...),
}

func TestSubmitProof_Success(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockFiles := mocks.NewFileStore(t)
	mockNotifier := mocks.NewNotifier(t)

	service := services.NewPaymentService(mockRegRepo, mockFiles, mockNotifier, zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	reg := &domain.Registration{ID: uuid.New(), UserID: userID, PaymentStatus: domain.PaymentPending}
	url := "/uploads/payment-proofs/a.webp"
	notes := "  transferred via BNI  "

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)
	mockFiles.On("Save", ctx, domain.ProofFolder, pngProof).Return(url, nil)
	mockRegRepo.On("SubmitProof", ctx, reg.ID, userID, url, mock.MatchedBy(func(n *string) bool {
		return n != nil && *n == "transferred via BNI"
	}), mock.AnythingOfType("time.Time")).
		Return(&domain.Registration{ID: reg.ID, UserID: userID, PaymentStatus: domain.PaymentPendingConfirmation, PaymentProofURL: &url}, nil)

	got, err := service.SubmitProof(ctx, services.SubmitProofInput{
		RegistrationID: reg.ID,
		UserID:         userID,
		Proof:          &pngProof,
		Notes:          &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPendingConfirmation, got.PaymentStatus)
	assert.Equal(t, url, *got.PaymentProofURL)
}

func TestSubmitProof_ReuploadDeletesPreviousFile(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockFiles := mocks.NewFileStore(t)

	service := services.NewPaymentService(mockRegRepo, mockFiles, mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	oldURL := "/uploads/payment-proofs/old.webp"
	newURL := "/uploads/payment-proofs/new.webp"
	reg := &domain.Registration{ID: uuid.New(), UserID: userID, PaymentStatus: domain.PaymentPendingConfirmation, PaymentProofURL: &oldURL}

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)
	mockFiles.On("Save", ctx, domain.ProofFolder, pngProof).Return(newURL, nil)
	mockRegRepo.On("SubmitProof", ctx, reg.ID, userID, newURL, (*string)(nil), mock.Anything).
		Return(&domain.Registration{ID: reg.ID, PaymentStatus: domain.PaymentPendingConfirmation, PaymentProofURL: &newURL}, nil)
	mockFiles.On("Delete", ctx, oldURL).Return(nil)

	got, err := service.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: userID, Proof: &pngProof})

	require.NoError(t, err)
	assert.Equal(t, newURL, *got.PaymentProofURL)
}

func TestSubmitProof_Fail_Validation(t *testing.T) {
	tests := []struct {
		name  string
		proof *domain.Upload
	}{
		{"missing", nil},
		{"empty", &domain.Upload{Filename: "a.png"}},
		{"too large", &domain.Upload{Filename: "a.png", Data: append(pngProof.Data, make([]byte, domain.MaxProofSize)...)}},
		{"wrong type", &domain.Upload{Filename: "a.txt", Data: []byte("just some plain text")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := services.NewPaymentService(mocks.NewRegistrationRepository(t), mocks.NewFileStore(t), mocks.NewNotifier(t), zerolog.Nop())

			got, err := service.SubmitProof(context.Background(), services.SubmitProofInput{
				RegistrationID: uuid.New(),
				UserID:         uuid.New(),
				Proof:          tt.proof,
			})

			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSubmitProof_AcceptsPDF(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockFiles := mocks.NewFileStore(t)

	service := services.NewPaymentService(mockRegRepo, mockFiles, mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	reg := &domain.Registration{ID: uuid.New(), UserID: userID, PaymentStatus: domain.PaymentPending}
	pdf := domain.Upload{Filename: "receipt.pdf", Data: []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")}

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)
	mockFiles.On("Save", ctx, domain.ProofFolder, pdf).Return("/uploads/payment-proofs/r.pdf", nil)
	mockRegRepo.On("SubmitProof", ctx, reg.ID, userID, "/uploads/payment-proofs/r.pdf", (*string)(nil), mock.Anything).
		Return(&domain.Registration{ID: reg.ID, PaymentStatus: domain.PaymentPendingConfirmation}, nil)

	_, err := service.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: userID, Proof: &pdf})

	assert.NoError(t, err)
}

func TestSubmitProof_Fail_NotOwnerLooksLikeNotFound(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)

	service := services.NewPaymentService(mockRegRepo, mocks.NewFileStore(t), mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	reg := &domain.Registration{ID: uuid.New(), UserID: uuid.New(), PaymentStatus: domain.PaymentPending}

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)

	_, err := service.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: uuid.New(), Proof: &pngProof})

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	mockRegRepo.AssertNotCalled(t, "SubmitProof", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitProof_Fail_AlreadyCompleted(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)

	service := services.NewPaymentService(mockRegRepo, mocks.NewFileStore(t), mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	reg := &domain.Registration{ID: uuid.New(), UserID: userID, PaymentStatus: domain.PaymentCompleted}

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)

	_, err := service.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: userID, Proof: &pngProof})

	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
}

func TestSubmitProof_Fail_StorageIsDependencyFailure(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockFiles := mocks.NewFileStore(t)

	service := services.NewPaymentService(mockRegRepo, mockFiles, mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	reg := &domain.Registration{ID: uuid.New(), UserID: userID, PaymentStatus: domain.PaymentPending}

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)
	mockFiles.On("Save", ctx, domain.ProofFolder, pngProof).Return("", errors.New("disk full"))

	_, err := service.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: userID, Proof: &pngProof})

	assert.ErrorIs(t, err, domain.ErrDependency)
	assert.Equal(t, domain.KindDependencyFailure, domain.KindOf(err))
}

func TestSubmitProof_Fail_TruncatedImageIsValidation(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)

	dir := t.TempDir()
	files := local.NewFileStore(dir, "/uploads", local.DefaultImageOptions, zerolog.Nop())
	service := services.NewPaymentService(mockRegRepo, files, mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	reg := &domain.Registration{ID: uuid.New(), UserID: userID, PaymentStatus: domain.PaymentPending}
	truncated := domain.Upload{
		Filename: "transfer.jpg",
		Data:     append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, []byte("not really a jpeg body")...),
	}

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)

	_, err := service.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: userID, Proof: &truncated})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrDependency)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	mockRegRepo.AssertNotCalled(t, "SubmitProof", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitProof_LostRaceRemovesStoredFile(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockFiles := mocks.NewFileStore(t)

	service := services.NewPaymentService(mockRegRepo, mockFiles, mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	reg := &domain.Registration{ID: uuid.New(), UserID: userID, PaymentStatus: domain.PaymentPending}
	url := "/uploads/payment-proofs/late.webp"

	mockRegRepo.On("GetByID", ctx, reg.ID).Return(reg, nil)
	mockFiles.On("Save", ctx, domain.ProofFolder, pngProof).Return(url, nil)
	mockRegRepo.On("SubmitProof", ctx, reg.ID, userID, url, (*string)(nil), mock.Anything).Return(nil, domain.ErrAlreadyCompleted)
	mockFiles.On("Delete", ctx, url).Return(nil)

	_, err := service.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: userID, Proof: &pngProof})

	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
}

func TestConfirmPayment_Success_NotifiesOnce(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockNotifier := mocks.NewNotifier(t)

	service := services.NewPaymentService(mockRegRepo, mocks.NewFileStore(t), mockNotifier, zerolog.Nop())

	ctx := context.Background()
	adminID := uuid.New()
	reg := &domain.Registration{ID: uuid.New(), PaymentStatus: domain.PaymentCompleted, ConfirmedBy: &adminID}
	detail := &domain.RegistrationDetail{Registration: *reg, EventTitle: "Go Workshop", UserEmail: "budi@campus.ac.id"}

	mockRegRepo.On("Confirm", ctx, reg.ID, adminID, mock.AnythingOfType("time.Time")).Return(reg, nil)
	mockRegRepo.On("GetDetail", mock.Anything, reg.ID).Return(detail, nil)
	mockNotifier.On("NotifyPaymentConfirmed", mock.Anything, detail).Return(nil).Once()

	got, err := service.ConfirmPayment(ctx, reg.ID, adminID)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, got.PaymentStatus)
}

func TestConfirmPayment_NotifiesAfterClientCancels(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockNotifier := mocks.NewNotifier(t)

	service := services.NewPaymentService(mockRegRepo, mocks.NewFileStore(t), mockNotifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	reg := &domain.Registration{ID: uuid.New(), PaymentStatus: domain.PaymentCompleted}
	detail := &domain.RegistrationDetail{Registration: *reg}
	live := mock.MatchedBy(func(c context.Context) bool {
		_, hasDeadline := c.Deadline()
		return c.Err() == nil && hasDeadline
	})

	mockRegRepo.On("Confirm", ctx, reg.ID, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(reg, nil)
	mockRegRepo.On("GetDetail", live, reg.ID).Return(detail, nil)
	mockNotifier.On("NotifyPaymentConfirmed", live, detail).Return(nil).Once()

	_, err := service.ConfirmPayment(ctx, reg.ID, uuid.New())

	require.NoError(t, err)
	assert.Error(t, ctx.Err())
}

func TestConfirmPayment_NotificationFailureIsSwallowed(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)
	mockNotifier := mocks.NewNotifier(t)

	service := services.NewPaymentService(mockRegRepo, mocks.NewFileStore(t), mockNotifier, zerolog.Nop())

	ctx := context.Background()
	reg := &domain.Registration{ID: uuid.New(), PaymentStatus: domain.PaymentCompleted}
	detail := &domain.RegistrationDetail{Registration: *reg}

	mockRegRepo.On("Confirm", ctx, reg.ID, mock.Anything, mock.Anything).Return(reg, nil)
	mockRegRepo.On("GetDetail", mock.Anything, reg.ID).Return(detail, nil)
	mockNotifier.On("NotifyPaymentConfirmed", mock.Anything, detail).Return(errors.New("smtp api unreachable"))

	got, err := service.ConfirmPayment(ctx, reg.ID, uuid.New())

	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestConfirmPayment_Fail_NoNotification(t *testing.T) {
	for _, want := range []error{domain.ErrRegistrationNotFound, domain.ErrAlreadyCompleted} {
		t.Run(want.Error(), func(t *testing.T) {
			mockRegRepo := mocks.NewRegistrationRepository(t)
			mockNotifier := mocks.NewNotifier(t)

			service := services.NewPaymentService(mockRegRepo, mocks.NewFileStore(t), mockNotifier, zerolog.Nop())

			ctx := context.Background()
			mockRegRepo.On("Confirm", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, want)

			_, err := service.ConfirmPayment(ctx, uuid.New(), uuid.New())

			assert.ErrorIs(t, err, want)
			mockNotifier.AssertNotCalled(t, "NotifyPaymentConfirmed", mock.Anything, mock.Anything)
		})
	}
}

func TestListPending_AsksForPendingConfirmation(t *testing.T) {
	mockRegRepo := mocks.NewRegistrationRepository(t)

	service := services.NewPaymentService(mockRegRepo, mocks.NewFileStore(t), mocks.NewNotifier(t), zerolog.Nop())

	ctx := context.Background()
	mockRegRepo.On("ListByPaymentStatus", ctx, domain.PaymentPendingConfirmation).Return([]domain.RegistrationDetail{{EventTitle: "Go Workshop"}}, nil)

	got, err := service.ListPending(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestConfirmPayment_ConcurrentConfirmsSucceedOnce(t *testing.T) {
	store := memory.NewRegistrationStore()
	event := publishedEvent(nil, "25000")
	store.PutEvent(event)

	user := domain.User{ID: uuid.New(), Name: "Budi", Email: "budi@campus.ac.id"}
	store.PutUser(user)

	reg, err := store.Register(context.Background(), event.ID, user.ID, time.Now())
	require.NoError(t, err)

	mockNotifier := mocks.NewNotifier(t)
	mockNotifier.On("NotifyPaymentConfirmed", mock.Anything, mock.Anything).Return(nil).Once()

	service := services.NewPaymentService(store, mocks.NewFileStore(t), mockNotifier, zerolog.Nop())

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ConfirmPayment(context.Background(), reg.ID, uuid.New())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok, done := 0, 0
	for err := range errs {
		if err == nil {
			ok++
		} else if errors.Is(err, domain.ErrAlreadyCompleted) {
			done++
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, done)
}

func TestPaymentScenario_RegisterSubmitConfirm(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRegistrationStore()

	event := publishedEvent(intPtr(2), "100000")
	store.PutEvent(event)

	student := domain.User{ID: uuid.New(), Name: "Siti", Email: "siti@campus.ac.id", Role: domain.RoleMahasiswa}
	other := domain.User{ID: uuid.New(), Name: "Andi", Email: "andi@campus.ac.id", Role: domain.RoleMahasiswa}
	late := domain.User{ID: uuid.New(), Name: "Rina", Email: "rina@campus.ac.id", Role: domain.RoleMahasiswa}
	admin := domain.User{ID: uuid.New(), Name: "Admin", Email: "admin@campus.ac.id", Role: domain.RoleAdmin}
	store.PutUser(student)
	store.PutUser(other)
	store.PutUser(late)
	store.PutUser(admin)

	mockFiles := mocks.NewFileStore(t)
	mockNotifier := mocks.NewNotifier(t)

	registrations := services.NewRegistrationService(store, nil, zerolog.Nop())
	payments := services.NewPaymentService(store, mockFiles, mockNotifier, zerolog.Nop())

	reg, err := registrations.Register(ctx, event.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, reg.PaymentStatus)

	otherNotes := "someone else's transfer"
	_, err = payments.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: other.ID, Proof: &pngProof, Notes: &otherNotes})
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)

	untouched, err := store.GetByID(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, untouched.PaymentStatus)
	assert.Nil(t, untouched.PaymentProofURL)
	assert.Nil(t, untouched.PaymentNotes)
	assert.Nil(t, untouched.PaymentDate)

	url := "/uploads/payment-proofs/siti.webp"
	mockFiles.On("Save", ctx, domain.ProofFolder, pngProof).Return(url, nil).Once()

	submitted, err := payments.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: student.ID, Proof: &pngProof})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPendingConfirmation, submitted.PaymentStatus)

	pending, err := payments.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Siti", pending[0].UserName)

	mockNotifier.On("NotifyPaymentConfirmed", mock.Anything, mock.MatchedBy(func(d *domain.RegistrationDetail) bool {
		return d.UserEmail == student.Email && d.EventTitle == event.Title
	})).Return(nil).Once()

	confirmed, err := payments.ConfirmPayment(ctx, reg.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, confirmed.PaymentStatus)
	assert.NotNil(t, confirmed.PaymentDate)
	assert.Equal(t, admin.ID, *confirmed.ConfirmedBy)

	require.NotNil(t, confirmed.PaymentConfirmedAt)
	confirmedAt := *confirmed.PaymentConfirmedAt

	_, err = payments.ConfirmPayment(ctx, reg.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	reread, err := store.GetByID(ctx, reg.ID)
	require.NoError(t, err)
	require.NotNil(t, reread.PaymentConfirmedAt)
	assert.True(t, confirmedAt.Equal(*reread.PaymentConfirmedAt))
	assert.Equal(t, admin.ID, *reread.ConfirmedBy)

	_, err = payments.SubmitProof(ctx, services.SubmitProofInput{RegistrationID: reg.ID, UserID: student.ID, Proof: &pngProof})
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	second, err := registrations.Register(ctx, event.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, second.PaymentStatus)

	_, err = registrations.Register(ctx, event.ID, late.ID)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 2, store.Count(event.ID))

	mine, err := payments.ListMine(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].ConfirmedByName)
	assert.Equal(t, "Admin", *mine[0].ConfirmedByName)

	mockNotifier.AssertNumberOfCalls(t, "NotifyPaymentConfirmed", 1)
}
