package instrument_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *instrument.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *instrument.MockRepository) {
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *instrument.Record) error {
						r.ID = uuid.New()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			setupMock: func(m *instrument.MockRepository) {
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := instrument.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := instrument.NewService(repo)
			got, err := svc.Create(context.Background(), &instrument.Record{
				Kind:  instrument.KindIncome,
				Title: "근로소득",
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []*instrument.Record{
		{Kind: instrument.KindIncome, Title: "급여"},
		{Kind: instrument.KindExpense, Title: "생활비"},
	}

	repo := instrument.NewMockRepository(ctrl)
	repo.EXPECT().CreateRecords(gomock.Any(), records).Return(nil)

	svc := instrument.NewService(repo)
	assert.NoError(t, svc.CreateBatch(context.Background(), records))
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository call for an empty batch.
	repo := instrument.NewMockRepository(ctrl)

	svc := instrument.NewService(repo)
	assert.NoError(t, svc.CreateBatch(context.Background(), nil))
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileID := uuid.New()

	repo := instrument.NewMockRepository(ctrl)
	repo.EXPECT().
		ListRecords(gomock.Any(), profileID).
		Return([]*instrument.Record{{ID: uuid.New()}}, nil)

	svc := instrument.NewService(repo)
	got, err := svc.List(context.Background(), profileID)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := instrument.NewMockRepository(ctrl)
	repo.EXPECT().GetRecord(gomock.Any(), id).Return(nil, instrument.ErrNotFound)

	svc := instrument.NewService(repo)
	_, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, instrument.ErrNotFound)
}
