package postgres

import (
	"testing"

	"github.com/guildworks/guildshop/internal/shop/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_UpsertItem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		item domain.Item

		expectedRes domain.Item
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "insert returns stored row",
			item: domain.Item{Name: "badge", Description: "", Price: 50, Enabled: true},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(itemColumns()).
					AddRow(3, "badge", "", int64(50), (*string)(nil), (*int)(nil), true)
				mock.ExpectQuery("INSERT INTO items").
					WithArgs("badge", "", int64(50), (*string)(nil), (*int)(nil), true).
					WillReturnRows(rows)
			},
			expectedRes: domain.Item{ID: 3, Name: "badge", Price: 50, Enabled: true},
			expectedErr: nil,
		},
		{
			name: "database error",
			item: domain.Item{Name: "badge", Price: 50, Enabled: true},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO items").
					WithArgs("badge", "", int64(50), (*string)(nil), (*int)(nil), true).
					WillReturnError(assert.AnError)
			},
			expectedRes: domain.Item{},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewAdminRepository(mock)
			res, err := repository.UpsertItem(t.Context(), tt.item)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestAdminRepository_SetItemEnabled(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		itemID  int
		enabled bool

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:    "successful update",
			itemID:  3,
			enabled: false,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE items").
					WithArgs(false, 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:    "item not found",
			itemID:  999,
			enabled: true,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE items").
					WithArgs(true, 999).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.ItemNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repository := NewAdminRepository(mock)
			err = repository.SetItemEnabled(t.Context(), tt.itemID, tt.enabled)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
