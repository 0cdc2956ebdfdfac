package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospitality/infras/otel/mocks"
	"hospitality/shared/model"
)

type orderTestEntity struct {
	ID           int64  `db:"id"`
	CustomerName string `db:"customer_name"`
	Status       string `db:"status"`
	model.Metadata
}

func TestRepository_OrderColumn(t *testing.T) {
	repo := NewRepository[orderTestEntity]("orderTest", "orders", "id", nil, mocks.NewOtel())

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{
			name:      "own column passes through",
			requested: "customer_name",
			want:      "customer_name",
		},
		{
			name:      "embedded metadata column passes through",
			requested: "created_at",
			want:      "created_at",
		},
		{
			name:      "unknown key falls back to the primary column",
			requested: "no_such_column",
			want:      "id",
		},
		{
			name:      "statement text never reaches the ordering clause",
			requested: "id; DROP TABLE orders--",
			want:      "id",
		},
		{
			name:      "empty key falls back to the primary column",
			requested: "",
			want:      "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderColumn(tt.requested))
		})
	}
}

func TestRepository_InsertColumnsExcludePrimary(t *testing.T) {
	repo := NewRepository[orderTestEntity]("orderTest", "orders", "id", nil, mocks.NewOtel())

	assert.NotContains(t, repo.InsertColumns, "id")
	assert.Contains(t, repo.InsertColumns, "customer_name")
	assert.Contains(t, repo.InsertColumns, "status")
}
