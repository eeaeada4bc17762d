package reconcile

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockStore is a simple in-memory LineItemStore for engine tests.
type mockStore struct {
	expected    map[string][]LineItem
	received    map[string][]ReceivedItem
	expectedErr error
	receivedErr error
	calls       int
}

func (m *mockStore) GetExpected(ctx context.Context, orderID string) ([]LineItem, error) {
	m.calls++
	if m.expectedErr != nil {
		return nil, m.expectedErr
	}
	return m.expected[orderID], nil
}

func (m *mockStore) GetInbound(ctx context.Context, orderID string) ([]ReceivedItem, error) {
	if m.receivedErr != nil {
		return nil, m.receivedErr
	}
	return m.received[orderID], nil
}

func TestReconcile_Classification(t *testing.T) {
	tests := []struct {
		name     string
		expected []LineItem
		received []ReceivedItem
		want     []Line
	}{
		{
			name: "Match And Excess",
			expected: []LineItem{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10},
				{ItemCode: "B", ItemName: "Bolt", OrderedQuantity: 5},
			},
			received: []ReceivedItem{
				{ItemCode: "A", ReceivedQuantity: 10},
				{ItemCode: "B", ReceivedQuantity: 7},
			},
			want: []Line{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10, ReceivedQuantity: 10, Difference: 0, Status: StatusMatch},
				{ItemCode: "B", ItemName: "Bolt", OrderedQuantity: 5, ReceivedQuantity: 7, Difference: 2, Status: StatusExcess},
			},
		},
		{
			name: "Missing When Nothing Received",
			expected: []LineItem{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10},
			},
			received: nil,
			want: []Line{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10, ReceivedQuantity: 0, Difference: -10, Status: StatusMissing},
			},
		},
		{
			name: "Received Only Item Is Unknown Excess",
			expected: []LineItem{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10},
			},
			received: []ReceivedItem{
				{ItemCode: "A", ReceivedQuantity: 10},
				{ItemCode: "B", ReceivedQuantity: 5},
			},
			want: []Line{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10, ReceivedQuantity: 10, Difference: 0, Status: StatusMatch},
				{ItemCode: "B", ItemName: UnknownItemName, OrderedQuantity: 0, ReceivedQuantity: 5, Difference: 5, Status: StatusExcess},
			},
		},
		{
			name: "Duplicate Receipts Are Summed",
			expected: []LineItem{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10},
			},
			received: []ReceivedItem{
				{ItemCode: "A", ReceivedQuantity: 4},
				{ItemCode: "A", ReceivedQuantity: 6},
			},
			want: []Line{
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 10, ReceivedQuantity: 10, Difference: 0, Status: StatusMatch},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{
				expected: map[string][]LineItem{"LPO-2024-000001": tt.expected},
				received: map[string][]ReceivedItem{"LPO-2024-000001": tt.received},
			}

			report, err := Reconcile(context.Background(), store, "LPO-2024-000001")
			assert.NoError(t, err)
			assert.NotNil(t, report)
			assert.Equal(t, "LPO-2024-000001", report.OrderID)
			assert.Equal(t, tt.want, report.Lines)
		})
	}
}

func TestReconcile_EmptyExpectedReturnsNil(t *testing.T) {
	store := &mockStore{
		expected: map[string][]LineItem{},
		received: map[string][]ReceivedItem{
			// Received lines alone must not resurrect an unknown order.
			"LPO-2024-000002": {{ItemCode: "X", ReceivedQuantity: 3}},
		},
	}

	report, err := Reconcile(context.Background(), store, "LPO-2024-000002")
	assert.NoError(t, err)
	assert.Nil(t, report)
}

func TestReconcile_SetCoverage(t *testing.T) {
	store := &mockStore{
		expected: map[string][]LineItem{
			"LPO-2024-000003": {
				{ItemCode: "A", ItemName: "Anchor", OrderedQuantity: 1},
				{ItemCode: "B", ItemName: "Bolt", OrderedQuantity: 2},
				{ItemCode: "C", ItemName: "Clamp", OrderedQuantity: 3},
			},
		},
		received: map[string][]ReceivedItem{
			"LPO-2024-000003": {
				{ItemCode: "B", ReceivedQuantity: 2},
				{ItemCode: "D", ReceivedQuantity: 1},
				{ItemCode: "B", ReceivedQuantity: 9},
				{ItemCode: "E", ReceivedQuantity: 1},
			},
		},
	}

	report, err := Reconcile(context.Background(), store, "LPO-2024-000003")
	assert.NoError(t, err)
	assert.NotNil(t, report)

	// One line per code in the union, each code exactly once.
	assert.Len(t, report.Lines, 5)
	seen := map[string]int{}
	for _, line := range report.Lines {
		seen[line.ItemCode]++
		// Exactly one status holds, determined by the sign of the difference.
		switch {
		case line.Difference == 0:
			assert.Equal(t, StatusMatch, line.Status)
		case line.Difference < 0:
			assert.Equal(t, StatusMissing, line.Status)
		default:
			assert.Equal(t, StatusExcess, line.Status)
		}
	}
	for code, n := range seen {
		assert.Equal(t, 1, n, "code %s appeared %d times", code, n)
	}

	// Expected codes first in original order, then received-only in
	// first-seen order.
	order := make([]string, 0, len(report.Lines))
	for _, line := range report.Lines {
		order = append(order, line.ItemCode)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, order)
}

func TestReconcile_StoreFailurePropagates(t *testing.T) {
	t.Run("Expected Fetch Fails", func(t *testing.T) {
		store := &mockStore{expectedErr: fmt.Errorf("connection lost")}

		report, err := Reconcile(context.Background(), store, "LPO-2024-000004")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection lost")
		assert.Nil(t, report)
	})

	t.Run("Inbound Fetch Fails", func(t *testing.T) {
		store := &mockStore{
			expected:    map[string][]LineItem{"LPO-2024-000004": {{ItemCode: "A", OrderedQuantity: 1}}},
			receivedErr: fmt.Errorf("timeout"),
		}

		report, err := Reconcile(context.Background(), store, "LPO-2024-000004")
		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
