package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/pkg/inventory/domain/service"
	"inventory/pkg/inventory/infrastructure/index"
	"inventory/pkg/inventory/infrastructure/txlog"
)

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(service.Event) error { return nil }

func run(t *testing.T, lines ...string) string {
	t.Helper()
	svc := service.NewInventoryService(index.New(), txlog.New(), nopDispatcher{})
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	require.NoError(t, New(in, &out, svc).Run(context.Background()))
	return out.String()
}

func TestSession(t *testing.T) {
	out := run(t,
		"1", "1", "Blue Pen", "10", "1.5",
		"1", "2", "Book", "5", "9",
		"4", "1", "3",
		"4", "2", "10",
		"5",
		"6",
		"8",
	)

	assert.Contains(t, out, "Product added successfully!")
	assert.Contains(t, out, "Stock updated successfully! Current stock: 7")
	assert.Contains(t, out, "Not enough stock! Available: 5")
	assert.Contains(t, out, "ID: 1 | Name: Blue Pen | Quantity: 7 | Price: 1.50\nID: 2 | Name: Book | Quantity: 5 | Price: 9.00\n")
	assert.Contains(t, out, "--- Transaction History ---\nProduct ID: 1 | Sale | Quantity: -3\n")
	assert.NotContains(t, out, "Product ID: 2 | Sale")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestSearchPurchaseAndDelete(t *testing.T) {
	out := run(t,
		"1", "7", "Mug", "2", "4.25",
		"1", "7", "Cup", "1", "1",
		"3", "7", "3",
		"2", "7",
		"7", "7",
		"2", "7",
		"7", "7",
		"3", "7", "1",
	)

	assert.Contains(t, out, "Product with ID 7 already exists!")
	assert.Contains(t, out, "Stock updated successfully! Current stock: 5")
	assert.Contains(t, out, "ID: 7 | Name: Mug | Quantity: 5 | Price: 4.25")
	assert.Contains(t, out, "Product deleted.")
	assert.Equal(t, 3, strings.Count(out, "Product not found!"))
}

func TestEmptyListings(t *testing.T) {
	out := run(t, "5", "6", "8")

	assert.Contains(t, out, "No products in inventory!")
	assert.Contains(t, out, "No transactions yet!")
}

func TestInvalidInputRePrompts(t *testing.T) {
	out := run(t,
		"nine", "9",
		"1", "x", "3", "Lamp", "-", "2", "abc", "12.5",
		"3", "3", "0",
		"8",
	)

	assert.Contains(t, out, "Invalid choice!")
	assert.Equal(t, 3, strings.Count(out, "Please enter a whole number."))
	assert.Contains(t, out, "Please enter a number.")
	assert.Contains(t, out, "Product added successfully!")
	assert.Contains(t, out, "Quantity must be a positive number!")
}

func TestInvalidProductIsReported(t *testing.T) {
	out := run(t, "1", "4", "Desk", "-1", "10", "8")
	assert.Contains(t, out, "Error: invalid product: quantity cannot be negative")
}

func TestEndOfInputMidCommand(t *testing.T) {
	out := run(t, "1", "5")
	assert.True(t, strings.HasSuffix(out, "Enter Product Name: "))
}

func TestCancelledContext(t *testing.T) {
	svc := service.NewInventoryService(index.New(), txlog.New(), nopDispatcher{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(strings.NewReader("5\n"), &out, svc).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
