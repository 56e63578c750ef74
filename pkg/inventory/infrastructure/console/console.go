// Package console runs the interactive inventory menu on a text stream.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"inventory/pkg/inventory/domain/model"
	"inventory/pkg/inventory/domain/service"
)

const menu = `
===== Inventory Management System =====
1. Add New Product
2. Search Product
3. Purchase Stock
4. Sell Product
5. Display All Products
6. View Transaction History
7. Delete Product
8. Exit
`

// errInputClosed ends the session when the input runs out mid-command.
var errInputClosed = errors.New("input closed")

type Console struct {
	in  *bufio.Scanner
	out io.Writer
	svc service.InventoryService
}

func New(in io.Reader, out io.Writer, svc service.InventoryService) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, svc: svc}
}

// Run shows the menu until the user exits, the input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		c.printf("%s", menu)
		choice, err := c.readInt("Enter your choice: ")
		if err != nil {
			return c.finish(err)
		}

		if choice == 8 {
			c.printf("Exiting...\n")
			return nil
		}
		if err := c.dispatch(choice); err != nil {
			return c.finish(err)
		}
	}
	return ctx.Err()
}

func (c *Console) dispatch(choice int) error {
	switch choice {
	case 1:
		return c.addProduct()
	case 2:
		return c.searchProduct()
	case 3:
		return c.changeStock("Enter Quantity Purchased: ", c.svc.Purchase)
	case 4:
		return c.changeStock("Enter Quantity Sold: ", c.svc.Sell)
	case 5:
		c.displayProducts()
	case 6:
		c.showHistory()
	case 7:
		return c.deleteProduct()
	default:
		c.printf("Invalid choice!\n")
	}
	return nil
}

func (c *Console) addProduct() error {
	id, err := c.readInt("Enter Product ID: ")
	if err != nil {
		return err
	}
	name, err := c.readLine("Enter Product Name: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Enter Quantity: ")
	if err != nil {
		return err
	}
	price, err := c.readFloat("Enter Price: ")
	if err != nil {
		return err
	}

	if _, err := c.svc.AddProduct(id, name, quantity, price); err != nil {
		c.report(err, id)
		return nil
	}
	c.printf("Product added successfully!\n")
	return nil
}

func (c *Console) searchProduct() error {
	id, err := c.readInt("Enter Product ID to search: ")
	if err != nil {
		return err
	}

	product, err := c.svc.FindProduct(id)
	if err != nil {
		c.report(err, id)
		return nil
	}
	c.printProduct(product)
	return nil
}

func (c *Console) changeStock(prompt string, change func(id, quantity int) (int, error)) error {
	id, err := c.readInt("Enter Product ID: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt(prompt)
	if err != nil {
		return err
	}

	current, err := change(id, quantity)
	if err != nil {
		c.report(err, id)
		return nil
	}
	c.printf("Stock updated successfully! Current stock: %d\n", current)
	return nil
}

func (c *Console) displayProducts() {
	empty := true
	for product := range c.svc.ListProducts() {
		empty = false
		c.printProduct(product)
	}
	if empty {
		c.printf("No products in inventory!\n")
	}
}

func (c *Console) showHistory() {
	header := false
	for t := range c.svc.History() {
		if !header {
			c.printf("\n--- Transaction History ---\n")
			header = true
		}
		c.printf("Product ID: %d | %s | Quantity: %d\n", t.ProductID, t.Kind, t.QuantityChanged)
	}
	if !header {
		c.printf("No transactions yet!\n")
	}
}

func (c *Console) deleteProduct() error {
	id, err := c.readInt("Enter Product ID to delete: ")
	if err != nil {
		return err
	}

	if err := c.svc.RemoveProduct(id); err != nil {
		c.report(err, id)
		return nil
	}
	c.printf("Product deleted.\n")
	return nil
}

func (c *Console) report(err error, id int) {
	var stockErr *model.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.printf("Not enough stock! Available: %d\n", stockErr.Available)
	case errors.Is(err, model.ErrProductNotFound):
		c.printf("Product not found!\n")
	case errors.Is(err, model.ErrProductExists):
		c.printf("Product with ID %d already exists!\n", id)
	case errors.Is(err, model.ErrInvalidQuantity):
		c.printf("Quantity must be a positive number!\n")
	default:
		c.printf("Error: %v\n", err)
	}
	log.WithError(err).WithField("product_id", id).Debug("inventory operation failed")
}

func (c *Console) printProduct(p model.Product) {
	c.printf("ID: %d | Name: %s | Quantity: %d | Price: %.2f\n", p.ID, p.Name, p.Quantity, p.Price)
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.printf("Please enter a whole number.\n")
	}
}

func (c *Console) readFloat(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, nil
		}
		c.printf("Please enter a number.\n")
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
