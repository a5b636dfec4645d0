package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/onlinebazaar/cart/internal/service"
	apperrors "github.com/onlinebazaar/cart/pkg/errors"
)

// Menu is the line-oriented shell over the cart service. It owns all display
// formatting; the service owns all state.
type Menu struct {
	svc *service.CartService
	in  *bufio.Scanner
	out io.Writer
}

// New creates a menu reading commands from in and rendering to out.
func New(svc *service.CartService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives the prompt loop until the user exits, input ends, or the
// context is canceled. Only persistence failures abort the loop; input
// mistakes and stock shortfalls are rendered and re-prompted.
func (m *Menu) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		m.printMenu()
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			m.renderProducts()
		case "2":
			err = m.addItem(ctx)
		case "3":
			m.renderCart()
		case "4":
			err = m.updateQuantity(ctx)
		case "5":
			err = m.removeItem(ctx)
		case "6":
			err = m.checkout(ctx)
		case "7":
			fmt.Fprintln(m.out, "Thank you for shopping with us. Have a great day!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "ONLINE BAZAAR")
	fmt.Fprintln(m.out, "1. View Products")
	fmt.Fprintln(m.out, "2. Add Item to Cart")
	fmt.Fprintln(m.out, "3. View Cart")
	fmt.Fprintln(m.out, "4. Update Item Quantity")
	fmt.Fprintln(m.out, "5. Remove Item from Cart")
	fmt.Fprintln(m.out, "6. Checkout")
	fmt.Fprintln(m.out, "7. Exit")
}

// prompt reads one trimmed line, returning false when input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptInt(label string) (int, bool) {
	text, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a valid number.")
		return 0, false
	}
	return n, true
}

func (m *Menu) renderProducts() {
	products := m.svc.Products()
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products available at the moment.")
		return
	}

	fmt.Fprintln(m.out, "\nAvailable Products:")
	for _, p := range products {
		fmt.Fprintf(m.out, "\nID: %s\nName: %s\nPrice: %s\nAvailable: %d\n",
			p.ProductID, p.Name, p.Price.StringFixed(2), p.QuantityAvailable)
	}
}

func (m *Menu) renderCart() {
	items := m.svc.Items()
	if len(items) == 0 {
		fmt.Fprintln(m.out, "Your shopping cart is empty.")
		return
	}

	fmt.Fprintln(m.out, "\nYour Shopping Cart:")
	for _, item := range items {
		fmt.Fprintf(m.out, "Item: %s, Quantity: %d, Price: %s, Subtotal: %s\n",
			item.Product.Name, item.Quantity,
			item.Product.Price.StringFixed(2), item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(m.out, "GRAND TOTAL: %s\n", m.svc.GetTotal().StringFixed(2))
}

func (m *Menu) addItem(ctx context.Context) error {
	m.renderProducts()
	productID, ok := m.prompt("Enter product ID: ")
	if !ok {
		return nil
	}
	quantity, ok := m.promptInt("Enter quantity: ")
	if !ok {
		return nil
	}
	if quantity <= 0 {
		fmt.Fprintln(m.out, "Quantity must be positive!")
		return nil
	}

	added, err := m.svc.AddItem(ctx, productID, quantity)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) {
			fmt.Fprintf(m.out, "Inventory error: %v\n", err)
			return nil
		}
		return err
	}
	if added {
		fmt.Fprintf(m.out, "Added %d item(s) to your cart\n", quantity)
	} else {
		fmt.Fprintln(m.out, "Failed to add item. Check product ID.")
	}
	return nil
}

func (m *Menu) updateQuantity(ctx context.Context) error {
	m.renderCart()
	if len(m.svc.Items()) == 0 {
		return nil
	}
	productID, ok := m.prompt("Enter product ID to update: ")
	if !ok {
		return nil
	}
	newQuantity, ok := m.promptInt("Enter new quantity: ")
	if !ok {
		return nil
	}
	if newQuantity < 0 {
		fmt.Fprintln(m.out, "Quantity must not be negative!")
		return nil
	}

	updated, err := m.svc.UpdateQuantity(ctx, productID, newQuantity)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) {
			fmt.Fprintf(m.out, "Inventory error: %v\n", err)
			return nil
		}
		return err
	}
	if updated {
		fmt.Fprintln(m.out, "Cart updated successfully")
	} else {
		fmt.Fprintln(m.out, "Product not found in cart")
	}
	return nil
}

func (m *Menu) removeItem(ctx context.Context) error {
	m.renderCart()
	if len(m.svc.Items()) == 0 {
		return nil
	}
	productID, ok := m.prompt("Enter product ID to remove: ")
	if !ok {
		return nil
	}

	removed, err := m.svc.RemoveItem(ctx, productID)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintln(m.out, "Item removed from cart")
	} else {
		fmt.Fprintln(m.out, "Product not found in cart")
	}
	return nil
}

func (m *Menu) checkout(ctx context.Context) error {
	receipt, err := m.svc.Checkout(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyCart) {
			fmt.Fprintln(m.out, "Your cart is empty. Add items before checkout.")
			return nil
		}
		return err
	}

	fmt.Fprintf(m.out, "Checkout complete! Total: %s\n", receipt.Total.StringFixed(2))
	fmt.Fprintf(m.out, "Receipt: %s\n", receipt.ID)
	fmt.Fprintln(m.out, "Thank you for shopping with us!")
	return nil
}
