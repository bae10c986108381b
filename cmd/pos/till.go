package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-cart/internal/catalog"
	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/nikolayk812/pos-cart/internal/pos"
)

var errQuit = errors.New("quit")

// till is a line-oriented front end for one POS session. Products are referenced
// by their 1-based position in the catalog listing.
type till struct {
	session *pos.Session
	menu    *catalog.Memory
	out     io.Writer

	// unrecorded holds paid orders the checkout sink rejected, oldest first.
	unrecorded []domain.Order
}

func newTill(session *pos.Session, menu *catalog.Memory, out io.Writer) *till {
	return &till{session: session, menu: menu, out: out}
}

func (t *till) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		err := t.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(t.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (t *till) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "menu":
		category := catalog.CategoryAll
		if len(args) > 0 {
			category = args[0]
		}
		t.printProducts(t.menu.ByCategory(category))
	case "categories":
		fmt.Fprintln(t.out, strings.Join(t.menu.Categories(), " "))
	case "search":
		t.printProducts(t.menu.Search(strings.Join(args, " ")))
	case "add":
		p, err := t.product(ctx, args)
		if err != nil {
			return err
		}
		if err := t.session.AddItem(p); err != nil {
			return err
		}
		t.printCart()
	case "inc", "dec":
		p, err := t.product(ctx, args)
		if err != nil {
			return err
		}
		delta := 1
		if len(args) > 1 {
			if delta, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("quantity[%s] is not a number", args[1])
			}
		}
		if cmd == "dec" {
			delta = -delta
		}
		if err := t.session.UpdateQuantity(p.ID, delta); err != nil {
			return err
		}
		t.printCart()
	case "rm":
		p, err := t.product(ctx, args)
		if err != nil {
			return err
		}
		if err := t.session.RemoveItem(p.ID); err != nil {
			return err
		}
		t.printCart()
	case "clear":
		t.session.Clear()
		t.printCart()
	case "cart":
		t.printCart()
	case "checkout":
		if len(args) == 0 {
			return fmt.Errorf("usage: checkout cash|card")
		}
		method, err := domain.ParsePaymentMethod(args[0])
		if err != nil {
			return err
		}
		order, err := t.session.Checkout(ctx, method)
		if errors.Is(err, domain.ErrEmptyCart) {
			fmt.Fprintln(t.out, "Cart is empty. Add items before checkout.")
			return nil
		}
		if errors.Is(err, pos.ErrCheckoutNotRecorded) && order.ID != uuid.Nil {
			t.unrecorded = append(t.unrecorded, order)
			fmt.Fprintf(t.out, "Payment taken: %s paid with %s, but order %s was not recorded: %v\nUse retry to record it again.\n",
				order.Total, order.PaymentMethod, order.ID, err)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(t.out, "Payment successful: %s paid with %s (order %s)\n", order.Total, order.PaymentMethod, order.ID)
	case "retry":
		if len(t.unrecorded) == 0 {
			fmt.Fprintln(t.out, "No unrecorded orders.")
			return nil
		}
		for len(t.unrecorded) > 0 {
			order := t.unrecorded[0]
			if err := t.session.Resend(ctx, order); err != nil {
				return fmt.Errorf("order %s: %w", order.ID, err)
			}
			t.unrecorded = t.unrecorded[1:]
			fmt.Fprintf(t.out, "Order %s recorded.\n", order.ID)
		}
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	return nil
}

func (t *till) product(ctx context.Context, args []string) (domain.Product, error) {
	if len(args) == 0 {
		return domain.Product{}, fmt.Errorf("product number is missing")
	}

	products := t.menu.ByCategory(catalog.CategoryAll)

	if n, err := strconv.Atoi(args[0]); err == nil {
		if n < 1 || n > len(products) {
			return domain.Product{}, fmt.Errorf("product number %d is out of range", n)
		}
		return products[n-1], nil
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return domain.Product{}, fmt.Errorf("product[%s] is neither a number nor an id", args[0])
	}
	return t.menu.GetProduct(ctx, id)
}

func (t *till) printProducts(products []domain.Product) {
	all := t.menu.ByCategory(catalog.CategoryAll)
	for _, p := range products {
		n := 0
		for i := range all {
			if all[i].ID == p.ID {
				n = i + 1
				break
			}
		}
		fmt.Fprintf(t.out, "%2d  %-20s %-8s %s\n", n, p.Name, p.Category, p.UnitPrice)
	}
}

func (t *till) printCart() {
	items := t.session.Items()
	if len(items) == 0 {
		fmt.Fprintln(t.out, "Your cart is empty")
		return
	}

	for _, item := range items {
		fmt.Fprintf(t.out, "%-20s x%-3d %s\n", item.Product.Name, item.Quantity, item.Total())
	}

	totals, err := t.session.Totals()
	if err != nil {
		fmt.Fprintf(t.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(t.out, "Subtotal %s\nTax (%s%%) %s\nTotal %s\n",
		totals.Subtotal, t.session.TaxRate().Shift(2).String(), totals.Tax, totals.Total)
}
