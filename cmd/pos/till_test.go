package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nikolayk812/pos-cart/internal/catalog"
	"github.com/nikolayk812/pos-cart/internal/domain"
	"github.com/nikolayk812/pos-cart/internal/pos"
	"github.com/nikolayk812/pos-cart/internal/sink"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/currency"
)

func newTestTill(t *testing.T) (*till, *bytes.Buffer, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)

	menu, err := catalog.NewMemory(catalog.Menu())
	require.NoError(t, err)

	session, err := pos.NewSession(pos.Config{
		Currency:    currency.USD,
		TaxRate:     decimal.RequireFromString("0.08"),
		ClearPolicy: pos.ClearOptimistic,
	}, sink.NewLog(zap.New(core)))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return newTill(session, menu, out), out, logs
}

func TestTill_Run(t *testing.T) {
	tl, out, logs := newTestTill(t)

	script := strings.Join([]string{
		"add 1",
		"add 1",
		"add 7",
		"dec 1",
		"inc 7 2",
		"rm 7",
		"add 1",
		"checkout cash",
		"quit",
		"add 1",
	}, "\n")

	require.NoError(t, tl.run(t.Context(), strings.NewReader(script)))

	assert.Contains(t, out.String(), "Subtotal USD 9.50")
	assert.Contains(t, out.String(), "Tax (8%) USD 0.76")
	assert.Contains(t, out.String(), "Payment successful: USD 7.56 paid with cash")
	assert.Empty(t, tl.session.Items(), "commands after quit are ignored")
	assert.Equal(t, 1, logs.FilterMessage("order recorded").Len())
}

func TestTill_Exec(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOut   string
		wantError string
	}{
		{name: "blank line", line: "   "},
		{name: "menu by category", line: "menu tea", wantOut: "Green Tea"},
		{name: "categories", line: "categories", wantOut: "all coffee tea pastry food"},
		{name: "search", line: "search scone", wantOut: "Blueberry Scone"},
		{name: "empty cart", line: "cart", wantOut: "Your cart is empty"},
		{name: "checkout empty cart", line: "checkout card", wantOut: "Cart is empty"},
		{name: "add by id", line: "add " + catalog.Menu()[11].ID.String(), wantOut: "Soup"},
		{name: "unknown payment method", line: "checkout cheque", wantError: domain.ErrInvalidPaymentMethod.Error()},
		{name: "checkout without method", line: "checkout", wantError: "usage: checkout cash|card"},
		{name: "product out of range", line: "add 13", wantError: "product number 13 is out of range"},
		{name: "product missing", line: "rm", wantError: "product number is missing"},
		{name: "bad quantity", line: "inc 1 many", wantError: "quantity[many] is not a number"},
		{name: "unknown command", line: "refund", wantError: `unknown command "refund"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, out, _ := newTestTill(t)

			err := tl.exec(t.Context(), tt.line)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

type flakySink struct {
	failures int
	recorded []domain.Order
}

func (s *flakySink) Record(_ context.Context, order domain.Order) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("connection refused")
	}
	s.recorded = append(s.recorded, order)
	return nil
}

func TestTill_RetryUnrecordedOrder(t *testing.T) {
	menu, err := catalog.NewMemory(catalog.Menu())
	require.NoError(t, err)

	checkoutSink := &flakySink{failures: 2}
	session, err := pos.NewSession(pos.Config{
		Currency:    currency.USD,
		TaxRate:     decimal.RequireFromString("0.08"),
		ClearPolicy: pos.ClearOptimistic,
	}, checkoutSink)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	tl := newTill(session, menu, out)
	ctx := t.Context()

	require.NoError(t, tl.exec(ctx, "retry"))
	assert.Contains(t, out.String(), "No unrecorded orders.")

	require.NoError(t, tl.exec(ctx, "add 1"))
	require.NoError(t, tl.exec(ctx, "checkout card"))

	assert.Contains(t, out.String(), "Payment taken: USD 3.78 paid with card")
	assert.Contains(t, out.String(), "connection refused")
	assert.Empty(t, session.Items())
	require.Len(t, tl.unrecorded, 1)
	orderID := tl.unrecorded[0].ID

	// second failure keeps the order queued
	require.ErrorContains(t, tl.exec(ctx, "retry"), "connection refused")
	require.Len(t, tl.unrecorded, 1)

	require.NoError(t, tl.exec(ctx, "retry"))
	assert.Empty(t, tl.unrecorded)
	require.Len(t, checkoutSink.recorded, 1)
	assert.Equal(t, orderID, checkoutSink.recorded[0].ID)
	assert.Contains(t, out.String(), "Order "+orderID.String()+" recorded.")
}

func TestTill_ProductLookupUsesContext(t *testing.T) {
	tl, _, _ := newTestTill(t)

	p, err := tl.product(t.Context(), []string{catalog.Menu()[2].ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Latte", p.Name)

	_, err = tl.product(t.Context(), []string{"0b5f8f0e-1c1a-4c53-9d5e-000000000099"})
	require.ErrorIs(t, err, domain.ErrUnknownProduct)
}
