package domain

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// UnspecifiedPaymentMethod is printed when no payment method was selected
// before checkout.
const UnspecifiedPaymentMethod = "unspecified"

// InvoiceDateLayout is the fixed date rendering used in invoice documents.
const InvoiceDateLayout = "02/01/2006"

// invoiceIDBound caps the generated invoice number (exclusive).
const invoiceIDBound = 1000000

// FormatInvoice renders the cart and buyer details into the invoice text
// document. Time and randomness are injected so the output is reproducible
// under test. The cart is not mutated.
//
// An empty cart still yields a valid document with no product lines.
func FormatInvoice(
	cart *Cart,
	buyerName string,
	method *PaymentMethod,
	now time.Time,
	rng *rand.Rand,
	currencyLabel string,
) string {
	methodName := UnspecifiedPaymentMethod
	if method != nil {
		methodName = method.DisplayName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Invoice #%d\n", rng.Intn(invoiceIDBound))
	fmt.Fprintf(&b, "Date: %s\n", now.Format(InvoiceDateLayout))
	fmt.Fprintf(&b, "Buyer name: %s\n", buyerName)
	fmt.Fprintf(&b, "Payment method: %s\n\n", methodName)
	b.WriteString("Products:\n")
	for _, line := range cart.Lines() {
		fmt.Fprintf(&b, "%s x%d - %s %s\n",
			line.Product.Name,
			line.Quantity,
			FormatCents(line.SubtotalCents()),
			currencyLabel,
		)
	}
	fmt.Fprintf(&b, "\nTotal: %s %s", cart.TotalCost(), currencyLabel)
	return b.String()
}
