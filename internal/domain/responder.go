package domain

import (
	"fmt"
	"strings"
)

// Greeting opens every new chat transcript.
const Greeting = "Hi! Type 'help' for a list of commands."

const (
	helpReply = "Available commands: 'products' - list the available products, " +
		"'cart' - show your current shopping cart, 'total' - show the total cost"
	fallbackReply  = "Sorry, I don't understand that command. Type 'help' for a list of commands."
	emptyCartReply = "Your shopping cart is empty."
)

type commandHandler func(catalog []Product, cart *Cart, currencyLabel string) string

// commands maps exact user input to its handler. New commands are added
// here, not as another conditional branch.
var commands = map[string]commandHandler{
	"help":     respondHelp,
	"products": respondProducts,
	"cart":     respondCart,
	"total":    respondTotal,
}

// Respond maps a submitted chat message to exactly one reply. Matching is
// exact string equality; anything outside the command set gets the fixed
// fallback reply. Blank input is the caller's responsibility to reject.
func Respond(input string, catalog []Product, cart *Cart, currencyLabel string) string {
	handler, ok := commands[input]
	if !ok {
		return fallbackReply
	}
	return handler(catalog, cart, currencyLabel)
}

func respondHelp([]Product, *Cart, string) string {
	return helpReply
}

func respondProducts(catalog []Product, _ *Cart, currencyLabel string) string {
	lines := make([]string, 0, len(catalog))
	for _, p := range catalog {
		lines = append(lines, fmt.Sprintf("%s - %s %s", p.Name, FormatCents(p.PriceCents), currencyLabel))
	}
	return "Available products:\n" + strings.Join(lines, "\n")
}

func respondCart(_ []Product, cart *Cart, currencyLabel string) string {
	if cart.IsEmpty() {
		return emptyCartReply
	}
	cartLines := cart.Lines()
	lines := make([]string, 0, len(cartLines))
	for _, l := range cartLines {
		lines = append(lines, fmt.Sprintf("%s x%d - %s %s",
			l.Product.Name, l.Quantity, FormatCents(l.SubtotalCents()), currencyLabel))
	}
	return "Your shopping cart:\n" + strings.Join(lines, "\n")
}

func respondTotal(_ []Product, cart *Cart, currencyLabel string) string {
	return fmt.Sprintf("The total is: %s %s", cart.TotalCost(), currencyLabel)
}
