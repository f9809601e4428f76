package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/example/shopfront/internal/cart"
)

const helpText = `commands:
  key <token>        store and verify an API key
  key clear          forget the stored key
  search [query]     search the catalog
  suggest [input]    show autocomplete suggestions; bare dismisses them
  sort <key>         rating:asc rating:desc price:asc price:desc
  price <min> <max>  set the price bounds (blank with "-")
  discount on|off    only discounted goods
  category <name>    toggle a category checkbox
  apply              re-fetch with the current filters
  more               load the next page
  add <id>           put a good into the cart
  cart               show the cart
  remove <id>        drop a good from the cart
  checkout           place the order
  orders             show the order history
  edit <id>          change an order's delivery details
  delete <id>        delete an order
  quit               exit`

// Session runs the line-oriented command loop over the storefront facade.
type Session struct {
	facade *StorefrontFacade
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewSession builds a session over the given streams.
func NewSession(facade *StorefrontFacade, in *bufio.Reader, out io.Writer, logger *slog.Logger) *Session {
	return &Session{facade: facade, in: in, out: out, logger: logger}
}

// Run reads commands until EOF, the quit command or context cancellation.
func (s *Session) Run(ctx context.Context) {
	fmt.Fprintln(s.out, "shopfront — type `help` for commands")
	if !s.facade.HasKey() {
		fmt.Fprintln(s.out, "no API key stored yet, run `key <token>` first")
	} else {
		s.facade.LoadCatalog(ctx)
	}

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				s.logger.Error("reading command failed", slog.String("error", err.Error()))
			}
			return
		}
		if s.dispatch(ctx, strings.TrimSpace(line)) {
			return
		}
	}
}

// dispatch executes one command, reporting whether the session should end.
func (s *Session) dispatch(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "key":
		if len(args) == 1 && args[0] == "clear" {
			s.facade.ClearKey()
		} else {
			s.facade.SaveKey(ctx, strings.Join(args, " "))
		}
	case "search":
		s.facade.Search(ctx, strings.Join(args, " "))
	case "suggest":
		// Bare `suggest` dismisses the list, like clicking away from it.
		if len(args) == 0 {
			s.facade.DismissSuggestions()
			return false
		}
		s.facade.Suggest(strings.Join(args, " "))
	case "sort":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: sort <key>")
			return false
		}
		s.facade.SetSort(ctx, args[0])
	case "price":
		if len(args) != 2 {
			fmt.Fprintln(s.out, "usage: price <min> <max>")
			return false
		}
		s.facade.SetPriceRange(dashBlank(args[0]), dashBlank(args[1]))
	case "discount":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			fmt.Fprintln(s.out, "usage: discount on|off")
			return false
		}
		s.facade.SetDiscountOnly(args[0] == "on")
	case "category":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: category <name>")
			return false
		}
		s.facade.ToggleCategory(strings.Join(args, " "))
	case "apply":
		s.facade.ApplyFilters(ctx)
	case "more":
		s.facade.LoadMore(ctx)
	case "add":
		if id, ok := s.parseID(args); ok {
			s.facade.AddToCart(id)
		}
	case "cart":
		s.facade.RenderCart(ctx)
	case "remove":
		if id, ok := s.parseID(args); ok {
			s.facade.RemoveFromCart(ctx, id)
		}
	case "checkout":
		s.facade.Checkout(ctx, s.collectForm())
	case "orders":
		s.facade.ListOrders(ctx)
	case "edit":
		if id, ok := s.parseID(args); ok {
			s.facade.EditOrder(ctx, id)
		}
	case "delete":
		if id, ok := s.parseID(args); ok {
			s.facade.DeleteOrder(ctx, id)
		}
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, type `help`\n", command)
	}
	return false
}

// collectForm walks the checkout form field by field.
func (s *Session) collectForm() cart.Form {
	return cart.Form{
		FullName:         s.ask("Full name"),
		DeliveryAddress:  s.ask("Delivery address"),
		Phone:            s.ask("Phone"),
		Email:            s.ask("Email"),
		DeliveryDate:     s.ask("Delivery date (yyyy-mm-dd)"),
		DeliveryInterval: s.ask("Delivery interval (e.g. 08:00-12:00)"),
		Comment:          s.ask("Comment"),
		Subscribe:        strings.EqualFold(s.ask("Subscribe to the newsletter? (y/N)"), "y"),
		CardNumber:       s.ask("Card number"),
		CardHolder:       s.ask("Card holder"),
		CardExpiry:       s.ask("Card expiry (MM/YY)"),
		CardCVC:          s.ask("CVC"),
	}
}

func (s *Session) ask(label string) string {
	fmt.Fprintf(s.out, "%s: ", label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (s *Session) parseID(args []string) (int64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "expected one numeric id")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "bad id %q\n", args[0])
		return 0, false
	}
	return id, true
}

// dashBlank treats "-" as an unset bound so both bounds stay positional.
func dashBlank(v string) string {
	if v == "-" {
		return ""
	}
	return v
}
