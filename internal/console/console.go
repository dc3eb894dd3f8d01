// Package console implements the interactive menu shell. It is thin I/O glue:
// it parses user intent from stdin, invokes the administration facade or the
// lending engine with validated identifiers, and renders the returned results.
// All business rules live behind those services.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"library/internal/admin"
	"library/internal/lending"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/semerr"
)

// Deps bundles the services the console drives.
type Deps struct {
	Admin  admin.Service
	Lender lending.Service
}

// Console is a menu-driven shell reading commands from in and writing
// rendered results to out.
type Console struct {
	deps Deps
	in   *bufio.Scanner
	out  io.Writer
}

// New creates a console over the given reader and writer.
func New(deps Deps, in io.Reader, out io.Writer) *Console {
	return &Console{
		deps: deps,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

const menu = `
Library Management System
1. Add Book
2. Remove Book
3. Display Inventory
4. Register User
5. Borrow Book
6. Return Book
7. Pay Fines
8. Display User Info
0. Exit
`

// Run executes the menu loop until the user exits, input ends, or the context
// is canceled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("%s", menu)
		choice, ok := c.prompt("Enter choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.addBook(ctx)
		case "2":
			c.removeBook(ctx)
		case "3":
			c.displayInventory(ctx)
		case "4":
			c.registerUser(ctx)
		case "5":
			c.borrowBook(ctx)
		case "6":
			c.returnBook(ctx)
		case "7":
			c.payFines(ctx)
		case "8":
			c.displayUserInfo(ctx)
		case "0":
			c.printf("Exiting...\n")

			return nil
		default:
			c.printf("Invalid choice. Try again.\n")
		}
	}
}

func (c *Console) addBook(ctx context.Context) {
	title, ok := c.prompt("Enter title: ")
	if !ok {
		return
	}
	author, ok := c.prompt("Enter author: ")
	if !ok {
		return
	}
	isbn, ok := c.prompt("Enter ISBN: ")
	if !ok {
		return
	}

	if _, err := c.deps.Admin.AddBook(ctx, title, author, domain.ISBN(isbn)); err != nil {
		c.renderError(ctx, err)

		return
	}
	c.printf("Book added to inventory.\n")
}

func (c *Console) removeBook(ctx context.Context) {
	isbn, ok := c.prompt("Enter ISBN of book to remove: ")
	if !ok {
		return
	}

	if err := c.deps.Admin.RemoveBook(ctx, domain.ISBN(isbn)); err != nil {
		c.renderError(ctx, err)

		return
	}
	c.printf("Book removed from inventory.\n")
}

func (c *Console) displayInventory(ctx context.Context) {
	books, err := c.deps.Admin.Inventory(ctx)
	if err != nil {
		c.renderError(ctx, err)

		return
	}

	c.printf("\nLibrary Inventory:\n")
	for _, book := range books {
		c.renderBook(book)
	}
}

func (c *Console) registerUser(ctx context.Context) {
	name, ok := c.prompt("Enter user name: ")
	if !ok {
		return
	}
	id, ok := c.prompt("Enter user ID: ")
	if !ok {
		return
	}

	if _, err := c.deps.Admin.RegisterUser(ctx, name, domain.UserID(id)); err != nil {
		c.renderError(ctx, err)

		return
	}
	c.printf("User registered successfully.\n")
}

func (c *Console) borrowBook(ctx context.Context) {
	id, ok := c.prompt("Enter user ID: ")
	if !ok {
		return
	}
	isbn, ok := c.prompt("Enter ISBN: ")
	if !ok {
		return
	}

	loan, err := c.deps.Lender.Borrow(ctx, domain.UserID(id), domain.ISBN(isbn))
	if err != nil {
		c.renderError(ctx, err)

		return
	}
	c.printf("Book borrowed successfully. Due at %s.\n", loan.DueAt.Format(time.RFC3339))
}

func (c *Console) returnBook(ctx context.Context) {
	id, ok := c.prompt("Enter user ID: ")
	if !ok {
		return
	}
	isbn, ok := c.prompt("Enter ISBN: ")
	if !ok {
		return
	}

	receipt, err := c.deps.Lender.Return(ctx, domain.UserID(id), domain.ISBN(isbn))
	if err != nil {
		c.renderError(ctx, err)

		return
	}
	if receipt.Fine.IsPositive() {
		c.printf("Book returned late. Fine added: $%s\n", receipt.Fine)
	}
	c.printf("Book returned successfully.\n")
}

func (c *Console) payFines(ctx context.Context) {
	id, ok := c.prompt("Enter user ID: ")
	if !ok {
		return
	}
	raw, ok := c.prompt("Enter amount to pay: $")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		c.printf("Invalid amount.\n")

		return
	}

	remaining, err := c.deps.Lender.PayFine(ctx, domain.UserID(id), amount)
	if err != nil {
		c.renderError(ctx, err)

		return
	}
	c.printf("Paid $%s towards fines. Remaining: $%s\n", amount, remaining)
}

func (c *Console) displayUserInfo(ctx context.Context) {
	id, ok := c.prompt("Enter user ID: ")
	if !ok {
		return
	}

	summary, err := c.deps.Admin.UserSummary(ctx, domain.UserID(id))
	if err != nil {
		c.renderError(ctx, err)

		return
	}

	c.printf("User: %s\nID: %s\nFines: $%s\nBorrowed books: %d\n",
		summary.User.Name, summary.User.ID, summary.User.FineBalance, len(summary.Books))
	c.printf("Borrowed Books:\n")
	for _, book := range summary.Books {
		c.renderBook(book)
	}
}

func (c *Console) renderBook(book domain.Book) {
	status := "Available"
	if !book.Available {
		status = fmt.Sprintf("Checked Out (due %s)", book.DueAt.Format(time.RFC3339))
	}
	c.printf("Title: %s\nAuthor: %s\nISBN: %s\nStatus: %s\n-----------------\n",
		book.Title, book.Author, book.ISBN, status)
}

// renderError prints a friendly message for the semantic error kinds and logs
// anything unexpected.
func (c *Console) renderError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, semerr.ErrUnavailable):
		c.printf("Book is not available.\n")
	case errors.Is(err, semerr.ErrNotBorrowed):
		c.printf("You didn't borrow this book.\n")
	case errors.Is(err, semerr.ErrOverpayment):
		c.printf("Payment exceeds owed fines.\n")
	case errors.Is(err, semerr.ErrNotFound),
		errors.Is(err, semerr.ErrDuplicate),
		errors.Is(err, semerr.ErrCheckedOut),
		errors.Is(err, semerr.ErrBadRequest):
		c.printf("%s\n", err)
	default:
		logger.Error(ctx, "operation failed", zap.Error(err))
		c.printf("Something went wrong: %s\n", err)
	}
}

// prompt prints the label and reads one trimmed line. ok is false when input
// has ended.
func (c *Console) prompt(label string) (value string, ok bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
