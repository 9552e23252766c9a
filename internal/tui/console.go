package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smileynet/shopdesk/internal/customer"
)

const consoleHelp = `Commands:
  add <name> | <phone> | <email>   create a customer (phone and email optional)
  edit <ref>                       start editing a customer
  set name|phone|email <text>      change a field of the current draft
  save                             save the current draft
  cancel                           discard the current draft or edit
  search <text>                    filter the list (empty text clears)
  delete <ref>                     delete a customer after confirmation
  list                             show the customer list
  help                             show this help
  quit                             leave
<ref> is a list position (1, 2, ...) or a customer id.`

// Console drives the customers screen as newline-separated commands.
// It is used when the output is not a terminal.
type Console struct {
	settings

	ctrl *customer.Controller
	in   io.Reader
	out  io.Writer

	// lines carries scanned input to Run; scanErr is set before it closes.
	lines   chan string
	scanErr error
}

// NewConsole creates a Console reading commands from r and writing to w.
func NewConsole(ctrl *customer.Controller, r io.Reader, w io.Writer, opts ...Option) *Console {
	return &Console{
		settings: applyOptions(opts),
		ctrl:     ctrl,
		in:       r,
		out:      w,
	}
}

// Run executes commands until "quit", end of input, or ctx is cancelled.
// A read blocked on input is abandoned when ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	c.lines = make(chan string)
	go c.scan(c.lines, done)

	c.printf("Customers: manage your shop's customers. Type \"help\" for commands.\n")
	for {
		c.prompt()
		line, err := c.readLine(ctx)
		if errors.Is(err, io.EOF) {
			c.printf("\n")
			return nil
		}
		if err != nil {
			return err
		}
		quit, err := c.exec(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// scan feeds input lines to lines until EOF, a read error, or done.
func (c *Console) scan(lines chan<- string, done <-chan struct{}) {
	defer close(lines)
	s := bufio.NewScanner(c.in)
	for s.Scan() {
		select {
		case lines <- s.Text():
		case <-done:
			return
		}
	}
	c.scanErr = s.Err()
}

// exec runs a single command line. It reports whether the session should end.
func (c *Console) exec(ctx context.Context, line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "help", "?":
		c.printf("%s\n", consoleHelp)
	case "list", "ls":
		c.list()
	case "add":
		c.add(arg)
	case "edit":
		c.edit(arg)
	case "set":
		c.set(arg)
	case "save":
		c.save()
	case "cancel":
		c.cancel()
	case "search":
		c.ctrl.SetSearchQuery(arg)
		c.ctrl.FlushSearch()
		c.list()
	case "delete", "rm":
		return false, c.delete(ctx, arg)
	case "quit", "exit", "q":
		return true, nil
	default:
		c.printf("unknown command %q (type \"help\")\n", cmd)
	}
	return false, nil
}

func (c *Console) add(arg string) {
	if c.ctrl.Snapshot().Mode == customer.ModeEdit {
		c.ctrl.CancelEdit()
	}
	parts := strings.SplitN(arg, "|", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	c.ctrl.SetName(parts[0])
	c.ctrl.SetPhone(parts[1])
	c.ctrl.SetEmail(parts[2])
	c.save()
}

func (c *Console) edit(ref string) {
	r, ok := c.resolve(ref)
	if !ok {
		return
	}
	if err := c.ctrl.StartEdit(r.ID); err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("Editing %s. Use set, save or cancel.\n", r.Name)
	c.printDraft()
}

func (c *Console) set(arg string) {
	name, text, _ := strings.Cut(arg, " ")
	var field customer.Field
	switch strings.ToLower(name) {
	case "name":
		field = customer.FieldName
	case "phone":
		field = customer.FieldPhone
	case "email":
		field = customer.FieldEmail
	default:
		c.printf("usage: set name|phone|email <text>\n")
		return
	}
	c.ctrl.SetField(field, strings.TrimSpace(text))
}

func (c *Console) save() {
	before := c.ctrl.Snapshot()
	name := strings.TrimSpace(before.Draft.Name)
	_, targetExists := c.ctrl.Record(before.EditingID)

	err := c.ctrl.Submit()
	switch {
	case err == nil:
		switch {
		case before.Mode == customer.ModeCreate:
			c.printf("Saved %s\n", name)
		case targetExists:
			c.printf("Updated %s\n", name)
		default:
			c.printf("Customer no longer exists\n")
		}
	case customer.IsKind(err, customer.KindValidation), customer.IsKind(err, customer.KindDuplicate):
		c.printf("Not saved:\n")
		errs := c.ctrl.Snapshot().Errors
		for _, f := range []customer.Field{customer.FieldName, customer.FieldPhone, customer.FieldEmail} {
			if msg := errs.Get(f); msg != "" {
				c.printf("  %s: %s\n", f, msg)
			}
		}
	default:
		c.printf("error: %v\n", err)
	}
}

func (c *Console) cancel() {
	if c.ctrl.Snapshot().Mode == customer.ModeEdit {
		c.ctrl.CancelEdit()
		c.printf("Edit cancelled\n")
		return
	}
	c.ctrl.CancelEdit()
	c.printf("Draft cleared\n")
}

// delete asks for confirmation before removing a record. End of input
// declines; a cancelled ctx declines and is returned.
func (c *Console) delete(ctx context.Context, ref string) error {
	r, ok := c.resolve(ref)
	if !ok {
		return nil
	}
	if err := c.ctrl.RequestDelete(r.ID); err != nil {
		c.printf("error: %v\n", err)
		return nil
	}

	c.printf("Delete %s? [y/N] ", r.Name)
	answer, err := c.readLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		c.ctrl.DeclineDelete()
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		if err := c.ctrl.ConfirmDelete(r.ID); err != nil {
			c.printf("error: %v\n", err)
			return nil
		}
		c.printf("Deleted %s\n", r.Name)
	default:
		c.ctrl.DeclineDelete()
		c.printf("Kept %s\n", r.Name)
	}
	return nil
}

func (c *Console) list() {
	snap := c.ctrl.Snapshot()
	if len(snap.Records) == 0 {
		if snap.Query != "" {
			c.printf(noMatchFormat+"\n", snap.Query)
		} else {
			c.printf("%s\n", emptyListText)
		}
		return
	}

	if snap.Query != "" {
		c.printf("%d of %d customers match %q\n", len(snap.Records), snap.Total, snap.Query)
	}
	for i, r := range snap.Records {
		c.printf("%3d. %s\n", i+1, r.Name)
		if details := contactLine(r, c.region); details != "" {
			c.printf("     %s\n", details)
		}
		c.printf("     %s  [%s]\n", addedLine(r, c.timeFormat), r.ID)
	}
}

func (c *Console) printDraft() {
	d := c.ctrl.Snapshot().Draft
	c.printf("  name: %s\n  phone: %s\n  email: %s\n", d.Name, d.Phone, d.Email)
}

// resolve finds the record for a 1-based list position or an id.
func (c *Console) resolve(ref string) (customer.Record, bool) {
	if ref == "" {
		c.printf("missing customer reference\n")
		return customer.Record{}, false
	}
	records := c.ctrl.Snapshot().Records
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(records) {
		return records[n-1], true
	}
	if r, ok := c.ctrl.Record(ref); ok {
		return r, true
	}
	c.printf("no customer %q\n", ref)
	return customer.Record{}, false
}

func (c *Console) prompt() {
	if c.ctrl.Snapshot().Mode == customer.ModeEdit {
		c.printf("edit> ")
		return
	}
	c.printf("> ")
}

// readLine returns the next input line, io.EOF at end of input, or ctx's
// error once it is cancelled.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.scanErr != nil {
				return "", c.scanErr
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
