package customer

import (
	"fmt"
	"log/slog"
	"time"
)

// Mode is the edit-session mode.
type Mode int

const (
	ModeCreate Mode = iota // Idle: the draft creates a new record on submit.
	ModeEdit               // Editing: the draft updates the target record on submit.
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// State is a snapshot of the module state for the presentation layer.
type State struct {
	Mode          Mode
	EditingID     string // Target record id in ModeEdit, "" otherwise.
	Draft         Fields
	Errors        FieldErrors
	RawQuery      string
	Query         string   // Committed, normalized query.
	PendingDelete string   // Id awaiting delete confirmation, "" if none.
	Records       []Record // Store contents filtered by Query, in store order.
	Total         int      // Number of records in the store.
}

// Controller owns the customer-module state and is the only way to mutate it.
// It coordinates the add/edit session, search, and confirmed deletion.
// Like Store, it is confined to a single goroutine.
type Controller struct {
	store     *Store
	validator *Validator
	ids       IDSource
	now       func() time.Time
	log       *slog.Logger

	mode          Mode
	editID        string
	draft         Fields
	errs          FieldErrors
	search        SearchState
	pendingDelete string
}

// Option configures a Controller.
type Option func(*Controller)

// WithStore sets the backing store.
func WithStore(s *Store) Option {
	return func(c *Controller) { c.store = s }
}

// WithValidator sets the draft validator.
func WithValidator(v *Validator) Option {
	return func(c *Controller) { c.validator = v }
}

// WithIDSource sets the identifier source for new records.
func WithIDSource(ids IDSource) Option {
	return func(c *Controller) { c.ids = ids }
}

// WithClock sets the clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// NewController creates a Controller in create mode with an empty draft.
func NewController(opts ...Option) *Controller {
	c := &Controller{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	if c.store == nil {
		c.store = NewStore()
	}
	if c.validator == nil {
		c.validator = defaultValidator
	}
	if c.ids == nil {
		c.ids = NewIDGenerator(c.log)
	}
	return c
}

// SetField updates one draft field. A shown error on that field is cleared;
// no validation runs on keystrokes.
func (c *Controller) SetField(f Field, text string) {
	c.draft.set(f, text)
	if c.errs.Get(f) != "" {
		c.errs.Clear(f)
	}
}

// SetName updates the draft name.
func (c *Controller) SetName(text string) { c.SetField(FieldName, text) }

// SetPhone updates the draft phone.
func (c *Controller) SetPhone(text string) { c.SetField(FieldPhone, text) }

// SetEmail updates the draft email.
func (c *Controller) SetEmail(text string) { c.SetField(FieldEmail, text) }

// SetSearchQuery buffers raw search input. The returned token must be passed
// to CommitSearch once the quiet period has elapsed.
func (c *Controller) SetSearchQuery(text string) SearchToken {
	return c.search.Set(text)
}

// CommitSearch commits the buffered query if tok is the latest token.
func (c *Controller) CommitSearch(tok SearchToken) bool {
	return c.search.Commit(tok)
}

// FlushSearch commits the buffered query immediately.
func (c *Controller) FlushSearch() {
	c.search.Flush()
}

// Submit validates the draft and commits it. In create mode the name must
// also be unique. On failure the field errors are set, the mode is kept, and
// a *Error of KindValidation or KindDuplicate is returned.
func (c *Controller) Submit() error {
	fields := c.draft.Trimmed()

	res := c.validator.Validate(fields)
	if !res.Valid {
		c.errs = res.Errors
		return validationError("submit", res.Errors)
	}
	c.errs = FieldErrors{}

	if c.mode == ModeEdit {
		return c.commitEdit(fields)
	}
	return c.commitCreate(fields)
}

func (c *Controller) commitCreate(fields Fields) error {
	if ExistsByName(c.store.All(), fields.Name, "") {
		err := duplicateError("submit", fields.Name)
		c.errs = err.Fields
		return err
	}

	r := Record{
		ID:        c.ids.NewID(),
		Name:      fields.Name,
		Phone:     fields.Phone,
		Email:     fields.Email,
		CreatedAt: c.now().Truncate(time.Millisecond),
	}
	if err := c.store.Insert(r); err != nil {
		return fmt.Errorf("customer: submit: %w", err)
	}
	c.log.Debug("customer created", "id", r.ID, "name", r.Name)
	c.reset()
	return nil
}

// commitEdit updates the target without a name uniqueness check; renaming a
// record onto another record's name is allowed.
func (c *Controller) commitEdit(fields Fields) error {
	id := c.editID
	if err := c.store.Update(id, fields); err != nil {
		if !IsKind(err, KindNotFound) {
			return err
		}
		c.log.Debug("edit target vanished", "id", id)
	} else {
		c.log.Debug("customer updated", "id", id, "name", fields.Name)
	}
	c.reset()
	return nil
}

// StartEdit enters edit mode for the record with the given id, loading its
// fields into the draft and clearing all field errors.
func (c *Controller) StartEdit(id string) error {
	r, ok := c.store.Get(id)
	if !ok {
		return notFoundError("edit", id)
	}
	c.mode = ModeEdit
	c.editID = r.ID
	c.draft = r.Fields()
	c.errs = FieldErrors{}
	return nil
}

// CancelEdit returns to create mode with an empty draft.
func (c *Controller) CancelEdit() {
	c.reset()
}

// RequestDelete stages the record for deletion. Nothing is removed until
// ConfirmDelete is called with the same id.
func (c *Controller) RequestDelete(id string) error {
	if _, ok := c.store.Get(id); !ok {
		return notFoundError("delete", id)
	}
	c.pendingDelete = id
	return nil
}

// ConfirmDelete removes the staged record. It fails with KindUnconfirmed and
// leaves the store unchanged if id is not the staged id. Deleting the current
// edit target also ends the edit session.
func (c *Controller) ConfirmDelete(id string) error {
	if c.pendingDelete == "" || c.pendingDelete != id {
		return &Error{Kind: KindUnconfirmed, Op: "delete", Message: fmt.Sprintf("deletion of %q was not confirmed", id)}
	}
	c.pendingDelete = ""
	if c.store.Remove(id) {
		c.log.Debug("customer deleted", "id", id)
	}
	if c.mode == ModeEdit && c.editID == id {
		c.reset()
	}
	return nil
}

// DeclineDelete discards the staged deletion.
func (c *Controller) DeclineDelete() {
	c.pendingDelete = ""
}

// Snapshot returns the current state with the filtered record list.
func (c *Controller) Snapshot() State {
	all := c.store.All()
	return State{
		Mode:          c.mode,
		EditingID:     c.editID,
		Draft:         c.draft,
		Errors:        c.errs,
		RawQuery:      c.search.Raw(),
		Query:         c.search.Query(),
		PendingDelete: c.pendingDelete,
		Records:       Filter(all, c.search.Query()),
		Total:         len(all),
	}
}

// Record returns the stored record with the given id.
func (c *Controller) Record(id string) (Record, bool) {
	return c.store.Get(id)
}

func (c *Controller) reset() {
	c.mode = ModeCreate
	c.editID = ""
	c.draft = Fields{}
	c.errs = FieldErrors{}
}
