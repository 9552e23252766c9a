package customer

import "fmt"

// Store is an ordered in-memory collection of customer records keyed by id.
// The front of the sequence holds the most recently created record.
// It is not safe for concurrent use; callers must confine access to a single
// goroutine (e.g., the Bubble Tea update loop).
type Store struct {
	records []Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Insert prepends r. It fails with KindConflict if r.ID is already present.
func (s *Store) Insert(r Record) error {
	if s.indexOf(r.ID) >= 0 {
		return &Error{Kind: KindConflict, Op: "insert", Message: fmt.Sprintf("record %q already exists", r.ID)}
	}
	s.records = append([]Record{r}, s.records...)
	return nil
}

// Update replaces the name, phone, and email of the record with the given id,
// leaving its position, id, and creation time untouched.
func (s *Store) Update(id string, f Fields) error {
	i := s.indexOf(id)
	if i < 0 {
		return notFoundError("update", id)
	}
	s.records[i].Name = f.Name
	s.records[i].Phone = f.Phone
	s.records[i].Email = f.Email
	return nil
}

// Remove deletes the record with the given id. It reports whether a record
// was removed; removing an absent id is a no-op.
func (s *Store) Remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i:i], s.records[i+1:]...)
	return true
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Record{}, false
	}
	return s.records[i], true
}

// All returns a copy of every record in store order.
func (s *Store) All() []Record {
	return append([]Record(nil), s.records...)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
