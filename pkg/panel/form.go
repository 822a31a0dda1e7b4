package panel

import (
	"errors"

	"github.com/goccy/go-json"
)

// Mode is what a form is opened for.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

var (
	ErrReadOnlyForm   = errors.New("form is read-only")
	ErrUnknownField   = errors.New("unknown form field")
	ErrCreateDisabled = errors.New("create is disabled for this module")
	ErrEditDisabled   = errors.New("edit is disabled for this module")
	ErrDeleteDisabled = errors.New("delete is disabled for this module")
	ErrSaveFailed     = errors.New("save failed")
	ErrDeleteFailed   = errors.New("delete failed")
	ErrNoActiveModule = errors.New("no module selected")
	ErrUnknownModule  = errors.New("unknown module")
	ErrLoginRequired  = errors.New("login required")
	ErrLoadFailed     = errors.New("load failed")
)

// Message returns the text shown to the user for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrLoginRequired):
		return "Please login to view this data."
	case errors.Is(err, ErrLoadFailed):
		return "Unable to load data from server."
	case errors.Is(err, ErrCreateDisabled):
		return "Create is disabled for this module."
	case errors.Is(err, ErrEditDisabled):
		return "Edit is disabled for this module."
	case errors.Is(err, ErrDeleteDisabled):
		return "Delete is disabled for this module."
	case errors.Is(err, ErrDeleteFailed):
		return "Unable to delete record."
	case errors.Is(err, ErrSaveFailed):
		return "Save failed. Please try again."
	}
	return err.Error()
}

// Form holds the editable values of one record.
type Form struct {
	Module   string
	Mode     Mode
	Sections []Section

	// RecordID is set when the form was opened on an existing record.
	RecordID string

	values map[string]any
	order  []string
}

// NewForm opens a form over sections. Values start from row where the row
// has the field and "" otherwise. row may be nil.
func NewForm(mode Mode, sections []Section, row json.RawMessage) *Form {
	f := &Form{
		Mode:     mode,
		Sections: sections,
		values:   make(map[string]any),
	}
	if row != nil {
		f.RecordID = RecordID(row)
	}
	for _, s := range sections {
		for _, fd := range s.Fields {
			if Ignored(fd.Name) {
				continue
			}
			if _, seen := f.values[fd.Name]; !seen {
				f.order = append(f.order, fd.Name)
			}
			f.values[fd.Name] = ""
			if row == nil {
				continue
			}
			if v := field(row, fd.Name); v.Exists() {
				f.values[fd.Name] = v.Value()
			}
		}
	}
	return f
}

// ReadOnly reports whether inputs are disabled.
func (f *Form) ReadOnly() bool { return f.Mode == ModeView }

// CanSave reports whether the form shows a save action.
func (f *Form) CanSave() bool { return f.Mode != ModeView }

// Fields lists the editable field names in section order.
func (f *Form) Fields() []string {
	return append([]string(nil), f.order...)
}

func (f *Form) Value(name string) any { return f.values[name] }

// Set changes one value.
func (f *Form) Set(name string, value any) error {
	if f.ReadOnly() {
		return ErrReadOnlyForm
	}
	if _, ok := f.values[name]; !ok {
		return ErrUnknownField
	}
	f.values[name] = value
	return nil
}

// Payload returns a copy of the values to send to the server.
func (f *Form) Payload() map[string]any {
	out := make(map[string]any, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}
