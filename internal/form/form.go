// Package form is the container side of the widget-updated signal: it binds
// named fields to date pickers and tracks what changed.
package form

import (
	"showdate-cli/internal/calendar"

	"go.uber.org/zap"
)

type field struct {
	picker  *calendar.Picker
	value   string
	updates int
}

// Form holds the persisted value of each bound picker. Like the pickers it
// binds, it is owned by a single UI goroutine.
type Form struct {
	log    *zap.Logger
	fields map[string]*field
	order  []string
	dirty  bool
}

func New(log *zap.Logger) *Form {
	if log == nil {
		log = zap.NewNop()
	}
	return &Form{log: log, fields: map[string]*field{}}
}

// Bind attaches p under name and seeds the field with p's current value.
// Binding the same name again replaces the field but the old picker keeps
// its subscription; it is simply ignored.
func (f *Form) Bind(name string, p *calendar.Picker) {
	fd := &field{picker: p, value: p.PersistedValue()}
	if _, ok := f.fields[name]; !ok {
		f.order = append(f.order, name)
	}
	f.fields[name] = fd
	p.OnWidgetUpdated(func() {
		if f.fields[name] != fd {
			return
		}
		fd.value = p.PersistedValue()
		fd.updates++
		f.dirty = true
		f.log.Debug("widget updated",
			zap.String("field", name),
			zap.String("value", fd.value),
			zap.Int("updates", fd.updates))
	})
}

func (f *Form) Value(name string) string {
	if fd, ok := f.fields[name]; ok {
		return fd.value
	}
	return ""
}

// Updates counts widget-updated signals received for name.
func (f *Form) Updates(name string) int {
	if fd, ok := f.fields[name]; ok {
		return fd.updates
	}
	return 0
}

func (f *Form) Dirty() bool { return f.dirty }

func (f *Form) MarkClean() { f.dirty = false }

// Fields returns bound names in binding order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Values returns name => persisted value for every bound field.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for name, fd := range f.fields {
		out[name] = fd.value
	}
	return out
}
