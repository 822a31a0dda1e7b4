package panel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goccy/go-json"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/adminsdk"
)

// Client is the API surface the panel needs. *adminsdk.Session implements it.
type Client interface {
	LoggedIn() bool
	Logout()
	User() adminsdk.User
	Dashboard(ctx context.Context) (*adminsdk.Dashboard, error)
	List(ctx context.Context, endpoint string, limit int) ([]json.RawMessage, error)
	Create(ctx context.Context, endpoint string, payload any) (json.RawMessage, error)
	Update(ctx context.Context, endpoint, id string, payload any) (json.RawMessage, error)
	Delete(ctx context.Context, endpoint, id string) error
}

// State is the load state of one module.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateError   State = "error"
)

// ModuleState is a snapshot of one module's records.
type ModuleState struct {
	State   State
	Records []json.RawMessage
	Err     error
}

type fetch struct {
	seq    uint64
	cancel context.CancelFunc
}

// Panel is the client-side state of the admin UI: the signed-in client,
// the active module and a record cache per module. It is safe for
// concurrent use.
//
// At most one fetch per module is in flight. Starting a new fetch, changing
// the active module or changing the client cancels the previous one, so the
// last request issued always wins.
type Panel struct {
	registry *Registry
	logger   *slog.Logger

	mu         sync.Mutex
	client     Client
	active     string
	openGroups map[string]bool
	modules    map[string]ModuleState
	inflight   map[string]fetch
	seq        uint64
}

// New returns a panel showing the dashboard. client may be nil when nobody
// is signed in.
func New(registry *Registry, client Client, logger *slog.Logger) *Panel {
	if logger == nil {
		logger = slog.Default()
	}
	return &Panel{
		registry:   registry,
		logger:     logger,
		client:     client,
		active:     DashboardKey,
		openGroups: make(map[string]bool),
		modules:    make(map[string]ModuleState),
		inflight:   make(map[string]fetch),
	}
}

// SetClient switches to a new signed-in client. Cached records belong to the
// previous identity and are dropped.
func (p *Panel) SetClient(c Client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelAllLocked()
	p.client = c
	p.modules = make(map[string]ModuleState)
}

// LoggedIn reports whether a signed-in client is attached.
func (p *Panel) LoggedIn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client != nil && p.client.LoggedIn()
}

// Logout forgets the client and every cached record, and returns to the
// dashboard.
func (p *Panel) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logoutLocked()
}

func (p *Panel) logoutLocked() {
	p.cancelAllLocked()
	if p.client != nil {
		p.client.Logout()
	}
	p.client = nil
	p.active = DashboardKey
	p.modules = make(map[string]ModuleState)
}

// Active returns the key of the module on screen.
func (p *Panel) Active() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Select makes key the active module.
func (p *Panel) Select(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selectLocked(key)
}

func (p *Panel) selectLocked(key string) error {
	if key != DashboardKey {
		if _, ok := p.registry.Lookup(key); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownModule, key)
		}
	}
	if key != p.active {
		p.cancelAllLocked()
		p.active = key
	}
	return nil
}

// ToggleGroup opens or closes a navigation group and reports whether it is
// now open. Opening a group selects its first child.
func (p *Panel) ToggleGroup(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	wasOpen := p.openGroups[key]
	p.openGroups[key] = !wasOpen
	if !wasOpen {
		for _, item := range Navigation() {
			if item.Key == key && item.DefaultChild() != "" {
				_ = p.selectLocked(item.DefaultChild())
			}
		}
	}
	return !wasOpen
}

// GroupOpen reports whether a navigation group is expanded.
func (p *Panel) GroupOpen(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.openGroups[key]
}

// State returns the current state of a module.
func (p *Panel) State(key string) ModuleState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked(key)
}

func (p *Panel) stateLocked(key string) ModuleState {
	st, ok := p.modules[key]
	if !ok {
		return ModuleState{State: StateIdle}
	}
	return st
}

// Load fetches the records of the active module unless they are cached.
// Loading while signed out fails with ErrLoginRequired and touches no
// network. A fetch superseded by a newer one returns context.Canceled and
// leaves the newer fetch's state alone.
func (p *Panel) Load(ctx context.Context) (ModuleState, error) {
	p.mu.Lock()
	key := p.active
	if key == DashboardKey {
		p.mu.Unlock()
		return ModuleState{State: StateIdle}, nil
	}
	schema, ok := p.registry.Lookup(key)
	if !ok {
		p.mu.Unlock()
		return ModuleState{State: StateIdle}, fmt.Errorf("%w: %s", ErrUnknownModule, key)
	}
	if st := p.modules[key]; st.State == StateLoaded {
		p.mu.Unlock()
		return st, nil
	}
	if p.client == nil || !p.client.LoggedIn() {
		st := ModuleState{State: StateError, Err: ErrLoginRequired}
		p.modules[key] = st
		p.mu.Unlock()
		return st, ErrLoginRequired
	}

	p.cancelLocked(key)
	p.seq++
	seq := p.seq
	fctx, cancel := context.WithCancel(ctx)
	p.inflight[key] = fetch{seq: seq, cancel: cancel}
	p.modules[key] = ModuleState{State: StateLoading}
	client := p.client
	p.mu.Unlock()

	records, err := client.List(fctx, schema.Endpoint, 0)
	cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if f, current := p.inflight[key]; !current || f.seq != seq {
		return p.stateLocked(key), context.Canceled
	}
	delete(p.inflight, key)

	if err != nil {
		if adminsdk.IsUnauthorized(err) {
			p.logoutLocked()
			return ModuleState{State: StateError, Err: ErrLoginRequired}, err
		}
		p.logger.Warn("module load failed", "module", key, "error", err)
		st := ModuleState{State: StateError, Err: fmt.Errorf("%w: %w", ErrLoadFailed, err)}
		p.modules[key] = st
		return st, st.Err
	}

	st := ModuleState{State: StateLoaded, Records: records}
	p.modules[key] = st
	return st, nil
}

// Invalidate drops the cached records of key and of every module that reads
// the same endpoint. The next Load fetches again.
func (p *Panel) Invalidate(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidateLocked(key)
}

func (p *Panel) invalidateLocked(key string) {
	schema, ok := p.registry.Lookup(key)
	if !ok {
		return
	}
	for _, other := range p.registry.Keys() {
		s, _ := p.registry.Lookup(other)
		if s.Endpoint != schema.Endpoint {
			continue
		}
		p.cancelLocked(other)
		delete(p.modules, other)
	}
}

func (p *Panel) cancelLocked(key string) {
	f, ok := p.inflight[key]
	if !ok {
		return
	}
	f.cancel()
	delete(p.inflight, key)
	if p.modules[key].State == StateLoading {
		p.modules[key] = ModuleState{State: StateIdle}
	}
}

func (p *Panel) cancelAllLocked() {
	for key := range p.inflight {
		p.cancelLocked(key)
	}
}

// Sections returns the form sections of the active module.
func (p *Panel) Sections() []Section {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sectionsLocked(p.active)
}

func (p *Panel) sectionsLocked(key string) []Section {
	schema, ok := p.registry.Lookup(key)
	if !ok {
		return nil
	}
	return Resolve(&schema, p.stateLocked(key).Records)
}

// Rows filters the cached records of the active module. The CNIC module
// only shows records matching a query; every other module does a free-text
// search.
func (p *Panel) Rows(query string) []json.RawMessage {
	p.mu.Lock()
	key := p.active
	records := p.stateLocked(key).Records
	p.mu.Unlock()

	if key == "cnic" {
		return CNICLookup(records, query)
	}
	return Search(records, query)
}

// OpenForm opens a form on the active module. row is nil for create.
func (p *Panel) OpenForm(mode Mode, row json.RawMessage) (*Form, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == DashboardKey {
		return nil, ErrNoActiveModule
	}
	f := NewForm(mode, p.sectionsLocked(p.active), row)
	f.Module = p.active
	return f, nil
}

// Submit saves a form. Modes the module does not allow fail before any
// request is made. A successful save invalidates the module's cache.
func (p *Panel) Submit(ctx context.Context, f *Form) error {
	p.mu.Lock()
	schema, ok := p.registry.Lookup(f.Module)
	sections := p.sectionsLocked(f.Module)
	client := p.client
	p.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModule, f.Module)
	}
	switch f.Mode {
	case ModeView:
		return ErrReadOnlyForm
	case ModeCreate:
		if !schema.CanCreate(sections) {
			return ErrCreateDisabled
		}
	case ModeEdit:
		if !schema.CanEdit() {
			return ErrEditDisabled
		}
	}
	if client == nil || !client.LoggedIn() {
		return ErrLoginRequired
	}

	var err error
	if f.Mode == ModeEdit && f.RecordID != "" {
		_, err = client.Update(ctx, schema.Endpoint, f.RecordID, f.Payload())
	} else {
		_, err = client.Create(ctx, schema.Endpoint, f.Payload())
	}
	if err != nil {
		return p.mutationFailed(ErrSaveFailed, err)
	}
	p.Invalidate(f.Module)
	return nil
}

// Delete removes row from the active module. Rows without an id are ignored.
func (p *Panel) Delete(ctx context.Context, row json.RawMessage) error {
	p.mu.Lock()
	key := p.active
	schema, ok := p.registry.Lookup(key)
	client := p.client
	p.mu.Unlock()

	if !ok {
		return ErrNoActiveModule
	}
	if !schema.CanDelete() {
		return ErrDeleteDisabled
	}
	id := RecordID(row)
	if id == "" {
		return nil
	}
	if client == nil || !client.LoggedIn() {
		return ErrLoginRequired
	}
	if err := client.Delete(ctx, schema.Endpoint, id); err != nil {
		return p.mutationFailed(ErrDeleteFailed, err)
	}
	p.Invalidate(key)
	return nil
}

func (p *Panel) mutationFailed(kind, err error) error {
	if adminsdk.IsUnauthorized(err) {
		p.Logout()
	} else {
		p.logger.Warn("module update failed", "error", err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// Dashboard fetches the overview aggregate. It never fails: when signed out
// or on any error the empty dashboard is returned.
func (p *Panel) Dashboard(ctx context.Context) adminsdk.Dashboard {
	p.mu.Lock()
	client := p.client
	p.mu.Unlock()

	if client == nil || !client.LoggedIn() {
		return EmptyDashboard()
	}
	d, err := client.Dashboard(ctx)
	if err != nil {
		if adminsdk.IsUnauthorized(err) {
			p.Logout()
		} else {
			p.logger.Warn("dashboard load failed", "error", err)
		}
		return EmptyDashboard()
	}
	return *d
}

// Identity returns the name and role shown in the header.
func (p *Panel) Identity(profile adminsdk.Profile) (name, role string) {
	p.mu.Lock()
	var user adminsdk.User
	if p.client != nil {
		user = p.client.User()
	}
	p.mu.Unlock()
	return DisplayIdentity(user, profile)
}

// DisplayIdentity prefers the signed-in user, then the dashboard profile.
func DisplayIdentity(user adminsdk.User, profile adminsdk.Profile) (name, role string) {
	name = firstNonEmpty(user.Name, profile.Name, "Admin")
	role = firstNonEmpty(user.Role, profile.Role, "Super Admin")
	return name, role
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
