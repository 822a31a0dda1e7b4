package panel_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/adminsdk"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/panel"
)

type fakeClient struct {
	mu        sync.Mutex
	loggedIn  bool
	records   map[string][]json.RawMessage
	listErr   error
	mutateErr error
	dashboard *adminsdk.Dashboard
	dashErr   error

	// block makes List wait until it is closed or the context ends.
	block chan struct{}

	lists   []string
	creates []any
	updates []string
	deletes []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{loggedIn: true, records: map[string][]json.RawMessage{}}
}

func (f *fakeClient) LoggedIn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loggedIn
}

func (f *fakeClient) Logout() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedIn = false
}

func (f *fakeClient) User() adminsdk.User { return adminsdk.User{Name: "Ops", Role: "Admin"} }

func (f *fakeClient) Dashboard(context.Context) (*adminsdk.Dashboard, error) {
	return f.dashboard, f.dashErr
}

func (f *fakeClient) List(ctx context.Context, endpoint string, _ int) ([]json.RawMessage, error) {
	f.mu.Lock()
	f.lists = append(f.lists, endpoint)
	block, err, rows := f.block, f.listErr, f.records[endpoint]
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return rows, err
}

func (f *fakeClient) Create(_ context.Context, endpoint string, payload any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, payload)
	return json.RawMessage(`{}`), f.mutateErr
}

func (f *fakeClient) Update(_ context.Context, _ string, id string, _ any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id)
	return json.RawMessage(`{}`), f.mutateErr
}

func (f *fakeClient) Delete(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return f.mutateErr
}

func (f *fakeClient) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.lists)
}

var unauthorized = &adminsdk.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid token"}

func TestLoadWhileLoggedOut(t *testing.T) {
	p := panel.New(panel.DefaultRegistry(), nil, nil)
	require.NoError(t, p.Select("vendors"))

	st, err := p.Load(t.Context())
	require.ErrorIs(t, err, panel.ErrLoginRequired)
	require.Equal(t, panel.StateError, st.State)
	require.Equal(t, "Please login to view this data.", panel.Message(st.Err))

	client := newFakeClient()
	client.loggedIn = false
	p.SetClient(client)
	_, err = p.Load(t.Context())
	require.ErrorIs(t, err, panel.ErrLoginRequired)
	require.Zero(t, client.listCount())
}

func TestLoadCachesUntilInvalidated(t *testing.T) {
	client := newFakeClient()
	client.records["vendors"] = []json.RawMessage{raw(`{"_id":"1","name":"Acme"}`)}
	p := panel.New(panel.DefaultRegistry(), client, nil)

	require.Equal(t, panel.StateIdle, p.State("vendors").State)

	st, err := p.Load(t.Context())
	require.NoError(t, err)
	require.Equal(t, panel.StateIdle, st.State, "dashboard has nothing to load")

	require.NoError(t, p.Select("vendors"))
	st, err = p.Load(t.Context())
	require.NoError(t, err)
	require.Equal(t, panel.StateLoaded, st.State)
	require.Len(t, st.Records, 1)

	_, err = p.Load(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, client.listCount())

	p.Invalidate("vendors")
	require.Equal(t, panel.StateIdle, p.State("vendors").State)

	_, err = p.Load(t.Context())
	require.NoError(t, err)
	require.Equal(t, 2, client.listCount())
}

func TestInvalidateSharedEndpoint(t *testing.T) {
	client := newFakeClient()
	p := panel.New(panel.DefaultRegistry(), client, nil)

	for _, key := range []string{"all-plans", "new-plan", "vendors"} {
		require.NoError(t, p.Select(key))
		_, err := p.Load(t.Context())
		require.NoError(t, err)
	}

	p.Invalidate("new-plan")
	require.Equal(t, panel.StateIdle, p.State("all-plans").State)
	require.Equal(t, panel.StateIdle, p.State("new-plan").State)
	require.Equal(t, panel.StateLoaded, p.State("vendors").State)
}

func TestLoadFailure(t *testing.T) {
	client := newFakeClient()
	client.listErr = &adminsdk.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}
	p := panel.New(panel.DefaultRegistry(), client, nil)
	require.NoError(t, p.Select("employees"))

	st, err := p.Load(t.Context())
	require.ErrorIs(t, err, panel.ErrLoadFailed)
	require.Equal(t, panel.StateError, st.State)
	require.Equal(t, "Unable to load data from server.", panel.Message(st.Err))
	require.Equal(t, panel.StateError, p.State("employees").State)
	require.True(t, p.LoggedIn())
}

func TestUnauthorizedForcesLogout(t *testing.T) {
	client := newFakeClient()
	client.listErr = unauthorized
	p := panel.New(panel.DefaultRegistry(), client, nil)
	require.NoError(t, p.Select("users"))

	_, err := p.Load(t.Context())
	require.True(t, adminsdk.IsUnauthorized(err))
	require.Equal(t, panel.DashboardKey, p.Active())
	require.False(t, p.LoggedIn())
	require.False(t, client.LoggedIn())
	require.Equal(t, panel.StateIdle, p.State("users").State)
}

func TestSelectCancelsInflightLoad(t *testing.T) {
	client := newFakeClient()
	client.block = make(chan struct{})
	p := panel.New(panel.DefaultRegistry(), client, nil)
	require.NoError(t, p.Select("vendors"))

	done := make(chan error, 1)
	go func() {
		_, err := p.Load(context.Background())
		done <- err
	}()
	require.Eventually(t, func() bool {
		return p.State("vendors").State == panel.StateLoading
	}, time.Second, time.Millisecond)

	require.NoError(t, p.Select("customers"))

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("load was not cancelled")
	}
	require.Equal(t, panel.StateIdle, p.State("vendors").State)
	require.Equal(t, "customers", p.Active())
}

func TestSetClientCancelsInflightLoad(t *testing.T) {
	first := newFakeClient()
	first.block = make(chan struct{})
	p := panel.New(panel.DefaultRegistry(), first, nil)
	require.NoError(t, p.Select("inventory"))

	done := make(chan error, 1)
	go func() {
		_, err := p.Load(context.Background())
		done <- err
	}()
	require.Eventually(t, func() bool {
		return p.State("inventory").State == panel.StateLoading
	}, time.Second, time.Millisecond)

	second := newFakeClient()
	second.records["inventory"] = []json.RawMessage{raw(`{"_id":"i1","itemName":"Fan"}`)}
	p.SetClient(second)
	require.ErrorIs(t, <-done, context.Canceled)

	st, err := p.Load(t.Context())
	require.NoError(t, err)
	require.Len(t, st.Records, 1)
}

func TestUnknownModule(t *testing.T) {
	p := panel.New(panel.DefaultRegistry(), newFakeClient(), nil)
	require.ErrorIs(t, p.Select("payroll"), panel.ErrUnknownModule)
	require.Equal(t, panel.DashboardKey, p.Active())
}

func TestToggleGroup(t *testing.T) {
	p := panel.New(panel.DefaultRegistry(), newFakeClient(), nil)

	require.True(t, p.ToggleGroup("hr"))
	require.True(t, p.GroupOpen("hr"))
	require.Equal(t, "attendance", p.Active())

	require.NoError(t, p.Select("employees"))
	require.False(t, p.ToggleGroup("hr"))
	require.Equal(t, "employees", p.Active())
}

func TestRows(t *testing.T) {
	client := newFakeClient()
	client.records["customers"] = []json.RawMessage{
		raw(`{"_id":"c1","fullName":"Ali","cnic":"35201-1234567-1"}`),
		raw(`{"_id":"c2","fullName":"Sara","cnic":"42101-7654321-2"}`),
	}
	p := panel.New(panel.DefaultRegistry(), client, nil)

	require.NoError(t, p.Select("customers"))
	_, err := p.Load(t.Context())
	require.NoError(t, err)
	require.Len(t, p.Rows(""), 2)
	require.Len(t, p.Rows("sara"), 1)

	require.NoError(t, p.Select("cnic"))
	_, err = p.Load(t.Context())
	require.NoError(t, err)
	require.Empty(t, p.Rows(""))
	require.Len(t, p.Rows("42101"), 1)
}

func TestSubmit(t *testing.T) {
	client := newFakeClient()
	client.records["vendors"] = []json.RawMessage{raw(`{"_id":"v1","name":"Acme"}`)}
	p := panel.New(panel.DefaultRegistry(), client, nil)
	require.NoError(t, p.Select("vendors"))
	_, err := p.Load(t.Context())
	require.NoError(t, err)

	create, err := p.OpenForm(panel.ModeCreate, nil)
	require.NoError(t, err)
	require.Equal(t, "vendors", create.Module)
	require.NoError(t, create.Set("name", "Zed"))
	require.NoError(t, p.Submit(t.Context(), create))
	require.Len(t, client.creates, 1)
	require.Equal(t, "Zed", client.creates[0].(map[string]any)["name"])
	require.Equal(t, panel.StateIdle, p.State("vendors").State)

	edit, err := p.OpenForm(panel.ModeEdit, raw(`{"_id":"v1","name":"Acme"}`))
	require.NoError(t, err)
	require.NoError(t, p.Submit(t.Context(), edit))
	require.Equal(t, []string{"v1"}, client.updates)

	view, err := p.OpenForm(panel.ModeView, raw(`{"_id":"v1"}`))
	require.NoError(t, err)
	require.ErrorIs(t, p.Submit(t.Context(), view), panel.ErrReadOnlyForm)

	require.NoError(t, p.Delete(t.Context(), raw(`{"_id":"v1"}`)))
	require.Equal(t, []string{"v1"}, client.deletes)
	require.NoError(t, p.Delete(t.Context(), raw(`{"name":"no id"}`)))
	require.Len(t, client.deletes, 1)
}

func TestSubmitDisallowedModes(t *testing.T) {
	client := newFakeClient()
	p := panel.New(panel.DefaultRegistry(), client, nil)
	require.NoError(t, p.Select("cnic"))

	create, err := p.OpenForm(panel.ModeCreate, nil)
	require.NoError(t, err)
	require.ErrorIs(t, p.Submit(t.Context(), create), panel.ErrCreateDisabled)

	edit, err := p.OpenForm(panel.ModeEdit, raw(`{"_id":"c1"}`))
	require.NoError(t, err)
	require.ErrorIs(t, p.Submit(t.Context(), edit), panel.ErrEditDisabled)

	err = p.Delete(t.Context(), raw(`{"_id":"c1"}`))
	require.ErrorIs(t, err, panel.ErrDeleteDisabled)
	require.Equal(t, "Delete is disabled for this module.", panel.Message(err))

	require.Empty(t, client.creates)
	require.Empty(t, client.updates)
	require.Empty(t, client.deletes)

	require.NoError(t, p.Select(panel.DashboardKey))
	_, err = p.OpenForm(panel.ModeCreate, nil)
	require.ErrorIs(t, err, panel.ErrNoActiveModule)
}

func TestSubmitFailures(t *testing.T) {
	client := newFakeClient()
	client.mutateErr = errors.New("connection reset")
	p := panel.New(panel.DefaultRegistry(), client, nil)
	require.NoError(t, p.Select("roles"))

	form, err := p.OpenForm(panel.ModeCreate, nil)
	require.NoError(t, err)
	err = p.Submit(t.Context(), form)
	require.ErrorIs(t, err, panel.ErrSaveFailed)
	require.Equal(t, "Save failed. Please try again.", panel.Message(err))
	require.True(t, p.LoggedIn())

	err = p.Delete(t.Context(), raw(`{"_id":"r1"}`))
	require.ErrorIs(t, err, panel.ErrDeleteFailed)

	client.mutateErr = unauthorized
	err = p.Submit(t.Context(), form)
	require.True(t, adminsdk.IsUnauthorized(err))
	require.False(t, p.LoggedIn())
	require.Equal(t, panel.DashboardKey, p.Active())
}

func TestDashboardNeverFails(t *testing.T) {
	p := panel.New(panel.DefaultRegistry(), nil, nil)
	require.Equal(t, panel.EmptyDashboard(), p.Dashboard(t.Context()))

	client := newFakeClient()
	client.dashErr = errors.New("timeout")
	p.SetClient(client)
	require.Equal(t, panel.EmptyDashboard(), p.Dashboard(t.Context()))
	require.True(t, p.LoggedIn())

	client.dashErr = nil
	client.dashboard = &adminsdk.Dashboard{Notifications: float64(2), Profile: adminsdk.Profile{Name: "Shop"}}
	d := p.Dashboard(t.Context())
	require.Len(t, panel.Notifications(d.Notifications), 2)

	name, role := p.Identity(d.Profile)
	require.Equal(t, "Ops", name)
	require.Equal(t, "Admin", role)

	client.dashErr = unauthorized
	require.Equal(t, panel.EmptyDashboard(), p.Dashboard(t.Context()))
	require.False(t, p.LoggedIn())
}
