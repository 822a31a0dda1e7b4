package domain

// Dashboard is the singleton aggregate the overview page renders. The
// series are display-ready and free-form, so they stay untyped.
type Dashboard struct {
	KPIs           []map[string]any `json:"kpis" bson:"kpis"`
	Revenue        []map[string]any `json:"revenue" bson:"revenue"`
	Streams        []map[string]any `json:"streams" bson:"streams"`
	Funnel         []map[string]any `json:"funnel" bson:"funnel"`
	SalesBreakdown []map[string]any `json:"salesBreakdown" bson:"salesBreakdown"`

	// Notifications is either a count or a list of strings/objects.
	Notifications any `json:"notifications" bson:"notifications"`

	Profile Profile `json:"profile" bson:"profile"`
}

type Profile struct {
	Name string `json:"name" bson:"name"`
	Role string `json:"role" bson:"role"`
}

// EmptyDashboard is served whenever there is no stored aggregate.
func EmptyDashboard() Dashboard {
	return Dashboard{
		KPIs:           []map[string]any{},
		Revenue:        []map[string]any{},
		Streams:        []map[string]any{},
		Funnel:         []map[string]any{},
		SalesBreakdown: []map[string]any{},
		Notifications:  0,
	}
}

// Normalize replaces nil series with empty ones so clients always get
// arrays.
func (d *Dashboard) Normalize() {
	for _, s := range []*[]map[string]any{&d.KPIs, &d.Revenue, &d.Streams, &d.Funnel, &d.SalesBreakdown} {
		if *s == nil {
			*s = []map[string]any{}
		}
	}
	if d.Notifications == nil {
		d.Notifications = 0
	}
}
