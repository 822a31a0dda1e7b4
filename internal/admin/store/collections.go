package store

// Binding ties an API endpoint path to the physical collection behind it.
type Binding struct {
	// Endpoint is the path below /api, e.g. "reports/daily-closing".
	Endpoint string

	// Collection is the physical collection name.
	Collection string
}

// CollectionNames holds the physical collection for every business entity.
// Each can be overridden from the environment.
type CollectionNames struct {
	Vendors          string `env:"COLLECTION_VENDORS,default=vendors"`
	Customers        string `env:"COLLECTION_CUSTOMERS,default=customers"`
	Guarantors       string `env:"COLLECTION_GUARANTORS,default=guarantors"`
	Inventory        string `env:"COLLECTION_INVENTORY,default=inventory"`
	CNICChecks       string `env:"COLLECTION_CNIC_CHECKS,default=cnic_checks"`
	InstallmentPlans string `env:"COLLECTION_INSTALLMENT_PLANS,default=installment_plans"`
	Attendance       string `env:"COLLECTION_ATTENDANCE,default=attendance"`
	Employees        string `env:"COLLECTION_EMPLOYEES,default=employees"`
	ReportSummary    string `env:"COLLECTION_REPORT_SUMMARY,default=report_summary"`
	ReportDaily      string `env:"COLLECTION_REPORT_DAILY,default=report_daily_closing"`
	Users            string `env:"COLLECTION_USERS,default=users"`
	Roles            string `env:"COLLECTION_ROLES,default=roles"`
}

// DefaultCollectionNames returns the names used when nothing is overridden.
func DefaultCollectionNames() CollectionNames {
	return CollectionNames{
		Vendors:          "vendors",
		Customers:        "customers",
		Guarantors:       "guarantors",
		Inventory:        "inventory",
		CNICChecks:       "cnic_checks",
		InstallmentPlans: "installment_plans",
		Attendance:       "attendance",
		Employees:        "employees",
		ReportSummary:    "report_summary",
		ReportDaily:      "report_daily_closing",
		Users:            "users",
		Roles:            "roles",
	}
}

// Bindings lists every endpoint in route registration order.
func (n CollectionNames) Bindings() []Binding {
	return []Binding{
		{Endpoint: "vendors", Collection: n.Vendors},
		{Endpoint: "customers", Collection: n.Customers},
		{Endpoint: "guarantors", Collection: n.Guarantors},
		{Endpoint: "inventory", Collection: n.Inventory},
		{Endpoint: "cnic-checks", Collection: n.CNICChecks},
		{Endpoint: "installment-plans", Collection: n.InstallmentPlans},
		{Endpoint: "attendance", Collection: n.Attendance},
		{Endpoint: "employees", Collection: n.Employees},
		{Endpoint: "reports/summary", Collection: n.ReportSummary},
		{Endpoint: "reports/daily-closing", Collection: n.ReportDaily},
		{Endpoint: "users", Collection: n.Users},
		{Endpoint: "roles", Collection: n.Roles},
	}
}

// Names returns the distinct physical collection names.
func (n CollectionNames) Names() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range n.Bindings() {
		if _, ok := seen[b.Collection]; ok {
			continue
		}
		seen[b.Collection] = struct{}{}
		out = append(out, b.Collection)
	}
	return out
}
