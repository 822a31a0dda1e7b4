package panel

import "sort"

// FieldKind is the input used to edit a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindTime     FieldKind = "time"
	KindEmail    FieldKind = "email"
	KindSelect   FieldKind = "select"
)

// Field describes one form input.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"type"`
	Required bool      `json:"required,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// Section is an ordered group of fields shown under one heading.
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// ListConfig selects which record keys are shown in list rows.
type ListConfig struct {
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Meta     []string `json:"meta,omitempty"`
}

// ModuleSchema is the static description of one module's views.
type ModuleSchema struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`

	// Endpoint is the path below /api, e.g. "reports/summary".
	Endpoint string `json:"endpoint"`

	// Label names a single record ("Customer").
	Label    string     `json:"label,omitempty"`
	List     ListConfig `json:"list"`
	Sections []Section  `json:"sections,omitempty"`

	ReadOnly bool `json:"readOnly,omitempty"`
}

// CanCreate reports whether new records may be created. Modules without any
// form sections cannot create until sections are inferred.
func (s ModuleSchema) CanCreate(sections []Section) bool {
	return !s.ReadOnly && len(sections) > 0
}

func (s ModuleSchema) CanEdit() bool   { return !s.ReadOnly }
func (s ModuleSchema) CanDelete() bool { return !s.ReadOnly }

// Registry is a read-only lookup from module key to schema.
type Registry struct {
	modules map[string]ModuleSchema
}

// NewRegistry indexes schemas by key. Later duplicates win.
func NewRegistry(schemas ...ModuleSchema) *Registry {
	r := &Registry{modules: make(map[string]ModuleSchema, len(schemas))}
	for _, s := range schemas {
		r.modules[s.Key] = s
	}
	return r
}

// Lookup returns the schema for key.
func (r *Registry) Lookup(key string) (ModuleSchema, bool) {
	s, ok := r.modules[key]
	return s, ok
}

// Keys returns every module key, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.modules))
	for k := range r.modules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NavItem is an entry in the side navigation. Groups have children and no
// module of their own.
type NavItem struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Children []NavItem `json:"children,omitempty"`
}

// DefaultChild is the module opened when a group is expanded.
func (n NavItem) DefaultChild() string {
	if len(n.Children) == 0 {
		return ""
	}
	return n.Children[0].Key
}

// DashboardKey is the module key of the overview page.
const DashboardKey = "dashboard"

// Navigation returns the side navigation tree.
func Navigation() []NavItem {
	return []NavItem{
		{Key: DashboardKey, Label: "Dashboard"},
		{Key: "cnic", Label: "CNIC & Inventory Check"},
		{Key: "inventory", Label: "Inventory"},
		{Key: "vendors", Label: "Vendors"},
		{Key: "customers", Label: "Customers"},
		{Key: "guarantors", Label: "Guarantors"},
		{Key: "installment", Label: "Installment Plans", Children: []NavItem{
			{Key: "all-plans", Label: "All Plans"},
			{Key: "new-plan", Label: "Add New Plan"},
		}},
		{Key: "hr", Label: "HR Management", Children: []NavItem{
			{Key: "attendance", Label: "Attendance"},
			{Key: "employees", Label: "Employees"},
		}},
		{Key: "reports", Label: "Reports", Children: []NavItem{
			{Key: "summary", Label: "Summary"},
			{Key: "daily-closing", Label: "Daily Closing"},
		}},
		{Key: "administration", Label: "Administration", Children: []NavItem{
			{Key: "users", Label: "Users"},
			{Key: "roles", Label: "Roles & Permissions"},
		}},
	}
}

var (
	activeInactive = []string{"Active", "Inactive"}
	planStatus     = []string{"Active", "Completed", "Overdue"}
)

func planSections() []Section {
	return []Section{{
		Title: "Installment Plan",
		Fields: []Field{
			{Name: "customerName", Label: "Customer Name", Kind: KindText},
			{Name: "planName", Label: "Plan Name", Kind: KindText},
			{Name: "totalAmount", Label: "Total Amount", Kind: KindNumber},
			{Name: "downPayment", Label: "Down Payment", Kind: KindNumber},
			{Name: "monthlyInstallment", Label: "Monthly Installment", Kind: KindNumber},
			{Name: "durationMonths", Label: "Duration (Months)", Kind: KindNumber},
			{Name: "startDate", Label: "Start Date", Kind: KindDate},
			{Name: "status", Label: "Status", Kind: KindSelect, Options: planStatus},
		},
	}}
}

// DefaultRegistry returns the schemas of every business module.
func DefaultRegistry() *Registry {
	planList := ListConfig{Title: "customerName", Subtitle: "planName", Meta: []string{"totalAmount", "status"}}

	return NewRegistry(
		ModuleSchema{
			Key:      "cnic",
			Title:    "CNIC & Inventory Check",
			Subtitle: "Search customer records using CNIC number.",
			Endpoint: "customers",
			Label:    "Customer",
			ReadOnly: true,
			List:     ListConfig{Title: "fullName", Subtitle: "cnic", Meta: []string{"primaryPhone", "address"}},
			Sections: []Section{{
				Title: "Customer Lookup",
				Fields: []Field{
					{Name: "fullName", Label: "Customer Name", Kind: KindText},
					{Name: "cnic", Label: "CNIC", Kind: KindText, Required: true},
					{Name: "primaryPhone", Label: "Primary Phone", Kind: KindText},
					{Name: "address", Label: "Address", Kind: KindTextarea},
				},
			}},
		},
		ModuleSchema{
			Key:      "inventory",
			Title:    "Inventory",
			Subtitle: "Monitor stock levels and product movement.",
			Endpoint: "inventory",
			Label:    "Item",
			List:     ListConfig{Title: "itemName", Subtitle: "sku", Meta: []string{"category", "quantity"}},
			Sections: []Section{{
				Title: "Inventory Item",
				Fields: []Field{
					{Name: "itemName", Label: "Item Name", Kind: KindText, Required: true},
					{Name: "sku", Label: "SKU", Kind: KindText},
					{Name: "category", Label: "Category", Kind: KindText},
					{Name: "quantity", Label: "Quantity", Kind: KindNumber},
					{Name: "unitPrice", Label: "Unit Price", Kind: KindNumber},
					{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"In Stock", "Low Stock", "Out of Stock"}},
				},
			}},
		},
		ModuleSchema{
			Key:      "vendors",
			Title:    "Vendors",
			Subtitle: "Manage supplier accounts and outstanding balances.",
			Endpoint: "vendors",
			Label:    "Vendor",
			List:     ListConfig{Title: "name", Subtitle: "phone", Meta: []string{"companyName", "status"}},
			Sections: []Section{{
				Title: "Vendor Details",
				Fields: []Field{
					{Name: "name", Label: "Vendor Name", Kind: KindText, Required: true},
					{Name: "phone", Label: "Phone", Kind: KindText},
					{Name: "companyName", Label: "Company Name", Kind: KindText},
					{Name: "address", Label: "Address", Kind: KindTextarea},
					{Name: "balance", Label: "Balance", Kind: KindNumber},
					{Name: "status", Label: "Status", Kind: KindSelect, Options: activeInactive},
				},
			}},
		},
		ModuleSchema{
			Key:      "customers",
			Title:    "Customers",
			Subtitle: "Track customer profiles, payments, and history.",
			Endpoint: "customers",
			Label:    "Customer",
			List:     ListConfig{Title: "fullName", Subtitle: "cnic", Meta: []string{"primaryPhone", "address"}},
			Sections: []Section{
				{
					Title: "Personal Information",
					Fields: []Field{
						{Name: "fullName", Label: "Full Name", Kind: KindText, Required: true},
						{Name: "fatherName", Label: "Father Name", Kind: KindText},
						{Name: "primaryPhone", Label: "Primary Phone", Kind: KindText, Required: true},
						{Name: "secondaryPhone", Label: "Secondary Phone", Kind: KindText},
						{Name: "cnic", Label: "CNIC Number", Kind: KindText, Required: true},
						{Name: "dateOfBirth", Label: "Date of Birth", Kind: KindDate},
						{Name: "maritalStatus", Label: "Marital Status", Kind: KindSelect, Options: []string{"Single", "Married", "Other"}},
						{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"Active", "Inactive", "Hold"}},
						{Name: "address", Label: "Full Address", Kind: KindTextarea},
					},
				},
				{
					Title: "Work & Income",
					Fields: []Field{
						{Name: "homeType", Label: "Home Type", Kind: KindSelect, Options: []string{"Owned", "Rented", "Family"}},
						{Name: "sourceOfIncome", Label: "Source of Income", Kind: KindSelect, Options: []string{"Salary", "Business", "Self-employed", "Other"}},
						{Name: "companyName", Label: "Company Name", Kind: KindText},
						{Name: "designation", Label: "Designation", Kind: KindText},
						{Name: "yearsExperience", Label: "Years of Experience", Kind: KindNumber},
						{Name: "referencedBy", Label: "Referenced By", Kind: KindText},
						{Name: "companyAddress", Label: "Company Address", Kind: KindTextarea},
					},
				},
			},
		},
		ModuleSchema{
			Key:      "guarantors",
			Title:    "Guarantors",
			Subtitle: "Review guarantor documents and credit exposure.",
			Endpoint: "guarantors",
			Label:    "Guarantor",
			List:     ListConfig{Title: "name", Subtitle: "cnic", Meta: []string{"phone", "relation"}},
			Sections: []Section{{
				Title: "Guarantor Details",
				Fields: []Field{
					{Name: "name", Label: "Guarantor Name", Kind: KindText, Required: true},
					{Name: "cnic", Label: "CNIC", Kind: KindText},
					{Name: "phone", Label: "Phone", Kind: KindText},
					{Name: "relation", Label: "Relation", Kind: KindText},
					{Name: "address", Label: "Address", Kind: KindTextarea},
					{Name: "status", Label: "Status", Kind: KindSelect, Options: activeInactive},
				},
			}},
		},
		ModuleSchema{
			Key:      "all-plans",
			Title:    "Installment Plans",
			Subtitle: "Active installment plans and schedules.",
			Endpoint: "installment-plans",
			Label:    "Installment Plan",
			List:     planList,
			Sections: planSections(),
		},
		ModuleSchema{
			Key:      "new-plan",
			Title:    "Add New Plan",
			Subtitle: "Create and review installment plan records.",
			Endpoint: "installment-plans",
			Label:    "Installment Plan",
			List:     planList,
			Sections: planSections(),
		},
		ModuleSchema{
			Key:      "attendance",
			Title:    "Attendance",
			Subtitle: "Daily staff attendance tracking.",
			Endpoint: "attendance",
			Label:    "Attendance",
			List:     ListConfig{Title: "employeeName", Subtitle: "date", Meta: []string{"status"}},
			Sections: []Section{{
				Title: "Attendance Record",
				Fields: []Field{
					{Name: "employeeName", Label: "Employee Name", Kind: KindText},
					{Name: "date", Label: "Date", Kind: KindDate},
					{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{"Present", "Absent", "Late", "Leave"}},
					{Name: "checkIn", Label: "Check In", Kind: KindTime},
					{Name: "checkOut", Label: "Check Out", Kind: KindTime},
					{Name: "remarks", Label: "Remarks", Kind: KindTextarea},
				},
			}},
		},
		ModuleSchema{
			Key:      "employees",
			Title:    "Employees",
			Subtitle: "Employee profiles and assignments.",
			Endpoint: "employees",
			Label:    "Employee",
			List:     ListConfig{Title: "fullName", Subtitle: "department", Meta: []string{"phone"}},
			Sections: []Section{{
				Title: "Employee Details",
				Fields: []Field{
					{Name: "fullName", Label: "Full Name", Kind: KindText, Required: true},
					{Name: "phone", Label: "Phone", Kind: KindText},
					{Name: "department", Label: "Department", Kind: KindText},
					{Name: "designation", Label: "Designation", Kind: KindText},
					{Name: "joiningDate", Label: "Joining Date", Kind: KindDate},
					{Name: "salary", Label: "Salary", Kind: KindNumber},
					{Name: "status", Label: "Status", Kind: KindSelect, Options: activeInactive},
				},
			}},
		},
		ModuleSchema{
			Key:      "summary",
			Title:    "Reports Summary",
			Subtitle: "High-level operational insights.",
			Endpoint: "reports/summary",
			Label:    "Report Summary",
			List:     ListConfig{Title: "reportDate", Subtitle: "totalSales", Meta: []string{"totalOrders"}},
			Sections: []Section{{
				Title: "Summary Report",
				Fields: []Field{
					{Name: "reportDate", Label: "Report Date", Kind: KindDate},
					{Name: "totalSales", Label: "Total Sales", Kind: KindNumber},
					{Name: "totalOrders", Label: "Total Orders", Kind: KindNumber},
					{Name: "totalCustomers", Label: "Total Customers", Kind: KindNumber},
					{Name: "notes", Label: "Notes", Kind: KindTextarea},
				},
			}},
		},
		ModuleSchema{
			Key:      "daily-closing",
			Title:    "Daily Closing",
			Subtitle: "End-of-day reconciliation data.",
			Endpoint: "reports/daily-closing",
			Label:    "Daily Closing",
			List:     ListConfig{Title: "closingDate", Subtitle: "cashInHand", Meta: []string{"totalSales"}},
			Sections: []Section{{
				Title: "Daily Closing",
				Fields: []Field{
					{Name: "closingDate", Label: "Closing Date", Kind: KindDate},
					{Name: "cashInHand", Label: "Cash In Hand", Kind: KindNumber},
					{Name: "totalSales", Label: "Total Sales", Kind: KindNumber},
					{Name: "expenses", Label: "Expenses", Kind: KindNumber},
					{Name: "notes", Label: "Notes", Kind: KindTextarea},
				},
			}},
		},
		ModuleSchema{
			Key:      "users",
			Title:    "Users",
			Subtitle: "System user accounts.",
			Endpoint: "users",
			Label:    "User",
			List:     ListConfig{Title: "name", Subtitle: "email", Meta: []string{"role", "status"}},
			Sections: []Section{{
				Title: "User Account",
				Fields: []Field{
					{Name: "name", Label: "Full Name", Kind: KindText, Required: true},
					{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
					{Name: "role", Label: "Role", Kind: KindText},
					{Name: "phone", Label: "Phone", Kind: KindText},
					{Name: "status", Label: "Status", Kind: KindSelect, Options: activeInactive},
				},
			}},
		},
		ModuleSchema{
			Key:      "roles",
			Title:    "Roles & Permissions",
			Subtitle: "Access control and permissions.",
			Endpoint: "roles",
			Label:    "Role",
			List:     ListConfig{Title: "name", Subtitle: "slug", Meta: []string{"status"}},
			Sections: []Section{{
				Title: "Role Details",
				Fields: []Field{
					{Name: "name", Label: "Role Name", Kind: KindText, Required: true},
					{Name: "slug", Label: "Slug", Kind: KindText},
					{Name: "permissions", Label: "Permissions", Kind: KindTextarea},
					{Name: "status", Label: "Status", Kind: KindSelect, Options: activeInactive},
				},
			}},
		},
	)
}
