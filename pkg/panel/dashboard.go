package panel

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/adminsdk"
)

// RangeOption limits series to their most recent points. Points 0 keeps
// everything.
type RangeOption struct {
	Key    string
	Label  string
	Points int
}

// CurrencyOption converts USD amounts for display.
type CurrencyOption struct {
	Code   string
	Symbol string
	Rate   float64
}

var (
	rangeOptions = []RangeOption{
		{Key: "7d", Label: "Last 7 Days", Points: 7},
		{Key: "30d", Label: "Last 30 Days", Points: 30},
		{Key: "90d", Label: "Last 90 Days", Points: 90},
		{Key: "all", Label: "All Time"},
	}
	currencyOptions = []CurrencyOption{
		{Code: "USD", Symbol: "$", Rate: 1},
		{Code: "PKR", Symbol: "Rs ", Rate: 278},
		{Code: "EUR", Symbol: "EUR ", Rate: 0.92},
	}

	currencySensitive = regexp.MustCompile(`(?i)revenue|sales|amount|cash|price|balance|income|payment`)
	nonNumeric        = regexp.MustCompile(`[^0-9.-]`)
)

const maxSearchResults = 40

func RangeOptions() []RangeOption       { return append([]RangeOption(nil), rangeOptions...) }
func CurrencyOptions() []CurrencyOption { return append([]CurrencyOption(nil), currencyOptions...) }

// LookupRange returns the option for key, defaulting to the last 30 days.
func LookupRange(key string) RangeOption {
	for _, o := range rangeOptions {
		if o.Key == key {
			return o
		}
	}
	return rangeOptions[1]
}

// LookupCurrency returns the option for code, defaulting to USD.
func LookupCurrency(code string) CurrencyOption {
	for _, o := range currencyOptions {
		if o.Code == code {
			return o
		}
	}
	return currencyOptions[0]
}

// Notification is one entry of the notification popover.
type Notification struct {
	ID     string
	Title  string
	Detail string
}

// DashboardView is the dashboard prepared for display in a range and
// currency. Series items are copies of the aggregate's items with the
// derived keys added:
//   - kpis: "displayValue"
//   - streams: "amountNumeric" (nil when the amount is not numeric)
//   - revenue: "current" and "previous" scaled, 0 when missing
//   - salesBreakdown: "value" scaled, 0 when missing
type DashboardView struct {
	Range    RangeOption
	Currency CurrencyOption

	KPIs           []map[string]any
	Revenue        []map[string]any
	Streams        []map[string]any
	Funnel         []map[string]any
	SalesBreakdown []map[string]any
	Notifications  []Notification
	Profile        adminsdk.Profile
}

// SearchResult is a dashboard entry matching a search term.
type SearchResult struct {
	ID      string
	Section string
	Label   string
	Value   string
	Extra   string
}

// EmptyDashboard is shown when no aggregate is available.
func EmptyDashboard() adminsdk.Dashboard {
	return adminsdk.Dashboard{
		KPIs:           []map[string]any{},
		Revenue:        []map[string]any{},
		Streams:        []map[string]any{},
		Funnel:         []map[string]any{},
		SalesBreakdown: []map[string]any{},
		Notifications:  0,
	}
}

// NewDashboardView slices and converts d. d is not modified.
func NewDashboardView(d adminsdk.Dashboard, rng RangeOption, cur CurrencyOption) DashboardView {
	scaled := func(v any) (float64, bool) {
		n, ok := parseNumber(v)
		if !ok {
			return 0, false
		}
		return n * cur.Rate, true
	}

	v := DashboardView{
		Range:         rng,
		Currency:      cur,
		Funnel:        copyItems(sliceRange(d.Funnel, rng.Points)),
		Notifications: Notifications(d.Notifications),
		Profile:       d.Profile,
	}

	for _, item := range copyItems(sliceRange(d.Revenue, rng.Points)) {
		item["current"], _ = scaled(item["current"])
		item["previous"], _ = scaled(item["previous"])
		v.Revenue = append(v.Revenue, item)
	}
	for _, item := range copyItems(sliceRange(d.Streams, rng.Points)) {
		item["amountNumeric"] = nil
		if n, ok := scaled(item["amount"]); ok {
			item["amountNumeric"] = n
		}
		v.Streams = append(v.Streams, item)
	}
	for _, item := range copyItems(sliceRange(d.SalesBreakdown, rng.Points)) {
		item["value"], _ = scaled(item["value"])
		v.SalesBreakdown = append(v.SalesBreakdown, item)
	}
	for _, item := range copyItems(d.KPIs) {
		item["displayValue"] = text(item["value"])
		if currencySensitive.MatchString(text(item["label"])) {
			if n, ok := scaled(item["value"]); ok {
				item["displayValue"] = FormatCurrency(cur.Symbol, n)
			}
		}
		v.KPIs = append(v.KPIs, item)
	}
	return v
}

// Search looks for term across every dashboard series. Matching is case
// insensitive and at most 40 results are returned.
func (v DashboardView) Search(term string) []SearchResult {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var results []SearchResult
	add := func(section string, label, value, extra any) {
		l, val, ex := text(label), display(value), display(extra)
		haystack := strings.ToLower(fmt.Sprintf("%s %s %s %s", section, l, text(value), text(extra)))
		if !strings.Contains(haystack, term) {
			return
		}
		results = append(results, SearchResult{
			ID:      fmt.Sprintf("%s-%s-%d", section, l, len(results)),
			Section: section,
			Label:   l,
			Value:   val,
			Extra:   ex,
		})
	}

	for _, item := range v.KPIs {
		value := item["displayValue"]
		if text(value) == "" {
			value = item["value"]
		}
		add("KPI", item["label"], value, item["delta"])
	}
	for _, item := range v.Streams {
		amount := item["amount"]
		if n, ok := item["amountNumeric"].(float64); ok {
			amount = FormatCurrency(v.Currency.Symbol, n)
		}
		share, _ := parseNumber(item["share"])
		add("Revenue Stream", item["label"], amount, strconv.FormatFloat(share, 'f', -1, 64)+"%")
	}
	for _, item := range v.Funnel {
		add("Sales Funnel", item["name"], item["value"], "")
	}
	for _, item := range v.SalesBreakdown {
		add("Sales Breakdown", item["name"], item["value"], "")
	}
	for _, item := range v.Revenue {
		add("Revenue", item["name"], item["current"], item["previous"])
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

// Notifications normalizes the notification field, which is either a count
// or a list of strings and objects.
func Notifications(raw any) []Notification {
	if list, ok := raw.([]any); ok {
		out := make([]Notification, 0, len(list))
		for i, item := range list {
			fallbackID := fmt.Sprintf("notif-%d", i)
			switch it := item.(type) {
			case string:
				out = append(out, Notification{ID: fallbackID, Title: it, Detail: "New update"})
			case map[string]any:
				out = append(out, Notification{
					ID:     firstNonEmpty(text(it["id"]), fallbackID),
					Title:  firstNonEmpty(text(it["title"]), text(it["message"]), "Notification"),
					Detail: firstNonEmpty(text(it["detail"]), text(it["time"]), "New update"),
				})
			default:
				out = append(out, Notification{ID: fallbackID, Title: "Notification", Detail: "New update"})
			}
		}
		return out
	}

	count, _ := parseNumber(raw)
	n := int(math.Max(0, count))
	out := make([]Notification, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Notification{
			ID:     fmt.Sprintf("notif-%d", i),
			Title:  fmt.Sprintf("Notification %d", i+1),
			Detail: "System update available",
		})
	}
	return out
}

// FormatCurrency renders n rounded to a whole number with thousands
// separators: "$12,400".
func FormatCurrency(symbol string, n float64) string {
	return symbol + groupThousands(int64(math.Round(n)))
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

// parseNumber accepts numbers and numeric strings such as "$1,200".
func parseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsInf(n, 0) && !math.IsNaN(n)
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		cleaned := nonNumeric.ReplaceAllString(n, "")
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func sliceRange(rows []map[string]any, points int) []map[string]any {
	if points <= 0 || len(rows) <= points {
		return rows
	}
	return rows[len(rows)-points:]
}

func copyItems(rows []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		item := make(map[string]any, len(row)+1)
		for k, v := range row {
			item[k] = v
		}
		out = append(out, item)
	}
	return out
}

// text renders a value for matching. Missing values are "".
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
	return fmt.Sprint(v)
}

// display is text with "-" for missing values.
func display(v any) string {
	if v == nil {
		return "-"
	}
	return text(v)
}
