// Package report aggregates delivery data from Google Sheets into
// per-recipient summaries.
package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Spreadsheet identifiers and ranges for the nonprofit's tracking sheets.
const (
	DefaultRecipientSpreadsheetID = "13tTXxSsk59AuCTKTW_6u2wNCcuenXBATYdB10AKgN88"
	DefaultRecipientRange         = "Food_Recipients!A:H"

	DefaultMasterSpreadsheetID = "16IYJNVI5Bgnnx17VzJm3nigq0VcQjz8DN43RCeQM80M"
	DefaultMasterRange         = "Form responses!B:P"
)

// Delivery frequency buckets based on deliveries this month.
const (
	FrequencyNone   = "None"
	FrequencyLow    = "Low"
	FrequencyMedium = "Medium"
	FrequencyHigh   = "High"
)

// SheetFetcher retrieves cell values from a spreadsheet range.
type SheetFetcher interface {
	FetchValues(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error)
}

// RecipientSummary is the aggregated delivery summary for one recipient.
type RecipientSummary struct {
	Recipient                string  `json:"recipient"`
	LastDelivery             *string `json:"lastDelivery"`
	TotalDeliveriesThisMonth int     `json:"totalDeliveriesThisMonth"`
	TotalPoundsThisMonth     float64 `json:"totalPoundsThisMonth"`
	TotalDeliveriesThisYear  int     `json:"totalDeliveriesThisYear"`
	TotalPoundsThisYear      float64 `json:"totalPoundsThisYear"`
	AvgPoundsPerDelivery     float64 `json:"avgPoundsPerDelivery"`
	PriorityLevel            *int    `json:"priorityLevel"`
	DeliveryFrequency        string  `json:"deliveryFrequency"`
	Location                 *string `json:"location"`
}

// ServiceConfig holds configuration for the report service.
type ServiceConfig struct {
	Fetcher SheetFetcher
	Logger  zerolog.Logger

	RecipientSpreadsheetID string
	RecipientRange         string
	MasterSpreadsheetID    string
	MasterRange            string

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time
}

// Service computes recipient delivery summaries.
type Service struct {
	fetcher SheetFetcher
	log     zerolog.Logger

	recipientSpreadsheetID string
	recipientRange         string
	masterSpreadsheetID    string
	masterRange            string

	now func() time.Time
}

// NewService creates a report service.
func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		fetcher:                cfg.Fetcher,
		log:                    cfg.Logger,
		recipientSpreadsheetID: cfg.RecipientSpreadsheetID,
		recipientRange:         cfg.RecipientRange,
		masterSpreadsheetID:    cfg.MasterSpreadsheetID,
		masterRange:            cfg.MasterRange,
		now:                    cfg.Now,
	}
	if s.recipientSpreadsheetID == "" {
		s.recipientSpreadsheetID = DefaultRecipientSpreadsheetID
	}
	if s.recipientRange == "" {
		s.recipientRange = DefaultRecipientRange
	}
	if s.masterSpreadsheetID == "" {
		s.masterSpreadsheetID = DefaultMasterSpreadsheetID
	}
	if s.masterRange == "" {
		s.masterRange = DefaultMasterRange
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// recipientInfo holds the mapping-sheet attributes for a recipient.
type recipientInfo struct {
	priorityLevel *int
	location      *string
}

// totals accumulates delivery counts for one recipient.
type totals struct {
	lastDelivery             *time.Time
	totalDeliveriesThisMonth int
	totalPoundsThisMonth     float64
	totalDeliveriesThisYear  int
	totalPoundsThisYear      float64
}

// RecipientSummaries fetches both sheets and aggregates one summary per
// recipient found in the delivery master sheet.
func (s *Service) RecipientSummaries(ctx context.Context) ([]RecipientSummary, error) {
	recipientMap, err := s.loadRecipients(ctx)
	if err != nil {
		return nil, err
	}

	totalsMap, order, err := s.loadDeliveryTotals(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]RecipientSummary, 0, len(order))
	for _, name := range order {
		t := totalsMap[name]

		summary := RecipientSummary{
			Recipient:                name,
			TotalDeliveriesThisMonth: t.totalDeliveriesThisMonth,
			TotalPoundsThisMonth:     t.totalPoundsThisMonth,
			TotalDeliveriesThisYear:  t.totalDeliveriesThisYear,
			TotalPoundsThisYear:      t.totalPoundsThisYear,
			DeliveryFrequency:        deliveryFrequency(t.totalDeliveriesThisMonth),
		}

		if t.lastDelivery != nil {
			last := t.lastDelivery.Format("2006-01-02")
			summary.LastDelivery = &last
		}
		if t.totalDeliveriesThisMonth > 0 {
			summary.AvgPoundsPerDelivery = t.totalPoundsThisMonth / float64(t.totalDeliveriesThisMonth)
		}
		if info, ok := recipientMap[name]; ok {
			summary.PriorityLevel = info.priorityLevel
			summary.Location = info.location
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *Service) loadRecipients(ctx context.Context) (map[string]recipientInfo, error) {
	values, err := s.fetcher.FetchValues(ctx, s.recipientSpreadsheetID, s.recipientRange)
	if err != nil {
		return nil, fmt.Errorf("loading recipient sheet: %w", err)
	}

	recipients := make(map[string]recipientInfo)
	for _, row := range rowsToObjects(values) {
		name := row["Name"]
		if name == "" {
			continue
		}

		info := recipientInfo{}
		if p := row["priority"]; p != "" {
			if priority, err := strconv.Atoi(p); err == nil {
				info.priorityLevel = &priority
			}
		}
		if addr, ok := row["Address"]; ok && addr != "" {
			info.location = &addr
		}

		recipients[name] = info
	}

	return recipients, nil
}

func (s *Service) loadDeliveryTotals(ctx context.Context) (map[string]*totals, []string, error) {
	values, err := s.fetcher.FetchValues(ctx, s.masterSpreadsheetID, s.masterRange)
	if err != nil {
		return nil, nil, fmt.Errorf("loading delivery sheet: %w", err)
	}

	present := s.now()
	totalsMap := make(map[string]*totals)
	var order []string

	for _, row := range rowsToObjects(values) {
		name := row["Food Recipient"]
		dateString := row["Delivery Date"]
		if name == "" || dateString == "" {
			continue
		}

		deliveryDate, err := parseDeliveryDate(dateString)
		if err != nil {
			s.log.Warn().Str("date", dateString).Str("recipient", name).
				Msg("skipping delivery row with unparseable date")
			continue
		}

		pounds := parsePounds(row["Total Pounds"])

		t, ok := totalsMap[name]
		if !ok {
			t = &totals{}
			totalsMap[name] = t
			order = append(order, name)
		}

		if sameMonth(deliveryDate, present) {
			t.totalDeliveriesThisMonth++
			t.totalPoundsThisMonth += pounds
		}
		if deliveryDate.Year() == present.Year() {
			t.totalDeliveriesThisYear++
			t.totalPoundsThisYear += pounds
		}
		if t.lastDelivery == nil || deliveryDate.After(*t.lastDelivery) {
			d := deliveryDate
			t.lastDelivery = &d
		}
	}

	sort.Strings(order)
	return totalsMap, order, nil
}

// rowsToObjects maps sheet rows to header-keyed records. The first row is
// treated as the header row.
func rowsToObjects(values [][]string) []map[string]string {
	if len(values) == 0 {
		return nil
	}

	headers := values[0]
	rows := make([]map[string]string, 0, len(values)-1)

	for _, row := range values[1:] {
		obj := make(map[string]string, len(headers))
		for i, header := range headers {
			key := strings.TrimSpace(header)
			if i < len(row) {
				obj[key] = strings.TrimSpace(row[i])
			} else {
				obj[key] = ""
			}
		}
		rows = append(rows, obj)
	}

	return rows
}

// deliveryDateLayouts are the date formats the sheets use.
var deliveryDateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/2006 15:04:05",
	time.RFC3339,
}

func parseDeliveryDate(value string) (time.Time, error) {
	for _, layout := range deliveryDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

func parsePounds(value string) float64 {
	pounds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return pounds
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func deliveryFrequency(count int) string {
	switch {
	case count == 0:
		return FrequencyNone
	case count <= 3:
		return FrequencyLow
	case count <= 7:
		return FrequencyMedium
	default:
		return FrequencyHigh
	}
}
