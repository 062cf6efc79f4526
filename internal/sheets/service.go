// Package sheets provides the mock Google Sheets pass-through used by the
// reporting frontend while the real integration is stubbed out.
package sheets

import "sync"

// TableData mirrors the Google Sheets values API response shape.
type TableData struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// Service holds the current mock sheet in memory.
type Service struct {
	mu   sync.RWMutex
	data TableData
}

// NewService creates a sheet service seeded with the demo rows.
func NewService() *Service {
	return &Service{
		data: TableData{
			Range:          "Sheet1!A1:C2",
			MajorDimension: "ROWS",
			Values: [][]string{
				{"Name", "Age", "City"},
				{"Alice", "30", "New York"},
			},
		},
	}
}

// Get returns the current sheet data.
func (s *Service) Get() TableData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Put replaces the sheet data and echoes back what was stored.
func (s *Service) Put(data TableData) TableData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return s.data
}
