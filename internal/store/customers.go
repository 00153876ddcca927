// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package store

import (
	"context"
	"sync"

	"github.com/roomline/roomline-go/internal/api"
	"github.com/roomline/roomline-go/internal/models"
)

const customerPageSize = 20

// Customers caches the guest directory page by page, with a separate
// search result set and a selected guest with staying history.
type Customers struct {
	api *api.Customers

	mu       sync.RWMutex
	list     []models.Customer
	total    int
	offset   int
	results  []models.CustomerSearchResult
	query    string
	selected *models.Customer
	history  []models.CustomerStayHistory
	loading  bool
	err      string
}

func NewCustomers(a *api.Customers) *Customers {
	return &Customers{api: a}
}

// Fetch loads the current directory page.
func (s *Customers) Fetch(ctx context.Context) error {
	s.mu.Lock()
	offset := s.offset
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	list, err := s.api.List(ctx, customerPageSize, offset)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "could not load customers")
		return err
	}
	s.list = list.Data
	s.total = list.Total
	return nil
}

// SetPage moves the directory to the given zero-based page and fetches it.
func (s *Customers) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	s.mu.Lock()
	s.offset = page * customerPageSize
	s.mu.Unlock()
	return s.Fetch(ctx)
}

// Search runs a name/phone/email search. An empty query clears the
// result set instead of hitting the server.
func (s *Customers) Search(ctx context.Context, query string) error {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
	if query == "" {
		s.mu.Lock()
		s.results = nil
		s.mu.Unlock()
		return nil
	}

	found, err := s.api.Search(ctx, query, customerPageSize)
	if err != nil {
		s.setErr(err, "could not search customers")
		return err
	}
	s.mu.Lock()
	// A stale response for a superseded query must not clobber the
	// current one.
	if s.query == query {
		s.results = found
	}
	s.mu.Unlock()
	return nil
}

// Select loads one guest and their stay history.
func (s *Customers) Select(ctx context.Context, id int) error {
	c, err := s.api.Get(ctx, id)
	if err != nil {
		s.setErr(err, "could not load customer")
		return err
	}
	history, err := s.api.History(ctx, id, 50)
	if err != nil {
		s.setErr(err, "could not load customer history")
		return err
	}
	s.mu.Lock()
	s.selected = c
	s.history = history
	s.mu.Unlock()
	return nil
}

// Create registers a guest and prepends them to the current page.
func (s *Customers) Create(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	c, err := s.api.Create(ctx, in)
	if err != nil {
		s.setErr(err, "could not create customer")
		return nil, err
	}
	s.mu.Lock()
	s.list = append([]models.Customer{*c}, s.list...)
	s.total++
	s.mu.Unlock()
	return c, nil
}

// Update edits a guest and patches every cached copy.
func (s *Customers) Update(ctx context.Context, id int, in models.CustomerInput) (*models.Customer, error) {
	c, err := s.api.Update(ctx, id, in)
	if err != nil {
		s.setErr(err, "could not update customer")
		return nil, err
	}
	s.mu.Lock()
	s.replace(c)
	s.mu.Unlock()
	return c, nil
}

// Delete removes a guest from the server and from every cached set.
func (s *Customers) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.setErr(err, "could not delete customer")
		return err
	}
	s.mu.Lock()
	s.list = dropCustomer(s.list, id)
	results := s.results[:0]
	for _, r := range s.results {
		if r.ID != id {
			results = append(results, r)
		}
	}
	s.results = results
	if s.total > 0 {
		s.total--
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
		s.history = nil
	}
	s.mu.Unlock()
	return nil
}

// List returns the current directory page.
func (s *Customers) List() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.list))
	copy(out, s.list)
	return out
}

// Results returns the current search hits.
func (s *Customers) Results() []models.CustomerSearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CustomerSearchResult, len(s.results))
	copy(out, s.results)
	return out
}

// Selected returns the focused guest, nil if none.
func (s *Customers) Selected() *models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	c := *s.selected
	return &c
}

// History returns the focused guest's stays.
func (s *Customers) History() []models.CustomerStayHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CustomerStayHistory, len(s.history))
	copy(out, s.history)
	return out
}

// Total returns the directory size reported by the server.
func (s *Customers) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Err returns the last error message.
func (s *Customers) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether a page fetch is in flight.
func (s *Customers) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Customers) replace(c *models.Customer) {
	for i := range s.list {
		if s.list[i].ID == c.ID {
			s.list[i] = *c
		}
	}
	for i := range s.results {
		if s.results[i].ID == c.ID {
			s.results[i].FullName = c.FullName
			s.results[i].PhoneNumber = c.PhoneNumber
			s.results[i].Email = c.Email
		}
	}
	if s.selected != nil && s.selected.ID == c.ID {
		cp := *c
		s.selected = &cp
	}
}

func dropCustomer(list []models.Customer, id int) []models.Customer {
	out := list[:0]
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func (s *Customers) setErr(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = errMessage(err, fallback)
}
