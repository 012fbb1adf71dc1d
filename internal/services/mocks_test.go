package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

type mockNavRepo struct {
	mu      sync.Mutex
	items   []models.NavigationItem
	listErr error
	lists   int
	seq     int
	// calls: порядок вызовов внутри транзакции (tx, lock, get, update...)
	calls []string
}

func (m *mockNavRepo) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *mockNavRepo) LockForUpdate(_ context.Context, ids ...string) error {
	m.record("lock:" + strings.Join(ids, ","))
	return nil
}

func (m *mockNavRepo) InTx(_ context.Context, fn func(tx repository.NavigationRepo) error) error {
	m.record("tx")
	if err := fn(m); err != nil {
		m.record("rollback")
		return err
	}
	m.record("commit")
	return nil
}

func (m *mockNavRepo) ListVisible(ctx context.Context) ([]models.NavigationItem, error) {
	all, err := m.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.NavigationItem, 0, len(all))
	for _, it := range all {
		if it.Visible {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockNavRepo) ListAll(context.Context) ([]models.NavigationItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := append([]models.NavigationItem(nil), m.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockNavRepo) GetByID(_ context.Context, id string) (*models.NavigationItem, error) {
	m.record("get:" + id)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == id {
			it := it
			return &it, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockNavRepo) CountChildren(_ context.Context, id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, it := range m.items {
		if it.ParentID != nil && *it.ParentID == id {
			n++
		}
	}
	return n, nil
}

func (m *mockNavRepo) Create(_ context.Context, n *models.NavigationItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	n.ID = fmt.Sprintf("nav-%d", m.seq)
	m.items = append(m.items, *n)
	return nil
}

func (m *mockNavRepo) Update(_ context.Context, n *models.NavigationItem) error {
	m.record("update:" + n.ID)
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == n.ID {
			m.items[i] = *n
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockNavRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			for j := range m.items {
				if m.items[j].ParentID != nil && *m.items[j].ParentID == id {
					m.items[j].ParentID = nil
				}
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockSettingsRepo struct {
	rows    []models.SettingEntry
	listErr error
	seq     int
}

func (m *mockSettingsRepo) List(context.Context) ([]models.SettingEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.SettingEntry(nil), m.rows...), nil
}

func (m *mockSettingsRepo) GetByID(_ context.Context, id string) (*models.SettingEntry, error) {
	for _, r := range m.rows {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockSettingsRepo) KeyExists(_ context.Context, key, excludeID string) (bool, error) {
	for _, r := range m.rows {
		if r.Key == key && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSettingsRepo) Create(_ context.Context, s *models.SettingEntry) error {
	m.seq++
	s.ID = fmt.Sprintf("set-%d", m.seq)
	m.rows = append(m.rows, *s)
	return nil
}

func (m *mockSettingsRepo) Update(_ context.Context, s *models.SettingEntry) error {
	for i := range m.rows {
		if m.rows[i].ID == s.ID {
			m.rows[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockSettingsRepo) Delete(_ context.Context, id string) error {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockPageRepo struct {
	pages []models.Page
	seq   int
}

func (m *mockPageRepo) List(context.Context) ([]models.Page, error) {
	return append([]models.Page(nil), m.pages...), nil
}

func (m *mockPageRepo) GetByID(_ context.Context, id string) (*models.Page, error) {
	for _, p := range m.pages {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockPageRepo) GetBySlug(_ context.Context, slug string) (*models.Page, error) {
	for _, p := range m.pages {
		if p.Slug == slug {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockPageRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, p := range m.pages {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPageRepo) Create(_ context.Context, p *models.Page) error {
	m.seq++
	p.ID = fmt.Sprintf("page-%d", m.seq)
	m.pages = append(m.pages, *p)
	return nil
}

func (m *mockPageRepo) Update(_ context.Context, p *models.Page) error {
	for i := range m.pages {
		if m.pages[i].ID == p.ID {
			m.pages[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockPageRepo) Delete(_ context.Context, id string) error {
	for i := range m.pages {
		if m.pages[i].ID == id {
			m.pages = append(m.pages[:i], m.pages[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockRedirectRepo struct {
	mu      sync.Mutex
	rows    []models.Redirect
	listErr error
	lists   int
	seq     int
}

func (m *mockRedirectRepo) ListEnabled(ctx context.Context) ([]models.Redirect, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Redirect, 0, len(all))
	for _, r := range all {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRedirectRepo) List(context.Context) ([]models.Redirect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.Redirect(nil), m.rows...), nil
}

func (m *mockRedirectRepo) GetByID(_ context.Context, id string) (*models.Redirect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockRedirectRepo) Create(_ context.Context, rd *models.Redirect) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	rd.ID = fmt.Sprintf("rd-%d", m.seq)
	m.rows = append(m.rows, *rd)
	return nil
}

func (m *mockRedirectRepo) Update(_ context.Context, rd *models.Redirect) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == rd.ID {
			m.rows[i] = *rd
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRedirectRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func strPtr(s string) *string { return &s }
