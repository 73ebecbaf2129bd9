// Package memstore keeps every campus entity in process memory.
//
// Each family lives in an insertion-ordered map and all four creatable
// families draw ids from one shared counter starting at 1, so ids are unique
// across families, not just within one. The settings singleton always has
// id campus.SettingsID and does not consume the counter.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"golang.org/x/text/cases"
)

var _ campus.Storage = (*Store)(nil)

// ordered is a map that remembers insertion order.
type ordered[T any] struct {
	ids   []int
	items map[int]T
}

func newOrdered[T any]() ordered[T] {
	return ordered[T]{items: make(map[int]T)}
}

func (o *ordered[T]) set(id int, v T) {
	if _, ok := o.items[id]; !ok {
		o.ids = append(o.ids, id)
	}
	o.items[id] = v
}

func (o *ordered[T]) get(id int) (T, bool) {
	v, ok := o.items[id]
	return v, ok
}

func (o *ordered[T]) values(copyFn func(T) T) []T {
	list := make([]T, 0, len(o.ids))
	for _, id := range o.ids {
		list = append(list, copyFn(o.items[id]))
	}
	return list
}

type Store struct {
	mu sync.RWMutex

	news      ordered[campus.NewsItem]
	teachers  ordered[campus.Teacher]
	links     ordered[campus.QuickLink]
	buildings ordered[campus.CampusBuilding]
	settings  *campus.Settings

	currentID int
}

func New() *Store {
	return &Store{
		news:      newOrdered[campus.NewsItem](),
		teachers:  newOrdered[campus.Teacher](),
		links:     newOrdered[campus.QuickLink](),
		buildings: newOrdered[campus.CampusBuilding](),
		currentID: 1,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() error {
	return nil
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int {
	id := s.currentID
	s.currentID++
	return id
}

func same[T any](v T) T { return v }

func (s *Store) NewsItems(ctx context.Context) ([]campus.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	list := s.news.values(same[campus.NewsItem])
	s.mu.RUnlock()

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].PublishedAt.Equal(list[j].PublishedAt) {
			return list[i].PublishedAt.After(list[j].PublishedAt)
		}
		return list[i].ID < list[j].ID
	})

	return list, nil
}

func (s *Store) NewsItem(ctx context.Context, id int) (*campus.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.news.get(id)
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *Store) CreateNewsItem(ctx context.Context, in campus.NewNewsItem) (*campus.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := in.Record(s.nextID())
	s.news.set(item.ID, item)
	return &item, nil
}

func (s *Store) Teachers(ctx context.Context) ([]campus.Teacher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	list := s.teachers.values(campus.Teacher.Clone)
	s.mu.RUnlock()

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})

	return list, nil
}

func (s *Store) Teacher(ctx context.Context, id int) (*campus.Teacher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	teacher, ok := s.teachers.get(id)
	if !ok {
		return nil, nil
	}
	teacher = teacher.Clone()
	return &teacher, nil
}

func (s *Store) SearchTeachers(ctx context.Context, query string) ([]campus.Teacher, error) {
	folded := fold(query)
	return s.filterTeachers(ctx, func(t campus.Teacher) bool {
		return matchesQuery(t, folded)
	})
}

func (s *Store) TeachersByDepartment(ctx context.Context, department string) ([]campus.Teacher, error) {
	return s.filterTeachers(ctx, func(t campus.Teacher) bool {
		return t.Department == department
	})
}

// fold maps s to its Unicode case folding, so final and medial sigma
// compare equal.
func fold(s string) string {
	return cases.Fold().String(s)
}

// matchesQuery expects an already folded query. A missing specialization
// never matches.
func matchesQuery(t campus.Teacher, query string) bool {
	if strings.Contains(fold(t.Name), query) ||
		strings.Contains(fold(t.Department), query) {
		return true
	}
	return t.Specialization != nil && strings.Contains(fold(*t.Specialization), query)
}

func (s *Store) filterTeachers(ctx context.Context, keep func(campus.Teacher) bool) ([]campus.Teacher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := []campus.Teacher{}
	for _, id := range s.teachers.ids {
		if t := s.teachers.items[id]; keep(t) {
			list = append(list, t.Clone())
		}
	}
	return list, nil
}

func (s *Store) CreateTeacher(ctx context.Context, in campus.NewTeacher) (*campus.Teacher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := in.Record(s.nextID())
	s.teachers.set(teacher.ID, teacher)

	out := teacher.Clone()
	return &out, nil
}

func (s *Store) QuickLinks(ctx context.Context) ([]campus.QuickLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.links.values(same[campus.QuickLink]), nil
}

func (s *Store) QuickLink(ctx context.Context, id int) (*campus.QuickLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links.get(id)
	if !ok {
		return nil, nil
	}
	return &link, nil
}

func (s *Store) CreateQuickLink(ctx context.Context, in campus.NewQuickLink) (*campus.QuickLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	link := in.Record(s.nextID())
	s.links.set(link.ID, link)
	return &link, nil
}

func (s *Store) CampusBuildings(ctx context.Context) ([]campus.CampusBuilding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.buildings.values(campus.CampusBuilding.Clone), nil
}

func (s *Store) CampusBuilding(ctx context.Context, id int) (*campus.CampusBuilding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	building, ok := s.buildings.get(id)
	if !ok {
		return nil, nil
	}
	building = building.Clone()
	return &building, nil
}

func (s *Store) CreateCampusBuilding(ctx context.Context, in campus.NewCampusBuilding) (*campus.CampusBuilding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	building := in.Record(s.nextID())
	s.buildings.set(building.ID, building)

	out := building.Clone()
	return &out, nil
}

func (s *Store) Settings(ctx context.Context) (*campus.Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	if s.settings != nil {
		out := *s.settings
		s.mu.RUnlock()
		return &out, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := *s.ensureSettings()
	return &out, nil
}

func (s *Store) UpdateSettings(ctx context.Context, patch campus.SettingsPatch) (*campus.Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.ensureSettings()
	patch.Apply(current)

	out := *current
	return &out, nil
}

// ensureSettings must be called with the write lock held.
func (s *Store) ensureSettings() *campus.Settings {
	if s.settings == nil {
		defaults := campus.DefaultSettings()
		s.settings = &defaults
	}
	return s.settings
}
