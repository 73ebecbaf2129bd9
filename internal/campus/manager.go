package campus

import (
	"context"
	"fmt"
	"log/slog"
)

// Manager validates caller input and forwards it to the configured Storage.
// Storage errors come back wrapped with ErrStorage; not-found is (nil, nil).
type Manager struct {
	store Storage
	log   *slog.Logger
}

func NewManager(store Storage, log *slog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log,
	}
}

func (m *Manager) Ping(ctx context.Context) error {
	if err := m.store.Ping(ctx); err != nil {
		return m.storageErr("ping", err)
	}
	return nil
}

func (m *Manager) NewsItems(ctx context.Context) ([]NewsItem, error) {
	list, err := m.store.NewsItems(ctx)
	if err != nil {
		return nil, m.storageErr("list news items", err)
	}
	return list, nil
}

func (m *Manager) NewsItem(ctx context.Context, id int) (*NewsItem, error) {
	item, err := m.store.NewsItem(ctx, id)
	if err != nil {
		return nil, m.storageErr("get news item", err)
	}
	return item, nil
}

func (m *Manager) CreateNewsItem(ctx context.Context, in NewNewsItem) (*NewsItem, error) {
	if err := Validate("news item", in); err != nil {
		return nil, err
	}

	item, err := m.store.CreateNewsItem(ctx, in)
	if err != nil {
		return nil, m.storageErr("create news item", err)
	}

	m.log.Debug("news item created", "id", item.ID, "category", item.Category)
	return item, nil
}

// Teachers lists teachers according to filter: a non-empty Search runs a
// search, otherwise a non-empty Department filters by department, otherwise
// everyone is listed by name.
func (m *Manager) Teachers(ctx context.Context, filter TeacherFilter) ([]Teacher, error) {
	var (
		list []Teacher
		err  error
	)

	switch {
	case filter.Search != "":
		list, err = m.store.SearchTeachers(ctx, filter.Search)
	case filter.Department != "":
		list, err = m.store.TeachersByDepartment(ctx, filter.Department)
	default:
		list, err = m.store.Teachers(ctx)
	}
	if err != nil {
		return nil, m.storageErr("list teachers", err)
	}

	return list, nil
}

func (m *Manager) Teacher(ctx context.Context, id int) (*Teacher, error) {
	teacher, err := m.store.Teacher(ctx, id)
	if err != nil {
		return nil, m.storageErr("get teacher", err)
	}
	return teacher, nil
}

func (m *Manager) CreateTeacher(ctx context.Context, in NewTeacher) (*Teacher, error) {
	if err := Validate("teacher", in); err != nil {
		return nil, err
	}

	teacher, err := m.store.CreateTeacher(ctx, in)
	if err != nil {
		return nil, m.storageErr("create teacher", err)
	}

	m.log.Debug("teacher created", "id", teacher.ID, "department", teacher.Department)
	return teacher, nil
}

func (m *Manager) QuickLinks(ctx context.Context) ([]QuickLink, error) {
	list, err := m.store.QuickLinks(ctx)
	if err != nil {
		return nil, m.storageErr("list quick links", err)
	}
	return list, nil
}

func (m *Manager) QuickLink(ctx context.Context, id int) (*QuickLink, error) {
	link, err := m.store.QuickLink(ctx, id)
	if err != nil {
		return nil, m.storageErr("get quick link", err)
	}
	return link, nil
}

func (m *Manager) CreateQuickLink(ctx context.Context, in NewQuickLink) (*QuickLink, error) {
	if err := Validate("quick link", in); err != nil {
		return nil, err
	}

	link, err := m.store.CreateQuickLink(ctx, in)
	if err != nil {
		return nil, m.storageErr("create quick link", err)
	}

	m.log.Debug("quick link created", "id", link.ID, "url", link.URL)
	return link, nil
}

func (m *Manager) CampusBuildings(ctx context.Context) ([]CampusBuilding, error) {
	list, err := m.store.CampusBuildings(ctx)
	if err != nil {
		return nil, m.storageErr("list campus buildings", err)
	}
	return list, nil
}

func (m *Manager) CampusBuilding(ctx context.Context, id int) (*CampusBuilding, error) {
	building, err := m.store.CampusBuilding(ctx, id)
	if err != nil {
		return nil, m.storageErr("get campus building", err)
	}
	return building, nil
}

func (m *Manager) CreateCampusBuilding(ctx context.Context, in NewCampusBuilding) (*CampusBuilding, error) {
	if err := Validate("campus building", in); err != nil {
		return nil, err
	}

	building, err := m.store.CreateCampusBuilding(ctx, in)
	if err != nil {
		return nil, m.storageErr("create campus building", err)
	}

	m.log.Debug("campus building created", "id", building.ID, "type", building.BuildingType)
	return building, nil
}

// Settings returns the settings singleton, materializing the defaults on a
// fresh store.
func (m *Manager) Settings(ctx context.Context) (*Settings, error) {
	s, err := m.store.Settings(ctx)
	if err != nil {
		return nil, m.storageErr("get settings", err)
	}
	return s, nil
}

func (m *Manager) UpdateSettings(ctx context.Context, patch SettingsPatch) (*Settings, error) {
	if err := Validate("settings", patch); err != nil {
		return nil, err
	}

	s, err := m.store.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, m.storageErr("update settings", err)
	}

	m.log.Debug("settings updated", "language", s.Language, "darkMode", s.DarkMode)
	return s, nil
}

func (m *Manager) storageErr(op string, err error) error {
	m.log.Debug("storage operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
