package campus

import "context"

// Storage owns every entity of the five families. Lookups of a missing id
// return (nil, nil). Implementations must behave identically for every
// method, including materializing the default settings on first access.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	// NewsItems are ordered by PublishedAt descending, ties by id.
	NewsItems(ctx context.Context) ([]NewsItem, error)
	NewsItem(ctx context.Context, id int) (*NewsItem, error)
	CreateNewsItem(ctx context.Context, item NewNewsItem) (*NewsItem, error)

	// Teachers are ordered by name ascending using a byte-wise compare.
	Teachers(ctx context.Context) ([]Teacher, error)
	Teacher(ctx context.Context, id int) (*Teacher, error)
	// SearchTeachers matches query case-insensitively as a substring of the
	// name, department or specialization.
	SearchTeachers(ctx context.Context, query string) ([]Teacher, error)
	// TeachersByDepartment matches the department exactly.
	TeachersByDepartment(ctx context.Context, department string) ([]Teacher, error)
	CreateTeacher(ctx context.Context, teacher NewTeacher) (*Teacher, error)

	QuickLinks(ctx context.Context) ([]QuickLink, error)
	QuickLink(ctx context.Context, id int) (*QuickLink, error)
	CreateQuickLink(ctx context.Context, link NewQuickLink) (*QuickLink, error)

	CampusBuildings(ctx context.Context) ([]CampusBuilding, error)
	CampusBuilding(ctx context.Context, id int) (*CampusBuilding, error)
	CreateCampusBuilding(ctx context.Context, building NewCampusBuilding) (*CampusBuilding, error)

	// Settings returns the singleton, creating it with DefaultSettings when
	// the store has none yet.
	Settings(ctx context.Context) (*Settings, error)
	// UpdateSettings merges patch into the singleton and returns the result.
	UpdateSettings(ctx context.Context, patch SettingsPatch) (*Settings, error)
}
