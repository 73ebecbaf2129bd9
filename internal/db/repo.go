package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/go-pg/pg/v10"
)

var _ campus.Storage = (*Repository)(nil)

// likeEscaper makes LIKE metacharacters in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository is the Postgres implementation of campus.Storage. Ordering and
// filtering are left to the database; each method is a single statement apart
// from settings materialization, which is idempotent.
type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// NewsItems returns all news sorted by publishedAt DESC.
func (r *Repository) NewsItems(ctx context.Context) ([]campus.NewsItem, error) {
	var list []NewsItem
	err := r.db.ModelContext(ctx, &list).
		OrderExpr(`"t"."published_at" DESC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query news items: %w", err)
	}

	return mapList(list, (*NewsItem).ToDomain), nil
}

func (r *Repository) NewsItem(ctx context.Context, id int) (*campus.NewsItem, error) {
	item := &NewsItem{}
	err := r.db.ModelContext(ctx, item).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news item by id: %w", err)
	}

	result := item.ToDomain()
	return &result, nil
}

func (r *Repository) CreateNewsItem(ctx context.Context, in campus.NewNewsItem) (*campus.NewsItem, error) {
	item := newNewsItem(in)
	if _, err := r.db.ModelContext(ctx, item).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert news item: %w", err)
	}

	result := item.ToDomain()
	return &result, nil
}

// Teachers returns all teachers sorted by name. The "C" collation compares
// bytes, matching Go string ordering regardless of the database locale.
func (r *Repository) Teachers(ctx context.Context) ([]campus.Teacher, error) {
	var list []Teacher
	err := r.db.ModelContext(ctx, &list).
		OrderExpr(`"t"."name" COLLATE "C" ASC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}

	return mapList(list, (*Teacher).ToDomain), nil
}

func (r *Repository) Teacher(ctx context.Context, id int) (*campus.Teacher, error) {
	teacher := &Teacher{}
	err := r.db.ModelContext(ctx, teacher).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get teacher by id: %w", err)
	}

	result := teacher.ToDomain()
	return &result, nil
}

// foldedLike matches column ?0 against pattern ?1 after lowercasing both and
// mapping final sigma to medial sigma, which lower() alone leaves distinct.
const foldedLike = `translate(lower(?0), 'ς', 'σ') LIKE translate(lower(?1), 'ς', 'σ')`

// SearchTeachers folds case with lower(), so non-ASCII text follows the
// database LC_CTYPE, which must be a UTF-8 locale.
func (r *Repository) SearchTeachers(ctx context.Context, query string) ([]campus.Teacher, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	var list []Teacher
	err := r.db.ModelContext(ctx, &list).
		WhereOr(foldedLike, pg.Ident("t.name"), pattern).
		WhereOr(foldedLike, pg.Ident("t.department"), pattern).
		WhereOr(foldedLike, pg.Ident("t.specialization"), pattern).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search teachers: %w", err)
	}

	return mapList(list, (*Teacher).ToDomain), nil
}

func (r *Repository) TeachersByDepartment(ctx context.Context, department string) ([]campus.Teacher, error) {
	var list []Teacher
	err := r.db.ModelContext(ctx, &list).
		Where(`"t"."department" = ?`, department).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers by department: %w", err)
	}

	return mapList(list, (*Teacher).ToDomain), nil
}

func (r *Repository) CreateTeacher(ctx context.Context, in campus.NewTeacher) (*campus.Teacher, error) {
	teacher := newTeacher(in)
	if _, err := r.db.ModelContext(ctx, teacher).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert teacher: %w", err)
	}

	result := teacher.ToDomain()
	return &result, nil
}

func (r *Repository) QuickLinks(ctx context.Context) ([]campus.QuickLink, error) {
	var list []QuickLink
	err := r.db.ModelContext(ctx, &list).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query quick links: %w", err)
	}

	return mapList(list, (*QuickLink).ToDomain), nil
}

func (r *Repository) QuickLink(ctx context.Context, id int) (*campus.QuickLink, error) {
	link := &QuickLink{}
	err := r.db.ModelContext(ctx, link).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get quick link by id: %w", err)
	}

	result := link.ToDomain()
	return &result, nil
}

func (r *Repository) CreateQuickLink(ctx context.Context, in campus.NewQuickLink) (*campus.QuickLink, error) {
	link := newQuickLink(in)
	if _, err := r.db.ModelContext(ctx, link).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert quick link: %w", err)
	}

	result := link.ToDomain()
	return &result, nil
}

func (r *Repository) CampusBuildings(ctx context.Context) ([]campus.CampusBuilding, error) {
	var list []CampusBuilding
	err := r.db.ModelContext(ctx, &list).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query campus buildings: %w", err)
	}

	return mapList(list, (*CampusBuilding).ToDomain), nil
}

func (r *Repository) CampusBuilding(ctx context.Context, id int) (*campus.CampusBuilding, error) {
	building := &CampusBuilding{}
	err := r.db.ModelContext(ctx, building).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get campus building by id: %w", err)
	}

	result := building.ToDomain()
	return &result, nil
}

func (r *Repository) CreateCampusBuilding(ctx context.Context, in campus.NewCampusBuilding) (*campus.CampusBuilding, error) {
	building := newCampusBuilding(in)
	if _, err := r.db.ModelContext(ctx, building).Returning("*").Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert campus building: %w", err)
	}

	result := building.ToDomain()
	return &result, nil
}

// Settings returns the singleton row, inserting the defaults when the table
// is empty.
func (r *Repository) Settings(ctx context.Context) (*campus.Settings, error) {
	s, err := r.selectSettings(ctx)
	if err != nil {
		return nil, err
	} else if s != nil {
		result := s.ToDomain()
		return &result, nil
	}

	if err := r.ensureSettings(ctx); err != nil {
		return nil, err
	}

	s, err = r.selectSettings(ctx)
	if err != nil {
		return nil, err
	} else if s == nil {
		return nil, fmt.Errorf("settings row %d missing after insert", campus.SettingsID)
	}

	result := s.ToDomain()
	return &result, nil
}

// UpdateSettings writes only the columns present in patch in one UPDATE, so
// concurrent patches of different fields do not overwrite each other.
func (r *Repository) UpdateSettings(ctx context.Context, patch campus.SettingsPatch) (*campus.Settings, error) {
	if patch.IsEmpty() {
		return r.Settings(ctx)
	}

	if err := r.ensureSettings(ctx); err != nil {
		return nil, err
	}

	s := &Setting{ID: campus.SettingsID}
	var columns []string
	if patch.Language != nil {
		s.Language = *patch.Language
		columns = append(columns, Columns.Setting.Language)
	}
	if patch.NewsNotifications != nil {
		s.NewsNotifications = *patch.NewsNotifications
		columns = append(columns, Columns.Setting.NewsNotifications)
	}
	if patch.GradesNotifications != nil {
		s.GradesNotifications = *patch.GradesNotifications
		columns = append(columns, Columns.Setting.GradesNotifications)
	}
	if patch.EventsNotifications != nil {
		s.EventsNotifications = *patch.EventsNotifications
		columns = append(columns, Columns.Setting.EventsNotifications)
	}
	if patch.DarkMode != nil {
		s.DarkMode = *patch.DarkMode
		columns = append(columns, Columns.Setting.DarkMode)
	}

	_, err := r.db.ModelContext(ctx, s).
		Column(columns...).
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	result := s.ToDomain()
	return &result, nil
}

func (r *Repository) selectSettings(ctx context.Context) (*Setting, error) {
	s := &Setting{}
	err := r.db.ModelContext(ctx, s).
		Where(`"t"."id" = ?`, campus.SettingsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// ensureSettings inserts the default row unless one already exists. The
// fixed primary key turns concurrent first calls into a no-op conflict.
func (r *Repository) ensureSettings(ctx context.Context) error {
	defaults := newSetting(campus.DefaultSettings())
	_, err := r.db.ModelContext(ctx, defaults).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert default settings: %w", err)
	}

	return nil
}
