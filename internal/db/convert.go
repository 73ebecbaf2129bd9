package db

import "github.com/daniilsolovey/campus-companion/internal/campus"

func (n *NewsItem) ToDomain() campus.NewsItem {
	return campus.NewsItem{
		ID:          n.ID,
		Title:       n.Title,
		Excerpt:     n.Excerpt,
		Content:     n.Content,
		Category:    n.Category,
		PublishedAt: n.PublishedAt.UTC(),
		IsImportant: n.IsImportant,
	}
}

func (t *Teacher) ToDomain() campus.Teacher {
	return campus.Teacher{
		ID:             t.ID,
		Name:           t.Name,
		Email:          t.Email,
		Department:     t.Department,
		Specialization: t.Specialization,
		Office:         t.Office,
		Phone:          t.Phone,
		WebsiteURL:     t.WebsiteURL,
	}
}

func (l *QuickLink) ToDomain() campus.QuickLink {
	return campus.QuickLink{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		URL:         l.URL,
		Icon:        l.Icon,
		Color:       l.Color,
		IsExternal:  l.IsExternal,
	}
}

func (b *CampusBuilding) ToDomain() campus.CampusBuilding {
	return campus.CampusBuilding{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		Latitude:     b.Latitude,
		Longitude:    b.Longitude,
		BuildingType: b.BuildingType,
		Facilities:   b.Facilities,
	}
}

func (s *Setting) ToDomain() campus.Settings {
	return campus.Settings{
		ID:                  s.ID,
		Language:            s.Language,
		NewsNotifications:   s.NewsNotifications,
		GradesNotifications: s.GradesNotifications,
		EventsNotifications: s.EventsNotifications,
		DarkMode:            s.DarkMode,
	}
}

// Payloads are turned into records through campus so defaults are applied the
// same way as in memory; id 0 lets the sequence assign the key.

func newNewsItem(in campus.NewNewsItem) *NewsItem {
	r := in.Record(0)
	return &NewsItem{
		Title:       r.Title,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Category:    r.Category,
		PublishedAt: r.PublishedAt,
		IsImportant: r.IsImportant,
	}
}

func newTeacher(in campus.NewTeacher) *Teacher {
	r := in.Record(0)
	return &Teacher{
		Name:           r.Name,
		Email:          r.Email,
		Department:     r.Department,
		Specialization: r.Specialization,
		Office:         r.Office,
		Phone:          r.Phone,
		WebsiteURL:     r.WebsiteURL,
	}
}

func newQuickLink(in campus.NewQuickLink) *QuickLink {
	r := in.Record(0)
	return &QuickLink{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Icon:        r.Icon,
		Color:       r.Color,
		IsExternal:  r.IsExternal,
	}
}

func newCampusBuilding(in campus.NewCampusBuilding) *CampusBuilding {
	r := in.Record(0)
	return &CampusBuilding{
		Name:         r.Name,
		Description:  r.Description,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		BuildingType: r.BuildingType,
		Facilities:   r.Facilities,
	}
}

func newSetting(s campus.Settings) *Setting {
	return &Setting{
		ID:                  s.ID,
		Language:            s.Language,
		NewsNotifications:   s.NewsNotifications,
		GradesNotifications: s.GradesNotifications,
		EventsNotifications: s.EventsNotifications,
		DarkMode:            s.DarkMode,
	}
}

func mapList[From, To any](list []From, converter func(*From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(&list[i])
	}
	return result
}
