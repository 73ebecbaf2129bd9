package campus

import "time"

const (
	LanguageGreek   = "el"
	LanguageEnglish = "en"

	// SettingsID is the identity of the settings singleton in every backend.
	SettingsID = 1
)

// Icons known to the client; any other value renders as a generic link icon.
const (
	IconGraduationCap = "GraduationCap"
	IconBookOpen      = "BookOpen"
	IconMail          = "Mail"
	IconCalendar      = "Calendar"
	IconLibrary       = "Library"
)

type NewsItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	IsImportant bool      `json:"isImportant"`
}

// NewNewsItem is the creation payload of a news item. Text fields must be
// present but may be empty. PublishedAt is supplied by the caller, never by
// the server clock.
type NewNewsItem struct {
	Title       *string   `json:"title" validate:"required"`
	Excerpt     *string   `json:"excerpt" validate:"required"`
	Content     *string   `json:"content" validate:"required"`
	Category    *string   `json:"category" validate:"required"`
	PublishedAt time.Time `json:"publishedAt" validate:"required"`
	IsImportant *bool     `json:"isImportant"`
}

type Teacher struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Department     string  `json:"department"`
	Specialization *string `json:"specialization"`
	Office         *string `json:"office"`
	Phone          *string `json:"phone"`
	WebsiteURL     *string `json:"websiteUrl"`
}

type NewTeacher struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required"`
	Department     string  `json:"department" validate:"required"`
	Specialization *string `json:"specialization"`
	Office         *string `json:"office"`
	Phone          *string `json:"phone"`
	WebsiteURL     *string `json:"websiteUrl"`
}

type QuickLink struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	IsExternal  bool   `json:"isExternal"`
}

// NewQuickLink fields must be present; empty text is accepted.
type NewQuickLink struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	URL         *string `json:"url" validate:"required"`
	Icon        *string `json:"icon" validate:"required"`
	Color       *string `json:"color" validate:"required"`
	IsExternal  *bool   `json:"isExternal"`
}

// CampusBuilding keeps its coordinates as text exactly as they were submitted.
type CampusBuilding struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Latitude     string   `json:"latitude"`
	Longitude    string   `json:"longitude"`
	BuildingType string   `json:"buildingType"`
	Facilities   []string `json:"facilities"`
}

type NewCampusBuilding struct {
	Name         *string  `json:"name" validate:"required"`
	Description  *string  `json:"description" validate:"required"`
	Latitude     *string  `json:"latitude" validate:"required"`
	Longitude    *string  `json:"longitude" validate:"required"`
	BuildingType *string  `json:"buildingType" validate:"required"`
	Facilities   []string `json:"facilities"`
}

type Settings struct {
	ID                  int    `json:"id"`
	Language            string `json:"language"`
	NewsNotifications   bool   `json:"newsNotifications"`
	GradesNotifications bool   `json:"gradesNotifications"`
	EventsNotifications bool   `json:"eventsNotifications"`
	DarkMode            bool   `json:"darkMode"`
}

// SettingsPatch is a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	Language            *string `json:"language" validate:"omitempty,oneof=el en"`
	NewsNotifications   *bool   `json:"newsNotifications"`
	GradesNotifications *bool   `json:"gradesNotifications"`
	EventsNotifications *bool   `json:"eventsNotifications"`
	DarkMode            *bool   `json:"darkMode"`
}

// DefaultSettings returns the record materialized on first access.
func DefaultSettings() Settings {
	return Settings{
		ID:                  SettingsID,
		Language:            LanguageGreek,
		NewsNotifications:   true,
		GradesNotifications: true,
		EventsNotifications: false,
		DarkMode:            false,
	}
}

// Apply merges the present fields of p into s.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.NewsNotifications != nil {
		s.NewsNotifications = *p.NewsNotifications
	}
	if p.GradesNotifications != nil {
		s.GradesNotifications = *p.GradesNotifications
	}
	if p.EventsNotifications != nil {
		s.EventsNotifications = *p.EventsNotifications
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p SettingsPatch) IsEmpty() bool {
	return p.Language == nil && p.NewsNotifications == nil && p.GradesNotifications == nil &&
		p.EventsNotifications == nil && p.DarkMode == nil
}

// TeacherFilter selects the teachers listing mode. Search wins over Department;
// with both empty all teachers are listed.
type TeacherFilter struct {
	Search     string
	Department string
}

// Record builds the stored form of the payload under id. IsImportant
// defaults to false.
func (n NewNewsItem) Record(id int) NewsItem {
	return NewsItem{
		ID:          id,
		Title:       stringOrEmpty(n.Title),
		Excerpt:     stringOrEmpty(n.Excerpt),
		Content:     stringOrEmpty(n.Content),
		Category:    stringOrEmpty(n.Category),
		PublishedAt: n.PublishedAt.UTC(),
		IsImportant: boolOrDefault(n.IsImportant, false),
	}
}

func (n NewTeacher) Record(id int) Teacher {
	return Teacher{
		ID:             id,
		Name:           n.Name,
		Email:          n.Email,
		Department:     n.Department,
		Specialization: cloneString(n.Specialization),
		Office:         cloneString(n.Office),
		Phone:          cloneString(n.Phone),
		WebsiteURL:     cloneString(n.WebsiteURL),
	}
}

// Record builds the stored link. IsExternal defaults to true.
func (n NewQuickLink) Record(id int) QuickLink {
	return QuickLink{
		ID:          id,
		Title:       stringOrEmpty(n.Title),
		Description: stringOrEmpty(n.Description),
		URL:         stringOrEmpty(n.URL),
		Icon:        stringOrEmpty(n.Icon),
		Color:       stringOrEmpty(n.Color),
		IsExternal:  boolOrDefault(n.IsExternal, true),
	}
}

func (n NewCampusBuilding) Record(id int) CampusBuilding {
	return CampusBuilding{
		ID:           id,
		Name:         stringOrEmpty(n.Name),
		Description:  stringOrEmpty(n.Description),
		Latitude:     stringOrEmpty(n.Latitude),
		Longitude:    stringOrEmpty(n.Longitude),
		BuildingType: stringOrEmpty(n.BuildingType),
		Facilities:   cloneStrings(n.Facilities),
	}
}

// Clone returns a deep copy of t.
func (t Teacher) Clone() Teacher {
	t.Specialization = cloneString(t.Specialization)
	t.Office = cloneString(t.Office)
	t.Phone = cloneString(t.Phone)
	t.WebsiteURL = cloneString(t.WebsiteURL)
	return t
}

// Clone returns a deep copy of b.
func (b CampusBuilding) Clone() CampusBuilding {
	b.Facilities = cloneStrings(b.Facilities)
	return b
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneStrings(list []string) []string {
	if list == nil {
		return nil
	}
	return append(make([]string, 0, len(list)), list...)
}
