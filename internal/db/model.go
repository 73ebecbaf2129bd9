// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	CampusBuilding struct {
		ID, Name, Description, Latitude, Longitude, BuildingType, Facilities string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	NewsItem struct {
		ID, Title, Excerpt, Content, Category, PublishedAt, IsImportant string
	}
	QuickLink struct {
		ID, Title, Description, URL, Icon, Color, IsExternal string
	}
	Setting struct {
		ID, Language, NewsNotifications, GradesNotifications, EventsNotifications, DarkMode string
	}
	Teacher struct {
		ID, Name, Email, Department, Specialization, Office, Phone, WebsiteURL string
	}
}{
	CampusBuilding: struct {
		ID, Name, Description, Latitude, Longitude, BuildingType, Facilities string
	}{
		ID:           "id",
		Name:         "name",
		Description:  "description",
		Latitude:     "latitude",
		Longitude:    "longitude",
		BuildingType: "building_type",
		Facilities:   "facilities",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	NewsItem: struct {
		ID, Title, Excerpt, Content, Category, PublishedAt, IsImportant string
	}{
		ID:          "id",
		Title:       "title",
		Excerpt:     "excerpt",
		Content:     "content",
		Category:    "category",
		PublishedAt: "published_at",
		IsImportant: "is_important",
	},
	QuickLink: struct {
		ID, Title, Description, URL, Icon, Color, IsExternal string
	}{
		ID:          "id",
		Title:       "title",
		Description: "description",
		URL:         "url",
		Icon:        "icon",
		Color:       "color",
		IsExternal:  "is_external",
	},
	Setting: struct {
		ID, Language, NewsNotifications, GradesNotifications, EventsNotifications, DarkMode string
	}{
		ID:                  "id",
		Language:            "language",
		NewsNotifications:   "news_notifications",
		GradesNotifications: "grades_notifications",
		EventsNotifications: "events_notifications",
		DarkMode:            "dark_mode",
	},
	Teacher: struct {
		ID, Name, Email, Department, Specialization, Office, Phone, WebsiteURL string
	}{
		ID:             "id",
		Name:           "name",
		Email:          "email",
		Department:     "department",
		Specialization: "specialization",
		Office:         "office",
		Phone:          "phone",
		WebsiteURL:     "website_url",
	},
}

var Tables = struct {
	CampusBuilding struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	NewsItem struct {
		Name, Alias string
	}
	QuickLink struct {
		Name, Alias string
	}
	Setting struct {
		Name, Alias string
	}
	Teacher struct {
		Name, Alias string
	}
}{
	CampusBuilding: struct {
		Name, Alias string
	}{
		Name:  "campus_buildings",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	NewsItem: struct {
		Name, Alias string
	}{
		Name:  "news_items",
		Alias: "t",
	},
	QuickLink: struct {
		Name, Alias string
	}{
		Name:  "quick_links",
		Alias: "t",
	},
	Setting: struct {
		Name, Alias string
	}{
		Name:  "settings",
		Alias: "t",
	},
	Teacher: struct {
		Name, Alias string
	}{
		Name:  "teachers",
		Alias: "t",
	},
}

type CampusBuilding struct {
	tableName struct{} `pg:"campus_buildings,alias:t,discard_unknown_columns"`

	ID           int      `pg:"id,pk"`
	Name         string   `pg:"name,use_zero"`
	Description  string   `pg:"description,use_zero"`
	Latitude     string   `pg:"latitude,use_zero"`
	Longitude    string   `pg:"longitude,use_zero"`
	BuildingType string   `pg:"building_type,use_zero"`
	Facilities   []string `pg:"facilities,array"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type NewsItem struct {
	tableName struct{} `pg:"news_items,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Title       string    `pg:"title,use_zero"`
	Excerpt     string    `pg:"excerpt,use_zero"`
	Content     string    `pg:"content,use_zero"`
	Category    string    `pg:"category,use_zero"`
	PublishedAt time.Time `pg:"published_at,use_zero"`
	IsImportant bool      `pg:"is_important,use_zero"`
}

type QuickLink struct {
	tableName struct{} `pg:"quick_links,alias:t,discard_unknown_columns"`

	ID          int    `pg:"id,pk"`
	Title       string `pg:"title,use_zero"`
	Description string `pg:"description,use_zero"`
	URL         string `pg:"url,use_zero"`
	Icon        string `pg:"icon,use_zero"`
	Color       string `pg:"color,use_zero"`
	IsExternal  bool   `pg:"is_external,use_zero"`
}

type Setting struct {
	tableName struct{} `pg:"settings,alias:t,discard_unknown_columns"`

	ID                  int    `pg:"id,pk"`
	Language            string `pg:"language,use_zero"`
	NewsNotifications   bool   `pg:"news_notifications,use_zero"`
	GradesNotifications bool   `pg:"grades_notifications,use_zero"`
	EventsNotifications bool   `pg:"events_notifications,use_zero"`
	DarkMode            bool   `pg:"dark_mode,use_zero"`
}

type Teacher struct {
	tableName struct{} `pg:"teachers,alias:t,discard_unknown_columns"`

	ID             int     `pg:"id,pk"`
	Name           string  `pg:"name,use_zero"`
	Email          string  `pg:"email,use_zero"`
	Department     string  `pg:"department,use_zero"`
	Specialization *string `pg:"specialization"`
	Office         *string `pg:"office"`
	Phone          *string `pg:"phone"`
	WebsiteURL     *string `pg:"website_url"`
}
