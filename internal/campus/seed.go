package campus

import (
	"context"
	"fmt"
	"time"
)

// SampleData is the demonstration dataset loaded into an empty store.
type SampleData struct {
	News      []NewNewsItem
	Teachers  []NewTeacher
	Links     []NewQuickLink
	Buildings []NewCampusBuilding
}

// Seed loads SampleDataset when the store holds no news items yet and reports
// whether anything was inserted.
func (m *Manager) Seed(ctx context.Context) (bool, error) {
	news, err := m.NewsItems(ctx)
	if err != nil {
		return false, err
	}
	if len(news) > 0 {
		m.log.Info("store already seeded, skipping")
		return false, nil
	}

	m.log.Info("seeding store with sample data")

	data := SampleDataset()
	for _, in := range data.News {
		if _, err := m.CreateNewsItem(ctx, in); err != nil {
			return false, fmt.Errorf("seed news item %q: %w", stringOrEmpty(in.Title), err)
		}
	}
	for _, in := range data.Teachers {
		if _, err := m.CreateTeacher(ctx, in); err != nil {
			return false, fmt.Errorf("seed teacher %q: %w", in.Name, err)
		}
	}
	for _, in := range data.Links {
		if _, err := m.CreateQuickLink(ctx, in); err != nil {
			return false, fmt.Errorf("seed quick link %q: %w", stringOrEmpty(in.Title), err)
		}
	}
	for _, in := range data.Buildings {
		if _, err := m.CreateCampusBuilding(ctx, in); err != nil {
			return false, fmt.Errorf("seed campus building %q: %w", stringOrEmpty(in.Name), err)
		}
	}

	return true, nil
}

func SampleDataset() SampleData {
	return SampleData{
		News: []NewNewsItem{
			{
				Title:       strPtr("Έναρξη Νέου Ακαδημαϊκού Έτους 2024-25"),
				Excerpt:     strPtr("Ανακοινώνεται η έναρξη των μαθημάτων για το ακαδημαϊκό έτος 2024-25. Οι εγγραφές ξεκινούν την 1η Σεπτεμβρίου."),
				Content:     strPtr("Λεπτομερείες για το νέο ακαδημαϊκό έτος..."),
				Category:    strPtr("Ακαδημαϊκά"),
				PublishedAt: date(2024, time.August, 15),
				IsImportant: boolPtr(true),
			},
			{
				Title:       strPtr("Σεμινάριο Τεχνητής Νοημοσύνης"),
				Excerpt:     strPtr("Διοργανώνεται σεμινάριο για την Τεχνητή Νοημοσύνη στις 20 Σεπτεμβρίου. Συμμετοχή δωρεάν για φοιτητές."),
				Content:     strPtr("Το σεμινάριο θα καλύψει..."),
				Category:    strPtr("Εκδηλώσεις"),
				PublishedAt: date(2024, time.September, 1),
				IsImportant: boolPtr(false),
			},
			{
				Title:       strPtr("Διακρίσεις Φοιτητών στον Διαγωνισμό Προγραμματισμού"),
				Excerpt:     strPtr("Φοιτητές του τμήματος κατέκτησαν την πρώτη θέση στον πανελλήνιο διαγωνισμό προγραμματισμού."),
				Content:     strPtr("Συγχαρητήρια στους φοιτητές..."),
				Category:    strPtr("Επιτυχίες"),
				PublishedAt: date(2024, time.August, 28),
				IsImportant: boolPtr(true),
			},
		},
		Teachers: []NewTeacher{
			{
				Name:           "Δρ. Μαρία Παπαδάκη",
				Email:          "mpapadaki@hmu.gr",
				Department:     "Πληροφορική",
				Specialization: strPtr("Τεχνητή Νοημοσύνη, Μηχανική Μάθηση"),
				Office:         strPtr("Α201"),
				Phone:          strPtr("2810-379800"),
				WebsiteURL:     strPtr("https://cs.hmu.gr/mpapadaki"),
			},
			{
				Name:           "Καθ. Νίκος Αντωνίου",
				Email:          "nantoniou@hmu.gr",
				Department:     "Πληροφορική",
				Specialization: strPtr("Αλγόριθμοι, Δομές Δεδομένων"),
				Office:         strPtr("Α305"),
				Phone:          strPtr("2810-379810"),
				WebsiteURL:     strPtr("https://cs.hmu.gr/nantoniou"),
			},
			{
				Name:           "Δρ. Κατερίνα Σπανού",
				Email:          "kspannou@hmu.gr",
				Department:     "Μαθηματικά",
				Specialization: strPtr("Στατιστική, Θεωρία Πιθανοτήτων"),
				Office:         strPtr("Β120"),
				Phone:          strPtr("2810-379820"),
			},
		},
		Links: []NewQuickLink{
			{
				Title:       strPtr("Φοιτητική Πύλη"),
				Description: strPtr("Πρόσβαση σε βαθμολογίες, δηλώσεις μαθημάτων"),
				URL:         strPtr("https://student.hmu.gr"),
				Icon:        strPtr(IconGraduationCap),
				Color:       strPtr("bg-primary"),
				IsExternal:  boolPtr(true),
			},
			{
				Title:       strPtr("Εύδοξος"),
				Description: strPtr("Σύστημα διάθεσης συγγραμμάτων"),
				URL:         strPtr("https://eudoxus.gr"),
				Icon:        strPtr(IconBookOpen),
				Color:       strPtr("bg-green-500"),
				IsExternal:  boolPtr(true),
			},
			{
				Title:       strPtr("Webmail ΗΜΥ"),
				Description: strPtr("Πρόσβαση στο email του πανεπιστημίου"),
				URL:         strPtr("https://webmail.hmu.gr"),
				Icon:        strPtr(IconMail),
				Color:       strPtr("bg-orange-500"),
				IsExternal:  boolPtr(true),
			},
			{
				Title:       strPtr("Πρόγραμμα Μαθημάτων"),
				Description: strPtr("Ωρολόγιο πρόγραμμα και αίθουσες"),
				URL:         strPtr("https://ee.hmu.gr/courses"),
				Icon:        strPtr(IconCalendar),
				Color:       strPtr("bg-purple-500"),
				IsExternal:  boolPtr(true),
			},
			{
				Title:       strPtr("Βιβλιοθήκη"),
				Description: strPtr("Αναζήτηση βιβλίων και ψηφιακό υλικό"),
				URL:         strPtr("https://library.hmu.gr"),
				Icon:        strPtr(IconLibrary),
				Color:       strPtr("bg-blue-500"),
				IsExternal:  boolPtr(true),
			},
		},
		Buildings: []NewCampusBuilding{
			{
				Name:         strPtr("Κεντρικό Κτίριο"),
				Description:  strPtr("Διοίκηση, Γραμματεία, Αμφιθέατρα"),
				Latitude:     strPtr("35.3027"),
				Longitude:    strPtr("25.0709"),
				BuildingType: strPtr("main"),
				Facilities:   []string{"Γραμματεία", "Αμφιθέατρα", "Καφετέρια"},
			},
			{
				Name:         strPtr("Εργαστήρια Πληροφορικής"),
				Description:  strPtr("Εργαστήρια Η/Υ, Δίκτυα, Προγραμματισμός"),
				Latitude:     strPtr("35.3030"),
				Longitude:    strPtr("25.0715"),
				BuildingType: strPtr("lab"),
				Facilities:   []string{"Εργαστήρια Η/Υ", "Δίκτυα", "Σέρβερ"},
			},
			{
				Name:         strPtr("Βιβλιοθήκη"),
				Description:  strPtr("Κεντρική Βιβλιοθήκη και Αναγνωστήρια"),
				Latitude:     strPtr("35.3025"),
				Longitude:    strPtr("25.0720"),
				BuildingType: strPtr("library"),
				Facilities:   []string{"Αναγνωστήρια", "Ψηφιακή Βιβλιοθήκη", "Μελέτη"},
			},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
