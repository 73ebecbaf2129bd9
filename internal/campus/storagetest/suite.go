// Package storagetest holds the behaviour every campus.Storage must share.
// Backends call Run from their own tests with a factory returning an empty
// store.
package storagetest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) campus.Storage

var baseTime = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func Run(t *testing.T, newStore Factory) {
	t.Run("NewsSortedByPublishedAtDesc", func(t *testing.T) { testNewsOrder(t, newStore(t)) })
	t.Run("NewsRoundTrip", func(t *testing.T) { testNewsRoundTrip(t, newStore(t)) })
	t.Run("MissingIDsReturnNil", func(t *testing.T) { testMissing(t, newStore(t)) })
	t.Run("TeachersSortedByName", func(t *testing.T) { testTeacherOrder(t, newStore(t)) })
	t.Run("TeacherRoundTrip", func(t *testing.T) { testTeacherRoundTrip(t, newStore(t)) })
	t.Run("SearchTeachers", func(t *testing.T) { testSearchTeachers(t, newStore(t)) })
	t.Run("TeachersByDepartment", func(t *testing.T) { testTeachersByDepartment(t, newStore(t)) })
	t.Run("QuickLinks", func(t *testing.T) { testQuickLinks(t, newStore(t)) })
	t.Run("CampusBuildings", func(t *testing.T) { testCampusBuildings(t, newStore(t)) })
	t.Run("SettingsMaterializeOnce", func(t *testing.T) { testSettingsMaterialize(t, newStore(t)) })
	t.Run("UpdateSettingsMergesFields", func(t *testing.T) { testUpdateSettings(t, newStore(t)) })
	t.Run("UpdateSettingsOnFreshStore", func(t *testing.T) { testUpdateSettingsFresh(t, newStore(t)) })
	t.Run("InvalidNewsStoresNothing", func(t *testing.T) { testInvalidNews(t, newStore(t)) })
}

func newsItem(title string, publishedAt time.Time) campus.NewNewsItem {
	return campus.NewNewsItem{
		Title:       ptr(title),
		Excerpt:     ptr("excerpt of " + title),
		Content:     ptr("content of " + title),
		Category:    ptr("Ακαδημαϊκά"),
		PublishedAt: publishedAt,
	}
}

func teacher(name, department string, specialization *string) campus.NewTeacher {
	return campus.NewTeacher{
		Name:           name,
		Email:          "staff@hmu.gr",
		Department:     department,
		Specialization: specialization,
	}
}

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNewsOrder(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	inputs := []campus.NewNewsItem{
		newsItem("middle", baseTime),
		newsItem("oldest", baseTime.Add(-48*time.Hour)),
		newsItem("newest", baseTime.Add(24*time.Hour)),
		newsItem("older", baseTime.Add(-24*time.Hour)),
	}
	for _, in := range inputs {
		_, err := store.CreateNewsItem(ctx, in)
		require.NoError(t, err)
	}

	list, err := store.NewsItems(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(inputs))

	titles := make([]string, len(list))
	for i := range list {
		titles[i] = list[i].Title
	}
	assert.Equal(t, []string{"newest", "middle", "older", "oldest"}, titles)

	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].PublishedAt.After(list[i-1].PublishedAt),
			"news[%d] published after news[%d]", i, i-1)
	}
}

func testNewsRoundTrip(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	created, err := store.CreateNewsItem(ctx, newsItem("round trip", baseTime))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.IsImportant, "isImportant defaults to false")
	assert.True(t, created.PublishedAt.Equal(baseTime))

	got, err := store.NewsItem(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Excerpt, got.Excerpt)
	assert.Equal(t, created.Content, got.Content)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.IsImportant, got.IsImportant)
	assert.True(t, created.PublishedAt.Equal(got.PublishedAt))

	important, err := store.CreateNewsItem(ctx, campus.NewNewsItem{
		Title:       ptr("important"),
		Excerpt:     ptr(""),
		Content:     ptr("c"),
		Category:    ptr("Επιτυχίες"),
		PublishedAt: baseTime,
		IsImportant: ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, important.IsImportant)
	assert.Empty(t, important.Excerpt, "empty text is stored as given")
	assert.NotEqual(t, created.ID, important.ID)
}

func testMissing(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	news, err := store.NewsItem(ctx, 4242)
	require.NoError(t, err)
	assert.Nil(t, news)

	tch, err := store.Teacher(ctx, 4242)
	require.NoError(t, err)
	assert.Nil(t, tch)

	link, err := store.QuickLink(ctx, 4242)
	require.NoError(t, err)
	assert.Nil(t, link)

	building, err := store.CampusBuilding(ctx, 4242)
	require.NoError(t, err)
	assert.Nil(t, building)
}

func testTeacherOrder(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	for _, name := range []string{"Καθ. Νίκος Αντωνίου", "Δρ. Μαρία Παπαδάκη", "Alice Brown", "Δρ. Κατερίνα Σπανού"} {
		_, err := store.CreateTeacher(ctx, teacher(name, "Πληροφορική", nil))
		require.NoError(t, err)
	}

	list, err := store.Teachers(ctx)
	require.NoError(t, err)

	names := make([]string, len(list))
	for i := range list {
		names[i] = list[i].Name
	}
	assert.Equal(t, []string{
		"Alice Brown",
		"Δρ. Κατερίνα Σπανού",
		"Δρ. Μαρία Παπαδάκη",
		"Καθ. Νίκος Αντωνίου",
	}, names)
}

func testTeacherRoundTrip(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	in := campus.NewTeacher{
		Name:           "Δρ. Μαρία Παπαδάκη",
		Email:          "mpapadaki@hmu.gr",
		Department:     "Πληροφορική",
		Specialization: ptr("Τεχνητή Νοημοσύνη"),
		Office:         ptr("Α201"),
		Phone:          ptr("2810-379800"),
	}

	created, err := store.CreateTeacher(ctx, in)
	require.NoError(t, err)
	assert.Nil(t, created.WebsiteURL)

	got, err := store.Teacher(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func testSearchTeachers(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	papadaki, err := store.CreateTeacher(ctx, teacher("Δρ. Μαρία Παπαδάκη", "Πληροφορική", ptr("Τεχνητή Νοημοσύνη")))
	require.NoError(t, err)
	spanou, err := store.CreateTeacher(ctx, teacher("Δρ. Κατερίνα Σπανού", "Μαθηματικά", ptr("Στατιστική")))
	require.NoError(t, err)
	noSpec, err := store.CreateTeacher(ctx, teacher("John Smith", "Physics", nil))
	require.NoError(t, err)
	antoniou, err := store.CreateTeacher(ctx, teacher("Καθ. Νίκος Αντωνίου", "Πληροφορική", nil))
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"LowercaseMatchesName", "παπα", []int{papadaki.ID}},
		{"UppercaseMatchesName", "ΠΑΠΑ", []int{papadaki.ID}},
		{"MatchesDepartment", "μαθημ", []int{spanou.ID}},
		{"MatchesSpecialization", "στατιστ", []int{spanou.ID}},
		{"AsciiCaseInsensitive", "SMITH", []int{noSpec.ID}},
		{"UppercaseFinalSigma", "ΝΊΚΟΣ", []int{antoniou.ID}},
		{"MixedCaseFinalSigma", "Νίκος", []int{antoniou.ID}},
		{"MedialSigmaMatchesFinal", "νίκοσ", []int{antoniou.ID}},
		{"NoMatch", "χημεία", nil},
		{"LikeWildcardsAreLiteral", "%", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := store.SearchTeachers(ctx, tt.query)
			require.NoError(t, err)

			ids := make([]int, 0, len(list))
			for _, item := range list {
				ids = append(ids, item.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func testTeachersByDepartment(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	for _, in := range []campus.NewTeacher{
		teacher("Δρ. Μαρία Παπαδάκη", "Πληροφορική", nil),
		teacher("Καθ. Νίκος Αντωνίου", "Πληροφορική", nil),
		teacher("Δρ. Κατερίνα Σπανού", "Μαθηματικά", nil),
	} {
		_, err := store.CreateTeacher(ctx, in)
		require.NoError(t, err)
	}

	list, err := store.TeachersByDepartment(ctx, "Πληροφορική")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, item := range list {
		assert.Equal(t, "Πληροφορική", item.Department)
	}

	list, err = store.TeachersByDepartment(ctx, "πληροφορική")
	require.NoError(t, err)
	assert.Empty(t, list, "department match is case-sensitive")
}

func testQuickLinks(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	first, err := store.CreateQuickLink(ctx, campus.NewQuickLink{
		Title:       ptr("Εύδοξος"),
		Description: ptr("Σύστημα διάθεσης συγγραμμάτων"),
		URL:         ptr("https://eudoxus.gr"),
		Icon:        ptr(campus.IconBookOpen),
		Color:       ptr("bg-green-500"),
	})
	require.NoError(t, err)
	assert.True(t, first.IsExternal, "isExternal defaults to true")

	second, err := store.CreateQuickLink(ctx, campus.NewQuickLink{
		Title:       ptr("Intranet"),
		Description: ptr(""),
		URL:         ptr("/intranet"),
		Icon:        ptr("Unknown"),
		Color:       ptr("bg-primary"),
		IsExternal:  ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, second.IsExternal)
	assert.Empty(t, second.Description)

	list, err := store.QuickLinks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []campus.QuickLink{*first, *second}, list)

	got, err := store.QuickLink(ctx, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *second, *got)
}

func testCampusBuildings(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	withFacilities, err := store.CreateCampusBuilding(ctx, campus.NewCampusBuilding{
		Name:         ptr("Κεντρικό Κτίριο"),
		Description:  ptr("Διοίκηση, Γραμματεία, Αμφιθέατρα"),
		Latitude:     ptr("35.3027"),
		Longitude:    ptr("25.0709"),
		BuildingType: ptr("main"),
		Facilities:   []string{"Γραμματεία", "Αμφιθέατρα", "Καφετέρια"},
	})
	require.NoError(t, err)

	bare, err := store.CreateCampusBuilding(ctx, campus.NewCampusBuilding{
		Name:         ptr("Φοιτητική Εστία"),
		Description:  ptr("Κατοικίες"),
		Latitude:     ptr("not-a-number"),
		Longitude:    ptr("25.0730"),
		BuildingType: ptr("dormitory"),
	})
	require.NoError(t, err)
	assert.Nil(t, bare.Facilities)
	assert.Equal(t, "not-a-number", bare.Latitude, "coordinates are stored as text")

	list, err := store.CampusBuildings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []campus.CampusBuilding{*withFacilities, *bare}, list)

	got, err := store.CampusBuilding(ctx, withFacilities.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Γραμματεία", "Αμφιθέατρα", "Καφετέρια"}, got.Facilities)
}

func testSettingsMaterialize(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	first, err := store.Settings(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	want := campus.DefaultSettings()
	assert.Equal(t, want, *first)

	second, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
}

func testUpdateSettings(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	before, err := store.Settings(ctx)
	require.NoError(t, err)

	updated, err := store.UpdateSettings(ctx, campus.SettingsPatch{DarkMode: ptr(true)})
	require.NoError(t, err)

	want := *before
	want.DarkMode = true
	assert.Equal(t, want, *updated)

	got, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	updated, err = store.UpdateSettings(ctx, campus.SettingsPatch{
		Language:            ptr(campus.LanguageEnglish),
		EventsNotifications: ptr(true),
	})
	require.NoError(t, err)
	want.Language = campus.LanguageEnglish
	want.EventsNotifications = true
	assert.Equal(t, want, *updated)

	unchanged, err := store.UpdateSettings(ctx, campus.SettingsPatch{})
	require.NoError(t, err)
	assert.Equal(t, want, *unchanged)
}

func testUpdateSettingsFresh(t *testing.T, store campus.Storage) {
	ctx := context.Background()

	updated, err := store.UpdateSettings(ctx, campus.SettingsPatch{NewsNotifications: ptr(false)})
	require.NoError(t, err)

	want := campus.DefaultSettings()
	want.NewsNotifications = false
	assert.Equal(t, want, *updated)

	got, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

// testInvalidNews goes through a Manager because validation happens before
// the payload reaches storage.
func testInvalidNews(t *testing.T, store campus.Storage) {
	ctx := context.Background()
	manager := campus.NewManager(store, discardLogger())

	_, err := store.CreateNewsItem(ctx, newsItem("valid", baseTime))
	require.NoError(t, err)

	in := newsItem("untitled", baseTime)
	in.Title = nil
	_, err = manager.CreateNewsItem(ctx, in)
	require.Error(t, err)
	assert.True(t, campus.IsValidation(err))

	list, err := store.NewsItems(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
