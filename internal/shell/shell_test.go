package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthub/internal/session"
)

func activePaths(l Layout) []string {
	var out []string
	for _, item := range l.Menu {
		if item.Active {
			out = append(out, item.Path)
		}
	}
	return out
}

func TestRender_ExactPathActive(t *testing.T) {
	sess := &session.Session{ID: 3, Role: session.RoleUser}

	layout := Render(sess, "/user-dashboard/search")
	assert.Equal(t, []string{"/user-dashboard/search"}, activePaths(layout))

	layout = Render(sess, "/user-dashboard")
	assert.Equal(t, []string{"/user-dashboard"}, activePaths(layout))

	layout = Render(sess, "/user-dashboard/search/")
	assert.Empty(t, activePaths(layout))
}

func TestRender_PerRole(t *testing.T) {
	cases := []struct {
		role     session.Role
		title    string
		items    int
		showFeed bool
	}{
		{session.RoleUser, "User Dashboard", 4, true},
		{session.RoleProvider, "Provider Dashboard", 4, true},
		{session.RoleAdmin, "Admin Dashboard", 5, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			layout := Render(&session.Session{ID: 9, Role: tc.role}, "")
			assert.Equal(t, Brand, layout.Brand)
			assert.Equal(t, tc.title, layout.Title)
			assert.Len(t, layout.Menu, tc.items)
			assert.Equal(t, tc.showFeed, layout.ShowFeed)
			assert.Equal(t, "/", layout.LogoutURL)
		})
	}
}

func TestBuild_NoIDHidesFeed(t *testing.T) {
	layout := Build(&session.Session{Role: session.RoleProvider}, "Provider Dashboard", Menu(session.RoleProvider), "")
	assert.False(t, layout.ShowFeed)

	layout = Render(nil, "/user-dashboard")
	assert.False(t, layout.ShowFeed)
	assert.Empty(t, layout.Menu)
}

func TestMenu_ReturnsCopy(t *testing.T) {
	m := Menu(session.RoleAdmin)
	require.NotEmpty(t, m)
	m[0].Label = "changed"
	assert.Equal(t, "Dashboard", Menu(session.RoleAdmin)[0].Label)
}

func TestHomePath(t *testing.T) {
	assert.Equal(t, "/user-dashboard", HomePath(session.RoleUser))
	assert.Equal(t, "/provider-dashboard", HomePath(session.RoleProvider))
	assert.Equal(t, "/admin-dashboard", HomePath(session.RoleAdmin))
}
