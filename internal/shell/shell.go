// Package shell builds the dashboard chrome: header, role menu and the
// notification feed slot.
package shell

import (
	"smarthub/internal/session"
)

const (
	Brand          = "Smart Service Hub"
	LogoutRedirect = "/"
)

type MenuItem struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
}

type NavItem struct {
	MenuItem
	Active bool `json:"active"`
}

type Layout struct {
	Brand       string       `json:"brand"`
	Title       string       `json:"title"`
	Role        session.Role `json:"role"`
	UserID      int64        `json:"userId,omitempty"`
	DisplayName string       `json:"displayName,omitempty"`
	Menu        []NavItem    `json:"menu"`
	// ShowFeed tells the page to mount the notification feed.
	ShowFeed  bool   `json:"showFeed"`
	LogoutURL string `json:"logoutUrl"`
}

var menus = map[session.Role][]MenuItem{
	session.RoleUser: {
		{Label: "Profile", Icon: "user", Path: "/user-dashboard"},
		{Label: "Search Services", Icon: "search", Path: "/user-dashboard/search"},
		{Label: "My Bookings", Icon: "calendar", Path: "/user-dashboard/bookings"},
		{Label: "Reviews", Icon: "star", Path: "/user-dashboard/reviews"},
	},
	session.RoleProvider: {
		{Label: "Profile", Icon: "user", Path: "/provider-dashboard"},
		{Label: "My Services", Icon: "wrench", Path: "/provider-dashboard/services"},
		{Label: "Booking Requests", Icon: "calendar", Path: "/provider-dashboard/bookings"},
		{Label: "Reviews", Icon: "star", Path: "/provider-dashboard/reviews"},
	},
	session.RoleAdmin: {
		{Label: "Dashboard", Icon: "trending-up", Path: "/admin-dashboard"},
		{Label: "Manage Users", Icon: "users", Path: "/admin-dashboard/users"},
		{Label: "Manage Providers", Icon: "wrench", Path: "/admin-dashboard/providers"},
		{Label: "Booking Overview", Icon: "calendar", Path: "/admin-dashboard/bookings"},
		{Label: "Complaints", Icon: "alert-circle", Path: "/admin-dashboard/complaints"},
	},
}

var titles = map[session.Role]string{
	session.RoleUser:     "User Dashboard",
	session.RoleProvider: "Provider Dashboard",
	session.RoleAdmin:    "Admin Dashboard",
}

// Menu returns a copy of the role's sidebar definition.
func Menu(role session.Role) []MenuItem {
	items := menus[role]
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

func Title(role session.Role) string {
	return titles[role]
}

// HomePath is the dashboard root for role, used when the backend does not
// send a redirect target.
func HomePath(role session.Role) string {
	switch role {
	case session.RoleProvider:
		return "/provider-dashboard"
	case session.RoleAdmin:
		return "/admin-dashboard"
	default:
		return "/user-dashboard"
	}
}

// Render builds the layout with the role's own title and menu.
func Render(sess *session.Session, currentPath string) Layout {
	if sess == nil {
		return Layout{Brand: Brand, Menu: []NavItem{}, LogoutURL: LogoutRedirect}
	}
	return Build(sess, Title(sess.Role), Menu(sess.Role), currentPath)
}

// Build marks the item whose path equals currentPath exactly as active.
// Prefixes never match, so "/user-dashboard" is not active on
// "/user-dashboard/search".
func Build(sess *session.Session, title string, menu []MenuItem, currentPath string) Layout {
	nav := make([]NavItem, 0, len(menu))
	for _, item := range menu {
		nav = append(nav, NavItem{MenuItem: item, Active: item.Path == currentPath})
	}

	layout := Layout{
		Brand:     Brand,
		Title:     title,
		Menu:      nav,
		LogoutURL: LogoutRedirect,
	}
	if sess != nil {
		layout.Role = sess.Role
		layout.UserID = sess.ID
		layout.DisplayName = sess.DisplayName
		layout.ShowFeed = sess.Role != session.RoleAdmin && sess.ID != 0
	}
	return layout
}
