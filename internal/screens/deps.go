// Package screens holds the dependency bundle shared by all screens.
package screens

import (
	"github.com/pattarin/rianthai/internal/catalog"
	"github.com/pattarin/rianthai/internal/events"
	"github.com/pattarin/rianthai/internal/favorites"
	"github.com/pattarin/rianthai/internal/nav"
	"github.com/pattarin/rianthai/internal/progress"
)

// Deps carries the services screens read from and publish to. Screens
// never mutate tracker state directly; learning activity goes through
// the bus like any other collaborator.
type Deps struct {
	Tracker   *progress.Tracker
	Nav       *nav.Navigator
	Catalog   catalog.Catalog
	Favorites *favorites.Set
	Bus       *events.Bus
}
