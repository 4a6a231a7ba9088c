package directory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fernweh/api/internal/model"
)

// Standard errors for directory operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrUserNotFound indicates the user ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates an insert with an ID that is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrGroupNotFound indicates the activity group does not exist for this user.
	ErrGroupNotFound = errors.New("activity group not found")

	// ErrGroupExists indicates the activity group name is already taken for this user.
	ErrGroupExists = errors.New("activity group already exists")

	// ErrPlanNotFound indicates the daily plan does not exist for this user.
	ErrPlanNotFound = errors.New("daily plan not found")

	// ErrPlaceNotFound indicates no stored place matches for this user.
	ErrPlaceNotFound = errors.New("place not found")
)

// Directory is the in-memory store of users, activity groups, and daily plans
type Directory struct {
	mu    sync.RWMutex
	users map[string]*userEntry
	order []string

	// rev increments on every successful mutation; the snapshot writer
	// uses it to skip cycles where nothing changed.
	rev atomic.Int64
}

// userEntry holds one user's state behind its own lock
type userEntry struct {
	mu     sync.RWMutex
	id     string
	home   model.Coordinate
	groups map[string][]model.Place
	plans  map[string][]string
}

// New creates an empty directory
func New() *Directory {
	return &Directory{
		users: make(map[string]*userEntry),
	}
}

// Revision reports the mutation counter. It only ever increases.
func (d *Directory) Revision() int64 {
	return d.rev.Load()
}

// entry looks up a user entry under the directory read lock
func (d *Directory) entry(userID string) (*userEntry, error) {
	d.mu.RLock()
	e, ok := d.users[userID]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return e, nil
}

// ============================================================================
// Users
// ============================================================================

// AddUser inserts a new user anchored at home. IDs are caller-generated
// UUIDs, so a collision indicates a programming error; it is still reported
// as ErrUserExists rather than silently overwriting.
func (d *Directory) AddUser(ctx context.Context, id string, home model.Coordinate) error {
	if id == "" {
		return errors.New("user id is required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[id]; ok {
		return fmt.Errorf("%w: %s", ErrUserExists, id)
	}
	d.users[id] = &userEntry{
		id:     id,
		home:   home,
		groups: make(map[string][]model.Place),
		plans:  make(map[string][]string),
	}
	d.order = append(d.order, id)
	d.rev.Add(1)
	return nil
}

// SetHome replaces a user's home coordinate
func (d *Directory) SetHome(ctx context.Context, userID string, home model.Coordinate) error {
	e, err := d.entry(userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.home = home
	e.mu.Unlock()
	d.rev.Add(1)
	return nil
}

// Home returns the user's home coordinate
func (d *Directory) Home(ctx context.Context, userID string) (model.Coordinate, error) {
	e, err := d.entry(userID)
	if err != nil {
		return model.Coordinate{}, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.home, nil
}

// Users lists all users in registration order
func (d *Directory) Users(ctx context.Context) []model.UserSummary {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]model.UserSummary, 0, len(d.order))
	for _, id := range d.order {
		e := d.users[id]
		e.mu.RLock()
		out = append(out, model.UserSummary{ID: e.id, Home: e.home})
		e.mu.RUnlock()
	}
	return out
}

// User returns the full record for one user. All nested slices are copies.
func (d *Directory) User(ctx context.Context, userID string) (*model.UserRecord, error) {
	e, err := d.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	rec := &model.UserRecord{
		ID:     e.id,
		Home:   e.home,
		Groups: make(map[string][]model.Place, len(e.groups)),
		Plans:  make(map[string][]string, len(e.plans)),
	}
	for name, places := range e.groups {
		rec.Groups[name] = append([]model.Place(nil), places...)
	}
	for id, refs := range e.plans {
		rec.Plans[id] = append([]string(nil), refs...)
	}
	return rec, nil
}

// ============================================================================
// Activity Groups
// ============================================================================

// AddGroup creates an empty activity group. Group names are unique per user;
// the comparison is exact (case-sensitive).
func (d *Directory) AddGroup(ctx context.Context, userID, name string) error {
	e, err := d.entry(userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.groups[name]; ok {
		return fmt.Errorf("%w: %s", ErrGroupExists, name)
	}
	e.groups[name] = nil
	d.rev.Add(1)
	return nil
}

// GroupExists reports whether the named group exists for the user
func (d *Directory) GroupExists(ctx context.Context, userID, name string) (bool, error) {
	e, err := d.entry(userID)
	if err != nil {
		return false, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.groups[name]
	return ok, nil
}

// GroupNames lists the user's group names in lexicographic order
func (d *Directory) GroupNames(ctx context.Context, userID string) ([]string, error) {
	e, err := d.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return sortedKeys(e.groups), nil
}

// Group returns one activity group with a copy of its places
func (d *Directory) Group(ctx context.Context, userID, name string) (*model.ActivityGroup, error) {
	e, err := d.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	places, ok := e.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, name)
	}
	return &model.ActivityGroup{
		Name:   name,
		Places: append([]model.Place(nil), places...),
	}, nil
}

// RemoveGroup deletes a group and every place in it. Daily plans referencing
// the removed places are left untouched; plan reads skip dangling references.
func (d *Directory) RemoveGroup(ctx context.Context, userID, name string) error {
	e, err := d.entry(userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.groups[name]; !ok {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, name)
	}
	delete(e.groups, name)
	d.rev.Add(1)
	return nil
}

// ============================================================================
// Places
// ============================================================================

// AddPlace appends a place to the named group. Duplicates are not collapsed;
// adding the same place twice stores it twice.
func (d *Directory) AddPlace(ctx context.Context, userID, group string, place model.Place) error {
	e, err := d.entry(userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	places, ok := e.groups[group]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}
	e.groups[group] = append(places, place)
	d.rev.Add(1)
	return nil
}

// FindPlaceByName searches the user's places by display name,
// case-insensitively. Groups are scanned in lexicographic name order and
// places in insertion order; the first match wins.
func (d *Directory) FindPlaceByName(ctx context.Context, userID, name string) (model.Place, error) {
	e, err := d.entry(userID)
	if err != nil {
		return model.Place{}, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, group := range sortedKeys(e.groups) {
		for _, p := range e.groups[group] {
			if strings.EqualFold(p.Name, name) {
				return p, nil
			}
		}
	}
	return model.Place{}, fmt.Errorf("%w: %s", ErrPlaceNotFound, name)
}

// Places returns every place the user has stored: groups in lexicographic
// name order, insertion order within each group.
func (d *Directory) Places(ctx context.Context, userID string) ([]model.Place, error) {
	e, err := d.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []model.Place
	for _, group := range sortedKeys(e.groups) {
		out = append(out, e.groups[group]...)
	}
	return out, nil
}

// RemovePlace deletes every occurrence of placeID from the named group.
// Removing a place that is not present succeeds as a no-op.
func (d *Directory) RemovePlace(ctx context.Context, userID, group, placeID string) error {
	e, err := d.entry(userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	places, ok := e.groups[group]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}

	kept := places[:0]
	for _, p := range places {
		if p.ID != placeID {
			kept = append(kept, p)
		}
	}
	if len(kept) != len(places) {
		e.groups[group] = kept
		d.rev.Add(1)
	}
	return nil
}

// hasPlaceLocked reports whether any group holds placeID. Caller must hold
// the entry lock.
func (e *userEntry) hasPlaceLocked(placeID string) bool {
	for _, places := range e.groups {
		for _, p := range places {
			if p.ID == placeID {
				return true
			}
		}
	}
	return false
}

// findPlaceLocked resolves placeID to a stored place in deterministic group
// order. Caller must hold the entry lock.
func (e *userEntry) findPlaceLocked(placeID string) (model.Place, bool) {
	for _, group := range sortedKeys(e.groups) {
		for _, p := range e.groups[group] {
			if p.ID == placeID {
				return p, true
			}
		}
	}
	return model.Place{}, false
}

// ============================================================================
// Daily Plans
// ============================================================================

// PlanAppend adds a place reference to a daily plan, creating the plan on
// first use. The reference must resolve to a place the user currently holds.
// The same place may be appended any number of times.
func (d *Directory) PlanAppend(ctx context.Context, userID, planID, placeID string) error {
	e, err := d.entry(userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasPlaceLocked(placeID) {
		return fmt.Errorf("%w: %s", ErrPlaceNotFound, placeID)
	}
	e.plans[planID] = append(e.plans[planID], placeID)
	d.rev.Add(1)
	return nil
}

// PlanRemove deletes every occurrence of placeID from an existing plan.
// Removing a reference that is not present succeeds as a no-op.
func (d *Directory) PlanRemove(ctx context.Context, userID, planID, placeID string) error {
	e, err := d.entry(userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	refs, ok := e.plans[planID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}

	kept := refs[:0]
	for _, ref := range refs {
		if ref != placeID {
			kept = append(kept, ref)
		}
	}
	if len(kept) != len(refs) {
		e.plans[planID] = kept
		d.rev.Add(1)
	}
	return nil
}

// Plan resolves a daily plan. Stops carry the places the references resolve
// to today; references whose place has since been removed stay in PlaceIDs
// but produce no stop.
func (d *Directory) Plan(ctx context.Context, userID, planID string) (*model.ResolvedPlan, error) {
	e, err := d.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	refs, ok := e.plans[planID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}

	resolved := &model.ResolvedPlan{
		ID:       planID,
		PlaceIDs: append([]string(nil), refs...),
		Stops:    make([]model.Place, 0, len(refs)),
	}
	for _, ref := range refs {
		if p, ok := e.findPlaceLocked(ref); ok {
			resolved.Stops = append(resolved.Stops, p)
		}
	}
	return resolved, nil
}

// PlanIDs lists the user's plan IDs in lexicographic order
func (d *Directory) PlanIDs(ctx context.Context, userID string) ([]string, error) {
	e, err := d.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return sortedKeys(e.plans), nil
}

// ============================================================================
// Snapshots
// ============================================================================

// Snapshot produces a consistent point-in-time copy of the whole directory
func (d *Directory) Snapshot(ctx context.Context) *model.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snap := &model.Snapshot{
		Users: make([]model.UserSnapshot, 0, len(d.order)),
	}
	for _, id := range d.order {
		e := d.users[id]
		e.mu.RLock()

		us := model.UserSnapshot{
			ID:             e.id,
			Home:           [2]float64{e.home.Latitude, e.home.Longitude},
			ActivityGroups: make(map[string][]model.PlaceSnapshot, len(e.groups)),
			DailyPlans:     make(map[string][]string, len(e.plans)),
		}
		for name, places := range e.groups {
			ps := make([]model.PlaceSnapshot, 0, len(places))
			for _, p := range places {
				ps = append(ps, model.PlaceSnapshot{
					Name: p.Name,
					ID:   p.ID,
					Lat:  p.Location.Latitude,
					Lon:  p.Location.Longitude,
				})
			}
			us.ActivityGroups[name] = ps
		}
		for planID, refs := range e.plans {
			us.DailyPlans[planID] = append([]string(nil), refs...)
		}

		e.mu.RUnlock()
		snap.Users = append(snap.Users, us)
	}
	return snap
}

// Restore replaces all directory state from a snapshot. Registration order
// follows the snapshot's user array. A snapshot that fails validation leaves
// the directory unchanged.
func (d *Directory) Restore(ctx context.Context, snap *model.Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}

	users := make(map[string]*userEntry, len(snap.Users))
	order := make([]string, 0, len(snap.Users))

	for _, us := range snap.Users {
		if us.ID == "" {
			return errors.New("snapshot user with empty id")
		}
		if _, ok := users[us.ID]; ok {
			return fmt.Errorf("snapshot user %s duplicated", us.ID)
		}
		home, err := model.NewCoordinate(us.Home[0], us.Home[1])
		if err != nil {
			return fmt.Errorf("snapshot user %s: %w", us.ID, err)
		}

		e := &userEntry{
			id:     us.ID,
			home:   home,
			groups: make(map[string][]model.Place, len(us.ActivityGroups)),
			plans:  make(map[string][]string, len(us.DailyPlans)),
		}
		for name, ps := range us.ActivityGroups {
			places := make([]model.Place, 0, len(ps))
			for _, p := range ps {
				place, err := model.NewPlace(p.Name, p.ID, p.Lat, p.Lon)
				if err != nil {
					return fmt.Errorf("snapshot user %s group %s: %w", us.ID, name, err)
				}
				places = append(places, place)
			}
			e.groups[name] = places
		}
		for planID, refs := range us.DailyPlans {
			e.plans[planID] = append([]string(nil), refs...)
		}

		users[us.ID] = e
		order = append(order, us.ID)
	}

	d.mu.Lock()
	d.users = users
	d.order = order
	d.mu.Unlock()
	d.rev.Add(1)
	return nil
}

// sortedKeys returns map keys in lexicographic order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
