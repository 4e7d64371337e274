package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"travel-backend/models"
)

// memStore backs the repository ports in tests. Create enforces the same unique
// indexes as the schema (bookings.order_id, users.email).
type memStore struct {
	mu sync.Mutex

	nextID   uint
	users    map[uint]models.User
	packages map[uint]models.Package
	bookings map[uint]models.Booking
	clock    time.Time

	orderLookups int
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uint]models.User{},
		packages: map[uint]models.Package{},
		bookings: map[uint]models.Booking{},
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) addUser(name string, role models.Role) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{ID: s.id(), Name: name, Email: name + "@example.com", Role: role}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addPackage(p models.Package) models.Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.packages[p.ID] = p
	return p
}

func (s *memStore) booking(id uint) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

// bookingRepo

type memBookings struct{ *memStore }

func (r memBookings) OrderIDExists(_ context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orderLookups++
	for _, b := range r.bookings {
		if b.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r memBookings) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.OrderID == b.OrderID {
			return models.ErrDuplicateKey
		}
	}
	b.ID = r.id()
	b.CreatedAt = r.tick()
	b.UpdatedAt = b.CreatedAt
	r.bookings[b.ID] = *b
	return nil
}

func (r memBookings) FindByID(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &b, nil
}

func (r memBookings) withRelations(b models.Booking) models.Booking {
	if p, ok := r.packages[b.PackageID]; ok {
		b.Package = &p
	}
	if u, ok := r.users[b.UserID]; ok {
		b.User = &u
	}
	return b
}

func (r memBookings) FindSummary(ctx context.Context, id uint) (*models.Booking, error) {
	return r.FindDetail(ctx, id)
}

func (r memBookings) FindDetail(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	b = r.withRelations(b)
	return &b, nil
}

func (r memBookings) List(_ context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []models.Booking{}
	for _, b := range r.bookings {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		list = append(list, r.withRelations(b))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r memBookings) Save(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bookings[b.ID]
	if !ok {
		return models.ErrNotFound
	}
	stored.PackageID = b.PackageID
	stored.Phone = b.Phone
	stored.StartDate = b.StartDate
	stored.Adults = b.Adults
	stored.Children = b.Children
	stored.SpecialRequests = b.SpecialRequests
	stored.TotalPrice = b.TotalPrice
	stored.UpdatedAt = r.tick()
	r.bookings[b.ID] = stored
	return nil
}

func (r memBookings) UpdateStatus(_ context.Context, id uint, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bookings[id]
	if !ok {
		return models.ErrNotFound
	}
	stored.Status = status
	r.bookings[id] = stored
	return nil
}

func (r memBookings) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r memBookings) CountByPackage(_ context.Context, packageID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.PackageID == packageID {
			n++
		}
	}
	return n, nil
}

// packageRepo

type memPackages struct{ *memStore }

func (r memPackages) Create(_ context.Context, p *models.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.id()
	p.CreatedAt = r.tick()
	r.packages[p.ID] = *p
	return nil
}

func (r memPackages) FindByID(_ context.Context, id uint) (*models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (r memPackages) List(_ context.Context, filter models.PackageFilter) ([]models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []models.Package{}
	for _, p := range r.packages {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.Available != nil && p.Available != *filter.Available {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r memPackages) Save(_ context.Context, p *models.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.packages[p.ID]; !ok {
		return models.ErrNotFound
	}
	r.packages[p.ID] = *p
	return nil
}

func (r memPackages) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.packages[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.packages, id)
	return nil
}

// userRepo

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return models.ErrDuplicateKey
		}
	}
	u.ID = r.id()
	r.users[u.ID] = *u
	return nil
}

func (r memUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r memUsers) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []models.User{}
	for _, u := range r.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r memUsers) Save(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return models.ErrNotFound
	}
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return models.ErrDuplicateKey
		}
	}
	r.users[u.ID] = *u
	return nil
}

// fixed generator for allocator tests
func sequence(ids ...string) func() (string, error) {
	var mu sync.Mutex
	i := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		id := ids[i%len(ids)]
		i++
		return id, nil
	}
}
