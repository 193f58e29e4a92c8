package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YashI2IT/hostel/models"
)

// Store is the single gateway to persistent state. Every logical
// operation runs inside one transaction, so a failed step never leaves
// partial writes behind.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Tx exposes typed entity access inside one transaction. Handing out
// *gorm.DB directly would let services bypass enum checks, so they get
// this instead.
type Tx struct {
	db *gorm.DB
}

// RunTransaction executes fn atomically. Any error rolls the whole
// transaction back; storage-level failures are mapped onto the sentinel
// errors before they reach the caller.
func (s *Store) RunTransaction(fn func(tx *Tx) error) error {
	err := s.db.Transaction(func(db *gorm.DB) error {
		return fn(&Tx{db: db})
	})
	return translateError(err)
}

// View runs fn inside a read transaction so multi-query reads see one
// consistent state.
func (s *Store) View(fn func(tx *Tx) error) error {
	return s.RunTransaction(fn)
}

// Snapshot is a consistent copy of the property graph taken in one
// transaction.
type Snapshot struct {
	TakenAt    time.Time         `json:"takenAt"`
	Properties []models.Property `json:"properties"`
}

// ReadGraph loads properties with their rooms and beds, beds carrying the
// occupying student and that student's open booking. With propertyID set it
// narrows to that property and reports NotFound when it does not exist.
func (s *Store) ReadGraph(propertyID *uint) (*Snapshot, error) {
	snap := &Snapshot{TakenAt: time.Now()}
	err := s.RunTransaction(func(tx *Tx) error {
		q := tx.db.
			Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("rooms.id") }).
			Preload("Rooms.Beds", func(db *gorm.DB) *gorm.DB { return db.Order("beds.label") }).
			Preload("Rooms.Beds.CurrentStudent").
			Preload("Rooms.Beds.CurrentStudent.Bookings", func(db *gorm.DB) *gorm.DB {
				return db.Where("status = ?", models.BookingActive)
			}).
			Order("properties.id")
		if propertyID != nil {
			q = q.Where("id = ?", *propertyID)
		}
		if err := q.Find(&snap.Properties).Error; err != nil {
			return err
		}
		if propertyID != nil && len(snap.Properties) == 0 {
			return fmt.Errorf("property %d: %w", *propertyID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	snap.fillDerived()
	return snap, nil
}

// fillDerived sets the computed fields on every booking in the snapshot.
func (s *Snapshot) fillDerived() {
	for pi := range s.Properties {
		for ri := range s.Properties[pi].Rooms {
			beds := s.Properties[pi].Rooms[ri].Beds
			for bi := range beds {
				st := beds[bi].CurrentStudent
				if st == nil {
					continue
				}
				for ki := range st.Bookings {
					st.Bookings[ki].FillDerived()
				}
			}
		}
	}
}

// translateError maps driver errors onto the sentinels. Errors already
// carrying a sentinel pass through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrValidation) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("record: %w", ErrNotFound)
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		switch merr.Number {
		case 1062:
			return fmt.Errorf("duplicate value: %w", ErrConflict)
		case 1205, 1213:
			return fmt.Errorf("concurrent update, retry: %w", ErrConflict)
		}
	}
	// SQLite reports the same conditions as plain text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Duplicate entry"),
		strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("duplicate value: %w", ErrConflict)
	case strings.Contains(msg, "Deadlock found"),
		strings.Contains(msg, "Lock wait timeout"),
		strings.Contains(msg, "database is locked"):
		return fmt.Errorf("concurrent update, retry: %w", ErrConflict)
	}
	return err
}

// locking adds FOR UPDATE on engines that support it. SQLite serializes
// writers on its own and rejects the clause.
func (t *Tx) locking() *gorm.DB {
	if t.db.Dialector.Name() == "mysql" {
		return t.db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return t.db
}

//
// ===========================================================
//  PROPERTIES
// ===========================================================
//

func (t *Tx) Property(id uint) (*models.Property, error) {
	var p models.Property
	if err := t.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (t *Tx) PropertyForUpdate(id uint) (*models.Property, error) {
	var p models.Property
	if err := t.locking().First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (t *Tx) ListProperties() ([]models.Property, error) {
	var out []models.Property
	if err := t.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tx) CreateProperty(p *models.Property) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("property name is required: %w", ErrValidation)
	}
	return t.db.Create(p).Error
}

func (t *Tx) SaveProperty(p *models.Property) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("property name is required: %w", ErrValidation)
	}
	return t.db.Save(p).Error
}

func (t *Tx) DeleteProperty(p *models.Property) error {
	return t.db.Delete(p).Error
}

//
// ===========================================================
//  ROOMS
// ===========================================================
//

func (t *Tx) Room(id uint) (*models.Room, error) {
	var r models.Room
	if err := t.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &r, nil
}

func (t *Tx) RoomForUpdate(id uint) (*models.Room, error) {
	var r models.Room
	if err := t.locking().First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &r, nil
}

func (t *Tx) RoomWithBeds(id uint) (*models.Room, error) {
	var r models.Room
	err := t.db.
		Preload("Beds", func(db *gorm.DB) *gorm.DB { return db.Order("beds.label") }).
		Preload("Beds.CurrentStudent").
		First(&r, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &r, nil
}

func (t *Tx) ListRooms(propertyID *uint) ([]models.Room, error) {
	q := t.db.
		Preload("Beds", func(db *gorm.DB) *gorm.DB { return db.Order("beds.label") }).
		Preload("Beds.CurrentStudent").
		Order("id")
	if propertyID != nil {
		q = q.Where("property_id = ?", *propertyID)
	}
	var out []models.Room
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tx) CreateRoom(r *models.Room) error {
	if strings.TrimSpace(r.RoomNumber) == "" {
		return fmt.Errorf("room number is required: %w", ErrValidation)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("room type %q: %w", r.Type, ErrValidation)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("room capacity must be positive: %w", ErrValidation)
	}
	return t.db.Create(r).Error
}

func (t *Tx) SaveRoom(r *models.Room) error {
	if !r.Type.Valid() {
		return fmt.Errorf("room type %q: %w", r.Type, ErrValidation)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("room capacity must be positive: %w", ErrValidation)
	}
	return t.db.Save(r).Error
}

func (t *Tx) DeleteRoom(r *models.Room) error {
	return t.db.Delete(r).Error
}

//
// ===========================================================
//  BEDS
// ===========================================================
//

func (t *Tx) Bed(id uint) (*models.Bed, error) {
	var b models.Bed
	if err := t.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bed %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (t *Tx) BedForUpdate(id uint) (*models.Bed, error) {
	var b models.Bed
	if err := t.locking().First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bed %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

// BedsForUpdate locks every live bed of a room so label assignment and
// occupancy checks cannot race a concurrent assign.
func (t *Tx) BedsForUpdate(roomID uint) ([]models.Bed, error) {
	var out []models.Bed
	if err := t.locking().Where("room_id = ?", roomID).Order("label").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// BedHeldBy returns the bed a student currently occupies, nil when the
// student holds none.
func (t *Tx) BedHeldBy(studentID uint) (*models.Bed, error) {
	var b models.Bed
	err := t.locking().
		Where("current_student_id = ? AND status = ?", studentID, models.BedOccupied).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (t *Tx) OccupiedBedCount(roomID uint) (int64, error) {
	var n int64
	err := t.db.Model(&models.Bed{}).
		Where("room_id = ? AND status = ?", roomID, models.BedOccupied).
		Count(&n).Error
	return n, err
}

func (t *Tx) OccupiedBedCountForProperty(propertyID uint) (int64, error) {
	var n int64
	err := t.db.Model(&models.Bed{}).
		Joins("JOIN rooms ON rooms.id = beds.room_id AND rooms.deleted_at IS NULL").
		Where("rooms.property_id = ? AND beds.status = ?", propertyID, models.BedOccupied).
		Count(&n).Error
	return n, err
}

// MaxBedLabel returns the highest label ever issued in a room, removed
// beds included. Labels are never reused, so new beds continue after it.
func (t *Tx) MaxBedLabel(roomID uint) (string, error) {
	var label string
	err := t.db.Unscoped().Model(&models.Bed{}).
		Where("room_id = ?", roomID).
		Select("COALESCE(MAX(label), '')").
		Scan(&label).Error
	if err != nil {
		return "", err
	}
	return label, nil
}

func validateBed(b *models.Bed) error {
	if !b.Status.Valid() {
		return fmt.Errorf("bed status %q: %w", b.Status, ErrValidation)
	}
	if (b.Status == models.BedOccupied) != (b.CurrentStudentID != nil) {
		return fmt.Errorf("bed status %s does not match occupant link: %w", b.Status, ErrValidation)
	}
	return nil
}

func (t *Tx) CreateBeds(beds []models.Bed) error {
	for i := range beds {
		if err := validateBed(&beds[i]); err != nil {
			return err
		}
	}
	return t.db.Create(&beds).Error
}

func (t *Tx) SaveBed(b *models.Bed) error {
	if err := validateBed(b); err != nil {
		return err
	}
	return t.db.Save(b).Error
}

func (t *Tx) DeleteBed(b *models.Bed) error {
	return t.db.Delete(b).Error
}

func (t *Tx) DeleteBedsForRoom(roomID uint) error {
	return t.db.Where("room_id = ?", roomID).Delete(&models.Bed{}).Error
}

//
// ===========================================================
//  STUDENTS
// ===========================================================
//

func (t *Tx) Student(id uint) (*models.Student, error) {
	var s models.Student
	if err := t.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &s, nil
}

func (t *Tx) StudentForUpdate(id uint) (*models.Student, error) {
	var s models.Student
	if err := t.locking().First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &s, nil
}

func (t *Tx) ListStudents(activeOnly bool, search string) ([]models.Student, error) {
	q := t.db.Model(&models.Student{}).Order("id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		q = q.Where("name LIKE ? OR phone_number LIKE ? OR email LIKE ?", like, like, like)
	}
	var out []models.Student
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func validateStudent(s *models.Student) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("student name is required: %w", ErrValidation)
	}
	if s.Age <= 0 {
		return fmt.Errorf("student age must be positive: %w", ErrValidation)
	}
	return nil
}

func (t *Tx) CreateStudent(s *models.Student) error {
	if err := validateStudent(s); err != nil {
		return err
	}
	return t.db.Create(s).Error
}

func (t *Tx) SaveStudent(s *models.Student) error {
	if err := validateStudent(s); err != nil {
		return err
	}
	return t.db.Save(s).Error
}

//
// ===========================================================
//  BOOKINGS & PAYMENTS
// ===========================================================
//

func (t *Tx) Booking(id uint) (*models.Booking, error) {
	var b models.Booking
	err := t.db.
		Preload("Student").
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payments.id") }).
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (t *Tx) BookingForUpdate(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := t.locking().First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &b, nil
}

// ActiveBookingFor returns the student's open booking, nil when there is
// none. A student never has more than one.
func (t *Tx) ActiveBookingFor(studentID uint) (*models.Booking, error) {
	var b models.Booking
	err := t.locking().
		Where("student_id = ? AND status = ?", studentID, models.BookingActive).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (t *Tx) ListBookings(status *models.BookingStatus) ([]models.Booking, error) {
	q := t.db.Model(&models.Booking{}).Preload("Student").Order("id")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []models.Booking
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func validateBooking(b *models.Booking) error {
	if !b.Frequency.Valid() {
		return fmt.Errorf("booking frequency %q: %w", b.Frequency, ErrValidation)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("booking status %q: %w", b.Status, ErrValidation)
	}
	if b.TotalAmount <= 0 {
		return fmt.Errorf("booking amount must be positive: %w", ErrValidation)
	}
	if b.StartDate.IsZero() {
		return fmt.Errorf("booking start date is required: %w", ErrValidation)
	}
	if b.EndDate != nil && !b.EndDate.After(b.StartDate) {
		return fmt.Errorf("booking end date must be after start date: %w", ErrValidation)
	}
	return nil
}

func (t *Tx) CreateBooking(b *models.Booking) error {
	if err := validateBooking(b); err != nil {
		return err
	}
	return t.db.Create(b).Error
}

func (t *Tx) SaveBooking(b *models.Booking) error {
	if err := validateBooking(b); err != nil {
		return err
	}
	return t.db.Save(b).Error
}

func (t *Tx) Payment(id uint) (*models.Payment, error) {
	var p models.Payment
	if err := t.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (t *Tx) PaymentForUpdate(id uint) (*models.Payment, error) {
	var p models.Payment
	if err := t.locking().First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func validatePayment(p *models.Payment) error {
	if !p.Method.Valid() {
		return fmt.Errorf("payment method %q: %w", p.Method, ErrValidation)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("payment amount must be positive: %w", ErrValidation)
	}
	return nil
}

func (t *Tx) CreatePayment(p *models.Payment) error {
	if err := validatePayment(p); err != nil {
		return err
	}
	return t.db.Create(p).Error
}

func (t *Tx) SavePayment(p *models.Payment) error {
	if err := validatePayment(p); err != nil {
		return err
	}
	return t.db.Save(p).Error
}

//
// ===========================================================
//  COMPLAINTS
// ===========================================================
//

func (t *Tx) Complaint(id uint) (*models.Complaint, error) {
	var c models.Complaint
	if err := t.db.Preload("Student").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("complaint %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (t *Tx) ComplaintForUpdate(id uint) (*models.Complaint, error) {
	var c models.Complaint
	if err := t.locking().First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("complaint %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (t *Tx) ListComplaints(status *models.ComplaintStatus, roomID *uint) ([]models.Complaint, error) {
	q := t.db.Model(&models.Complaint{}).Preload("Student").Order("id")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if roomID != nil {
		q = q.Where("room_id = ?", *roomID)
	}
	var out []models.Complaint
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func validateComplaint(c *models.Complaint) error {
	if !c.Category.Valid() {
		return fmt.Errorf("complaint category %q: %w", c.Category, ErrValidation)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("complaint status %q: %w", c.Status, ErrValidation)
	}
	if strings.TrimSpace(c.Description) == "" {
		return fmt.Errorf("complaint description is required: %w", ErrValidation)
	}
	return nil
}

func (t *Tx) CreateComplaint(c *models.Complaint) error {
	if err := validateComplaint(c); err != nil {
		return err
	}
	return t.db.Create(c).Error
}

func (t *Tx) SaveComplaint(c *models.Complaint) error {
	if err := validateComplaint(c); err != nil {
		return err
	}
	return t.db.Save(c).Error
}

//
// ===========================================================
//  USERS
// ===========================================================
//

func (t *Tx) User(id uint) (*models.User, error) {
	var u models.User
	if err := t.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (t *Tx) UserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := t.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (t *Tx) ListUsers() ([]models.User, error) {
	var out []models.User
	if err := t.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tx) CreateUser(u *models.User) error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required: %w", ErrValidation)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("user role %q: %w", u.Role, ErrValidation)
	}
	return t.db.Create(u).Error
}
