package services

import (
	"context"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/repositories"
)

// Each fake forwards to its function field; a nil field panics so that
// unexpected store calls fail the test.

type fakeUserStore struct {
	list        func(ctx context.Context) ([]*models.User, error)
	getByID     func(ctx context.Context, id string) (*models.User, error)
	getByEmail  func(ctx context.Context, email string) (*models.User, error)
	create      func(ctx context.Context, user *models.User) error
	update      func(ctx context.Context, user *models.User) error
	delete      func(ctx context.Context, id string) (*models.User, error)
	emailExists func(ctx context.Context, email, excludeID string) (bool, error)
	dniExists   func(ctx context.Context, dni, excludeID string) (bool, error)
}

func (f *fakeUserStore) List(ctx context.Context) ([]*models.User, error) { return f.list(ctx) }
func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.getByID(ctx, id)
}
func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getByEmail(ctx, email)
}
func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	return f.create(ctx, user)
}
func (f *fakeUserStore) Update(ctx context.Context, user *models.User) error {
	return f.update(ctx, user)
}
func (f *fakeUserStore) Delete(ctx context.Context, id string) (*models.User, error) {
	return f.delete(ctx, id)
}
func (f *fakeUserStore) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	return f.emailExists(ctx, email, excludeID)
}
func (f *fakeUserStore) DNIExists(ctx context.Context, dni, excludeID string) (bool, error) {
	return f.dniExists(ctx, dni, excludeID)
}

type fakeStudentStore struct {
	list    func(ctx context.Context) ([]*models.Student, error)
	search  func(ctx context.Context, search models.StudentSearch) ([]*models.Student, error)
	getByID func(ctx context.Context, id string) (*models.Student, error)
	exists  func(ctx context.Context, id string) (bool, error)
	create  func(ctx context.Context, student *models.Student) error
	update  func(ctx context.Context, student *models.Student) (*models.Student, error)
	delete  func(ctx context.Context, id string) (*models.Student, error)
}

func (f *fakeStudentStore) List(ctx context.Context) ([]*models.Student, error) { return f.list(ctx) }
func (f *fakeStudentStore) Search(ctx context.Context, search models.StudentSearch) ([]*models.Student, error) {
	return f.search(ctx, search)
}
func (f *fakeStudentStore) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return f.getByID(ctx, id)
}
func (f *fakeStudentStore) Exists(ctx context.Context, id string) (bool, error) {
	return f.exists(ctx, id)
}
func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	return f.create(ctx, student)
}
func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	return f.update(ctx, student)
}
func (f *fakeStudentStore) Delete(ctx context.Context, id string) (*models.Student, error) {
	return f.delete(ctx, id)
}

type fakeAcademyStore struct {
	list       func(ctx context.Context) ([]*models.Academy, error)
	getByID    func(ctx context.Context, id string) (*models.Academy, error)
	create     func(ctx context.Context, academy *models.Academy) error
	update     func(ctx context.Context, academy *models.Academy) error
	delete     func(ctx context.Context, id string) error
	nameExists func(ctx context.Context, name, excludeID string) (bool, error)
	exists     func(ctx context.Context, id string) (bool, error)
}

func (f *fakeAcademyStore) List(ctx context.Context) ([]*models.Academy, error) { return f.list(ctx) }
func (f *fakeAcademyStore) GetByID(ctx context.Context, id string) (*models.Academy, error) {
	return f.getByID(ctx, id)
}
func (f *fakeAcademyStore) Create(ctx context.Context, academy *models.Academy) error {
	return f.create(ctx, academy)
}
func (f *fakeAcademyStore) Update(ctx context.Context, academy *models.Academy) error {
	return f.update(ctx, academy)
}
func (f *fakeAcademyStore) Delete(ctx context.Context, id string) error { return f.delete(ctx, id) }
func (f *fakeAcademyStore) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	return f.nameExists(ctx, name, excludeID)
}
func (f *fakeAcademyStore) Exists(ctx context.Context, id string) (bool, error) {
	return f.exists(ctx, id)
}

type fakeCourseStore struct {
	list    func(ctx context.Context) ([]*models.Course, error)
	getByID func(ctx context.Context, id string) (*models.Course, error)
	create  func(ctx context.Context, course *models.Course) error
	update  func(ctx context.Context, course *models.Course) error
	delete  func(ctx context.Context, id string) (*repositories.CourseDeletion, error)
	exists  func(ctx context.Context, id string) (bool, error)
}

func (f *fakeCourseStore) List(ctx context.Context) ([]*models.Course, error) { return f.list(ctx) }
func (f *fakeCourseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return f.getByID(ctx, id)
}
func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	return f.create(ctx, course)
}
func (f *fakeCourseStore) Update(ctx context.Context, course *models.Course) error {
	return f.update(ctx, course)
}
func (f *fakeCourseStore) Delete(ctx context.Context, id string) (*repositories.CourseDeletion, error) {
	return f.delete(ctx, id)
}
func (f *fakeCourseStore) Exists(ctx context.Context, id string) (bool, error) {
	return f.exists(ctx, id)
}

type fakeEnrollStore struct {
	list          func(ctx context.Context) ([]*models.Enroll, error)
	listByStudent func(ctx context.Context, studentID string) ([]*models.Enroll, error)
	listByCourse  func(ctx context.Context, courseID string) ([]*models.Enroll, error)
	search        func(ctx context.Context, search models.EnrollSearch) ([]*models.Certificate, error)
	getByID       func(ctx context.Context, id string) (*models.Enroll, error)
	create        func(ctx context.Context, enroll *models.Enroll) error
	createMany    func(ctx context.Context, studentID string, enrolls []*models.Enroll) error
	update        func(ctx context.Context, id string, update models.EnrollUpdate) (*models.Enroll, error)
	delete        func(ctx context.Context, id string) (*models.Enroll, error)
}

func (f *fakeEnrollStore) List(ctx context.Context) ([]*models.Enroll, error) { return f.list(ctx) }
func (f *fakeEnrollStore) ListByStudent(ctx context.Context, studentID string) ([]*models.Enroll, error) {
	return f.listByStudent(ctx, studentID)
}
func (f *fakeEnrollStore) ListByCourse(ctx context.Context, courseID string) ([]*models.Enroll, error) {
	return f.listByCourse(ctx, courseID)
}
func (f *fakeEnrollStore) Search(ctx context.Context, search models.EnrollSearch) ([]*models.Certificate, error) {
	return f.search(ctx, search)
}
func (f *fakeEnrollStore) GetByID(ctx context.Context, id string) (*models.Enroll, error) {
	return f.getByID(ctx, id)
}
func (f *fakeEnrollStore) Create(ctx context.Context, enroll *models.Enroll) error {
	return f.create(ctx, enroll)
}
func (f *fakeEnrollStore) CreateMany(ctx context.Context, studentID string, enrolls []*models.Enroll) error {
	return f.createMany(ctx, studentID, enrolls)
}
func (f *fakeEnrollStore) Update(ctx context.Context, id string, update models.EnrollUpdate) (*models.Enroll, error) {
	return f.update(ctx, id, update)
}
func (f *fakeEnrollStore) Delete(ctx context.Context, id string) (*models.Enroll, error) {
	return f.delete(ctx, id)
}
