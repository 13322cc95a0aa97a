package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"attendance/internal/apperr"
	"attendance/internal/auth"
)

type fakeStore struct {
	students map[string]Student
	users    map[string]auth.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{students: map[string]Student{}, users: map[string]auth.User{}}
}

func (f *fakeStore) CreateWithUser(_ context.Context, st Student, u auth.User) error {
	if _, ok := f.users[u.Username]; ok {
		return apperr.New(apperr.Conflict, "student already exists")
	}
	if _, ok := f.students[st.RollNumber]; ok {
		return apperr.New(apperr.Conflict, "student already exists")
	}
	f.users[u.Username] = u
	f.students[st.RollNumber] = st
	return nil
}

func (f *fakeStore) Get(_ context.Context, rollNumber string) (*Student, error) {
	st, ok := f.students[rollNumber]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (f *fakeStore) List(_ context.Context, department, section string) ([]Student, error) {
	var out []Student
	for _, st := range f.students {
		if department != "" && st.Department != department {
			continue
		}
		if section != "" && st.Section != section {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func TestImportCounts(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, 4)

	res, err := svc.Import(context.Background(), []ImportRecord{
		{Username: "s101", Password: "pw", Name: "One", Department: "CS", Section: "A", RollNumber: "S101"},
		{Username: "s102", Password: "pw", Name: "Two", Department: "CS", Section: "A", RollNumber: "S102"},
		{Username: "s103", Password: "", Name: "Three", Department: "CS", Section: "A", RollNumber: "S103"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, 3, res.Total)

	// imported students get a pre-approved login with a hashed secret
	u := store.users["s101"]
	assert.Equal(t, auth.RoleStudent, u.Role)
	assert.True(t, u.Approved)
	assert.True(t, auth.CheckSecret(u.PasswordHash, "pw"))
}

func TestImportDuplicateDoesNotAbortBatch(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, 4)

	rec := ImportRecord{Username: "s101", Password: "pw", Name: "One", Department: "CS", Section: "A", RollNumber: "S101"}
	other := ImportRecord{Username: "s102", Password: "pw", Name: "Two", Department: "CS", Section: "A", RollNumber: "S102"}

	res, err := svc.Import(context.Background(), []ImportRecord{rec, rec, other})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.ErrorCount)
}

func TestImportEmptyBatch(t *testing.T) {
	svc := NewService(newFakeStore(), 4)
	_, err := svc.Import(context.Background(), nil)
	assert.Error(t, err)
}

func TestInfoUnknownRoll(t *testing.T) {
	svc := NewService(newFakeStore(), 4)
	_, err := svc.Info(context.Background(), "S404")
	assert.Error(t, err)
	assert.Equal(t, 404, apperr.HTTPStatus(err))
}
