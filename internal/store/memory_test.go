package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hance08/teller/internal/bank"
	"github.com/hance08/teller/internal/credential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, name string) *bank.User {
	t.Helper()
	u, err := bank.NewUser(name, "pw", bank.WithHasher(credential.SHA256{}))
	require.NoError(t, err)
	return u
}

func TestCreateAndGetUser(t *testing.T) {
	s := NewMemoryStore()
	alice := newUser(t, "alice")

	require.NoError(t, s.CreateUser(alice))
	assert.True(t, s.UserExists("alice"))
	assert.Equal(t, 1, s.Count())

	got, err := s.GetUser("alice")
	require.NoError(t, err)
	assert.Same(t, alice, got)
}

func TestCreateUserDuplicate(t *testing.T) {
	s := NewMemoryStore()
	first := newUser(t, "alice")
	require.NoError(t, s.CreateUser(first))

	err := s.CreateUser(newUser(t, "alice"))
	require.ErrorIs(t, err, ErrUserExists)

	got, err := s.GetUser("alice")
	require.NoError(t, err)
	assert.Same(t, first, got, "the first user is unaffected")
	assert.Equal(t, 1, s.Count())
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(newUser(t, "alice")))
	require.NoError(t, s.CreateUser(newUser(t, "Alice")))

	assert.Equal(t, []string{"alice", "Alice"}, s.Usernames())
	assert.False(t, s.UserExists("ALICE"))
}

func TestGetUserNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetUser("nobody")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCreateUserNil(t *testing.T) {
	assert.Error(t, NewMemoryStore().CreateUser(nil))
}

func TestClose(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(newUser(t, "alice")))
	require.NoError(t, s.Close())

	err := s.CreateUser(newUser(t, "bob"))
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.True(t, s.UserExists("alice"))
}

func TestConcurrentCreateUserIsUnique(t *testing.T) {
	s := NewMemoryStore()
	users := make([]*bank.User, 20)
	for i := range users {
		users[i] = newUser(t, "same")
	}

	var wins atomic.Int32
	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(u *bank.User) {
			defer wg.Done()
			if s.CreateUser(u) == nil {
				wins.Add(1)
			}
		}(u)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 1, s.Count())
}

func TestUsernamesPreserveOrder(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.CreateUser(newUser(t, fmt.Sprintf("user%d", i))))
	}

	names := s.Usernames()
	assert.Equal(t, []string{"user0", "user1", "user2", "user3", "user4"}, names)

	names[0] = "mutated"
	assert.Equal(t, "user0", s.Usernames()[0])
}
