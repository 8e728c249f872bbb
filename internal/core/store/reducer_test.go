package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/user-directory/internal/core/domain"
)

func getUsersResponse(t *testing.T) []domain.RawUser {
	t.Helper()
	var raw []domain.RawUser
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"first_name":"Ada","last_name":"Lovelace","email":"ada@x.com","nickname":"Ada","created_at":"1815-12-10"},
		{"id":2,"first_name":"Grace","last_name":"Hopper","email":"grace@x.com","nickname":"Amazing Grace","rank":"Rear Admiral"}
	]`), &raw))
	return raw
}

var reducedUsers = []domain.User{
	{ID: "1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Nickname: "Ada"},
	{ID: "2", FirstName: "Grace", LastName: "Hopper", Email: "grace@x.com", Nickname: "Amazing Grace"},
}

func TestReduce_ReceivedUsers(t *testing.T) {
	result := Reduce(nil, Action{Type: ActionReceivedUsers, Data: getUsersResponse(t)})

	require.NotNil(t, result)
	assert.Equal(t, reducedUsers, result.Users)
}

func TestReduce_NilStateIsInitialState(t *testing.T) {
	result := Reduce(nil, Action{Type: ActionInit})

	require.NotNil(t, result)
	assert.Empty(t, result.Users)
	assert.NotNil(t, result.Users)
}

func TestReduce_UnknownActionReturnsSameState(t *testing.T) {
	states := []*State{
		InitialState(),
		{Users: reducedUsers},
	}
	for _, s := range states {
		assert.Same(t, s, Reduce(s, Action{Type: "SOMETHING_ELSE"}))
		assert.Same(t, s, Reduce(s, Action{Type: ActionInit}))
	}
}

func TestReduce_ReplacesInsteadOfMerging(t *testing.T) {
	prev := &State{Users: []domain.User{{ID: "99", FirstName: "Old"}}}

	next := Reduce(prev, Action{Type: ActionReceivedUsers, Data: getUsersResponse(t)})

	assert.NotSame(t, prev, next)
	assert.Equal(t, reducedUsers, next.Users)
	assert.Equal(t, domain.UserID("99"), prev.Users[0].ID, "previous snapshot must not be mutated")
}

func TestReduce_IdempotentUnderRepeatedAction(t *testing.T) {
	action := Action{Type: ActionReceivedUsers, Data: getUsersResponse(t)}

	once := Reduce(InitialState(), action)
	twice := Reduce(Reduce(InitialState(), action), action)

	assert.Equal(t, once, twice)
}
