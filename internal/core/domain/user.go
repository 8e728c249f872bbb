package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUpstreamStatus = errors.New("unexpected upstream status")
var ErrMalformedPayload = errors.New("malformed users payload")

// UserID identifies a user. The server may send it as a JSON string or a
// number; either way the text is kept verbatim.
type UserID string

// UnmarshalJSON accepts a JSON string or number literal.
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return errors.New("empty user id")
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n == "" {
		return fmt.Errorf("user id must be a string or number, got %s", data)
	}
	*id = UserID(n)
	return nil
}

// String returns the id as received.
func (id UserID) String() string {
	return string(id)
}

// User is the normalized record rendered by the user list.
type User struct {
	ID        UserID `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
}

// FullName joins first and last name the way the list displays them.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RawUser is a single element of the users.json payload as the server sent it.
// Members other than the five known fields are kept in Extra.
type RawUser struct {
	ID        UserID
	FirstName string
	LastName  string
	Email     string
	Nickname  string
	Extra     map[string]json.RawMessage
}

var knownFields = map[string]func(r *RawUser, v json.RawMessage) error{
	"id":         func(r *RawUser, v json.RawMessage) error { return json.Unmarshal(v, &r.ID) },
	"first_name": func(r *RawUser, v json.RawMessage) error { return json.Unmarshal(v, &r.FirstName) },
	"last_name":  func(r *RawUser, v json.RawMessage) error { return json.Unmarshal(v, &r.LastName) },
	"email":      func(r *RawUser, v json.RawMessage) error { return json.Unmarshal(v, &r.Email) },
	"nickname":   func(r *RawUser, v json.RawMessage) error { return json.Unmarshal(v, &r.Nickname) },
}

// UnmarshalJSON splits the object into the known fields and Extra.
func (r *RawUser) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if members == nil {
		return fmt.Errorf("%w: user is not an object", ErrMalformedPayload)
	}

	*r = RawUser{}
	for name, value := range members {
		decode, ok := knownFields[name]
		if !ok {
			if r.Extra == nil {
				r.Extra = make(map[string]json.RawMessage)
			}
			r.Extra[name] = value
			continue
		}
		if err := decode(r, value); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrMalformedPayload, name, err)
		}
	}
	return nil
}

// MarshalJSON writes the object back with the extra members included.
func (r RawUser) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+5)
	for name, value := range r.Extra {
		out[name] = value
	}
	out["id"] = r.ID
	out["first_name"] = r.FirstName
	out["last_name"] = r.LastName
	out["email"] = r.Email
	out["nickname"] = r.Nickname
	return json.Marshal(out)
}

// Normalize maps the raw payload to users, keeping server order.
func Normalize(raw []RawUser) []User {
	users := make([]User, len(raw))
	for i, r := range raw {
		users[i] = User{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Nickname:  r.Nickname,
		}
	}
	return users
}
