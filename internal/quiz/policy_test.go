package quiz

import "testing"

func TestCanMutate(t *testing.T) {
	q := Quiz{ID: "q1", OwnerID: "owner"}

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"owner", Actor{ID: "owner", Role: RoleUser}, true},
		{"admin non-owner", Actor{ID: "someone", Role: RoleAdmin}, true},
		{"other user", Actor{ID: "someone", Role: RoleUser}, false},
		{"anonymous", Actor{}, false},
		{"anonymous admin role", Actor{Role: RoleAdmin}, false},
	}
	for _, tc := range cases {
		if got := CanMutate(tc.actor, q); got != tc.want {
			t.Errorf("%s: CanMutate = %v, want %v", tc.name, got, tc.want)
		}
	}
}
