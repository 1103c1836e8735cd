package rbac

import "testing"

func TestCheckerDefaultPolicy(t *testing.T) {
	c := NewChecker(nil)

	if !c.Has("user", "quiz:create") {
		t.Fatalf("user should be able to create quizzes")
	}
	if !c.Has("user", "quiz:attempt") {
		t.Fatalf("user should be able to attempt quizzes")
	}
	if c.Has("user", "something:else") {
		t.Fatalf("user granted an unlisted permission")
	}
	if !c.Has("admin", "anything:at-all") {
		t.Fatalf("admin wildcard broken")
	}
	if c.Has("", "quiz:create") || c.Has("ghost", "quiz:create") {
		t.Fatalf("unknown role granted permissions")
	}
}

func TestCheckerPrefixPattern(t *testing.T) {
	c := NewChecker(map[string][]string{"mod": {"quiz:*"}})
	if !c.Has("mod", "quiz:create") || !c.Has("mod", "quiz:attempt") {
		t.Fatalf("prefix wildcard should cover quiz permissions")
	}
	if c.Has("mod", "result:view") {
		t.Fatalf("prefix wildcard leaked outside its namespace")
	}
}

func TestCheckerAny(t *testing.T) {
	c := NewChecker(nil)
	if !c.Any("user", "quiz:delete", "result:view") {
		t.Fatalf("Any should succeed when one permission matches")
	}
	if c.Any("user", "quiz:delete", "users:list") {
		t.Fatalf("Any succeeded with no matching permission")
	}
}
