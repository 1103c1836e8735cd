package rbac

// Default policy. Any authenticated user may author quizzes, attempt them and
// read results; admins may additionally mutate quizzes they do not own (the
// ownership half of that check lives in the quiz policy, not here).
var RolePermissions = map[string][]string{
	"user": {
		"quiz:create",
		"quiz:attempt",
		"result:view",
	},
	"admin": {
		"*", // everything
	},
}
