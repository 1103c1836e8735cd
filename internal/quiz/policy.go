package quiz

// CanMutate reports whether the actor may edit or delete the quiz: only the
// creator or an admin. Creating and attempting quizzes need no ownership,
// just authentication; catalog reads need neither.
func CanMutate(actor Actor, q Quiz) bool {
	if actor.ID == "" {
		return false
	}
	return actor.ID == q.OwnerID || actor.Role == RoleAdmin
}
