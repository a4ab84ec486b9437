package access

import "carehub/models"

const (
	a = models.RoleAdmin
	u = models.RoleUser
	v = models.RoleVolunteer
)

// MedAppointmentsPrefix is denied by default when no rule matches.
const MedAppointmentsPrefix = "/med-appointments"

// DefaultRules is the application's route authorization table.
var DefaultRules = []Rule{
	NewRule("GET /users/me", a, u, v),
	NewRule("PUT /users/me", a, u, v),
	NewRule("PUT /users/me/password", a, u, v),
	NewRule("GET /users", a),
	NewRule("POST /users", a),
	NewRule("PUT /users/:id/status", a),
	NewRule("PUT /users/:id/role", a),
	NewRule("DELETE /users/:id", a),

	NewRule("GET /alerts", a, u, v),
	NewRule("GET /alerts/unread-count", a, u, v),
	NewRule("GET /alerts/:id", a, u, v),
	NewRule("POST /alerts", a),
	NewRule("PUT /alerts/:id", a),
	NewRule("DELETE /alerts/:id", a),
	NewRule("POST /alerts/:id/read", a, u, v),

	NewRule("GET /chats", a, u, v),
	NewRule("POST /chats", u),
	NewRule("GET /chats/:id", a, u, v),
	NewRule("PUT /chats/:id/accept", v),
	NewRule("PUT /chats/:id/close", a, u, v),
	NewRule("DELETE /chats/:id", a),
	NewRule("GET /chats/:id/messages", a, u, v),
	NewRule("POST /chats/:id/messages", a, u, v),

	NewRule("GET /medications", u),
	NewRule("GET /medications/:id", u),
	NewRule("POST /medications", u),
	NewRule("PUT /medications/:id", u),
	NewRule("DELETE /medications/:id", u),

	NewRule("GET /med-appointments", u),
	NewRule("GET /med-appointments/date/:date", u),
	NewRule("GET /med-appointments/:id", u),
	NewRule("POST /med-appointments", u),
	NewRule("PUT /med-appointments/:id", u),
	NewRule("DELETE /med-appointments/:id", u),

	NewRule("GET /notes", a, u, v),
	NewRule("GET /notes/:id", a, u, v),
	NewRule("POST /notes", a, u, v),
	NewRule("PUT /notes/:id", a, u, v),
	NewRule("DELETE /notes/:id", a, u, v),

	NewRule("GET /feedbacks", a, u, v),
	NewRule("GET /feedbacks/:id", a, u, v),
	NewRule("POST /feedbacks", u, v),
	NewRule("PUT /feedbacks/:id/status", a),
	NewRule("DELETE /feedbacks/:id", a, u, v),

	NewRule("GET /weather", a, u, v),
	NewRule("GET /trivia", a, u, v),

	NewRule("GET /dashboard", a, u, v),
}

// DefaultTable compiles DefaultRules with the med-appointments default deny.
func DefaultTable() *Table {
	return MustNewTable(DefaultRules, MedAppointmentsPrefix)
}
