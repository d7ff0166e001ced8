package constants

// Roles mutuamente excluyentes, asignados por listas de correos (ver configs).
const (
	RoleStudent     = "student"
	RoleTeacher     = "teacher"
	RoleCoordinator = "coordinator"
)

// Categorías de notificación.
const (
	CategoryGeneral         = "general"
	CategoryDeadline        = "deadline"
	CategoryDeadlineOverdue = "deadline_overdue"
)
