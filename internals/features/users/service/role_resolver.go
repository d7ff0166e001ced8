// file: internals/features/users/service/role_resolver.go
package service

import (
	"strings"
	"sync"

	"semillero_backend/internals/constants"
)

// RoleResolver resuelve el rol de un correo contra las listas configuradas.
// La pertenencia a coordinadores gana sobre profesores; el resto es student.
// El resultado se memoiza por correo normalizado durante la vida del proceso:
// la primera resolución gana, aunque las listas cambien después.
type RoleResolver struct {
	mu           sync.RWMutex
	coordinators map[string]struct{}
	teachers     map[string]struct{}
	cache        map[string]string
}

func NewRoleResolver(coordinatorEmails, teacherEmails []string) *RoleResolver {
	return &RoleResolver{
		coordinators: normalizeSet(coordinatorEmails),
		teachers:     normalizeSet(teacherEmails),
		cache:        make(map[string]string),
	}
}

func normalizeSet(emails []string) map[string]struct{} {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}

// Resolve normaliza el correo a minúsculas y devuelve su rol.
func (r *RoleResolver) Resolve(email string) string {
	key := strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	if role, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return role
	}
	r.mu.RUnlock()

	role := constants.RoleStudent
	if _, ok := r.coordinators[key]; ok {
		role = constants.RoleCoordinator
	} else if _, ok := r.teachers[key]; ok {
		role = constants.RoleTeacher
	}

	r.mu.Lock()
	r.cache[key] = role
	r.mu.Unlock()
	return role
}
