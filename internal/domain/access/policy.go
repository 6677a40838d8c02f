// Package access define la política de acceso por rol: qué acciones puede ejecutar cada rol.
// Funciones puras y totales: un rol desconocido degrada a "sin permisos".
package access

import "github.com/jhoicas/commodities-api/internal/domain/entity"

// Action acción protegida por la política.
type Action string

// Acciones protegidas.
const (
	ViewDashboard     Action = "view_dashboard"
	ViewProducts      Action = "view_products"
	AddOrEditProducts Action = "add_or_edit_products"
)

var grants = map[entity.Role][]Action{
	entity.RoleManager:     {ViewDashboard, ViewProducts, AddOrEditProducts},
	entity.RoleStoreKeeper: {ViewProducts, AddOrEditProducts},
}

// PermittedActions devuelve las acciones permitidas para role en orden estable.
// Rol vacío o desconocido → slice vacío (nunca nil).
func PermittedActions(role entity.Role) []Action {
	actions := grants[role]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Can indica si role puede ejecutar action.
func Can(role entity.Role, action Action) bool {
	for _, a := range grants[role] {
		if a == action {
			return true
		}
	}
	return false
}
