package entity

// Role rol de un usuario dentro del sistema.
type Role string

// Roles válidos para User.
const (
	RoleManager     Role = "manager"
	RoleStoreKeeper Role = "storekeeper"
)

// Valid indica si r es uno de los roles definidos.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleStoreKeeper
}

// User identidad pública de un usuario (sin password). Inmutable: no hay gestión de usuarios.
type User struct {
	ID    string `json:"id" yaml:"id"`
	Email string `json:"email" yaml:"email"`
	Role  Role   `json:"role" yaml:"role"`
	Name  string `json:"name" yaml:"name"`
}

// DirectoryEntry entrada del directorio de usuarios. El password se guarda en texto plano:
// el directorio es un placeholder sin hashing, y nunca sale de la capa de directorio.
type DirectoryEntry struct {
	User     `yaml:",inline"`
	Password string `yaml:"password"`
}

// ParseRole convierte s en Role; ok=false si no es un rol definido.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
