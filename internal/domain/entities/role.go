package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Rank retorna o nível de autorização do role.
// Usado para comparações do tipo "pelo menos moderador".
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleModerator:
		return 1
	default:
		return 0
	}
}
