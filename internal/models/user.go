package models

import "time"

// UserRole represents the available roles for authorization checks.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents an application user stored in the users table.
// Usernames are immutable once created; no endpoint changes them.
type User struct {
	ID             string     `db:"id" json:"id"`
	Username       string     `db:"username" json:"username"`
	Nome           string     `db:"nome" json:"nome"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Role           UserRole   `db:"role" json:"role"`
	Ativo          bool       `db:"ativo" json:"ativo"`
	PrimeiroAcesso bool       `db:"primeiro_acesso" json:"primeiroAcesso"`
	UltimoAcesso   *time.Time `db:"ultimo_acesso" json:"ultimoAcesso,omitempty"`
	CriadoEm       time.Time  `db:"criado_em" json:"criadoEm"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
