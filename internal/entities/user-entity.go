package entities

// User é um usuário do sistema. Os usuários são fixos, definidos na
// configuração; a senha é mantida apenas como hash bcrypt.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	SenhaHash string `json:"-"`
	Role      string `json:"role"`
}
