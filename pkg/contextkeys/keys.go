package contextkeys

type contextKey string

// UserIDKey identifica o usuário autenticado no contexto da requisição.
const UserIDKey contextKey = "userID"
